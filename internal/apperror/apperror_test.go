package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{
			name:      "NotFound wraps ErrNotFound",
			err:       NotFound("user", "abc123"),
			target:    ErrNotFound,
			wantMatch: true,
		},
		{
			name:      "ValidationFailed wraps ErrValidation",
			err:       ValidationFailed("email", "email is required"),
			target:    ErrValidation,
			wantMatch: true,
		},
		{
			name:      "DuplicateEmail wraps ErrDuplicateEmail",
			err:       DuplicateEmail(),
			target:    ErrDuplicateEmail,
			wantMatch: true,
		},
		{
			name:      "InvalidCredentials wraps ErrInvalidCredentials",
			err:       InvalidCredentials(),
			target:    ErrInvalidCredentials,
			wantMatch: true,
		},
		{
			name:      "PendingApproval wraps ErrPendingApproval",
			err:       PendingApproval(),
			target:    ErrPendingApproval,
			wantMatch: true,
		},
		{
			name:      "NoSession wraps ErrNoSession",
			err:       NoSession(),
			target:    ErrNoSession,
			wantMatch: true,
		},
		{
			name:      "Storage wraps ErrStorage",
			err:       Storage("put users", errors.New("disk full")),
			target:    ErrStorage,
			wantMatch: true,
		},
		{
			name:      "NotFound does not match ErrValidation",
			err:       NotFound("user", "abc123"),
			target:    ErrValidation,
			wantMatch: false,
		},
		{
			name:      "InvalidCredentials does not match ErrPendingApproval",
			err:       InvalidCredentials(),
			target:    ErrPendingApproval,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.wantMatch {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.wantMatch)
			}
		})
	}
}

func TestErrorsIs_ThroughWrapping(t *testing.T) {
	// Services wrap repository errors with fmt.Errorf("%w"); the sentinel
	// must survive the extra layer.
	inner := NotFound("publication", "p1")
	wrapped := fmt.Errorf("loading publication: %w", inner)

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("wrapped AppError no longer matches ErrNotFound")
	}
}

func TestAppError_Message(t *testing.T) {
	err := ValidationFailed("title", "title is required")
	if err.Error() != "title is required" {
		t.Errorf("Error() = %q, want the user-facing message", err.Error())
	}
	if err.Field != "title" {
		t.Errorf("Field = %q, want %q", err.Field, "title")
	}
}

func TestInvalidCredentials_SingleMessage(t *testing.T) {
	// The login error must not reveal whether the email exists.
	if InvalidCredentials().Message != "invalid email or password" {
		t.Error("InvalidCredentials() message must stay generic")
	}
}
