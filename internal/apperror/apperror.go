package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")
	ErrDuplicateEmail     = errors.New("duplicate email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPendingApproval    = errors.New("pending approval")
	ErrNoSession          = errors.New("no session")
	ErrStorage            = errors.New("storage error")
)

// AppError is the error type returned across the core. Message is safe to
// show to the user; Err carries the sentinel for errors.Is checks.
type AppError struct {
	Err     error  // actual error
	Message string // human-readable error message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func DuplicateEmail() *AppError {
	return &AppError{
		Err:     ErrDuplicateEmail,
		Message: "an account with that email already exists",
		Field:   "email",
	}
}

// InvalidCredentials deliberately carries one message for both "no such
// email" and "wrong password" so callers cannot enumerate accounts.
func InvalidCredentials() *AppError {
	return &AppError{
		Err:     ErrInvalidCredentials,
		Message: "invalid email or password",
	}
}

func PendingApproval() *AppError {
	return &AppError{
		Err:     ErrPendingApproval,
		Message: "your account is pending approval by an administrator",
	}
}

func NoSession() *AppError {
	return &AppError{
		Err:     ErrNoSession,
		Message: "no user is currently logged in",
	}
}

// Storage wraps a low-level storage failure. The store logs these and
// degrades to defaults; callers that do see one should treat it as a
// generic failure, never as fatal.
func Storage(op string, err error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %s: %v", ErrStorage, op, err),
		Message: "storage is temporarily unavailable",
	}
}
