// Package service contains the business rules of the marketplace core. Each
// service takes its repositories and a logger by constructor injection and
// returns domain errors from the apperror taxonomy; nothing here knows
// about any presentation surface.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shoofli/shoofli/internal/apperror"
	"github.com/shoofli/shoofli/internal/auth"
	"github.com/shoofli/shoofli/internal/model"
	"github.com/shoofli/shoofli/internal/repository"
	"github.com/shoofli/shoofli/internal/store"
)

// SessionService owns the identity lifecycle: registration with the
// approval workflow, credential login, the current-session slot, profile
// updates with role-profile propagation, and administrator moderation of
// accounts.
//
// The session is a signed token naming a user ID, persisted in the
// current_user slot. The canonical User record is re-read on every lookup,
// so a profile update or approval is visible to the session immediately —
// there is no session copy to refresh.
type SessionService struct {
	store       *store.Store
	users       *repository.Users
	technicians *repository.Technicians
	clients     *repository.Clients
	passwords   *auth.PasswordService
	tokens      *auth.TokenService
	logger      *slog.Logger
}

func NewSessionService(
	st *store.Store,
	users *repository.Users,
	technicians *repository.Technicians,
	clients *repository.Clients,
	passwords *auth.PasswordService,
	tokens *auth.TokenService,
	logger *slog.Logger,
) *SessionService {
	return &SessionService{
		store:       st,
		users:       users,
		technicians: technicians,
		clients:     clients,
		passwords:   passwords,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register creates a new account from the submitted form. Required fields
// are re-validated here rather than trusted from the form layer, and email
// uniqueness is checked case-insensitively.
//
// Approval: administrators are approved at creation, everyone else waits
// for an administrator (apperror.ErrPendingApproval gates their login).
//
// Bootstrap rule: the very first user ever stored is promoted to an
// approved Administrator regardless of the requested role, and a session is
// established for them. Callers should treat a returned record with
// IsApproved as an active session and anything else as pending. The
// preferred path for seeding an operator account is EnsureDefaultAdmin at
// startup; the promotion here remains as a safety net when that step was
// skipped.
func (s *SessionService) Register(ctx context.Context, form model.RegisterForm) (model.User, error) {
	var zero model.User

	form.Email = strings.TrimSpace(form.Email)
	form.FirstName = strings.TrimSpace(form.FirstName)
	form.LastName = strings.TrimSpace(form.LastName)
	form.PhoneNumber = strings.TrimSpace(form.PhoneNumber)
	form.Region = strings.TrimSpace(form.Region)

	for field, value := range map[string]string{
		"email":       form.Email,
		"password":    form.Password,
		"firstName":   form.FirstName,
		"lastName":    form.LastName,
		"phoneNumber": form.PhoneNumber,
		"region":      form.Region,
	} {
		if value == "" {
			return zero, apperror.ValidationFailed(field, field+" is required")
		}
	}
	if !form.Role.Valid() {
		return zero, apperror.ValidationFailed("role", "unknown role")
	}

	if _, exists := s.users.ByEmail(ctx, form.Email); exists {
		return zero, apperror.DuplicateEmail()
	}

	hash, err := s.passwords.Hash(form.Password)
	if err != nil {
		return zero, fmt.Errorf("registering user: %w", err)
	}

	user := model.User{
		Email:        form.Email,
		PasswordHash: hash,
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		PhoneNumber:  form.PhoneNumber,
		Region:       form.Region,
		Role:         form.Role,
		CreatedAt:    time.Now(),
		IsApproved:   form.Role == model.RoleAdministrator,
	}

	user, err = s.users.Add(ctx, user)
	if err != nil {
		return zero, fmt.Errorf("registering user: %w", err)
	}

	switch form.Role {
	case model.RoleTechnician:
		// The profile needs specialty and bio; without them it is skipped,
		// leaving a technician user with no profile. That matches the
		// original behaviour — the log line is how anyone ever notices.
		if form.Specialty != "" && form.Bio != "" {
			if _, err := s.technicians.Add(ctx, model.TechnicianProfile{
				ID:              user.ID,
				Specialty:       form.Specialty,
				Bio:             form.Bio,
				PricePerService: form.PricePerService,
				Rating:          0,
			}); err != nil {
				return zero, fmt.Errorf("registering technician profile: %w", err)
			}
		} else {
			s.logger.Warn("technician registered without specialty/bio, profile skipped",
				slog.String("userID", user.ID))
		}
	case model.RoleClient:
		if _, err := s.clients.Add(ctx, model.ClientProfile{ID: user.ID}); err != nil {
			return zero, fmt.Errorf("registering client profile: %w", err)
		}
	}

	// Bootstrap: the first account in an empty store becomes the
	// administrator no matter what was requested.
	if s.users.Count(ctx) == 1 {
		promoted, ok := s.users.Update(ctx, user.ID, map[string]any{
			"role":       model.RoleAdministrator,
			"isApproved": true,
		})
		if !ok {
			return zero, apperror.NotFound("user", user.ID)
		}
		if err := s.establishSession(ctx, promoted.ID); err != nil {
			return zero, err
		}
		s.logger.Info("first user promoted to administrator",
			slog.String("userID", promoted.ID),
			slog.String("email", promoted.Email),
		)
		return promoted, nil
	}

	s.logger.Info("user registered",
		slog.String("userID", user.ID),
		slog.String("role", string(user.Role)),
		slog.Bool("approved", user.IsApproved),
	)
	return user, nil
}

// Login authenticates by case-insensitive email and password. The
// invalid-credentials error is identical whether the email is unknown or
// the password is wrong; only the log distinguishes them. A matching but
// unapproved non-administrator account fails with ErrPendingApproval.
func (s *SessionService) Login(ctx context.Context, creds model.Credentials) (model.User, error) {
	var zero model.User

	user, ok := s.users.ByEmail(ctx, strings.TrimSpace(creds.Email))
	if !ok {
		s.logger.Debug("login failed: unknown email")
		return zero, apperror.InvalidCredentials()
	}
	if err := s.passwords.Verify(user.PasswordHash, creds.Password); err != nil {
		s.logger.Debug("login failed: wrong password", slog.String("userID", user.ID))
		return zero, apperror.InvalidCredentials()
	}

	if !user.IsApproved && user.Role != model.RoleAdministrator {
		return zero, apperror.PendingApproval()
	}

	if err := s.establishSession(ctx, user.ID); err != nil {
		return zero, err
	}

	s.logger.Info("user logged in",
		slog.String("userID", user.ID),
		slog.String("role", string(user.Role)),
	)
	return user, nil
}

// Logout clears the session slot. Logging out while logged out is a no-op.
func (s *SessionService) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, repository.KeyCurrentUser)
}

// CurrentUser returns the authenticated user, or nil when the slot is
// empty, the token is invalid or expired, or the user has since been
// deleted.
func (s *SessionService) CurrentUser(ctx context.Context) *model.User {
	token := store.Get(ctx, s.store, repository.KeyCurrentUser, "")
	if token == "" {
		return nil
	}

	userID, err := s.tokens.Validate(token)
	if err != nil {
		s.logger.Debug("session token rejected", slog.String("error", err.Error()))
		return nil
	}

	user, ok := s.users.ByID(ctx, userID)
	if !ok {
		return nil
	}
	return &user
}

// UpdateCurrentUser shallow-merges patch onto the logged-in user's
// canonical record, then applies the same patch to their technician profile
// when one exists — the second write carries only the keys the profile type
// knows. Client profiles have no patchable fields. The two writes are
// independent; a failure between them leaves the profile behind the
// canonical record.
func (s *SessionService) UpdateCurrentUser(ctx context.Context, patch map[string]any) (model.User, error) {
	var zero model.User

	current := s.CurrentUser(ctx)
	if current == nil {
		return zero, apperror.NoSession()
	}

	updated, ok := s.users.Update(ctx, current.ID, patch)
	if !ok {
		return zero, apperror.NotFound("user", current.ID)
	}

	if updated.Role == model.RoleTechnician {
		if _, ok := s.technicians.Update(ctx, current.ID, patch); !ok {
			s.logger.Warn("technician has no profile, update not propagated",
				slog.String("userID", current.ID))
		}
	}

	s.logger.Info("user updated profile", slog.String("userID", updated.ID))
	return updated, nil
}

// ApproveUser marks the account as approved. Caller is expected to be an
// administrator; the check lives at the gate, not here.
func (s *SessionService) ApproveUser(ctx context.Context, userID string) (model.User, error) {
	updated, ok := s.users.Update(ctx, userID, map[string]any{"isApproved": true})
	if !ok {
		return model.User{}, apperror.NotFound("user", userID)
	}

	s.logger.Info("user approved", slog.String("userID", userID))
	return updated, nil
}

// DeleteUser removes the account and its role profiles, and reports whether
// an account was actually removed. The profiles are swept unconditionally
// so a half-written registration still cleans up.
func (s *SessionService) DeleteUser(ctx context.Context, userID string) bool {
	removed := s.users.Remove(ctx, userID)
	s.technicians.Remove(ctx, userID)
	s.clients.Remove(ctx, userID)

	if removed {
		s.logger.Info("user deleted", slog.String("userID", userID))
	}
	return removed
}

// PendingUsers lists the accounts awaiting approval.
func (s *SessionService) PendingUsers(ctx context.Context) []model.User {
	return s.users.Pending(ctx)
}

// EnsureDefaultAdmin seeds the documented operator account when the users
// collection is empty, so a fresh install can be logged into immediately.
// It reports whether an account was created and is safe to run on every
// startup.
func (s *SessionService) EnsureDefaultAdmin(ctx context.Context, email, password string) (model.User, bool, error) {
	var zero model.User

	if s.users.Count(ctx) > 0 {
		return zero, false, nil
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return zero, false, fmt.Errorf("seeding default admin: %w", err)
	}

	admin, err := s.users.Add(ctx, model.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    "System",
		LastName:     "Administrator",
		PhoneNumber:  "1234567890",
		Region:       "System",
		Role:         model.RoleAdministrator,
		CreatedAt:    time.Now(),
		IsApproved:   true,
	})
	if err != nil {
		return zero, false, fmt.Errorf("seeding default admin: %w", err)
	}

	s.logger.Info("seeded default administrator", slog.String("email", email))
	return admin, true, nil
}

func (s *SessionService) establishSession(ctx context.Context, userID string) error {
	token, err := s.tokens.Generate(userID)
	if err != nil {
		return fmt.Errorf("establishing session: %w", err)
	}
	if err := store.Put(ctx, s.store, repository.KeyCurrentUser, token); err != nil {
		return fmt.Errorf("establishing session: %w", err)
	}
	return nil
}
