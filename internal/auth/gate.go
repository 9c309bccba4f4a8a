package auth

import "github.com/shoofli/shoofli/internal/model"

// Decision is the outcome of an authorization check for a requested view.
type Decision int

const (
	// Allow grants access to the requested view.
	Allow Decision = iota
	// RedirectToLogin means no user is authenticated.
	RedirectToLogin
	// RedirectToDefault means the user is authenticated but lacks a
	// required role; the UI sends them to their default view.
	RedirectToDefault
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "Allow"
	case RedirectToLogin:
		return "RedirectToLogin"
	case RedirectToDefault:
		return "RedirectToDefault"
	default:
		return "Unknown"
	}
}

// Decide is the pure authorization gate: given the current user (nil when
// unauthenticated) and the roles a view requires (none means any
// authenticated user), it returns the navigation decision.
//
// It has no side effects and caches nothing — callers must re-evaluate it
// on every navigation, since the session state can change between checks.
func Decide(user *model.User, requiredRoles ...model.Role) Decision {
	if user == nil {
		return RedirectToLogin
	}
	if len(requiredRoles) == 0 {
		return Allow
	}
	for _, role := range requiredRoles {
		if user.Role == role {
			return Allow
		}
	}
	return RedirectToDefault
}
