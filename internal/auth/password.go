// Package auth provides password hashing, session token signing, and the
// role-based authorization gate.
//
// The original system "encoded" passwords with a reversible base64
// transform and shipped it as a placeholder. That is a known defect, not a
// behaviour to preserve: this implementation uses bcrypt, a deliberately
// slow salted hash. bcrypt output is self-contained — the salt and cost
// are embedded in the stored string, so verification needs no extra state.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// defaultCost is the bcrypt work factor. Cost 12 takes roughly 250ms on a
// modern machine — negligible at login, brutal for brute force.
const defaultCost = 12

// PasswordService provides bcrypt hashing and verification. The cost is a
// struct field (rather than a package constant used directly) so tests can
// inject bcrypt.MinCost and skip the ~250ms per hash.
type PasswordService struct {
	cost int
}

// NewPasswordService creates a PasswordService with the given cost; pass 0
// for the default. Costs below bcrypt's minimum are raised to the default.
func NewPasswordService(cost int) *PasswordService {
	if cost < bcrypt.MinCost {
		cost = defaultCost
	}
	return &PasswordService{cost: cost}
}

// Hash hashes the plaintext password with bcrypt. The result is an opaque
// string stored directly on the User record.
//
// Returns an error for plaintexts over 72 bytes — bcrypt silently truncates
// beyond that, and we'd rather reject than surprise.
func (p *PasswordService) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", fmt.Errorf("auth: password must be 72 bytes or fewer")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. bcrypt's
// comparison is constant-time.
func (p *PasswordService) Verify(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return fmt.Errorf("auth: invalid password")
		}
		return fmt.Errorf("auth: comparing password hash: %w", err)
	}
	return nil
}
