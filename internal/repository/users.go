package repository

import (
	"context"
	"strings"

	"github.com/shoofli/shoofli/internal/model"
	"github.com/shoofli/shoofli/internal/store"
)

// Users is the repository for the canonical user records.
type Users struct {
	col *store.Collection[model.User, *model.User]
}

func NewUsers(s *store.Store) *Users {
	return &Users{col: store.NewCollection[model.User, *model.User](s, KeyUsers)}
}

func (r *Users) Add(ctx context.Context, u model.User) (model.User, error) {
	return r.col.Add(ctx, u)
}

func (r *Users) ByID(ctx context.Context, id string) (model.User, bool) {
	return r.col.FindByID(ctx, id)
}

// ByEmail matches case-insensitively; email uniqueness is enforced at
// registration with this same comparison.
func (r *Users) ByEmail(ctx context.Context, email string) (model.User, bool) {
	for _, u := range r.col.All(ctx) {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return model.User{}, false
}

func (r *Users) All(ctx context.Context) []model.User {
	return r.col.All(ctx)
}

func (r *Users) Count(ctx context.Context) int {
	return len(r.col.All(ctx))
}

func (r *Users) Update(ctx context.Context, id string, patch map[string]any) (model.User, bool) {
	return r.col.Update(ctx, id, patch)
}

func (r *Users) Remove(ctx context.Context, id string) bool {
	return r.col.Remove(ctx, id)
}

// Pending returns the users awaiting administrator approval.
// Administrators are never pending — they are approved at creation.
func (r *Users) Pending(ctx context.Context) []model.User {
	return r.col.Find(ctx, func(u model.User) bool {
		return !u.IsApproved && u.Role != model.RoleAdministrator
	})
}
