package repository

import (
	"context"

	"github.com/shoofli/shoofli/internal/model"
	"github.com/shoofli/shoofli/internal/store"
)

// Technicians is the repository for technician profiles. A profile's ID is
// the owning user's ID — the profile is the composition-style replacement
// for the original's full mirrored user copy, so only technician-specific
// fields live here and there is nothing to keep in sync with the canonical
// record.
type Technicians struct {
	col *store.Collection[model.TechnicianProfile, *model.TechnicianProfile]
}

func NewTechnicians(s *store.Store) *Technicians {
	return &Technicians{col: store.NewCollection[model.TechnicianProfile, *model.TechnicianProfile](s, KeyTechnicians)}
}

func (r *Technicians) Add(ctx context.Context, p model.TechnicianProfile) (model.TechnicianProfile, error) {
	return r.col.Add(ctx, p)
}

func (r *Technicians) ByUser(ctx context.Context, userID string) (model.TechnicianProfile, bool) {
	return r.col.FindByID(ctx, userID)
}

func (r *Technicians) All(ctx context.Context) []model.TechnicianProfile {
	return r.col.All(ctx)
}

func (r *Technicians) Update(ctx context.Context, userID string, patch map[string]any) (model.TechnicianProfile, bool) {
	return r.col.Update(ctx, userID, patch)
}

func (r *Technicians) Remove(ctx context.Context, userID string) bool {
	return r.col.Remove(ctx, userID)
}

// Clients is the repository for client profiles, keyed by user ID like
// Technicians. The profile carries no fields today; its presence is what
// the clients collection records.
type Clients struct {
	col *store.Collection[model.ClientProfile, *model.ClientProfile]
}

func NewClients(s *store.Store) *Clients {
	return &Clients{col: store.NewCollection[model.ClientProfile, *model.ClientProfile](s, KeyClients)}
}

func (r *Clients) Add(ctx context.Context, p model.ClientProfile) (model.ClientProfile, error) {
	return r.col.Add(ctx, p)
}

func (r *Clients) ByUser(ctx context.Context, userID string) (model.ClientProfile, bool) {
	return r.col.FindByID(ctx, userID)
}

func (r *Clients) Remove(ctx context.Context, userID string) bool {
	return r.col.Remove(ctx, userID)
}
