package repository

import (
	"context"

	"github.com/shoofli/shoofli/internal/model"
	"github.com/shoofli/shoofli/internal/store"
)

// Reclamations is the repository for user complaints.
type Reclamations struct {
	col *store.Collection[model.Reclamation, *model.Reclamation]
}

func NewReclamations(s *store.Store) *Reclamations {
	return &Reclamations{col: store.NewCollection[model.Reclamation, *model.Reclamation](s, KeyReclamations)}
}

func (r *Reclamations) Add(ctx context.Context, rec model.Reclamation) (model.Reclamation, error) {
	return r.col.Add(ctx, rec)
}

func (r *Reclamations) ByID(ctx context.Context, id string) (model.Reclamation, bool) {
	return r.col.FindByID(ctx, id)
}

// Pending returns the complaints an administrator has yet to handle, in
// filing order.
func (r *Reclamations) Pending(ctx context.Context) []model.Reclamation {
	return r.col.Find(ctx, func(rec model.Reclamation) bool {
		return rec.Status == model.ReclamationPending
	})
}

// SetStatus patches only the status field.
func (r *Reclamations) SetStatus(ctx context.Context, id string, status model.ReclamationStatus) (model.Reclamation, bool) {
	return r.col.Update(ctx, id, map[string]any{"status": status})
}
