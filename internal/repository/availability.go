package repository

import (
	"context"
	"sort"

	"github.com/shoofli/shoofli/internal/model"
	"github.com/shoofli/shoofli/internal/store"
)

// Availability is the repository for technician time slots.
type Availability struct {
	col *store.Collection[model.Availability, *model.Availability]
}

func NewAvailability(s *store.Store) *Availability {
	return &Availability{col: store.NewCollection[model.Availability, *model.Availability](s, KeyAvailability)}
}

func (r *Availability) Add(ctx context.Context, a model.Availability) (model.Availability, error) {
	return r.col.Add(ctx, a)
}

func (r *Availability) ByID(ctx context.Context, id string) (model.Availability, bool) {
	return r.col.FindByID(ctx, id)
}

// ByTechnician returns a technician's slots ordered by date then start
// time. The date/time strings are ISO-shaped, so lexical order is
// chronological order.
func (r *Availability) ByTechnician(ctx context.Context, technicianID string) []model.Availability {
	slots := r.col.Find(ctx, func(a model.Availability) bool {
		return a.TechnicianID == technicianID
	})
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		return slots[i].StartTime < slots[j].StartTime
	})
	return slots
}

// SetBooked patches only the isBooked flag.
func (r *Availability) SetBooked(ctx context.Context, id string, booked bool) (model.Availability, bool) {
	return r.col.Update(ctx, id, map[string]any{"isBooked": booked})
}

func (r *Availability) Remove(ctx context.Context, id string) bool {
	return r.col.Remove(ctx, id)
}
