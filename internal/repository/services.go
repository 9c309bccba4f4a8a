package repository

import (
	"context"

	"github.com/shoofli/shoofli/internal/model"
	"github.com/shoofli/shoofli/internal/store"
)

// Services is the repository for technician catalog offerings.
type Services struct {
	col *store.Collection[model.Service, *model.Service]
}

func NewServices(s *store.Store) *Services {
	return &Services{col: store.NewCollection[model.Service, *model.Service](s, KeyServices)}
}

func (r *Services) Add(ctx context.Context, svc model.Service) (model.Service, error) {
	return r.col.Add(ctx, svc)
}

func (r *Services) ByID(ctx context.Context, id string) (model.Service, bool) {
	return r.col.FindByID(ctx, id)
}

// ByTechnician returns a technician's offerings in listing order.
func (r *Services) ByTechnician(ctx context.Context, technicianID string) []model.Service {
	return r.col.Find(ctx, func(svc model.Service) bool {
		return svc.TechnicianID == technicianID
	})
}

func (r *Services) Update(ctx context.Context, id string, patch map[string]any) (model.Service, bool) {
	return r.col.Update(ctx, id, patch)
}

func (r *Services) Remove(ctx context.Context, id string) bool {
	return r.col.Remove(ctx, id)
}
