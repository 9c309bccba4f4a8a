package repository

import (
	"context"
	"sort"

	"github.com/shoofli/shoofli/internal/model"
	"github.com/shoofli/shoofli/internal/store"
)

// Demands is the repository for service demands.
type Demands struct {
	col *store.Collection[model.Demand, *model.Demand]
}

func NewDemands(s *store.Store) *Demands {
	return &Demands{col: store.NewCollection[model.Demand, *model.Demand](s, KeyDemands)}
}

func (r *Demands) Add(ctx context.Context, d model.Demand) (model.Demand, error) {
	return r.col.Add(ctx, d)
}

func (r *Demands) ByID(ctx context.Context, id string) (model.Demand, bool) {
	return r.col.FindByID(ctx, id)
}

// ByClient returns a client's demands, newest first.
func (r *Demands) ByClient(ctx context.Context, clientID string) []model.Demand {
	return sortDemands(r.col.Find(ctx, func(d model.Demand) bool {
		return d.ClientID == clientID
	}))
}

// ByTechnician returns the demands addressed to a technician, newest first.
func (r *Demands) ByTechnician(ctx context.Context, technicianID string) []model.Demand {
	return sortDemands(r.col.Find(ctx, func(d model.Demand) bool {
		return d.TechnicianID == technicianID
	}))
}

// SetStatus patches only the status field. Transition legality is the
// service layer's concern.
func (r *Demands) SetStatus(ctx context.Context, id string, status model.DemandStatus) (model.Demand, bool) {
	return r.col.Update(ctx, id, map[string]any{"status": status})
}

func sortDemands(demands []model.Demand) []model.Demand {
	sort.SliceStable(demands, func(i, j int) bool {
		return demands[i].CreatedAt.After(demands[j].CreatedAt)
	})
	return demands
}
