package repository

import (
	"context"
	"sort"

	"github.com/shoofli/shoofli/internal/model"
	"github.com/shoofli/shoofli/internal/store"
)

// Publications is the repository for client service requests.
type Publications struct {
	col *store.Collection[model.Publication, *model.Publication]
}

func NewPublications(s *store.Store) *Publications {
	return &Publications{col: store.NewCollection[model.Publication, *model.Publication](s, KeyPublications)}
}

func (r *Publications) Add(ctx context.Context, p model.Publication) (model.Publication, error) {
	return r.col.Add(ctx, p)
}

func (r *Publications) ByID(ctx context.Context, id string) (model.Publication, bool) {
	return r.col.FindByID(ctx, id)
}

// Recent returns every publication, newest first.
func (r *Publications) Recent(ctx context.Context) []model.Publication {
	return newestFirst(r.col.All(ctx))
}

// ByClient returns a client's publications, newest first.
func (r *Publications) ByClient(ctx context.Context, clientID string) []model.Publication {
	return newestFirst(r.col.Find(ctx, func(p model.Publication) bool {
		return p.ClientID == clientID
	}))
}

func (r *Publications) Remove(ctx context.Context, id string) bool {
	return r.col.Remove(ctx, id)
}

func newestFirst(pubs []model.Publication) []model.Publication {
	sort.SliceStable(pubs, func(i, j int) bool {
		return pubs[i].CreatedAt.After(pubs[j].CreatedAt)
	})
	return pubs
}
