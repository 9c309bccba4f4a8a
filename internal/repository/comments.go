package repository

import (
	"context"
	"sort"

	"github.com/shoofli/shoofli/internal/model"
	"github.com/shoofli/shoofli/internal/store"
)

// Comments is the repository for comments on publications and technician
// profiles.
type Comments struct {
	col *store.Collection[model.Comment, *model.Comment]
}

func NewComments(s *store.Store) *Comments {
	return &Comments{col: store.NewCollection[model.Comment, *model.Comment](s, KeyComments)}
}

func (r *Comments) Add(ctx context.Context, c model.Comment) (model.Comment, error) {
	return r.col.Add(ctx, c)
}

// ForTarget returns the comments attached to one publication or technician,
// newest first.
func (r *Comments) ForTarget(ctx context.Context, targetID string, targetType model.CommentTarget) []model.Comment {
	cs := r.col.Find(ctx, func(c model.Comment) bool {
		return c.TargetID == targetID && c.TargetType == targetType
	})
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].CreatedAt.After(cs[j].CreatedAt)
	})
	return cs
}

func (r *Comments) Remove(ctx context.Context, id string) bool {
	return r.col.Remove(ctx, id)
}
