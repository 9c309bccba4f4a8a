package repository

import (
	"context"
	"sort"
	"time"

	"github.com/shoofli/shoofli/internal/model"
	"github.com/shoofli/shoofli/internal/store"
)

// History is the append-only repository of user action entries. Entries are
// written as a side effect of domain operations and never mutated.
type History struct {
	col *store.Collection[model.History, *model.History]
}

func NewHistory(s *store.Store) *History {
	return &History{col: store.NewCollection[model.History, *model.History](s, KeyHistory)}
}

// Record appends an entry stamped with the current time.
func (r *History) Record(ctx context.Context, userID string, action model.ActionType, description string) (model.History, error) {
	return r.col.Add(ctx, model.History{
		UserID:      userID,
		ActionType:  action,
		Description: description,
		Date:        time.Now(),
	})
}

// ByUser returns a user's history, newest first.
func (r *History) ByUser(ctx context.Context, userID string) []model.History {
	entries := r.col.Find(ctx, func(h model.History) bool {
		return h.UserID == userID
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries
}
