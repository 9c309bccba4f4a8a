package repository

import (
	"context"
	"sort"

	"github.com/shoofli/shoofli/internal/model"
	"github.com/shoofli/shoofli/internal/store"
)

// Notifications is the repository for in-app notifications.
type Notifications struct {
	col *store.Collection[model.Notification, *model.Notification]
}

func NewNotifications(s *store.Store) *Notifications {
	return &Notifications{col: store.NewCollection[model.Notification, *model.Notification](s, KeyNotifications)}
}

func (r *Notifications) Add(ctx context.Context, n model.Notification) (model.Notification, error) {
	return r.col.Add(ctx, n)
}

// ByUser returns a user's notifications, newest first.
func (r *Notifications) ByUser(ctx context.Context, userID string) []model.Notification {
	ns := r.col.Find(ctx, func(n model.Notification) bool {
		return n.UserID == userID
	})
	sort.SliceStable(ns, func(i, j int) bool {
		return ns[i].CreatedAt.After(ns[j].CreatedAt)
	})
	return ns
}

func (r *Notifications) UnreadCount(ctx context.Context, userID string) int {
	return len(r.col.Find(ctx, func(n model.Notification) bool {
		return n.UserID == userID && !n.IsRead
	}))
}

// MarkRead flags one notification as read; reports whether it existed.
func (r *Notifications) MarkRead(ctx context.Context, id string) bool {
	_, ok := r.col.Update(ctx, id, map[string]any{"isRead": true})
	return ok
}

// MarkAllRead flags every unread notification for the user as read.
func (r *Notifications) MarkAllRead(ctx context.Context, userID string) {
	all := r.col.All(ctx)
	changed := false
	for i := range all {
		if all[i].UserID == userID && !all[i].IsRead {
			all[i].IsRead = true
			changed = true
		}
	}
	if changed {
		r.col.Replace(ctx, all)
	}
}

// ClearForUser removes all of the user's notifications.
func (r *Notifications) ClearForUser(ctx context.Context, userID string) {
	kept := r.col.Find(ctx, func(n model.Notification) bool {
		return n.UserID != userID
	})
	r.col.Replace(ctx, kept)
}
