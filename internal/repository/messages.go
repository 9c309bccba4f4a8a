package repository

import (
	"context"
	"sort"

	"github.com/shoofli/shoofli/internal/model"
	"github.com/shoofli/shoofli/internal/store"
)

// Messages is the repository for direct messages.
type Messages struct {
	col *store.Collection[model.Message, *model.Message]
}

func NewMessages(s *store.Store) *Messages {
	return &Messages{col: store.NewCollection[model.Message, *model.Message](s, KeyMessages)}
}

func (r *Messages) Add(ctx context.Context, m model.Message) (model.Message, error) {
	return r.col.Add(ctx, m)
}

// Conversation returns every message exchanged between two users, oldest
// first, the order a thread renders in.
func (r *Messages) Conversation(ctx context.Context, userA, userB string) []model.Message {
	msgs := r.col.Find(ctx, func(m model.Message) bool {
		return (m.SenderID == userA && m.ReceiverID == userB) ||
			(m.SenderID == userB && m.ReceiverID == userA)
	})
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Timestamp.Before(msgs[j].Timestamp)
	})
	return msgs
}

// ContactIDs returns the IDs of everyone the user has exchanged messages
// with, in first-contact order.
func (r *Messages) ContactIDs(ctx context.Context, userID string) []string {
	seen := map[string]bool{}
	var contacts []string
	for _, m := range r.col.All(ctx) {
		var other string
		switch userID {
		case m.SenderID:
			other = m.ReceiverID
		case m.ReceiverID:
			other = m.SenderID
		default:
			continue
		}
		if !seen[other] {
			seen[other] = true
			contacts = append(contacts, other)
		}
	}
	return contacts
}

// MarkConversationRead flags every message sent by senderID to readerID as
// read.
func (r *Messages) MarkConversationRead(ctx context.Context, readerID, senderID string) {
	for _, m := range r.col.All(ctx) {
		if m.SenderID == senderID && m.ReceiverID == readerID && !m.IsRead {
			r.col.Update(ctx, m.ID, map[string]any{"isRead": true})
		}
	}
}

// UnreadCount counts messages addressed to the user that are still unread.
func (r *Messages) UnreadCount(ctx context.Context, userID string) int {
	return len(r.col.Find(ctx, func(m model.Message) bool {
		return m.ReceiverID == userID && !m.IsRead
	}))
}
