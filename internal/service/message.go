package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shoofli/shoofli/internal/apperror"
	"github.com/shoofli/shoofli/internal/model"
	"github.com/shoofli/shoofli/internal/repository"
)

// MessageService manages direct messages between users.
type MessageService struct {
	messages      *repository.Messages
	users         *repository.Users
	notifications *NotificationService
	history       *repository.History
	logger        *slog.Logger
}

func NewMessageService(
	messages *repository.Messages,
	users *repository.Users,
	notifications *NotificationService,
	history *repository.History,
	logger *slog.Logger,
) *MessageService {
	return &MessageService{
		messages:      messages,
		users:         users,
		notifications: notifications,
		history:       history,
		logger:        logger,
	}
}

// Send stores a message and notifies the receiver.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID, content string) (model.Message, error) {
	var zero model.Message

	content = strings.TrimSpace(content)
	if senderID == "" {
		return zero, apperror.ValidationFailed("senderId", "a sender is required")
	}
	if receiverID == "" {
		return zero, apperror.ValidationFailed("receiverId", "a receiver is required")
	}
	if senderID == receiverID {
		return zero, apperror.ValidationFailed("receiverId", "cannot message yourself")
	}
	if content == "" {
		return zero, apperror.ValidationFailed("content", "message content is required")
	}
	if _, ok := s.users.ByID(ctx, receiverID); !ok {
		return zero, apperror.NotFound("user", receiverID)
	}

	msg, err := s.messages.Add(ctx, model.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  time.Now(),
		IsRead:     false,
	})
	if err != nil {
		return zero, fmt.Errorf("sending message: %w", err)
	}

	s.notifications.Notify(ctx, receiverID, model.NotificationMessage,
		"You have received a new message")
	s.history.Record(ctx, senderID, model.ActionSentMessage, "Sent a message")

	s.logger.Info("message sent",
		slog.String("messageID", msg.ID),
		slog.String("senderID", senderID),
		slog.String("receiverID", receiverID),
	)
	return msg, nil
}

// Conversation returns the thread between two users, oldest first.
func (s *MessageService) Conversation(ctx context.Context, userA, userB string) []model.Message {
	return s.messages.Conversation(ctx, userA, userB)
}

// Contacts returns the users the given user has exchanged messages with,
// in first-contact order. Contacts whose account was deleted are skipped.
func (s *MessageService) Contacts(ctx context.Context, userID string) []model.User {
	var contacts []model.User
	for _, id := range s.messages.ContactIDs(ctx, userID) {
		if u, ok := s.users.ByID(ctx, id); ok {
			contacts = append(contacts, u)
		}
	}
	return contacts
}

// MarkConversationRead marks everything the contact sent to the reader as
// read; called when the reader opens the thread.
func (s *MessageService) MarkConversationRead(ctx context.Context, readerID, contactID string) {
	s.messages.MarkConversationRead(ctx, readerID, contactID)
}

// UnreadCount counts unread messages addressed to the user.
func (s *MessageService) UnreadCount(ctx context.Context, userID string) int {
	return s.messages.UnreadCount(ctx, userID)
}
