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

// NotificationService manages in-app notifications. Other services call
// Notify as a fan-out side effect of their own mutations; consumers poll
// ByUser/UnreadCount after each navigation.
type NotificationService struct {
	notifications *repository.Notifications
	logger        *slog.Logger
}

func NewNotificationService(notifications *repository.Notifications, logger *slog.Logger) *NotificationService {
	return &NotificationService{notifications: notifications, logger: logger}
}

// Notify creates an unread notification for the target user.
func (s *NotificationService) Notify(ctx context.Context, userID string, kind model.NotificationType, content string) (model.Notification, error) {
	var zero model.Notification

	if strings.TrimSpace(userID) == "" {
		return zero, apperror.ValidationFailed("userId", "a target user is required")
	}
	if strings.TrimSpace(content) == "" {
		return zero, apperror.ValidationFailed("content", "notification content is required")
	}

	n, err := s.notifications.Add(ctx, model.Notification{
		UserID:    userID,
		Type:      kind,
		Content:   content,
		IsRead:    false,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return zero, fmt.Errorf("creating notification: %w", err)
	}
	return n, nil
}

// ByUser returns the user's notifications, newest first.
func (s *NotificationService) ByUser(ctx context.Context, userID string) []model.Notification {
	return s.notifications.ByUser(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) int {
	return s.notifications.UnreadCount(ctx, userID)
}

// MarkRead flags one notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	if !s.notifications.MarkRead(ctx, id) {
		return apperror.NotFound("notification", id)
	}
	return nil
}

// MarkAllRead flags all of the user's notifications as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) {
	s.notifications.MarkAllRead(ctx, userID)
}

// Clear removes all of the user's notifications.
func (s *NotificationService) Clear(ctx context.Context, userID string) {
	s.notifications.ClearForUser(ctx, userID)
}
