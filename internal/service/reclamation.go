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

// ReclamationService manages complaints users file against each other and
// the administrator workflow that resolves them.
type ReclamationService struct {
	reclamations  *repository.Reclamations
	notifications *NotificationService
	logger        *slog.Logger
}

func NewReclamationService(
	reclamations *repository.Reclamations,
	notifications *NotificationService,
	logger *slog.Logger,
) *ReclamationService {
	return &ReclamationService{
		reclamations:  reclamations,
		notifications: notifications,
		logger:        logger,
	}
}

// File records a new Pending complaint.
func (s *ReclamationService) File(ctx context.Context, authorID, targetUserID, description string) (model.Reclamation, error) {
	var zero model.Reclamation

	description = strings.TrimSpace(description)
	if authorID == "" {
		return zero, apperror.ValidationFailed("authorId", "an author is required")
	}
	if targetUserID == "" {
		return zero, apperror.ValidationFailed("targetUserId", "a target user is required")
	}
	if description == "" {
		return zero, apperror.ValidationFailed("description", "description is required")
	}

	rec, err := s.reclamations.Add(ctx, model.Reclamation{
		AuthorID:     authorID,
		Description:  description,
		TargetUserID: targetUserID,
		Status:       model.ReclamationPending,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return zero, fmt.Errorf("filing reclamation: %w", err)
	}

	s.logger.Info("reclamation filed",
		slog.String("reclamationID", rec.ID),
		slog.String("targetUserID", targetUserID),
	)
	return rec, nil
}

// Pending lists unresolved complaints in filing order.
func (s *ReclamationService) Pending(ctx context.Context) []model.Reclamation {
	return s.reclamations.Pending(ctx)
}

// Resolve closes a pending complaint as Resolved or Rejected. When a
// complaint is upheld, the user it targets is notified of the blame.
func (s *ReclamationService) Resolve(ctx context.Context, id string, status model.ReclamationStatus) (model.Reclamation, error) {
	var zero model.Reclamation

	if status != model.ReclamationResolved && status != model.ReclamationRejected {
		return zero, apperror.ValidationFailed("status", "a reclamation can only be Resolved or Rejected")
	}

	rec, ok := s.reclamations.ByID(ctx, id)
	if !ok {
		return zero, apperror.NotFound("reclamation", id)
	}
	if rec.Status != model.ReclamationPending {
		return zero, apperror.ValidationFailed("status", "reclamation is already handled")
	}

	updated, ok := s.reclamations.SetStatus(ctx, id, status)
	if !ok {
		return zero, apperror.NotFound("reclamation", id)
	}

	if status == model.ReclamationResolved {
		s.notifications.Notify(ctx, rec.TargetUserID, model.NotificationBlame,
			"A complaint against you has been upheld by an administrator")
	}

	s.logger.Info("reclamation handled",
		slog.String("reclamationID", id),
		slog.String("status", string(status)),
	)
	return updated, nil
}
