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

// CommentService manages comments left on publications and technician
// profiles.
type CommentService struct {
	comments *repository.Comments
	logger   *slog.Logger
}

func NewCommentService(comments *repository.Comments, logger *slog.Logger) *CommentService {
	return &CommentService{comments: comments, logger: logger}
}

// Add attaches a comment to a publication or a technician.
func (s *CommentService) Add(ctx context.Context, authorID, targetID string, targetType model.CommentTarget, content string) (model.Comment, error) {
	var zero model.Comment

	content = strings.TrimSpace(content)
	if authorID == "" {
		return zero, apperror.ValidationFailed("authorId", "an author is required")
	}
	if targetID == "" {
		return zero, apperror.ValidationFailed("targetId", "a target is required")
	}
	if targetType != model.CommentOnPublication && targetType != model.CommentOnTechnician {
		return zero, apperror.ValidationFailed("targetType", "unknown comment target type")
	}
	if content == "" {
		return zero, apperror.ValidationFailed("content", "comment content is required")
	}

	c, err := s.comments.Add(ctx, model.Comment{
		Content:    content,
		AuthorID:   authorID,
		TargetID:   targetID,
		TargetType: targetType,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return zero, fmt.Errorf("adding comment: %w", err)
	}

	s.logger.Info("comment added",
		slog.String("commentID", c.ID),
		slog.String("targetID", targetID),
		slog.String("targetType", string(targetType)),
	)
	return c, nil
}

// ForTarget lists the comments on one publication or technician, newest
// first.
func (s *CommentService) ForTarget(ctx context.Context, targetID string, targetType model.CommentTarget) []model.Comment {
	return s.comments.ForTarget(ctx, targetID, targetType)
}
