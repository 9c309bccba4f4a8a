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

const (
	maxPublicationTitleLength = 120
	maxDescriptionLength      = 5000
)

// PublicationService manages the service requests clients post for
// technicians to browse.
type PublicationService struct {
	publications *repository.Publications
	history      *repository.History
	logger       *slog.Logger
}

func NewPublicationService(publications *repository.Publications, history *repository.History, logger *slog.Logger) *PublicationService {
	return &PublicationService{publications: publications, history: history, logger: logger}
}

// Post validates and stores a new publication for the client.
func (s *PublicationService) Post(ctx context.Context, clientID, title, description, imageURL string) (model.Publication, error) {
	var zero model.Publication

	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if clientID == "" {
		return zero, apperror.ValidationFailed("clientId", "a publishing client is required")
	}
	if title == "" {
		return zero, apperror.ValidationFailed("title", "title is required")
	}
	if len(title) > maxPublicationTitleLength {
		return zero, apperror.ValidationFailed("title",
			fmt.Sprintf("title must be %d characters or less", maxPublicationTitleLength))
	}
	if description == "" {
		return zero, apperror.ValidationFailed("description", "description is required")
	}
	if len(description) > maxDescriptionLength {
		return zero, apperror.ValidationFailed("description",
			fmt.Sprintf("description must be %d characters or less", maxDescriptionLength))
	}

	pub, err := s.publications.Add(ctx, model.Publication{
		Title:       title,
		Description: description,
		ImageURL:    strings.TrimSpace(imageURL),
		ClientID:    clientID,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return zero, fmt.Errorf("posting publication: %w", err)
	}

	s.history.Record(ctx, clientID, model.ActionPostedPublication, "Posted publication: "+title)

	s.logger.Info("publication posted",
		slog.String("publicationID", pub.ID),
		slog.String("clientID", clientID),
	)
	return pub, nil
}

// ByID returns one publication.
func (s *PublicationService) ByID(ctx context.Context, id string) (model.Publication, error) {
	pub, ok := s.publications.ByID(ctx, id)
	if !ok {
		return model.Publication{}, apperror.NotFound("publication", id)
	}
	return pub, nil
}

// Recent lists every publication, newest first.
func (s *PublicationService) Recent(ctx context.Context) []model.Publication {
	return s.publications.Recent(ctx)
}

// ByClient lists a client's own publications, newest first.
func (s *PublicationService) ByClient(ctx context.Context, clientID string) []model.Publication {
	return s.publications.ByClient(ctx, clientID)
}

// Delete removes a publication. Used both by the owning client and by
// administrator moderation.
func (s *PublicationService) Delete(ctx context.Context, id string) error {
	if !s.publications.Remove(ctx, id) {
		return apperror.NotFound("publication", id)
	}
	s.logger.Info("publication deleted", slog.String("publicationID", id))
	return nil
}
