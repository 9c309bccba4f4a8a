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

// CatalogService covers the browseable side of the marketplace: the
// technician directory (composed user + profile + availability views) and
// each technician's service offerings.
type CatalogService struct {
	users        *repository.Users
	technicians  *repository.Technicians
	availability *repository.Availability
	services     *repository.Services
	logger       *slog.Logger
}

func NewCatalogService(
	users *repository.Users,
	technicians *repository.Technicians,
	availability *repository.Availability,
	services *repository.Services,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		users:        users,
		technicians:  technicians,
		availability: availability,
		services:     services,
		logger:       logger,
	}
}

// Technicians returns the directory of approved technicians as composed
// views. Users whose technician profile was never written (registration
// without specialty/bio) do not appear — they are invisible to clients
// until an administrator repairs the profile.
func (s *CatalogService) Technicians(ctx context.Context) []model.Technician {
	var out []model.Technician
	for _, profile := range s.technicians.All(ctx) {
		user, ok := s.users.ByID(ctx, profile.ID)
		if !ok || !user.IsApproved {
			continue
		}
		out = append(out, model.Technician{
			ID:                user.ID,
			User:              user,
			TechnicianProfile: profile,
			Availability:      s.availability.ByTechnician(ctx, profile.ID),
		})
	}
	return out
}

// TechnicianByID returns one composed technician view.
func (s *CatalogService) TechnicianByID(ctx context.Context, userID string) (model.Technician, error) {
	var zero model.Technician

	profile, ok := s.technicians.ByUser(ctx, userID)
	if !ok {
		return zero, apperror.NotFound("technician", userID)
	}
	user, ok := s.users.ByID(ctx, userID)
	if !ok {
		return zero, apperror.NotFound("technician", userID)
	}

	return model.Technician{
		ID:                user.ID,
		User:              user,
		TechnicianProfile: profile,
		Availability:      s.availability.ByTechnician(ctx, userID),
	}, nil
}

// CreateService lists a new offering in the technician's catalog.
func (s *CatalogService) CreateService(ctx context.Context, technicianID, title, description string, price float64) (model.Service, error) {
	var zero model.Service

	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if technicianID == "" {
		return zero, apperror.ValidationFailed("technicianId", "a technician is required")
	}
	if title == "" {
		return zero, apperror.ValidationFailed("title", "title is required")
	}
	if description == "" {
		return zero, apperror.ValidationFailed("description", "description is required")
	}
	if price <= 0 {
		return zero, apperror.ValidationFailed("price", "price must be positive")
	}

	svc, err := s.services.Add(ctx, model.Service{
		Title:        title,
		Description:  description,
		Price:        price,
		TechnicianID: technicianID,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return zero, fmt.Errorf("creating service: %w", err)
	}

	s.logger.Info("service created",
		slog.String("serviceID", svc.ID),
		slog.String("technicianID", technicianID),
	)
	return svc, nil
}

// UpdateService patches an offering's title, description, or price.
func (s *CatalogService) UpdateService(ctx context.Context, id string, patch map[string]any) (model.Service, error) {
	if price, ok := patch["price"].(float64); ok && price <= 0 {
		return model.Service{}, apperror.ValidationFailed("price", "price must be positive")
	}

	updated, ok := s.services.Update(ctx, id, patch)
	if !ok {
		return model.Service{}, apperror.NotFound("service", id)
	}
	return updated, nil
}

// DeleteService removes an offering from the catalog.
func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	if !s.services.Remove(ctx, id) {
		return apperror.NotFound("service", id)
	}
	return nil
}

// ServicesOf lists a technician's offerings.
func (s *CatalogService) ServicesOf(ctx context.Context, technicianID string) []model.Service {
	return s.services.ByTechnician(ctx, technicianID)
}
