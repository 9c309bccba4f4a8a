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

// DemandService manages service demands and their status lifecycle, and
// notifies the counterpart on every transition.
type DemandService struct {
	demands       *repository.Demands
	notifications *NotificationService
	history       *repository.History
	logger        *slog.Logger
}

func NewDemandService(
	demands *repository.Demands,
	notifications *NotificationService,
	history *repository.History,
	logger *slog.Logger,
) *DemandService {
	return &DemandService{
		demands:       demands,
		notifications: notifications,
		history:       history,
		logger:        logger,
	}
}

// Create files a new Pending demand from a client to a technician and
// notifies the technician.
func (s *DemandService) Create(ctx context.Context, clientID, technicianID, description string) (model.Demand, error) {
	var zero model.Demand

	description = strings.TrimSpace(description)
	if clientID == "" {
		return zero, apperror.ValidationFailed("clientId", "a requesting client is required")
	}
	if technicianID == "" {
		return zero, apperror.ValidationFailed("technicianId", "a technician is required")
	}
	if description == "" {
		return zero, apperror.ValidationFailed("description", "description is required")
	}

	demand, err := s.demands.Add(ctx, model.Demand{
		Description:  description,
		ClientID:     clientID,
		TechnicianID: technicianID,
		Status:       model.DemandPending,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return zero, fmt.Errorf("creating demand: %w", err)
	}

	s.notifications.Notify(ctx, technicianID, model.NotificationDemand,
		"You have received a new service demand")
	s.history.Record(ctx, clientID, model.ActionRequestedService, "Requested service: "+description)

	s.logger.Info("demand created",
		slog.String("demandID", demand.ID),
		slog.String("clientID", clientID),
		slog.String("technicianID", technicianID),
	)
	return demand, nil
}

// legalTransitions maps a demand status to the statuses it may move to.
// Rejected and Completed are terminal.
var legalTransitions = map[model.DemandStatus][]model.DemandStatus{
	model.DemandPending:  {model.DemandAccepted, model.DemandRejected},
	model.DemandAccepted: {model.DemandCompleted},
}

// SetStatus moves a demand through its lifecycle and notifies the client
// of the outcome. Illegal transitions fail validation.
func (s *DemandService) SetStatus(ctx context.Context, id string, status model.DemandStatus) (model.Demand, error) {
	var zero model.Demand

	demand, ok := s.demands.ByID(ctx, id)
	if !ok {
		return zero, apperror.NotFound("demand", id)
	}

	allowed := false
	for _, next := range legalTransitions[demand.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return zero, apperror.ValidationFailed("status",
			fmt.Sprintf("cannot move a %s demand to %s", demand.Status, status))
	}

	updated, ok := s.demands.SetStatus(ctx, id, status)
	if !ok {
		return zero, apperror.NotFound("demand", id)
	}

	s.notifications.Notify(ctx, demand.ClientID, model.NotificationDemand,
		fmt.Sprintf("Your demand has been %s", strings.ToLower(string(status))))
	if status == model.DemandCompleted {
		s.history.Record(ctx, demand.TechnicianID, model.ActionCompletedService,
			"Completed service: "+demand.Description)
	}

	s.logger.Info("demand status changed",
		slog.String("demandID", id),
		slog.String("from", string(demand.Status)),
		slog.String("to", string(status)),
	)
	return updated, nil
}

// ByClient lists a client's demands, newest first.
func (s *DemandService) ByClient(ctx context.Context, clientID string) []model.Demand {
	return s.demands.ByClient(ctx, clientID)
}

// ByTechnician lists the demands addressed to a technician, newest first.
func (s *DemandService) ByTechnician(ctx context.Context, technicianID string) []model.Demand {
	return s.demands.ByTechnician(ctx, technicianID)
}
