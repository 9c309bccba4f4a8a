package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shoofli/shoofli/internal/apperror"
	"github.com/shoofli/shoofli/internal/model"
	"github.com/shoofli/shoofli/internal/repository"
)

// AvailabilityService manages technician calendar slots and their booking
// state. Last-writer-wins applies to bookings like everything else; the
// conflict check here guards the common case, not a race.
type AvailabilityService struct {
	availability *repository.Availability
	logger       *slog.Logger
}

func NewAvailabilityService(availability *repository.Availability, logger *slog.Logger) *AvailabilityService {
	return &AvailabilityService{availability: availability, logger: logger}
}

// AddSlot creates an open slot for the technician. Date and times are the
// ISO-shaped strings the calendar supplies; the end must be after the
// start.
func (s *AvailabilityService) AddSlot(ctx context.Context, technicianID, date, startTime, endTime string) (model.Availability, error) {
	var zero model.Availability

	if technicianID == "" {
		return zero, apperror.ValidationFailed("technicianId", "a technician is required")
	}
	if strings.TrimSpace(date) == "" {
		return zero, apperror.ValidationFailed("date", "date is required")
	}
	if startTime == "" || endTime == "" {
		return zero, apperror.ValidationFailed("startTime", "start and end times are required")
	}
	if endTime <= startTime {
		return zero, apperror.ValidationFailed("endTime", "end time must be after start time")
	}

	slot, err := s.availability.Add(ctx, model.Availability{
		TechnicianID: technicianID,
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		IsBooked:     false,
	})
	if err != nil {
		return zero, fmt.Errorf("adding availability slot: %w", err)
	}

	s.logger.Info("availability slot added",
		slog.String("slotID", slot.ID),
		slog.String("technicianID", technicianID),
	)
	return slot, nil
}

// RemoveSlot deletes a slot from the technician's calendar.
func (s *AvailabilityService) RemoveSlot(ctx context.Context, id string) error {
	if !s.availability.Remove(ctx, id) {
		return apperror.NotFound("availability slot", id)
	}
	return nil
}

// Book marks an open slot as booked; booking an already-booked slot fails
// validation.
func (s *AvailabilityService) Book(ctx context.Context, id string) (model.Availability, error) {
	var zero model.Availability

	slot, ok := s.availability.ByID(ctx, id)
	if !ok {
		return zero, apperror.NotFound("availability slot", id)
	}
	if slot.IsBooked {
		return zero, apperror.ValidationFailed("slot", "this slot is already booked")
	}

	updated, ok := s.availability.SetBooked(ctx, id, true)
	if !ok {
		return zero, apperror.NotFound("availability slot", id)
	}

	s.logger.Info("availability slot booked", slog.String("slotID", id))
	return updated, nil
}

// ByTechnician lists all of a technician's slots in calendar order.
func (s *AvailabilityService) ByTechnician(ctx context.Context, technicianID string) []model.Availability {
	return s.availability.ByTechnician(ctx, technicianID)
}

// OpenSlots lists only the technician's unbooked slots, in calendar order.
func (s *AvailabilityService) OpenSlots(ctx context.Context, technicianID string) []model.Availability {
	slots := s.availability.ByTechnician(ctx, technicianID)
	open := slots[:0]
	for _, slot := range slots {
		if !slot.IsBooked {
			open = append(open, slot)
		}
	}
	return open
}
