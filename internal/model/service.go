package model

import "time"

// Service is an offering a technician lists in their catalog.
type Service struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	TechnicianID string    `json:"technicianId"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (s *Service) RecordID() string      { return s.ID }
func (s *Service) SetRecordID(id string) { s.ID = id }
