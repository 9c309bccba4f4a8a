package model

import "time"

// DemandStatus is the lifecycle state of a service demand.
type DemandStatus string

const (
	DemandPending   DemandStatus = "Pending"
	DemandAccepted  DemandStatus = "Accepted"
	DemandCompleted DemandStatus = "Completed"
	DemandRejected  DemandStatus = "Rejected"
)

// Demand is a client's request for a specific technician's service.
// Legal transitions: Pending → Accepted | Rejected, Accepted → Completed.
type Demand struct {
	ID           string       `json:"id"`
	Description  string       `json:"description"`
	ClientID     string       `json:"clientId"`
	TechnicianID string       `json:"technicianId"`
	Status       DemandStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
}

func (d *Demand) RecordID() string      { return d.ID }
func (d *Demand) SetRecordID(id string) { d.ID = id }
