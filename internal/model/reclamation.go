package model

import "time"

// ReclamationStatus is the moderation state of a complaint.
type ReclamationStatus string

const (
	ReclamationPending  ReclamationStatus = "Pending"
	ReclamationResolved ReclamationStatus = "Resolved"
	ReclamationRejected ReclamationStatus = "Rejected"
)

// Reclamation is a complaint filed by one user against another, handled by
// an administrator.
type Reclamation struct {
	ID           string            `json:"id"`
	AuthorID     string            `json:"authorId"`
	Description  string            `json:"description"`
	TargetUserID string            `json:"targetUserId"`
	CreatedAt    time.Time         `json:"createdAt"`
	Status       ReclamationStatus `json:"status"`
}

func (r *Reclamation) RecordID() string      { return r.ID }
func (r *Reclamation) SetRecordID(id string) { r.ID = id }
