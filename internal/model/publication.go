package model

import "time"

// Publication is a service request posted by a client for technicians to
// browse.
type Publication struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	ClientID    string    `json:"clientId"`
}

func (p *Publication) RecordID() string      { return p.ID }
func (p *Publication) SetRecordID(id string) { p.ID = id }
