package model

import "time"

// ActionType labels a history entry.
type ActionType string

const (
	ActionSentMessage       ActionType = "Sent Message"
	ActionPostedPublication ActionType = "Posted Publication"
	ActionRequestedService  ActionType = "Requested Service"
	ActionCompletedService  ActionType = "Completed Service"
)

// History is an append-only audit entry of a user action.
type History struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	ActionType  ActionType `json:"actionType"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
}

func (h *History) RecordID() string      { return h.ID }
func (h *History) SetRecordID(id string) { h.ID = id }
