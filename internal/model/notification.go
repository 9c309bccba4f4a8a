package model

import "time"

// NotificationType categorises notifications so the UI can pick an icon and
// a link target.
type NotificationType string

const (
	NotificationMessage NotificationType = "Message"
	NotificationDemand  NotificationType = "Demand"
	NotificationBlame   NotificationType = "Blame"
	NotificationGeneral NotificationType = "General"
)

// Notification is an in-app notification addressed to a single user.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Type      NotificationType `json:"type"`
	Content   string           `json:"content"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}

func (n *Notification) RecordID() string      { return n.ID }
func (n *Notification) SetRecordID(id string) { n.ID = id }
