package model

// Availability is a bookable time slot owned by a technician. Date and the
// times are kept as the strings the calendar UI supplies ("2006-01-02",
// "15:04"); the core orders and compares them lexically.
type Availability struct {
	ID           string `json:"id"`
	TechnicianID string `json:"technicianId"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	IsBooked     bool   `json:"isBooked"`
}

func (a *Availability) RecordID() string      { return a.ID }
func (a *Availability) SetRecordID(id string) { a.ID = id }
