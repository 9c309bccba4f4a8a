// Package model defines the data structures persisted by the collection
// store. Every stored record carries a unique string ID (UUID v4) and
// implements the store's Identifiable interface via RecordID/SetRecordID.
package model

import "time"

// Role is the account type assigned at registration. It is immutable in
// practice — the domain never transitions a Client to a Technician. The one
// exception is the bootstrap rule: the first user ever registered is forced
// to Administrator.
type Role string

const (
	RoleClient        Role = "Client"
	RoleTechnician    Role = "Technician"
	RoleAdministrator Role = "Administrator"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleTechnician, RoleAdministrator:
		return true
	}
	return false
}

// User is the canonical account record. Role-specific data lives in
// TechnicianProfile/ClientProfile keyed by the same ID — User itself is
// never specialised.
//
// PasswordHash is a bcrypt hash and is self-contained (salt and cost are
// embedded in the string). It serialises with the record because the store
// is the only durable medium; there is no separate credential table.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"` // unique, compared case-insensitively
	PasswordHash string    `json:"passwordHash"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PhoneNumber  string    `json:"phoneNumber"`
	Region       string    `json:"region"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	IsApproved   bool      `json:"isApproved"`
}

func (u *User) RecordID() string      { return u.ID }
func (u *User) SetRecordID(id string) { u.ID = id }

// TechnicianProfile holds the technician-only fields. ID equals the owning
// User's ID. Availability slots live in their own collection, keyed by
// TechnicianID — they are not embedded here.
type TechnicianProfile struct {
	ID              string  `json:"id"`
	Specialty       string  `json:"specialty"`
	Rating          float64 `json:"rating"` // 0.0–5.0
	Bio             string  `json:"bio"`
	PricePerService float64 `json:"pricePerService"` // non-negative
}

func (p *TechnicianProfile) RecordID() string      { return p.ID }
func (p *TechnicianProfile) SetRecordID(id string) { p.ID = id }

// ClientProfile marks a user as a client. It carries no extra fields today
// but keeps the clients collection addressable by user ID.
type ClientProfile struct {
	ID string `json:"id"`
}

func (p *ClientProfile) RecordID() string      { return p.ID }
func (p *ClientProfile) SetRecordID(id string) { p.ID = id }

// Technician is the composed read view: canonical user plus profile plus
// the technician's availability slots. It is assembled on read and never
// stored as one record.
//
// Both embedded types carry an "id" at equal depth; those cancel each
// other out of field selection and of the JSON encoding. The explicit ID
// (always the user's ID) is what consumers and the encoder see.
type Technician struct {
	ID string `json:"id"`
	User
	TechnicianProfile
	Availability []Availability `json:"availability"`
}

// RegisterForm is the validated registration input supplied by the caller.
// The session manager re-validates required fields rather than trusting it.
type RegisterForm struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Region      string `json:"region"`
	Role        Role   `json:"role"`

	// Technician-only fields. When either Specialty or Bio is empty the
	// technician profile is skipped at registration, matching the original
	// behaviour.
	Specialty       string  `json:"specialty,omitempty"`
	Bio             string  `json:"bio,omitempty"`
	PricePerService float64 `json:"pricePerService,omitempty"`
}

// Credentials is the login input.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
