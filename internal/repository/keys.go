// Package repository provides the per-entity access layer: each repository
// binds a typed store collection to its slot key and adds the linear-scan
// queries the consuming surfaces need. Repositories hold no state of their
// own — callers must re-query after every mutation.
package repository

// Slot keys for the persisted state layout. Collections hold JSON arrays;
// KeyCurrentUser and KeyAdminSettings hold single values.
const (
	KeyUsers         = "users"
	KeyTechnicians   = "technicians"
	KeyClients       = "clients"
	KeyServices      = "services"
	KeyPublications  = "publications"
	KeyDemands       = "demands"
	KeyMessages      = "messages"
	KeyNotifications = "notifications"
	KeyComments      = "comments"
	KeyHistory       = "history"
	KeyReclamations  = "reclamations"
	KeyAvailability  = "availability"
	KeyCurrentUser   = "current_user"
	KeyAdminSettings = "admin_settings"
)
