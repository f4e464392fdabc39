package entity

import "github.com/go-openapi/strfmt"

// User - subscription owner; only identity matters to this service
type User struct {
	// ID - user identifier in UUID format
	ID strfmt.UUID
	// Email - unique contact address
	Email string
	// Name - display name
	Name string
}
