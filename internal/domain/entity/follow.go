// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FishermanFollow represents a user's follow relation to a fisherman.
type FishermanFollow struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the follow.
	UserID      uuid.UUID `json:"user_id"`      // The ID of the following user.
	FishermanID uuid.UUID `json:"fisherman_id"` // The ID of the followed fisherman.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when the follow was created.
}

// PortFollow represents a user's follow relation to a port. The port's
// coordinates are denormalized onto the row so the proximity rule can run
// without a second lookup.
type PortFollow struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the follow.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the following user.
	PortID    uuid.UUID `json:"port_id"`    // The ID of the followed port.
	PortName  string    `json:"port_name"`  // Name of the followed port.
	Latitude  float64   `json:"latitude"`   // Latitude of the followed port.
	Longitude float64   `json:"longitude"`  // Longitude of the followed port.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the follow was created.
}

// SpeciesFollow represents a user's follow relation to a fish species.
type SpeciesFollow struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the follow.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the following user.
	SpeciesID uuid.UUID `json:"species_id"` // The ID of the followed species.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the follow was created.
}

// UserFollows groups all follow relations of one user for listing.
type UserFollows struct {
	Fishermen []*FishermanFollow `json:"fishermen"`
	Ports     []*PortFollow      `json:"ports"`
	Species   []*SpeciesFollow   `json:"species"`
}
