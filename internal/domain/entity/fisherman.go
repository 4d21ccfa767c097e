// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Fisherman represents a seller profile publishing drops.
type Fisherman struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the fisherman.
	DisplayName string    `json:"display_name"` // Public name shown on drops and notifications.
	BoatName    string    `json:"boat_name"`    // Registered boat name.
	Premium     bool      `json:"premium"`      // Premium fishermen get early-access visibility windows.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when this record was created.
	UpdatedAt   time.Time `json:"updated_at"`   // Timestamp of the last modification.
}

// Port represents a public landing port where drops can take place.
type Port struct {
	ID        uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the port.
	Name      string    `json:"name"`      // Port name.
	Latitude  float64   `json:"latitude"`  // The geographic latitude of the port.
	Longitude float64   `json:"longitude"` // The geographic longitude of the port.
}

// SalePoint represents a fisherman-owned sale location (a stall, a quay spot).
type SalePoint struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the sale point.
	FishermanID uuid.UUID `json:"fisherman_id"` // The owning fisherman.
	Name        string    `json:"name"`         // Sale point name.
	Latitude    float64   `json:"latitude"`     // The geographic latitude of the sale point.
	Longitude   float64   `json:"longitude"`    // The geographic longitude of the sale point.
}

// Species represents a fish species that can be offered on a drop.
type Species struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the species.
	CommonName string    `json:"common_name"` // Common (market) name of the species.
}
