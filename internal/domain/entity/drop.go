// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// DropStatus represents the lifecycle state of a drop.
type DropStatus string

const (
	// DropStatusDraft indicates the drop has been created but not announced.
	DropStatusDraft DropStatus = "draft"
	// DropStatusPublished indicates the drop has been announced to followers.
	DropStatusPublished DropStatus = "published"
)

// LocationKind tags the sale-location variant of a drop. A drop sells either
// at a public port or at a fisherman-owned sale point, never both.
type LocationKind string

const (
	// LocationKindPort indicates the drop sells at a public port.
	LocationKindPort LocationKind = "port"
	// LocationKindSalePoint indicates the drop sells at a fisherman sale point.
	LocationKindSalePoint LocationKind = "sale_point"
)

// IsValid checks if the LocationKind is a valid value.
func (k LocationKind) IsValid() bool {
	switch k {
	case LocationKindPort, LocationKindSalePoint:
		return true
	default:
		return false
	}
}

// SaleLocation is the tagged sale-location reference of a drop. Exactly one of
// PortID or SalePointID is set, matching Kind.
type SaleLocation struct {
	Kind        LocationKind `json:"kind"`
	PortID      *uuid.UUID   `json:"port_id,omitempty"`
	SalePointID *uuid.UUID   `json:"sale_point_id,omitempty"`
}

// Drop represents a scheduled fish-sale event published by a fisherman.
type Drop struct {
	ID              uuid.UUID    `json:"id"`                // The Global Unique Identifier (GUID) for the drop.
	FishermanID     uuid.UUID    `json:"fisherman_id"`      // The ID of the fisherman selling at this drop.
	Title           string       `json:"title"`             // Short announcement title shown to buyers.
	SaleStartAt     time.Time    `json:"sale_start_at"`     // When the sale opens at the quay.
	Premium         bool         `json:"premium"`           // Premium drops grant followers an early-access window.
	Status          DropStatus   `json:"status"`            // Lifecycle state (draft, published).
	VisibleAt       time.Time    `json:"visible_at"`        // When followers can see the drop.
	PublicVisibleAt time.Time    `json:"public_visible_at"` // When everyone can see the drop.
	Location        SaleLocation `json:"location"`          // Tagged sale-location reference.
	SpeciesIDs      []uuid.UUID  `json:"species_ids"`       // Offered species, via the drop_offers join table.
	TotalSent       int          `json:"total_sent"`        // Push notifications successfully sent for this drop.
	TotalFailed     int          `json:"total_failed"`      // Push notifications that failed to send.
	CreatedAt       time.Time    `json:"created_at"`        // Timestamp of when this record was created.
	UpdatedAt       time.Time    `json:"updated_at"`        // Timestamp of the last modification.
}

// DropDetail is a drop joined with everything the notification fan-out needs:
// fisherman identity, offered species names, and the resolved sale location.
type DropDetail struct {
	Drop
	FishermanName string      `json:"fisherman_name"` // Display name of the fisherman.
	SpeciesNames  []string    `json:"species_names"`  // Common names of the offered species.
	LocationName  string      `json:"location_name"`  // Name of the resolved port or sale point.
	Coordinate    *orb.Point  `json:"coordinate"`     // Resolved lon/lat, nil when the location carries no coordinates.
	SpeciesIDList []uuid.UUID `json:"-"`              // Offered species IDs, convenience copy for audience queries.
}
