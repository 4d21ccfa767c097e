package usecase

import (
	"context"
	"time"

	"quaidirect/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDropInput carries the fields needed to create a drop. Exactly one of
// PortID or SalePointID must be set.
type CreateDropInput struct {
	FishermanID uuid.UUID   `json:"fisherman_id"`
	Title       string      `json:"title"`
	SaleStartAt time.Time   `json:"sale_start_at"`
	PortID      *uuid.UUID  `json:"port_id"`
	SalePointID *uuid.UUID  `json:"sale_point_id"`
	SpeciesIDs  []uuid.UUID `json:"species_ids"`
}

// DropUsecase defines the interface for drop management use cases
type DropUsecase interface {
	// CreateDrop creates a draft drop with its visibility windows computed
	// from the fisherman's premium standing.
	CreateDrop(ctx context.Context, input *CreateDropInput) (*entity.Drop, error)

	// PublishDrop transitions a draft drop to published and enqueues the
	// notification fan-out event.
	PublishDrop(ctx context.Context, fishermanID, dropID uuid.UUID) error

	// GetFishermanDrops retrieves a fisherman's drops with pagination
	GetFishermanDrops(ctx context.Context, fishermanID uuid.UUID, limit, offset int) ([]*entity.Drop, error)

	// GetNotificationHistory retrieves fan-out run reports for a fisherman with pagination
	GetNotificationHistory(ctx context.Context, fishermanID uuid.UUID, limit, offset int) ([]*entity.DropNotification, error)
}
