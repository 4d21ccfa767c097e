package usecase

import (
	"context"

	"quaidirect/internal/domain/entity"

	"github.com/google/uuid"
)

// FishermanUsecase defines the interface for fisherman profile use cases
type FishermanUsecase interface {
	// GetFisherman retrieves a fisherman profile
	GetFisherman(ctx context.Context, id uuid.UUID) (*entity.Fisherman, error)

	// GetFollowQRCode renders a QR code pointing at the fisherman's public
	// follow page, for printing on the stall.
	GetFollowQRCode(ctx context.Context, fishermanID uuid.UUID, size int) ([]byte, error)
}
