// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"quaidirect/internal/domain/entity"
	"quaidirect/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for drop persistence.
var (
	// ErrDropNotFound is returned when a drop is not found or cannot be joined
	// to its fisherman, species, and sale location.
	ErrDropNotFound = errors.New("drop not found")
)

// DropRepository defines the interface for drop-related database operations.
type DropRepository interface {
	// CreateDrop persists a new drop together with its offer rows.
	CreateDrop(ctx context.Context, drop *entity.Drop) error

	// FindDropDetail retrieves a drop joined with its fisherman, offered
	// species, and resolved sale location. Returns ErrDropNotFound when the
	// drop is missing or the join cannot be completed.
	FindDropDetail(ctx context.Context, id uuid.UUID) (*entity.DropDetail, error)

	// FindDropsByFisherman retrieves a fisherman's drops with pagination,
	// newest first.
	FindDropsByFisherman(ctx context.Context, fishermanID uuid.UUID, limit, offset int) ([]*entity.Drop, error)

	// MarkPublished transitions a draft drop to published. Returns
	// ErrDropNotFound when no draft drop with that id belongs to the fisherman.
	MarkPublished(ctx context.Context, fishermanID, dropID uuid.UUID) error

	// FindFishermanByID retrieves a fisherman profile.
	FindFishermanByID(ctx context.Context, id uuid.UUID) (*entity.Fisherman, error)
}
