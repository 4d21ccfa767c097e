// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"quaidirect/internal/domain/entity"
	"quaidirect/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for follow persistence.
var (
	// ErrDuplicateFollow is returned when the follow relation already exists.
	ErrDuplicateFollow = errors.New("follow already exists")
	// ErrFollowNotFound is returned when a follow relation is not found.
	ErrFollowNotFound = errors.New("follow not found")
)

// FollowRepository defines the interface for follow-relation database operations.
type FollowRepository interface {
	// FindFishermanFollowerIDs returns the IDs of all users directly
	// following the given fisherman.
	FindFishermanFollowerIDs(ctx context.Context, fishermanID uuid.UUID) ([]uuid.UUID, error)

	// FindAllPortFollows loads every port follow with its port coordinates.
	// The proximity rule filters these in-process against the drop location.
	FindAllPortFollows(ctx context.Context) ([]*entity.PortFollow, error)

	// FindSpeciesFollowerIDs returns the distinct IDs of users following any
	// of the given species.
	FindSpeciesFollowerIDs(ctx context.Context, speciesIDs []uuid.UUID) ([]uuid.UUID, error)

	// CreateFishermanFollow persists a (user, fisherman) follow relation.
	CreateFishermanFollow(ctx context.Context, follow *entity.FishermanFollow) error

	// CreatePortFollow persists a (user, port) follow relation.
	CreatePortFollow(ctx context.Context, follow *entity.PortFollow) error

	// CreateSpeciesFollow persists a (user, species) follow relation.
	CreateSpeciesFollow(ctx context.Context, follow *entity.SpeciesFollow) error

	// DeleteFishermanFollow removes a (user, fisherman) follow relation.
	DeleteFishermanFollow(ctx context.Context, userID, fishermanID uuid.UUID) error

	// DeletePortFollow removes a (user, port) follow relation.
	DeletePortFollow(ctx context.Context, userID, portID uuid.UUID) error

	// DeleteSpeciesFollow removes a (user, species) follow relation.
	DeleteSpeciesFollow(ctx context.Context, userID, speciesID uuid.UUID) error

	// FindFollowsByUser retrieves all follow relations of one user.
	FindFollowsByUser(ctx context.Context, userID uuid.UUID) (*entity.UserFollows, error)
}
