package usecase

import (
	"context"

	"quaidirect/internal/domain/entity"

	"github.com/google/uuid"
)

// FollowUsecase defines the interface for follow management use cases
type FollowUsecase interface {
	// FollowFisherman subscribes a user to a fisherman's drops
	FollowFisherman(ctx context.Context, userID, fishermanID uuid.UUID) error

	// UnfollowFisherman removes a user's fisherman follow
	UnfollowFisherman(ctx context.Context, userID, fishermanID uuid.UUID) error

	// FollowPort subscribes a user to drops near a port
	FollowPort(ctx context.Context, userID, portID uuid.UUID) error

	// UnfollowPort removes a user's port follow
	UnfollowPort(ctx context.Context, userID, portID uuid.UUID) error

	// FollowSpecies subscribes a user to drops offering a species
	FollowSpecies(ctx context.Context, userID, speciesID uuid.UUID) error

	// UnfollowSpecies removes a user's species follow
	UnfollowSpecies(ctx context.Context, userID, speciesID uuid.UUID) error

	// ListFollows retrieves all follow relations of one user
	ListFollows(ctx context.Context, userID uuid.UUID) (*entity.UserFollows, error)
}
