package impl

import (
	"context"

	"quaidirect/internal/domain/entity"
	"quaidirect/internal/domain/repository"
	"quaidirect/internal/usecase"

	"github.com/google/uuid"
)

type followService struct {
	followRepo repository.FollowRepository
}

// NewFollowService creates a new follow service instance
func NewFollowService(followRepo repository.FollowRepository) usecase.FollowUsecase {
	return &followService{
		followRepo: followRepo,
	}
}

// FollowFisherman subscribes a user to a fisherman's drops
func (s *followService) FollowFisherman(ctx context.Context, userID, fishermanID uuid.UUID) error {
	return s.followRepo.CreateFishermanFollow(ctx, &entity.FishermanFollow{
		UserID:      userID,
		FishermanID: fishermanID,
	})
}

// UnfollowFisherman removes a user's fisherman follow
func (s *followService) UnfollowFisherman(ctx context.Context, userID, fishermanID uuid.UUID) error {
	return s.followRepo.DeleteFishermanFollow(ctx, userID, fishermanID)
}

// FollowPort subscribes a user to drops near a port
func (s *followService) FollowPort(ctx context.Context, userID, portID uuid.UUID) error {
	return s.followRepo.CreatePortFollow(ctx, &entity.PortFollow{
		UserID: userID,
		PortID: portID,
	})
}

// UnfollowPort removes a user's port follow
func (s *followService) UnfollowPort(ctx context.Context, userID, portID uuid.UUID) error {
	return s.followRepo.DeletePortFollow(ctx, userID, portID)
}

// FollowSpecies subscribes a user to drops offering a species
func (s *followService) FollowSpecies(ctx context.Context, userID, speciesID uuid.UUID) error {
	return s.followRepo.CreateSpeciesFollow(ctx, &entity.SpeciesFollow{
		UserID:    userID,
		SpeciesID: speciesID,
	})
}

// UnfollowSpecies removes a user's species follow
func (s *followService) UnfollowSpecies(ctx context.Context, userID, speciesID uuid.UUID) error {
	return s.followRepo.DeleteSpeciesFollow(ctx, userID, speciesID)
}

// ListFollows retrieves all follow relations of one user
func (s *followService) ListFollows(ctx context.Context, userID uuid.UUID) (*entity.UserFollows, error) {
	return s.followRepo.FindFollowsByUser(ctx, userID)
}
