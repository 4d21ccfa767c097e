package impl

import (
	"context"
	"testing"

	"quaidirect/internal/domain/entity"
	"quaidirect/internal/domain/repository"
	mockRepo "quaidirect/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFollowService_FollowFisherman(t *testing.T) {
	t.Parallel()

	t.Run("creates the follow relation", func(t *testing.T) {
		t.Parallel()

		followRepo := mockRepo.NewMockFollowRepository(t)
		svc := NewFollowService(followRepo)
		ctx := context.Background()
		userID := uuid.New()
		fishermanID := uuid.New()

		var created *entity.FishermanFollow
		followRepo.EXPECT().CreateFishermanFollow(ctx, mock.Anything).
			Run(func(_ context.Context, follow *entity.FishermanFollow) {
				created = follow
			}).
			Return(nil)

		err := svc.FollowFisherman(ctx, userID, fishermanID)
		require.NoError(t, err)

		require.NotNil(t, created)
		assert.Equal(t, userID, created.UserID)
		assert.Equal(t, fishermanID, created.FishermanID)
	})

	t.Run("surfaces a duplicate follow", func(t *testing.T) {
		t.Parallel()

		followRepo := mockRepo.NewMockFollowRepository(t)
		svc := NewFollowService(followRepo)
		ctx := context.Background()

		followRepo.EXPECT().CreateFishermanFollow(ctx, mock.Anything).
			Return(repository.ErrDuplicateFollow)

		err := svc.FollowFisherman(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, repository.ErrDuplicateFollow)
	})
}

func TestFollowService_UnfollowPort(t *testing.T) {
	t.Parallel()

	t.Run("deletes the follow relation", func(t *testing.T) {
		t.Parallel()

		followRepo := mockRepo.NewMockFollowRepository(t)
		svc := NewFollowService(followRepo)
		ctx := context.Background()
		userID := uuid.New()
		portID := uuid.New()

		followRepo.EXPECT().DeletePortFollow(ctx, userID, portID).Return(nil)

		assert.NoError(t, svc.UnfollowPort(ctx, userID, portID))
	})

	t.Run("surfaces a missing follow", func(t *testing.T) {
		t.Parallel()

		followRepo := mockRepo.NewMockFollowRepository(t)
		svc := NewFollowService(followRepo)
		ctx := context.Background()
		userID := uuid.New()
		portID := uuid.New()

		followRepo.EXPECT().DeletePortFollow(ctx, userID, portID).
			Return(repository.ErrFollowNotFound)

		err := svc.UnfollowPort(ctx, userID, portID)
		assert.ErrorIs(t, err, repository.ErrFollowNotFound)
	})
}

func TestFollowService_FollowSpecies(t *testing.T) {
	t.Parallel()

	followRepo := mockRepo.NewMockFollowRepository(t)
	svc := NewFollowService(followRepo)
	ctx := context.Background()
	userID := uuid.New()
	speciesID := uuid.New()

	var created *entity.SpeciesFollow
	followRepo.EXPECT().CreateSpeciesFollow(ctx, mock.Anything).
		Run(func(_ context.Context, follow *entity.SpeciesFollow) {
			created = follow
		}).
		Return(nil)

	err := svc.FollowSpecies(ctx, userID, speciesID)
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, speciesID, created.SpeciesID)
}

func TestFollowService_ListFollows(t *testing.T) {
	t.Parallel()

	followRepo := mockRepo.NewMockFollowRepository(t)
	svc := NewFollowService(followRepo)
	ctx := context.Background()
	userID := uuid.New()

	follows := &entity.UserFollows{
		Fishermen: []*entity.FishermanFollow{{ID: uuid.New(), UserID: userID}},
		Ports:     []*entity.PortFollow{{ID: uuid.New(), UserID: userID, PortName: "Port de Brest"}},
	}
	followRepo.EXPECT().FindFollowsByUser(ctx, userID).Return(follows, nil)

	got, err := svc.ListFollows(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, follows, got)
}
