package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"quaidirect/internal/domain/entity"
	domainerrors "quaidirect/internal/domain/errors"
	"quaidirect/internal/domain/repository"
	"quaidirect/internal/domain/service"
	mockRepo "quaidirect/internal/mocks/repository"
	mockSvc "quaidirect/internal/mocks/service"
	"quaidirect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dropServiceMocks struct {
	dropRepo         *mockRepo.MockDropRepository
	notificationRepo *mockRepo.MockNotificationRepository
	eventPublisher   *mockSvc.MockEventPublisher
}

func createTestDropService(t *testing.T) (usecase.DropUsecase, *dropServiceMocks) {
	t.Helper()

	m := &dropServiceMocks{
		dropRepo:         mockRepo.NewMockDropRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		eventPublisher:   mockSvc.NewMockEventPublisher(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewDropService(m.dropRepo, m.notificationRepo, m.eventPublisher, logger, time.Hour)

	return svc, m
}

func TestDropService_CreateDrop(t *testing.T) {
	t.Parallel()

	t.Run("rejects input with both a port and a sale point", func(t *testing.T) {
		t.Parallel()

		svc, _ := createTestDropService(t)
		portID := uuid.New()
		salePointID := uuid.New()

		_, err := svc.CreateDrop(context.Background(), &usecase.CreateDropInput{
			FishermanID: uuid.New(),
			Title:       "Criée du soir",
			SaleStartAt: time.Now().Add(4 * time.Hour),
			PortID:      &portID,
			SalePointID: &salePointID,
		})

		assert.ErrorIs(t, err, ErrInvalidSaleLocation)
	})

	t.Run("rejects input with neither a port nor a sale point", func(t *testing.T) {
		t.Parallel()

		svc, _ := createTestDropService(t)

		_, err := svc.CreateDrop(context.Background(), &usecase.CreateDropInput{
			FishermanID: uuid.New(),
			Title:       "Criée du soir",
			SaleStartAt: time.Now().Add(4 * time.Hour),
		})

		assert.ErrorIs(t, err, ErrInvalidSaleLocation)
	})

	t.Run("creates a draft drop at a port", func(t *testing.T) {
		t.Parallel()

		svc, m := createTestDropService(t)
		ctx := context.Background()
		fishermanID := uuid.New()
		portID := uuid.New()
		speciesIDs := []uuid.UUID{uuid.New(), uuid.New()}

		m.dropRepo.EXPECT().FindFishermanByID(ctx, fishermanID).
			Return(&entity.Fisherman{ID: fishermanID, DisplayName: "Armement Kerbiriou"}, nil)

		var created *entity.Drop
		m.dropRepo.EXPECT().CreateDrop(ctx, mock.Anything).
			Run(func(_ context.Context, drop *entity.Drop) {
				created = drop
			}).
			Return(nil)

		drop, err := svc.CreateDrop(ctx, &usecase.CreateDropInput{
			FishermanID: fishermanID,
			Title:       "Retour de pêche",
			SaleStartAt: time.Now().Add(4 * time.Hour),
			PortID:      &portID,
			SpeciesIDs:  speciesIDs,
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, entity.DropStatusDraft, drop.Status)
		assert.Equal(t, entity.LocationKindPort, drop.Location.Kind)
		assert.Equal(t, &portID, drop.Location.PortID)
		assert.Nil(t, drop.Location.SalePointID)
		assert.Equal(t, speciesIDs, drop.SpeciesIDs)
		assert.False(t, drop.Premium)
		// Non-premium drops are visible to everyone right away.
		assert.Equal(t, drop.VisibleAt, drop.PublicVisibleAt)
	})

	t.Run("premium fisherman gets a follower head start", func(t *testing.T) {
		t.Parallel()

		svc, m := createTestDropService(t)
		ctx := context.Background()
		fishermanID := uuid.New()
		salePointID := uuid.New()

		m.dropRepo.EXPECT().FindFishermanByID(ctx, fishermanID).
			Return(&entity.Fisherman{ID: fishermanID, Premium: true}, nil)
		m.dropRepo.EXPECT().CreateDrop(ctx, mock.Anything).Return(nil)

		drop, err := svc.CreateDrop(ctx, &usecase.CreateDropInput{
			FishermanID: fishermanID,
			Title:       "Vente au vivier",
			SaleStartAt: time.Now().Add(6 * time.Hour),
			SalePointID: &salePointID,
		})
		require.NoError(t, err)

		assert.True(t, drop.Premium)
		assert.Equal(t, entity.LocationKindSalePoint, drop.Location.Kind)
		assert.Equal(t, time.Hour, drop.PublicVisibleAt.Sub(drop.VisibleAt))
	})

	t.Run("unknown fisherman fails before any insert", func(t *testing.T) {
		t.Parallel()

		svc, m := createTestDropService(t)
		ctx := context.Background()
		fishermanID := uuid.New()
		portID := uuid.New()

		m.dropRepo.EXPECT().FindFishermanByID(ctx, fishermanID).
			Return(nil, domainerrors.ErrFishermanNotFound)

		_, err := svc.CreateDrop(ctx, &usecase.CreateDropInput{
			FishermanID: fishermanID,
			Title:       "Retour de pêche",
			SaleStartAt: time.Now().Add(4 * time.Hour),
			PortID:      &portID,
		})

		assert.ErrorIs(t, err, domainerrors.ErrFishermanNotFound)
	})
}

func TestDropService_PublishDrop(t *testing.T) {
	t.Parallel()

	t.Run("publishes the drop and enqueues the fan-out event", func(t *testing.T) {
		t.Parallel()

		svc, m := createTestDropService(t)
		ctx := context.Background()
		fishermanID := uuid.New()
		dropID := uuid.New()

		m.dropRepo.EXPECT().MarkPublished(ctx, fishermanID, dropID).Return(nil)

		var published *service.DropEvent
		m.eventPublisher.EXPECT().PublishDropEvent(ctx, mock.Anything).
			Run(func(_ context.Context, event *service.DropEvent) {
				published = event
			}).
			Return(nil)

		err := svc.PublishDrop(ctx, fishermanID, dropID)
		require.NoError(t, err)

		require.NotNil(t, published)
		assert.Equal(t, dropID, published.DropID)
	})

	t.Run("maps a missing draft to a publishable conflict", func(t *testing.T) {
		t.Parallel()

		svc, m := createTestDropService(t)
		ctx := context.Background()
		fishermanID := uuid.New()
		dropID := uuid.New()

		m.dropRepo.EXPECT().MarkPublished(ctx, fishermanID, dropID).
			Return(repository.ErrDropNotFound)

		err := svc.PublishDrop(ctx, fishermanID, dropID)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrDropNotPublishable)
	})

	t.Run("a failed event publish does not roll back the publication", func(t *testing.T) {
		t.Parallel()

		svc, m := createTestDropService(t)
		ctx := context.Background()
		fishermanID := uuid.New()
		dropID := uuid.New()

		m.dropRepo.EXPECT().MarkPublished(ctx, fishermanID, dropID).Return(nil)
		m.eventPublisher.EXPECT().PublishDropEvent(ctx, mock.Anything).
			Return(assert.AnError)

		err := svc.PublishDrop(ctx, fishermanID, dropID)
		assert.NoError(t, err)
	})
}

func TestDropService_GetNotificationHistory(t *testing.T) {
	t.Parallel()

	svc, m := createTestDropService(t)
	ctx := context.Background()
	fishermanID := uuid.New()

	runs := []*entity.DropNotification{
		{ID: uuid.New(), FishermanID: fishermanID, PushTargeted: 6, PushSent: 5},
	}
	m.notificationRepo.EXPECT().FindNotificationsByFisherman(ctx, fishermanID, 20, 0).
		Return(runs, nil)

	got, err := svc.GetNotificationHistory(ctx, fishermanID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, runs, got)
}
