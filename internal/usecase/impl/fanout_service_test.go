package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"quaidirect/internal/domain/entity"
	"quaidirect/internal/domain/repository"
	"quaidirect/internal/domain/service"
	mockRepo "quaidirect/internal/mocks/repository"
	mockSvc "quaidirect/internal/mocks/service"
	"quaidirect/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fanoutServiceMocks struct {
	dropRepo         *mockRepo.MockDropRepository
	followRepo       *mockRepo.MockFollowRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	notificationRepo *mockRepo.MockNotificationRepository
	pushSender       *mockSvc.MockPushSender
	emailSender      *mockSvc.MockEmailSender
}

func createTestFanoutService(t *testing.T) (usecase.FanoutUsecase, *fanoutServiceMocks) {
	t.Helper()

	m := &fanoutServiceMocks{
		dropRepo:         mockRepo.NewMockDropRepository(t),
		followRepo:       mockRepo.NewMockFollowRepository(t),
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		pushSender:       mockSvc.NewMockPushSender(t),
		emailSender:      mockSvc.NewMockEmailSender(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewFanoutService(
		m.dropRepo,
		m.followRepo,
		m.subscriptionRepo,
		m.deviceRepo,
		m.notificationRepo,
		m.pushSender,
		m.emailSender,
		logger,
		10.0,
		2,
		"https://quaidirect.fr",
	)

	return svc, m
}

// brestQuay is the reference sale location used across the fan-out tests.
var brestQuay = orb.Point{-4.4861, 48.3904}

func testDropDetail(coordinate *orb.Point) *entity.DropDetail {
	dropID := uuid.New()
	fishermanID := uuid.New()

	return &entity.DropDetail{
		Drop: entity.Drop{
			ID:          dropID,
			FishermanID: fishermanID,
			Title:       "Retour de pêche du matin",
			SaleStartAt: time.Date(2025, 6, 12, 8, 30, 0, 0, time.UTC),
			Status:      entity.DropStatusPublished,
		},
		FishermanName: "Armement Kerbiriou",
		SpeciesNames:  []string{"Bar", "Lieu jaune"},
		LocationName:  "Port de Brest",
		Coordinate:    coordinate,
		SpeciesIDList: []uuid.UUID{uuid.New(), uuid.New()},
	}
}

func portFollowAt(userID uuid.UUID, lat, lng float64) *entity.PortFollow {
	return &entity.PortFollow{
		ID:        uuid.New(),
		UserID:    userID,
		PortID:    uuid.New(),
		PortName:  "Port de Brest",
		Latitude:  lat,
		Longitude: lng,
	}
}

func TestFanoutService_DispatchDropNotifications(t *testing.T) {
	t.Parallel()

	t.Run("push audience is the deduplicated union of direct and nearby port followers", func(t *testing.T) {
		t.Parallel()

		svc, m := createTestFanoutService(t)
		ctx := context.Background()
		detail := testDropDetail(&brestQuay)

		u1, u2, u3, u4 := uuid.New(), uuid.New(), uuid.New(), uuid.New()
		u5, u6, u7 := uuid.New(), uuid.New(), uuid.New()

		m.dropRepo.EXPECT().FindDropDetail(ctx, detail.ID).Return(detail, nil)
		m.followRepo.EXPECT().FindFishermanFollowerIDs(ctx, detail.FishermanID).
			Return([]uuid.UUID{u1, u2, u3, u4}, nil)

		// u4 also follows the port (overlap), u5 and u6 are nearby port
		// followers, u7 follows a port far outside the radius.
		m.followRepo.EXPECT().FindAllPortFollows(ctx).Return([]*entity.PortFollow{
			portFollowAt(u4, 48.3904, -4.4861),
			portFollowAt(u5, 48.40, -4.49),
			portFollowAt(u6, 48.38, -4.45),
			portFollowAt(u7, 47.7482, -3.3702), // Lorient, ~100 km away
		}, nil)

		m.followRepo.EXPECT().FindSpeciesFollowerIDs(ctx, detail.SpeciesIDList).
			Return(nil, nil)

		m.notificationRepo.EXPECT().CreateDropNotification(ctx, mock.Anything).Return(nil)

		var targetedUsers []uuid.UUID
		m.deviceRepo.EXPECT().FindActiveForUsers(ctx, mock.Anything).
			Run(func(_ context.Context, userIDs []uuid.UUID) {
				targetedUsers = userIDs
			}).
			Return([]*entity.PushRegistration{
				{ID: uuid.New(), UserID: u1, FCMToken: "token-1", IsActive: true},
				{ID: uuid.New(), UserID: u5, FCMToken: "token-5", IsActive: true},
			}, nil)

		m.pushSender.EXPECT().SendBatch(ctx, mock.Anything, mock.Anything).
			Return(&service.BatchResult{SuccessCount: 2}, nil)

		m.notificationRepo.EXPECT().BatchCreateNotificationLogs(ctx, mock.Anything).Return(nil)
		m.notificationRepo.EXPECT().UpdateNotificationCounts(ctx, mock.Anything, 6, 2, 0, 0).Return(nil)

		result, err := svc.DispatchDropNotifications(ctx, detail.ID)
		require.NoError(t, err)

		assert.Equal(t, 6, result.PushTargeted)
		assert.Equal(t, 2, result.PushSent)
		assert.Equal(t, 0, result.EmailTargeted)
		assert.ElementsMatch(t, []uuid.UUID{u1, u2, u3, u4, u5, u6}, targetedUsers)
	})

	t.Run("unresolvable coordinates degrade to an empty proximity set", func(t *testing.T) {
		t.Parallel()

		svc, m := createTestFanoutService(t)
		ctx := context.Background()
		detail := testDropDetail(nil)

		u1, u2 := uuid.New(), uuid.New()

		m.dropRepo.EXPECT().FindDropDetail(ctx, detail.ID).Return(detail, nil)
		m.followRepo.EXPECT().FindFishermanFollowerIDs(ctx, detail.FishermanID).
			Return([]uuid.UUID{u1, u2}, nil)
		// FindAllPortFollows must not be called when the location has no
		// coordinates; the mock would fail the test if it were.
		m.followRepo.EXPECT().FindSpeciesFollowerIDs(ctx, detail.SpeciesIDList).
			Return(nil, nil)

		m.notificationRepo.EXPECT().CreateDropNotification(ctx, mock.Anything).Return(nil)
		m.deviceRepo.EXPECT().FindActiveForUsers(ctx, mock.Anything).
			Return([]*entity.PushRegistration{
				{ID: uuid.New(), UserID: u1, FCMToken: "token-1", IsActive: true},
			}, nil)
		m.pushSender.EXPECT().SendBatch(ctx, mock.Anything, mock.Anything).
			Return(&service.BatchResult{SuccessCount: 1}, nil)
		m.notificationRepo.EXPECT().BatchCreateNotificationLogs(ctx, mock.Anything).Return(nil)
		m.notificationRepo.EXPECT().UpdateNotificationCounts(ctx, mock.Anything, 2, 1, 0, 0).Return(nil)

		result, err := svc.DispatchDropNotifications(ctx, detail.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, result.PushTargeted)
	})

	t.Run("email audience is species followers with an entitled premium plus plan, deduplicated", func(t *testing.T) {
		t.Parallel()

		svc, m := createTestFanoutService(t)
		ctx := context.Background()
		detail := testDropDetail(nil)

		followerIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()}
		r1, r2, r3, r4 := uuid.New(), uuid.New(), uuid.New(), uuid.New()

		m.dropRepo.EXPECT().FindDropDetail(ctx, detail.ID).Return(detail, nil)
		m.followRepo.EXPECT().FindFishermanFollowerIDs(ctx, detail.FishermanID).
			Return(nil, nil)
		m.followRepo.EXPECT().FindSpeciesFollowerIDs(ctx, detail.SpeciesIDList).
			Return(followerIDs, nil)

		// r1 follows two offered species and comes back twice; the audience
		// must collapse to four recipients.
		m.subscriptionRepo.EXPECT().FindPremiumPlusRecipients(ctx, followerIDs).
			Return([]*entity.EmailRecipient{
				{UserID: r1, Email: "r1@example.com"},
				{UserID: r2, Email: "r2@example.com"},
				{UserID: r1, Email: "r1@example.com"},
				{UserID: r3, Email: "r3@example.com"},
				{UserID: r4, Email: "r4@example.com"},
			}, nil)

		m.notificationRepo.EXPECT().CreateDropNotification(ctx, mock.Anything).Return(nil)
		m.emailSender.EXPECT().SendDropAlert(mock.Anything, mock.Anything, mock.Anything).
			Return(nil).Times(4)
		m.notificationRepo.EXPECT().BatchCreateNotificationLogs(ctx, mock.Anything).Return(nil)
		m.notificationRepo.EXPECT().UpdateNotificationCounts(ctx, mock.Anything, 0, 0, 4, 4).Return(nil)

		result, err := svc.DispatchDropNotifications(ctx, detail.ID)
		require.NoError(t, err)

		assert.Equal(t, 4, result.EmailTargeted)
		assert.Equal(t, 4, result.EmailSent)
	})

	t.Run("missing drop aborts before any notification is attempted", func(t *testing.T) {
		t.Parallel()

		svc, m := createTestFanoutService(t)
		ctx := context.Background()
		dropID := uuid.New()

		m.dropRepo.EXPECT().FindDropDetail(ctx, dropID).
			Return(nil, repository.ErrDropNotFound)

		result, err := svc.DispatchDropNotifications(ctx, dropID)
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrDropNotFound)
		assert.Nil(t, result)
	})

	t.Run("one failing recipient does not abort the other emails", func(t *testing.T) {
		t.Parallel()

		svc, m := createTestFanoutService(t)
		ctx := context.Background()
		detail := testDropDetail(nil)

		followerIDs := []uuid.UUID{uuid.New()}
		r1, r2, r3 := uuid.New(), uuid.New(), uuid.New()

		m.dropRepo.EXPECT().FindDropDetail(ctx, detail.ID).Return(detail, nil)
		m.followRepo.EXPECT().FindFishermanFollowerIDs(ctx, detail.FishermanID).
			Return(nil, nil)
		m.followRepo.EXPECT().FindSpeciesFollowerIDs(ctx, detail.SpeciesIDList).
			Return(followerIDs, nil)
		m.subscriptionRepo.EXPECT().FindPremiumPlusRecipients(ctx, followerIDs).
			Return([]*entity.EmailRecipient{
				{UserID: r1, Email: "r1@example.com"},
				{UserID: r2, Email: "bounce@example.com"},
				{UserID: r3, Email: "r3@example.com"},
			}, nil)

		m.notificationRepo.EXPECT().CreateDropNotification(ctx, mock.Anything).Return(nil)
		m.emailSender.EXPECT().SendDropAlert(mock.Anything, "r1@example.com", mock.Anything).Return(nil)
		m.emailSender.EXPECT().SendDropAlert(mock.Anything, "bounce@example.com", mock.Anything).
			Return(assert.AnError)
		m.emailSender.EXPECT().SendDropAlert(mock.Anything, "r3@example.com", mock.Anything).Return(nil)

		var persistedLogs []*entity.NotificationLog
		m.notificationRepo.EXPECT().BatchCreateNotificationLogs(ctx, mock.Anything).
			Run(func(_ context.Context, logs []*entity.NotificationLog) {
				persistedLogs = logs
			}).
			Return(nil)
		m.notificationRepo.EXPECT().UpdateNotificationCounts(ctx, mock.Anything, 0, 0, 3, 2).Return(nil)

		result, err := svc.DispatchDropNotifications(ctx, detail.ID)
		require.NoError(t, err)

		assert.Equal(t, 3, result.EmailTargeted)
		assert.Equal(t, 2, result.EmailSent)

		failed := 0
		for _, log := range persistedLogs {
			if log.Status == "failed" {
				failed++
				assert.Equal(t, entity.ChannelEmail, log.Channel)
				assert.Equal(t, r2, log.UserID)
			}
		}
		assert.Equal(t, 1, failed)
	})

	t.Run("invalid tokens are retired after the push batch", func(t *testing.T) {
		t.Parallel()

		svc, m := createTestFanoutService(t)
		ctx := context.Background()
		detail := testDropDetail(nil)

		u1, u2 := uuid.New(), uuid.New()
		staleRegID := uuid.New()

		m.dropRepo.EXPECT().FindDropDetail(ctx, detail.ID).Return(detail, nil)
		m.followRepo.EXPECT().FindFishermanFollowerIDs(ctx, detail.FishermanID).
			Return([]uuid.UUID{u1, u2}, nil)
		m.followRepo.EXPECT().FindSpeciesFollowerIDs(ctx, detail.SpeciesIDList).
			Return(nil, nil)

		m.notificationRepo.EXPECT().CreateDropNotification(ctx, mock.Anything).Return(nil)
		m.deviceRepo.EXPECT().FindActiveForUsers(ctx, mock.Anything).
			Return([]*entity.PushRegistration{
				{ID: uuid.New(), UserID: u1, FCMToken: "token-live", IsActive: true},
				{ID: staleRegID, UserID: u2, FCMToken: "token-stale", IsActive: true},
			}, nil)
		m.pushSender.EXPECT().SendBatch(ctx, mock.Anything, mock.Anything).
			Return(&service.BatchResult{
				SuccessCount:  1,
				FailureCount:  1,
				InvalidTokens: []string{"token-stale"},
			}, nil)
		m.deviceRepo.EXPECT().DeleteRegistration(ctx, staleRegID).Return(nil)

		m.notificationRepo.EXPECT().BatchCreateNotificationLogs(ctx, mock.Anything).Return(nil)
		m.notificationRepo.EXPECT().UpdateNotificationCounts(ctx, mock.Anything, 2, 1, 0, 0).Return(nil)

		result, err := svc.DispatchDropNotifications(ctx, detail.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, result.PushSent)
	})

	t.Run("losing the ledger does not block delivery", func(t *testing.T) {
		t.Parallel()

		svc, m := createTestFanoutService(t)
		ctx := context.Background()
		detail := testDropDetail(nil)

		u1 := uuid.New()

		m.dropRepo.EXPECT().FindDropDetail(ctx, detail.ID).Return(detail, nil)
		m.followRepo.EXPECT().FindFishermanFollowerIDs(ctx, detail.FishermanID).
			Return([]uuid.UUID{u1}, nil)
		m.followRepo.EXPECT().FindSpeciesFollowerIDs(ctx, detail.SpeciesIDList).
			Return(nil, nil)

		m.notificationRepo.EXPECT().CreateDropNotification(ctx, mock.Anything).
			Return(assert.AnError)

		// No BatchCreateNotificationLogs or UpdateNotificationCounts after a
		// failed report insert, but delivery still runs.
		m.deviceRepo.EXPECT().FindActiveForUsers(ctx, mock.Anything).
			Return([]*entity.PushRegistration{
				{ID: uuid.New(), UserID: u1, FCMToken: "token-1", IsActive: true},
			}, nil)
		m.pushSender.EXPECT().SendBatch(ctx, mock.Anything, mock.Anything).
			Return(&service.BatchResult{SuccessCount: 1}, nil)

		result, err := svc.DispatchDropNotifications(ctx, detail.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, result.PushSent)
	})

	t.Run("email alert lists at most three species", func(t *testing.T) {
		t.Parallel()

		svc, m := createTestFanoutService(t)
		ctx := context.Background()
		detail := testDropDetail(nil)
		detail.SpeciesNames = []string{"Bar", "Lieu jaune", "Sole", "Merlu", "Saint-Pierre"}

		followerIDs := []uuid.UUID{uuid.New()}
		r1 := uuid.New()

		m.dropRepo.EXPECT().FindDropDetail(ctx, detail.ID).Return(detail, nil)
		m.followRepo.EXPECT().FindFishermanFollowerIDs(ctx, detail.FishermanID).
			Return(nil, nil)
		m.followRepo.EXPECT().FindSpeciesFollowerIDs(ctx, detail.SpeciesIDList).
			Return(followerIDs, nil)
		m.subscriptionRepo.EXPECT().FindPremiumPlusRecipients(ctx, followerIDs).
			Return([]*entity.EmailRecipient{{UserID: r1, Email: "r1@example.com"}}, nil)

		m.notificationRepo.EXPECT().CreateDropNotification(ctx, mock.Anything).Return(nil)

		var capturedAlert *service.DropAlertEmail
		m.emailSender.EXPECT().SendDropAlert(mock.Anything, "r1@example.com", mock.Anything).
			Run(func(_ context.Context, _ string, alert *service.DropAlertEmail) {
				capturedAlert = alert
			}).
			Return(nil)

		m.notificationRepo.EXPECT().BatchCreateNotificationLogs(ctx, mock.Anything).Return(nil)
		m.notificationRepo.EXPECT().UpdateNotificationCounts(ctx, mock.Anything, 0, 0, 1, 1).Return(nil)

		_, err := svc.DispatchDropNotifications(ctx, detail.ID)
		require.NoError(t, err)

		require.NotNil(t, capturedAlert)
		assert.Equal(t, []string{"Bar", "Lieu jaune", "Sole"}, capturedAlert.SpeciesNames)
		assert.Equal(t, "https://quaidirect.fr/drops/"+detail.ID.String(), capturedAlert.DropURL)
	})
}

func TestFanoutService_NoRecipients(t *testing.T) {
	t.Parallel()

	svc, m := createTestFanoutService(t)
	ctx := context.Background()
	detail := testDropDetail(nil)

	m.dropRepo.EXPECT().FindDropDetail(ctx, detail.ID).Return(detail, nil)
	m.followRepo.EXPECT().FindFishermanFollowerIDs(ctx, detail.FishermanID).
		Return(nil, nil)
	m.followRepo.EXPECT().FindSpeciesFollowerIDs(ctx, detail.SpeciesIDList).
		Return(nil, nil)

	m.notificationRepo.EXPECT().CreateDropNotification(ctx, mock.Anything).Return(nil)
	m.notificationRepo.EXPECT().BatchCreateNotificationLogs(ctx, mock.Anything).Return(nil)
	m.notificationRepo.EXPECT().UpdateNotificationCounts(ctx, mock.Anything, 0, 0, 0, 0).Return(nil)

	result, err := svc.DispatchDropNotifications(ctx, detail.ID)
	require.NoError(t, err)

	assert.Zero(t, result.PushTargeted)
	assert.Zero(t, result.PushSent)
	assert.Zero(t, result.EmailTargeted)
	assert.Zero(t, result.EmailSent)
}
