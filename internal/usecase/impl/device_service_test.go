package impl

import (
	"context"
	"testing"

	"quaidirect/internal/domain/entity"
	domainerrors "quaidirect/internal/domain/errors"
	mockRepo "quaidirect/internal/mocks/repository"
	"quaidirect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_RegisterDevice(t *testing.T) {
	t.Parallel()

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo)
	ctx := context.Background()
	userID := uuid.New()

	var persisted *entity.PushRegistration
	deviceRepo.EXPECT().RegisterDevice(ctx, mock.Anything).
		Run(func(_ context.Context, registration *entity.PushRegistration) {
			persisted = registration
		}).
		Return(nil)

	registration, err := svc.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
		UserID:   userID,
		FCMToken: "fcm-token-abc",
		DeviceID: "device-42",
		Platform: "ios",
	})
	require.NoError(t, err)

	require.NotNil(t, persisted)
	assert.Equal(t, userID, registration.UserID)
	assert.Equal(t, "fcm-token-abc", registration.FCMToken)
	assert.True(t, registration.IsActive)
}

func TestDeviceService_RemoveDevice(t *testing.T) {
	t.Parallel()

	t.Run("removes a registration owned by the user", func(t *testing.T) {
		t.Parallel()

		deviceRepo := mockRepo.NewMockDeviceRepository(t)
		svc := NewDeviceService(deviceRepo)
		ctx := context.Background()
		userID := uuid.New()
		registrationID := uuid.New()

		deviceRepo.EXPECT().FindByUser(ctx, userID).
			Return([]*entity.PushRegistration{
				{ID: registrationID, UserID: userID},
				{ID: uuid.New(), UserID: userID},
			}, nil)
		deviceRepo.EXPECT().DeleteRegistration(ctx, registrationID).Return(nil)

		assert.NoError(t, svc.RemoveDevice(ctx, userID, registrationID))
	})

	t.Run("refuses to remove a registration owned by someone else", func(t *testing.T) {
		t.Parallel()

		deviceRepo := mockRepo.NewMockDeviceRepository(t)
		svc := NewDeviceService(deviceRepo)
		ctx := context.Background()
		userID := uuid.New()

		deviceRepo.EXPECT().FindByUser(ctx, userID).
			Return([]*entity.PushRegistration{
				{ID: uuid.New(), UserID: userID},
			}, nil)

		err := svc.RemoveDevice(ctx, userID, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotFound)
	})
}

func TestDeviceService_ListDevices(t *testing.T) {
	t.Parallel()

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo)
	ctx := context.Background()
	userID := uuid.New()

	registrations := []*entity.PushRegistration{
		{ID: uuid.New(), UserID: userID, Platform: "android", IsActive: true},
	}
	deviceRepo.EXPECT().FindByUser(ctx, userID).Return(registrations, nil)

	got, err := svc.ListDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, registrations, got)
}
