package impl

import (
	"context"

	"quaidirect/internal/domain/entity"
	domainerrors "quaidirect/internal/domain/errors"
	"quaidirect/internal/domain/repository"
	"quaidirect/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice creates or refreshes a push registration
func (s *deviceService) RegisterDevice(ctx context.Context, input *usecase.RegisterDeviceInput) (*entity.PushRegistration, error) {
	registration := &entity.PushRegistration{
		ID:       uuid.New(),
		UserID:   input.UserID,
		FCMToken: input.FCMToken,
		DeviceID: input.DeviceID,
		Platform: input.Platform,
		IsActive: true,
	}

	if err := s.deviceRepo.RegisterDevice(ctx, registration); err != nil {
		return nil, err
	}

	return registration, nil
}

// RemoveDevice deletes a push registration owned by the user
func (s *deviceService) RemoveDevice(ctx context.Context, userID, registrationID uuid.UUID) error {
	registrations, err := s.deviceRepo.FindByUser(ctx, userID)
	if err != nil {
		return err
	}

	// Ownership check: a user may only remove their own registrations.
	owned := false
	for _, registration := range registrations {
		if registration.ID == registrationID {
			owned = true

			break
		}
	}
	if !owned {
		return domainerrors.ErrRegistrationNotFound
	}

	return s.deviceRepo.DeleteRegistration(ctx, registrationID)
}

// ListDevices retrieves all active registrations of one user
func (s *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.PushRegistration, error) {
	return s.deviceRepo.FindByUser(ctx, userID)
}
