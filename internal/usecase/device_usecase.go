package usecase

import (
	"context"

	"quaidirect/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput carries the fields needed to register a device for push.
type RegisterDeviceInput struct {
	UserID   uuid.UUID `json:"user_id"`
	FCMToken string    `json:"fcm_token"`
	DeviceID string    `json:"device_id"`
	Platform string    `json:"platform"`
}

// DeviceUsecase defines the interface for push registration use cases
type DeviceUsecase interface {
	// RegisterDevice creates or refreshes a push registration
	RegisterDevice(ctx context.Context, input *RegisterDeviceInput) (*entity.PushRegistration, error)

	// RemoveDevice deletes a push registration owned by the user
	RemoveDevice(ctx context.Context, userID, registrationID uuid.UUID) error

	// ListDevices retrieves all active registrations of one user
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.PushRegistration, error)
}
