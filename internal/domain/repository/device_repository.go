// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"quaidirect/internal/domain/entity"
	"quaidirect/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for push-registration persistence.
var (
	// ErrRegistrationNotFound is returned when a push registration is not found.
	ErrRegistrationNotFound = errors.New("push registration not found")
)

// DeviceRepository defines the interface for push-registration database operations.
type DeviceRepository interface {
	// RegisterDevice creates or refreshes a push registration for a device.
	// An existing row for the same (user, device) pair gets its token updated.
	RegisterDevice(ctx context.Context, registration *entity.PushRegistration) error

	// FindActiveForUsers retrieves all active push registrations for a list
	// of user IDs. Used for batch fetching tokens during fan-out.
	FindActiveForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushRegistration, error)

	// DeleteRegistration removes a push registration (soft delete). Used for
	// user-initiated removal and for invalid-token cleanup.
	DeleteRegistration(ctx context.Context, id uuid.UUID) error

	// FindByUser retrieves all active registrations of one user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushRegistration, error)
}
