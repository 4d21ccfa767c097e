// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"quaidirect/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository defines the interface for the fan-out report and
// per-recipient delivery ledger.
type NotificationRepository interface {
	// CreateDropNotification persists a new fan-out run record.
	CreateDropNotification(ctx context.Context, notification *entity.DropNotification) error

	// BatchCreateNotificationLogs persists ledger entries for a fan-out run.
	BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error

	// UpdateNotificationCounts stores the final per-channel counts of a run.
	UpdateNotificationCounts(ctx context.Context, id uuid.UUID, pushTargeted, pushSent, emailTargeted, emailSent int) error

	// FindNotificationsByFisherman retrieves fan-out runs for a fisherman
	// with pagination, newest first.
	FindNotificationsByFisherman(ctx context.Context, fishermanID uuid.UUID, limit, offset int) ([]*entity.DropNotification, error)
}
