package service

import (
	"context"

	"github.com/google/uuid"
)

// DropEvent is the message published when a drop goes live. The worker
// consumes it and triggers the notification fan-out.
type DropEvent struct {
	RequestID string    `json:"request_id"`
	DropID    uuid.UUID `json:"drop_id"`
}

// EventPublisher defines the interface for publishing drop events to the
// asynchronous processing pipeline.
type EventPublisher interface {
	// PublishDropEvent enqueues a drop event for asynchronous fan-out.
	PublishDropEvent(ctx context.Context, event *DropEvent) error

	// Close releases publisher resources.
	Close() error
}
