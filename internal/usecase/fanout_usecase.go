// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// FanoutResult summarizes one fan-out run across both delivery channels.
type FanoutResult struct {
	NotificationID uuid.UUID `json:"notification_id"`
	PushTargeted   int       `json:"push_targeted"`
	PushSent       int       `json:"push_sent"`
	EmailTargeted  int       `json:"email_targeted"`
	EmailSent      int       `json:"email_sent"`
}

// FanoutUsecase defines the interface for the drop notification fan-out.
type FanoutUsecase interface {
	// DispatchDropNotifications resolves the audience of a published drop and
	// delivers push notifications and premium email alerts. Channel-level
	// partial failures are absorbed into the counts; only upstream failures
	// (drop lookup, audience resolution) surface as errors.
	DispatchDropNotifications(ctx context.Context, dropID uuid.UUID) (*FanoutResult, error)
}
