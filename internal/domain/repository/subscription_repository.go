// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"quaidirect/internal/domain/entity"
	"quaidirect/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository defines the interface for billing-subscription
// database operations.
type SubscriptionRepository interface {
	// FindPremiumPlusRecipients filters the given user IDs down to those
	// holding an active-or-trialing premium-plus subscription and returns
	// them bundled with their email address in one join to avoid N+1 lookups.
	FindPremiumPlusRecipients(ctx context.Context, userIDs []uuid.UUID) ([]*entity.EmailRecipient, error)

	// FindSubscriptionByUser retrieves a user's subscription record.
	FindSubscriptionByUser(ctx context.Context, userID uuid.UUID) (*entity.UserSubscription, error)
}
