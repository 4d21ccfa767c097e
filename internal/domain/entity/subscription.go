// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionTier represents a user's paid plan level.
type SubscriptionTier string

const (
	// TierFree is the default, unpaid tier.
	TierFree SubscriptionTier = "free"
	// TierPremium is the entry paid tier.
	TierPremium SubscriptionTier = "premium"
	// TierPremiumPlus is the top paid tier; required for species email alerts.
	TierPremiumPlus SubscriptionTier = "premium_plus"
)

// SubscriptionStatus represents the billing state of a subscription.
type SubscriptionStatus string

const (
	// StatusActive indicates a paid, current subscription.
	StatusActive SubscriptionStatus = "active"
	// StatusTrialing indicates a subscription inside its trial period.
	StatusTrialing SubscriptionStatus = "trialing"
	// StatusCanceled indicates a subscription that has been canceled.
	StatusCanceled SubscriptionStatus = "canceled"
	// StatusPastDue indicates a subscription with a failed payment.
	StatusPastDue SubscriptionStatus = "past_due"
)

// Entitled reports whether the status grants access to paid perks.
func (s SubscriptionStatus) Entitled() bool {
	return s == StatusActive || s == StatusTrialing
}

// UserSubscription represents a user's billing subscription record.
type UserSubscription struct {
	ID        uuid.UUID          `json:"id"`         // The Global Unique Identifier (GUID) for the subscription.
	UserID    uuid.UUID          `json:"user_id"`    // The ID of the subscribed user.
	Tier      SubscriptionTier   `json:"tier"`       // Plan level (free, premium, premium_plus).
	Status    SubscriptionStatus `json:"status"`     // Billing state (active, trialing, canceled, past_due).
	CreatedAt time.Time          `json:"created_at"` // Timestamp of when the subscription was created.
	UpdatedAt time.Time          `json:"updated_at"` // Timestamp of the last modification.
}

// EmailRecipient is a user bundled with the email address to deliver to.
// Produced by the premium-plus audience query in one join to avoid N+1 lookups.
type EmailRecipient struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}
