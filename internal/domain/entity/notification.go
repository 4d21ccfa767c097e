// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationChannel identifies the delivery channel of a ledger entry.
type NotificationChannel string

const (
	// ChannelPush is the FCM push channel.
	ChannelPush NotificationChannel = "push"
	// ChannelEmail is the transactional email channel.
	ChannelEmail NotificationChannel = "email"
)

// DropNotification represents one fan-out run for a drop: the durable report
// of how many recipients were targeted and reached on each channel.
type DropNotification struct {
	ID            uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the fan-out run.
	DropID        uuid.UUID `json:"drop_id"`        // The ID of the drop that was announced.
	FishermanID   uuid.UUID `json:"fisherman_id"`   // The ID of the fisherman owning the drop.
	PushTargeted  int       `json:"push_targeted"`  // Devices resolved for the push audience.
	PushSent      int       `json:"push_sent"`      // Push notifications successfully sent.
	EmailTargeted int       `json:"email_targeted"` // Premium recipients resolved for the email audience.
	EmailSent     int       `json:"email_sent"`     // Emails successfully handed to the provider.
	StartedAt     time.Time `json:"started_at"`     // Timestamp of when the fan-out started.
	CreatedAt     time.Time `json:"created_at"`     // Timestamp of when this record was created.
	UpdatedAt     time.Time `json:"updated_at"`     // Timestamp of the last modification.
}

// NotificationLog represents a ledger entry for a single notification sent to
// one recipient over one channel.
type NotificationLog struct {
	ID             uuid.UUID           `json:"id"`              // The Global Unique Identifier (GUID) for the log entry.
	NotificationID uuid.UUID           `json:"notification_id"` // The fan-out run this log belongs to.
	UserID         uuid.UUID           `json:"user_id"`         // The recipient user.
	Channel        NotificationChannel `json:"channel"`         // Delivery channel (push, email).
	Status         string              `json:"status"`          // The delivery status (sent, failed).
	ErrorMessage   string              `json:"error_message"`   // Error message if the delivery failed.
	SentAt         time.Time           `json:"sent_at"`         // Timestamp of when the delivery was attempted.
}
