package model

import (
	"time"

	"github.com/google/uuid"
)

// DropNotificationModel is the GORM-specific struct for the 'drop_notifications' table.
// It records one fan-out run for a drop.
type DropNotificationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DropID        uuid.UUID `gorm:"type:uuid;not null;index"`
	FishermanID   uuid.UUID `gorm:"type:uuid;not null;index"`
	PushTargeted  int       `gorm:"not null;default:0"`
	PushSent      int       `gorm:"not null;default:0"`
	EmailTargeted int       `gorm:"not null;default:0"`
	EmailSent     int       `gorm:"not null;default:0"`
	StartedAt     time.Time `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DropNotificationModel) TableName() string {
	return "drop_notifications"
}

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// One row per recipient per channel per fan-out run.
type NotificationLogModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Channel        string    `gorm:"type:varchar(20);not null"`
	Status         string    `gorm:"type:varchar(50);not null"`
	ErrorMessage   string    `gorm:"type:text"`
	SentAt         time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
