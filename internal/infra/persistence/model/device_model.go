package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PushRegistrationModel is the GORM-specific struct for the 'push_registrations' table.
// It represents a user's device registered for push notifications.
type PushRegistrationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_push_registrations_user_device"`
	FCMToken  string    `gorm:"type:varchar(255);not null"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_push_registrations_user_device"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PushRegistrationModel) TableName() string {
	return "push_registrations"
}
