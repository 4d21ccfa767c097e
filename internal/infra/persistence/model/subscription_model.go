package model

import (
	"time"

	"github.com/google/uuid"
)

// UserSubscriptionModel is the GORM-specific struct for the 'user_subscriptions' table.
type UserSubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Tier      string    `gorm:"type:varchar(50);not null;default:'free'"`
	Status    string    `gorm:"type:varchar(50);not null;default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserSubscriptionModel) TableName() string {
	return "user_subscriptions"
}

// UserModel is the GORM-specific struct for the 'users' table. Only the columns
// this service reads are mapped; account management lives in another service.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	DisplayName string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
