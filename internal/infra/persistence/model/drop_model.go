package model

import (
	"time"

	"github.com/google/uuid"
)

// DropModel is the GORM-specific struct for the 'drops' table.
// It represents a scheduled fish-sale event published by a fisherman.
type DropModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FishermanID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title           string     `gorm:"type:varchar(255);not null"`
	SaleStartAt     time.Time  `gorm:"not null"`
	Premium         bool       `gorm:"not null;default:false"`
	Status          string     `gorm:"type:varchar(50);not null;default:'draft';index"`
	VisibleAt       time.Time  `gorm:"not null"`
	PublicVisibleAt time.Time  `gorm:"not null"`
	LocationKind    string     `gorm:"type:varchar(50);not null"`
	PortID          *uuid.UUID `gorm:"type:uuid;index"`
	SalePointID     *uuid.UUID `gorm:"type:uuid;index"`
	TotalSent       int        `gorm:"not null;default:0"`
	TotalFailed     int        `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Offers []DropOfferModel `gorm:"foreignKey:DropID"`
}

// TableName explicitly sets the table name for GORM.
func (DropModel) TableName() string {
	return "drops"
}

// DropOfferModel is the GORM-specific struct for the 'drop_offers' join table.
// It links a drop to one offered species.
type DropOfferModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DropID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_drop_offers_drop_species"`
	SpeciesID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_drop_offers_drop_species"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DropOfferModel) TableName() string {
	return "drop_offers"
}
