package model

import (
	"time"

	"github.com/google/uuid"
)

// FishermanModel is the GORM-specific struct for the 'fishermen' table.
type FishermanModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DisplayName string    `gorm:"type:varchar(255);not null"`
	BoatName    string    `gorm:"type:varchar(255)"`
	Premium     bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FishermanModel) TableName() string {
	return "fishermen"
}

// PortModel is the GORM-specific struct for the 'ports' table.
type PortModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
}

// TableName explicitly sets the table name for GORM.
func (PortModel) TableName() string {
	return "ports"
}

// SalePointModel is the GORM-specific struct for the 'sale_points' table.
type SalePointModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FishermanID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Latitude    float64   `gorm:"type:decimal(10,8);not null"`
	Longitude   float64   `gorm:"type:decimal(11,8);not null"`
}

// TableName explicitly sets the table name for GORM.
func (SalePointModel) TableName() string {
	return "sale_points"
}

// SpeciesModel is the GORM-specific struct for the 'species' table.
type SpeciesModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CommonName string    `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (SpeciesModel) TableName() string {
	return "species"
}
