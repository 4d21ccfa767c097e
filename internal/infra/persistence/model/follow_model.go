package model

import (
	"time"

	"github.com/google/uuid"
)

// FishermanFollowModel is the GORM-specific struct for the 'fisherman_follows' table.
type FishermanFollowModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_fisherman_follows_user_fisherman"`
	FishermanID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_fisherman_follows_user_fisherman"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FishermanFollowModel) TableName() string {
	return "fisherman_follows"
}

// PortFollowModel is the GORM-specific struct for the 'port_follows' table.
type PortFollowModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_port_follows_user_port"`
	PortID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_port_follows_user_port"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PortFollowModel) TableName() string {
	return "port_follows"
}

// SpeciesFollowModel is the GORM-specific struct for the 'species_follows' table.
type SpeciesFollowModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_species_follows_user_species"`
	SpeciesID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_species_follows_user_species"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SpeciesFollowModel) TableName() string {
	return "species_follows"
}
