package profile

import (
	"time"

	"gorm.io/datatypes"
)

// ProfileModel represents a profile row in the sqlite database
type ProfileModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex"`
	Targets   datatypes.JSON
	TimeoutMS int
	Backend   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName implements gorm's tabler interface
func (ProfileModel) TableName() string {
	return "profiles"
}
