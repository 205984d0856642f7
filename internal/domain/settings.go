package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserSettings stores per-user notification preferences as an opaque JSON
// blob, upserted on save
type UserSettings struct {
	UserID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"userId"`
	Notifications datatypes.JSON `gorm:"type:jsonb" json:"notifications"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updatedAt"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

// UpdateSettingsRequest represents a settings save
type UpdateSettingsRequest struct {
	Notifications datatypes.JSON `json:"notifications" binding:"required"`
}
