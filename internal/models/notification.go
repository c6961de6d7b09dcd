package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification is an in-app notification record. Created by the
// dispatcher's in-app channel; only the read flag is ever mutated.
type Notification struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string         `gorm:"size:255" json:"title"`
	Message   string         `gorm:"type:text" json:"message"`
	Type      string         `gorm:"size:50;index" json:"type"`
	Priority  string         `gorm:"size:20;default:'medium'" json:"priority"`
	Read      bool           `gorm:"default:false" json:"read"`
	ActionURL string         `gorm:"size:500" json:"action_url,omitempty"`
	Metadata  datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
}

// NotificationLog is the append-only audit trail: one row per successful
// channel send. Never read back by the engine itself.
type NotificationLog struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	NotificationType string         `gorm:"size:50;not null" json:"notification_type"`
	Channel          string         `gorm:"size:20;not null" json:"channel"`
	Data             datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"data"`
	SentAt           time.Time      `gorm:"not null;index" json:"sent_at"`
}

// FCMToken is a registered push device token. Zero or more per user;
// owned by the device-registration flow.
type FCMToken struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"type:text;not null;uniqueIndex" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
