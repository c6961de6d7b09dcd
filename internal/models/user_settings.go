package models

import (
	"time"

	"github.com/google/uuid"
)

// UserSettings holds per-user notification preferences. One row per user,
// created at registration. When no row exists every channel is treated as
// enabled (opt-out semantics); the two job flags additionally gate the
// daily reminder and weekly report batch jobs.
type UserSettings struct {
	ID                        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID                    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	NotificationsEmail        bool      `gorm:"default:true" json:"notifications_email"`
	NotificationsPush         bool      `gorm:"default:true" json:"notifications_push"`
	NotificationsMoodReminder bool      `gorm:"default:true" json:"notifications_mood_reminder"`
	NotificationsWeeklyReport bool      `gorm:"default:true" json:"notifications_weekly_report"`
	MoodReminderTime          string    `gorm:"size:8;default:'20:00:00'" json:"mood_reminder_time"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}
