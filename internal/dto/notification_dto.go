package dto

import "github.com/moodmate/moodmate-backend/internal/models"

type RegisterTokenRequest struct {
	Token string `json:"token"`
}

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unread_count"`
}

// UpdateSettingsRequest uses pointers so absent fields leave the stored
// value untouched.
type UpdateSettingsRequest struct {
	NotificationsEmail        *bool   `json:"notifications_email"`
	NotificationsPush         *bool   `json:"notifications_push"`
	NotificationsMoodReminder *bool   `json:"notifications_mood_reminder"`
	NotificationsWeeklyReport *bool   `json:"notifications_weekly_report"`
	MoodReminderTime          *string `json:"mood_reminder_time"`
}

type JobRunResponse struct {
	Job  string `json:"job"`
	Sent int    `json:"sent"`
}
