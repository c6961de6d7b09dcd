package notify

import (
	"encoding/json"

	"github.com/moodmate/moodmate-backend/internal/analytics"
	"gorm.io/datatypes"
)

// Channel is a delivery mechanism for a notification.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
	ChannelInApp Channel = "in_app"
)

// NotificationType selects the template used for rendering. Unknown
// values fall through to a generic template that echoes the payload.
type NotificationType string

const (
	TypeMoodReminder NotificationType = "mood_reminder"
	TypeAchievement  NotificationType = "achievement"
	TypeWeeklyReport NotificationType = "weekly_report"
	TypeCrisisAlert  NotificationType = "crisis_alert"
)

// Payload carries the user-facing content of a notification plus any
// type-specific data.
type Payload struct {
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Priority  string                 `json:"priority,omitempty"`
	ActionURL string                 `json:"action_url,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`

	// Report is set for weekly_report notifications.
	Report *WeeklyReport `json:"report,omitempty"`
}

// WeeklyReport is the 7-day aggregate attached to weekly report
// notifications.
type WeeklyReport struct {
	TotalEntries int                  `json:"total_entries"`
	AverageScore float64              `json:"average_score"`
	PositiveDays int                  `json:"positive_days"`
	Streak       int                  `json:"streak"`
	Insights     []analytics.Insight `json:"insights,omitempty"`
}

// asJSON serializes the payload for the audit log and in-app metadata.
func (p Payload) asJSON() datatypes.JSON {
	b, err := json.Marshal(p)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(b)
}

func (p Payload) metadataJSON() datatypes.JSON {
	if len(p.Metadata) == 0 {
		return datatypes.JSON([]byte("{}"))
	}
	b, err := json.Marshal(p.Metadata)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(b)
}
