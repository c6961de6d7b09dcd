package notify

import (
	"testing"

	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestEmailTemplateGreetsByName(t *testing.T) {
	e := NewTemplateEngine("https://app.example.com")
	user := &models.User{Name: "Sam", Email: "sam@example.com"}

	content := e.Email(TypeMoodReminder, Payload{}, user)

	assert.Equal(t, "Time to log your mood!", content.Subject)
	assert.Contains(t, content.Body, "Hi Sam,")
	assert.Contains(t, content.Body, "https://app.example.com/log-mood")
}

func TestEmailTemplateFallsBackToEmailAddress(t *testing.T) {
	e := NewTemplateEngine("https://app.example.com")
	user := &models.User{Email: "sam@example.com"}

	content := e.Email(TypeMoodReminder, Payload{}, user)

	assert.Contains(t, content.Body, "Hi sam@example.com,")
}

func TestEmailTemplateWeeklyReport(t *testing.T) {
	e := NewTemplateEngine("https://app.example.com")
	user := &models.User{Name: "Sam"}
	payload := Payload{
		Report: &WeeklyReport{
			TotalEntries: 5,
			AverageScore: 0.8,
			PositiveDays: 4,
			Streak:       3,
		},
	}

	content := e.Email(TypeWeeklyReport, payload, user)

	assert.Equal(t, "Your Weekly Mood Report", content.Subject)
	assert.Contains(t, content.Body, "You logged 5 mood entries")
	assert.Contains(t, content.Body, "Average mood score: 80%")
	assert.Contains(t, content.Body, "Current streak: 3 days")
}

func TestEmailTemplateUnknownTypeEchoesPayload(t *testing.T) {
	e := NewTemplateEngine("https://app.example.com")
	user := &models.User{Name: "Sam"}

	content := e.Email(NotificationType("maintenance"), Payload{
		Title:   "Scheduled Maintenance",
		Message: "We'll be offline briefly tonight.",
	}, user)

	assert.Equal(t, "Scheduled Maintenance", content.Subject)
	assert.Contains(t, content.Body, "We'll be offline briefly tonight.")
}

func TestEmailTemplateUnknownTypeEmptyPayload(t *testing.T) {
	e := NewTemplateEngine("https://app.example.com")

	content := e.Email(NotificationType("maintenance"), Payload{}, &models.User{Name: "Sam"})

	assert.Equal(t, "Notification from MoodMate", content.Subject)
	assert.Contains(t, content.Body, "You have a new notification.")
}

func TestPushTemplateDefaults(t *testing.T) {
	e := NewTemplateEngine("https://app.example.com")

	content := e.Push(TypeMoodReminder, Payload{})

	assert.Equal(t, "MoodMate", content.Title)
	assert.Equal(t, "You have a new notification", content.Body)
	assert.Equal(t, "/icon-192x192.png", content.Icon)
	assert.Equal(t, "mood_reminder", content.Data["type"])
}

func TestPushTemplateCarriesActionURL(t *testing.T) {
	e := NewTemplateEngine("https://app.example.com")

	content := e.Push(TypeAchievement, Payload{
		Title:     "7-Day Streak",
		Message:   "You logged your mood 7 days in a row.",
		ActionURL: "/profile",
	})

	assert.Equal(t, "7-Day Streak", content.Title)
	assert.Equal(t, "/profile", content.Data["action_url"])
}

func TestInAppTemplateEchoesPayload(t *testing.T) {
	e := NewTemplateEngine("https://app.example.com")

	content := e.InApp(TypeAchievement, Payload{Title: "First Entry", Message: "Welcome aboard."})

	assert.Equal(t, "First Entry", content.Title)
	assert.Equal(t, "Welcome aboard.", content.Message)
}
