package notify

import (
	"encoding/json"
	"fmt"

	"github.com/moodmate/moodmate-backend/internal/models"
)

// EmailContent is a rendered email message.
type EmailContent struct {
	Subject string
	Body    string
}

// PushContent is a rendered push message.
type PushContent struct {
	Title string
	Body  string
	Icon  string
	Data  map[string]string
}

// InAppContent is a rendered in-app notification.
type InAppContent struct {
	Title   string
	Message string
}

// TemplateEngine renders channel-specific content for each notification
// type. Rendering is a pure function of (type, payload, user).
type TemplateEngine struct {
	frontendURL string
}

func NewTemplateEngine(frontendURL string) *TemplateEngine {
	return &TemplateEngine{frontendURL: frontendURL}
}

// Email renders the subject and HTML body for a notification type.
func (e *TemplateEngine) Email(t NotificationType, p Payload, user *models.User) EmailContent {
	name := user.Name
	if name == "" {
		name = user.Email
	}

	switch t {
	case TypeMoodReminder:
		return EmailContent{
			Subject: "Time to log your mood!",
			Body: e.wrap(fmt.Sprintf(`<h2>Hi %s,</h2>
<p>It's time to check in with yourself! How are you feeling today?</p>
<p><strong>Take a moment to reflect on your day and log your mood.</strong></p>
%s
<p>Regular mood tracking helps you understand your emotional patterns and build better mental health habits.</p>`,
				name, e.button("Log My Mood", "/log-mood"))),
		}

	case TypeAchievement:
		return EmailContent{
			Subject: "Achievement Unlocked!",
			Body: e.wrap(fmt.Sprintf(`<h2>Congratulations, %s!</h2>
<p>You've earned a new achievement:</p>
<h3>%s</h3>
<p>%s</p>
<p>Keep up the excellent work! Your commitment to mental health tracking is making a real difference.</p>
%s`,
				name, p.Title, p.Message, e.button("View Achievements", "/profile"))),
		}

	case TypeWeeklyReport:
		summary := ""
		if r := p.Report; r != nil {
			summary = fmt.Sprintf(`<h3>This Week's Highlights</h3>
<ul>
<li>You logged %d mood entries</li>
<li>Average mood score: %.0f%%</li>
<li>Positive days: %d</li>
<li>Current streak: %d days</li>
</ul>`, r.TotalEntries, r.AverageScore*100, r.PositiveDays, r.Streak)
			if len(r.Insights) > 0 {
				summary += fmt.Sprintf(`<h4>AI Insights</h4><p>%s</p>`, r.Insights[0].Message)
			}
		}
		return EmailContent{
			Subject: "Your Weekly Mood Report",
			Body: e.wrap(fmt.Sprintf(`<h2>Hi %s,</h2>
<p>Here's your weekly mood summary:</p>
%s
%s
<p>Keep tracking your mood to build better mental health habits!</p>`,
				name, summary, e.button("View Full Report", "/dashboard"))),
		}

	case TypeCrisisAlert:
		return EmailContent{
			Subject: "Mental Health Resources - You're Not Alone",
			Body: e.wrap(fmt.Sprintf(`<h2>Hi %s,</h2>
<p>We noticed you might be going through a difficult time. Remember, you're not alone, and help is available.</p>
<h3>Immediate Support</h3>
<ul>
<li><strong>National Suicide Prevention Lifeline:</strong> 988</li>
<li><strong>Crisis Text Line:</strong> Text HOME to 741741</li>
<li><strong>Emergency Services:</strong> 911</li>
</ul>
<p>Consider reaching out to a mental health professional. They can provide the support and guidance you need.</p>
<p>Your mental health matters. Please don't hesitate to reach out for help.</p>`, name)),
		}

	default:
		title := p.Title
		if title == "" {
			title = "Notification from MoodMate"
		}
		message := p.Message
		if message == "" {
			message = "You have a new notification."
		}
		return EmailContent{
			Subject: title,
			Body:    fmt.Sprintf("<html><body><h2>%s</h2><p>%s</p></body></html>", title, message),
		}
	}
}

// Push renders the push payload. The shape is shared across types; the
// type travels in the data map for client-side routing.
func (e *TemplateEngine) Push(t NotificationType, p Payload) PushContent {
	title := p.Title
	if title == "" {
		title = "MoodMate"
	}
	body := p.Message
	if body == "" {
		body = "You have a new notification"
	}

	data := map[string]string{
		"type": string(t),
	}
	if p.ActionURL != "" {
		data["action_url"] = p.ActionURL
	}
	if len(p.Metadata) > 0 {
		if b, err := json.Marshal(p.Metadata); err == nil {
			data["metadata"] = string(b)
		}
	}

	return PushContent{
		Title: title,
		Body:  body,
		Icon:  "/icon-192x192.png",
		Data:  data,
	}
}

// InApp renders the in-app title and message.
func (e *TemplateEngine) InApp(t NotificationType, p Payload) InAppContent {
	return InAppContent{
		Title:   p.Title,
		Message: p.Message,
	}
}

func (e *TemplateEngine) wrap(inner string) string {
	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
<h1 style="color: #4F46E5; text-align: center;">MoodMate</h1>
%s
<p>Best regards,<br>The MoodMate Team</p>
<hr style="border: none; border-top: 1px solid #E5E7EB;">
<p style="font-size: 12px; color: #6B7280; text-align: center;">
You can manage your notification preferences in your account settings.
</p>
</div>
</body>
</html>`, inner)
}

func (e *TemplateEngine) button(label, path string) string {
	return fmt.Sprintf(`<p style="text-align: center;"><a href="%s%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">%s</a></p>`,
		e.frontendURL, path, label)
}
