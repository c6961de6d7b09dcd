package notify

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/moodmate/moodmate-backend/internal/models"
)

// UserStore resolves a user record, needed for the email recipient and
// template greeting.
type UserStore interface {
	User(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// TokenStore lists a user's registered FCM device tokens.
type TokenStore interface {
	Tokens(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// NotificationStore persists in-app notifications and audit log rows.
type NotificationStore interface {
	InsertInApp(ctx context.Context, n *models.Notification) error
	InsertLog(ctx context.Context, l *models.NotificationLog) error
}

// Dispatcher fans a notification out across the requested channels.
// Channels run concurrently and fail independently; the overall result
// is the logical OR of the per-channel results. Callers that need to
// know which channel failed must consult the notification log.
type Dispatcher struct {
	users     UserStore
	tokens    TokenStore
	store     NotificationStore
	gate      *PreferenceGate
	templates *TemplateEngine
	email     EmailTransport
	push      PushTransport
	timeout   time.Duration
}

func NewDispatcher(
	users UserStore,
	tokens TokenStore,
	store NotificationStore,
	gate *PreferenceGate,
	templates *TemplateEngine,
	email EmailTransport,
	push PushTransport,
	timeout time.Duration,
) *Dispatcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Dispatcher{
		users:     users,
		tokens:    tokens,
		store:     store,
		gate:      gate,
		templates: templates,
		email:     email,
		push:      push,
		timeout:   timeout,
	}
}

// Dispatch sends a notification over the given channels and reports
// whether at least one channel succeeded. An empty channel list means
// in-app only.
func (d *Dispatcher) Dispatch(ctx context.Context, userID uuid.UUID, t NotificationType, p Payload, channels ...Channel) bool {
	if len(channels) == 0 {
		channels = []Channel{ChannelInApp}
	}

	results := make(chan bool, len(channels))
	var wg sync.WaitGroup
	for _, ch := range channels {
		wg.Add(1)
		go func(ch Channel) {
			defer wg.Done()
			switch ch {
			case ChannelEmail:
				results <- d.sendEmail(ctx, userID, t, p)
			case ChannelPush:
				results <- d.sendPush(ctx, userID, t, p)
			case ChannelInApp:
				results <- d.sendInApp(ctx, userID, t, p)
			default:
				slog.Warn("unknown notification channel", "channel", string(ch))
				results <- false
			}
		}(ch)
	}
	wg.Wait()
	close(results)

	success := false
	for ok := range results {
		success = success || ok
	}
	return success
}

func (d *Dispatcher) sendEmail(ctx context.Context, userID uuid.UUID, t NotificationType, p Payload) bool {
	if d.email == nil {
		return false
	}

	allowed, err := d.gate.ShouldSend(ctx, userID, ChannelEmail, t)
	if err != nil {
		slog.Error("email preference lookup failed", "user_id", userID.String(), "error", err)
		return false
	}
	if !allowed {
		return false
	}

	user, err := d.users.User(ctx, userID)
	if err != nil {
		slog.Error("email recipient lookup failed", "user_id", userID.String(), "error", err)
		return false
	}

	content := d.templates.Email(t, p, user)

	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	if err := d.email.Send(sendCtx, user.Email, content.Subject, content.Body); err != nil {
		slog.Error("email send failed", "user_id", userID.String(), "type", string(t), "error", err)
		return false
	}

	d.logSend(ctx, userID, t, ChannelEmail, p)
	return true
}

func (d *Dispatcher) sendPush(ctx context.Context, userID uuid.UUID, t NotificationType, p Payload) bool {
	if d.push == nil {
		return false
	}

	tokens, err := d.tokens.Tokens(ctx, userID)
	if err != nil {
		slog.Error("push token lookup failed", "user_id", userID.String(), "error", err)
		return false
	}
	if len(tokens) == 0 {
		return false
	}

	allowed, err := d.gate.ShouldSend(ctx, userID, ChannelPush, t)
	if err != nil {
		slog.Error("push preference lookup failed", "user_id", userID.String(), "error", err)
		return false
	}
	if !allowed {
		return false
	}

	content := d.templates.Push(t, p)

	// Every device gets its own send; one bad token must not block the
	// rest. The channel succeeds when at least one delivery does.
	var delivered atomic.Int64
	var wg sync.WaitGroup
	for _, token := range tokens {
		wg.Add(1)
		go func(token string) {
			defer wg.Done()
			sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
			defer cancel()
			if err := d.push.Send(sendCtx, token, content); err != nil {
				slog.Warn("push delivery failed", "user_id", userID.String(), "error", err)
				return
			}
			delivered.Add(1)
		}(token)
	}
	wg.Wait()

	if delivered.Load() == 0 {
		return false
	}

	d.logSend(ctx, userID, t, ChannelPush, p)
	return true
}

func (d *Dispatcher) sendInApp(ctx context.Context, userID uuid.UUID, t NotificationType, p Payload) bool {
	// In-app notifications are not gated by preferences: the record is
	// always created so the user sees it next time they open the app.
	content := d.templates.InApp(t, p)

	priority := p.Priority
	if priority == "" {
		priority = "medium"
	}

	n := &models.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     content.Title,
		Message:   content.Message,
		Type:      string(t),
		Priority:  priority,
		Read:      false,
		ActionURL: p.ActionURL,
		Metadata:  p.metadataJSON(),
		CreatedAt: time.Now(),
	}

	if err := d.store.InsertInApp(ctx, n); err != nil {
		slog.Error("in-app notification insert failed", "user_id", userID.String(), "type", string(t), "error", err)
		return false
	}
	return true
}

// logSend appends an audit row for a successful channel send. Audit
// write failures are logged and swallowed; the send already happened.
func (d *Dispatcher) logSend(ctx context.Context, userID uuid.UUID, t NotificationType, ch Channel, p Payload) {
	entry := &models.NotificationLog{
		ID:               uuid.New(),
		UserID:           userID,
		NotificationType: string(t),
		Channel:          string(ch),
		Data:             p.asJSON(),
		SentAt:           time.Now(),
	}
	if err := d.store.InsertLog(ctx, entry); err != nil {
		slog.Error("notification log insert failed", "user_id", userID.String(), "channel", string(ch), "error", err)
	}
}
