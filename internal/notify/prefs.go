package notify

import (
	"context"

	"github.com/google/uuid"
	"github.com/moodmate/moodmate-backend/internal/models"
)

// SettingsStore resolves a user's notification settings. A missing row
// is reported as (nil, nil).
type SettingsStore interface {
	Settings(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error)
}

// PreferenceGate decides whether a channel is enabled for a user. Users
// without a settings row have every channel enabled: preferences are
// opt-out, not opt-in.
type PreferenceGate struct {
	settings SettingsStore
}

func NewPreferenceGate(settings SettingsStore) *PreferenceGate {
	return &PreferenceGate{settings: settings}
}

// ShouldSend reports whether the given channel is enabled for the user.
// The in-app channel has no toggle and is always allowed.
func (g *PreferenceGate) ShouldSend(ctx context.Context, userID uuid.UUID, ch Channel, t NotificationType) (bool, error) {
	if ch == ChannelInApp {
		return true, nil
	}

	s, err := g.settings.Settings(ctx, userID)
	if err != nil {
		return false, err
	}
	if s == nil {
		return true, nil
	}

	switch ch {
	case ChannelEmail:
		return s.NotificationsEmail, nil
	case ChannelPush:
		return s.NotificationsPush, nil
	default:
		return false, nil
	}
}
