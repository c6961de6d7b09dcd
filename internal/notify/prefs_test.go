package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceGateDefaultsToEnabled(t *testing.T) {
	gate := NewPreferenceGate(&fakeSettingsStore{settings: nil})

	ok, err := gate.ShouldSend(context.Background(), uuid.New(), ChannelEmail, TypeAchievement)
	require.NoError(t, err)
	assert.True(t, ok, "users without a settings row receive everything")
}

func TestPreferenceGateChannelToggles(t *testing.T) {
	gate := NewPreferenceGate(&fakeSettingsStore{settings: &models.UserSettings{
		NotificationsEmail: false,
		NotificationsPush:  true,
	}})

	email, err := gate.ShouldSend(context.Background(), uuid.New(), ChannelEmail, TypeAchievement)
	require.NoError(t, err)
	assert.False(t, email)

	push, err := gate.ShouldSend(context.Background(), uuid.New(), ChannelPush, TypeAchievement)
	require.NoError(t, err)
	assert.True(t, push)
}

func TestPreferenceGateInAppAlwaysAllowed(t *testing.T) {
	gate := NewPreferenceGate(&fakeSettingsStore{
		settings: &models.UserSettings{NotificationsEmail: false, NotificationsPush: false},
	})

	ok, err := gate.ShouldSend(context.Background(), uuid.New(), ChannelInApp, TypeCrisisAlert)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPreferenceGatePropagatesStoreError(t *testing.T) {
	gate := NewPreferenceGate(&fakeSettingsStore{err: errors.New("database unavailable")})

	ok, err := gate.ShouldSend(context.Background(), uuid.New(), ChannelEmail, TypeAchievement)
	assert.Error(t, err)
	assert.False(t, ok)
}
