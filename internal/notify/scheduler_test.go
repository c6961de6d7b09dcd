package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMoodStore struct {
	logged  map[uuid.UUID]bool
	entries map[uuid.UUID][]models.MoodLog
	err     error
}

func (f *fakeMoodStore) HasEntrySince(_ context.Context, userID uuid.UUID, _ time.Time) (bool, error) {
	return f.logged[userID], f.err
}

func (f *fakeMoodStore) EntriesSince(_ context.Context, userID uuid.UUID, _ time.Time) ([]models.MoodLog, error) {
	return f.entries[userID], f.err
}

type fakeSettingsLister struct {
	reminder []uuid.UUID
	weekly   []uuid.UUID
	err      error
}

func (f *fakeSettingsLister) ReminderUsers(_ context.Context) ([]uuid.UUID, error) {
	return f.reminder, f.err
}

func (f *fakeSettingsLister) WeeklyReportUsers(_ context.Context) ([]uuid.UUID, error) {
	return f.weekly, f.err
}

func newSchedulerFixture(moods *fakeMoodStore, lister *fakeSettingsLister) (*Scheduler, *dispatcherFixture) {
	f := newDispatcherFixture()
	s := NewScheduler(f.d, moods, lister)
	s.now = func() time.Time {
		return time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	}
	return s, f
}

func TestRunDailyRemindersSkipsUsersWhoLogged(t *testing.T) {
	loggedUser := uuid.New()
	quietUser := uuid.New()

	moods := &fakeMoodStore{logged: map[uuid.UUID]bool{loggedUser: true}}
	lister := &fakeSettingsLister{reminder: []uuid.UUID{loggedUser, quietUser}}
	s, f := newSchedulerFixture(moods, lister)

	sent, err := s.RunDailyReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	require.Len(t, f.store.inApp, 1)
	assert.Equal(t, quietUser, f.store.inApp[0].UserID)
	assert.Equal(t, "mood_reminder", f.store.inApp[0].Type)
	assert.Equal(t, "high", f.store.inApp[0].Priority)
}

func TestRunDailyRemindersDeliverEmail(t *testing.T) {
	user := uuid.New()
	s, f := newSchedulerFixture(&fakeMoodStore{}, &fakeSettingsLister{reminder: []uuid.UUID{user}})

	sent, err := s.RunDailyReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	require.Len(t, f.email.sent, 1, "reminders go over email as well as push and in-app")
	assert.Equal(t, "Time to log your mood!", f.email.sent[0].subject)
	assert.Contains(t, f.store.logChannels(), "email")
}

func TestRunDailyRemindersListFailure(t *testing.T) {
	lister := &fakeSettingsLister{err: errors.New("database unavailable")}
	s, _ := newSchedulerFixture(&fakeMoodStore{}, lister)

	_, err := s.RunDailyReminders(context.Background())
	assert.Error(t, err)
}

func TestRunWeeklyReportsSkipsEmptyWindow(t *testing.T) {
	activeUser := uuid.New()
	idleUser := uuid.New()

	now := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	moods := &fakeMoodStore{entries: map[uuid.UUID][]models.MoodLog{
		activeUser: {
			{ID: uuid.New(), UserID: activeUser, Sentiment: models.SentimentPositive, Score: 0.9, CreatedAt: now.AddDate(0, 0, -1)},
			{ID: uuid.New(), UserID: activeUser, Sentiment: models.SentimentPositive, Score: 0.8, CreatedAt: now.AddDate(0, 0, -2)},
			{ID: uuid.New(), UserID: activeUser, Sentiment: models.SentimentNegative, Score: 0.2, CreatedAt: now.AddDate(0, 0, -3)},
		},
	}}
	lister := &fakeSettingsLister{weekly: []uuid.UUID{activeUser, idleUser}}
	s, f := newSchedulerFixture(moods, lister)

	sent, err := s.RunWeeklyReports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	require.Len(t, f.email.sent, 1)
	assert.Equal(t, "Your Weekly Mood Report", f.email.sent[0].subject)

	require.Len(t, f.store.inApp, 1)
	assert.Equal(t, activeUser, f.store.inApp[0].UserID)
	assert.Contains(t, f.store.inApp[0].Message, "3 mood entries")
}

func TestRunWeeklyReportsAuditsEmailSend(t *testing.T) {
	user := uuid.New()
	now := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	moods := &fakeMoodStore{entries: map[uuid.UUID][]models.MoodLog{
		user: {
			{ID: uuid.New(), UserID: user, Sentiment: models.SentimentPositive, Score: 0.7, CreatedAt: now.AddDate(0, 0, -1)},
		},
	}}
	s, f := newSchedulerFixture(moods, &fakeSettingsLister{weekly: []uuid.UUID{user}})

	_, err := s.RunWeeklyReports(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"email"}, f.store.logChannels())
}

func TestSchedulerRejectsInvalidSpec(t *testing.T) {
	s, _ := newSchedulerFixture(&fakeMoodStore{}, &fakeSettingsLister{})

	err := s.Start("not a cron spec", "0 18 * * 0")
	assert.Error(t, err)
}

func TestSchedulerStopWithoutStart(t *testing.T) {
	s, _ := newSchedulerFixture(&fakeMoodStore{}, &fakeSettingsLister{})
	s.Stop()
}
