package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/moodmate/moodmate-backend/internal/analytics"
	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/robfig/cron/v3"
)

// MoodStore gives the scheduler read access to mood entries.
type MoodStore interface {
	HasEntrySince(ctx context.Context, userID uuid.UUID, since time.Time) (bool, error)
	EntriesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.MoodLog, error)
}

// SettingsLister enumerates the users opted in to each batch job.
type SettingsLister interface {
	ReminderUsers(ctx context.Context) ([]uuid.UUID, error)
	WeeklyReportUsers(ctx context.Context) ([]uuid.UUID, error)
}

// schedulerWorkers bounds the per-job fan-out so a large user base does
// not open one SMTP connection per user at once.
const schedulerWorkers = 8

// Scheduler runs the recurring notification jobs: daily mood reminders
// and weekly mood reports. Jobs can also be triggered manually through
// the admin API.
type Scheduler struct {
	dispatcher *Dispatcher
	moods      MoodStore
	users      SettingsLister
	cron       *cron.Cron
	now        func() time.Time
}

func NewScheduler(dispatcher *Dispatcher, moods MoodStore, users SettingsLister) *Scheduler {
	return &Scheduler{
		dispatcher: dispatcher,
		moods:      moods,
		users:      users,
		now:        time.Now,
	}
}

// Start registers both jobs with the given cron specs and begins the
// schedule. Specs use the standard five-field cron format.
func (s *Scheduler) Start(reminderSpec, weeklySpec string) error {
	c := cron.New()

	if _, err := c.AddFunc(reminderSpec, func() {
		if _, err := s.RunDailyReminders(context.Background()); err != nil {
			slog.Error("daily reminder job failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", reminderSpec, err)
	}

	if _, err := c.AddFunc(weeklySpec, func() {
		if _, err := s.RunWeeklyReports(context.Background()); err != nil {
			slog.Error("weekly report job failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid weekly report schedule %q: %w", weeklySpec, err)
	}

	c.Start()
	s.cron = c
	slog.Info("notification scheduler started",
		"reminder_schedule", reminderSpec,
		"weekly_report_schedule", weeklySpec)
	return nil
}

// Stop halts the schedule and waits for any running job to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	slog.Info("notification scheduler stopped")
}

// RunDailyReminders sends a mood check-in reminder over every channel
// to each opted-in user who has not logged an entry since local
// midnight. Returns the number of users reminded.
func (s *Scheduler) RunDailyReminders(ctx context.Context) (int, error) {
	userIDs, err := s.users.ReminderUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list reminder users: %w", err)
	}

	midnight := dayStart(s.now())
	var sent atomic.Int64

	s.forEach(userIDs, func(userID uuid.UUID) {
		logged, err := s.moods.HasEntrySince(ctx, userID, midnight)
		if err != nil {
			slog.Error("reminder entry check failed", "user_id", userID.String(), "error", err)
			return
		}
		if logged {
			return
		}

		payload := Payload{
			Title:     "Mood Check-in Time!",
			Message:   "How are you feeling today? Take a moment to log your mood.",
			Priority:  "high",
			ActionURL: "/log-mood",
		}
		if s.dispatcher.Dispatch(ctx, userID, TypeMoodReminder, payload, ChannelEmail, ChannelPush, ChannelInApp) {
			sent.Add(1)
		}
	})

	slog.Info("daily reminder job finished", "candidates", len(userIDs), "sent", sent.Load())
	return int(sent.Load()), nil
}

// RunWeeklyReports sends each opted-in user a summary of their last 7
// days. Users with no entries in the window are skipped. Returns the
// number of reports sent.
func (s *Scheduler) RunWeeklyReports(ctx context.Context) (int, error) {
	userIDs, err := s.users.WeeklyReportUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list weekly report users: %w", err)
	}

	now := s.now()
	since := now.AddDate(0, 0, -7)
	var sent atomic.Int64

	s.forEach(userIDs, func(userID uuid.UUID) {
		entries, err := s.moods.EntriesSince(ctx, userID, since)
		if err != nil {
			slog.Error("weekly report entry fetch failed", "user_id", userID.String(), "error", err)
			return
		}
		if len(entries) == 0 {
			return
		}

		snap := analytics.BuildSnapshot(entries, now)
		report := &WeeklyReport{
			TotalEntries: snap.TotalEntries,
			AverageScore: snap.AverageScore,
			PositiveDays: snap.PositiveDays,
			Streak:       snap.Streak,
			Insights:     analytics.GenerateInsights(entries),
		}

		payload := Payload{
			Title: "Your Weekly Mood Report",
			Message: fmt.Sprintf("You logged %d mood entries this week with %d positive days. Check out your full report!",
				report.TotalEntries, report.PositiveDays),
			ActionURL: "/dashboard",
			Report:    report,
		}
		if s.dispatcher.Dispatch(ctx, userID, TypeWeeklyReport, payload, ChannelEmail, ChannelInApp) {
			sent.Add(1)
		}
	})

	slog.Info("weekly report job finished", "candidates", len(userIDs), "sent", sent.Load())
	return int(sent.Load()), nil
}

// forEach runs fn for every user ID through a bounded worker pool.
func (s *Scheduler) forEach(userIDs []uuid.UUID, fn func(uuid.UUID)) {
	sem := make(chan struct{}, schedulerWorkers)
	var wg sync.WaitGroup
	for _, id := range userIDs {
		wg.Add(1)
		sem <- struct{}{}
		go func(id uuid.UUID) {
			defer wg.Done()
			defer func() { <-sem }()
			fn(id)
		}(id)
	}
	wg.Wait()
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
