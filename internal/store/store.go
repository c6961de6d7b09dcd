package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moodmate/moodmate-backend/internal/models"
	"gorm.io/gorm"
)

// Store is the gorm-backed data access layer consumed by the
// notification engine and scheduler. Handlers and services talk to gorm
// directly; this narrow surface exists so the dispatcher and scheduler
// stay testable without a database.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) User(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// Settings returns nil without error when the user has no settings row.
func (s *Store) Settings(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user settings: %w", err)
	}
	return &settings, nil
}

func (s *Store) Tokens(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var tokens []string
	err := s.db.WithContext(ctx).Model(&models.FCMToken{}).
		Where("user_id = ?", userID).
		Pluck("token", &tokens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load fcm tokens: %w", err)
	}
	return tokens, nil
}

func (s *Store) InsertInApp(ctx context.Context, n *models.Notification) error {
	return s.db.WithContext(ctx).Create(n).Error
}

func (s *Store) InsertLog(ctx context.Context, l *models.NotificationLog) error {
	return s.db.WithContext(ctx).Create(l).Error
}

func (s *Store) HasEntrySince(ctx context.Context, userID uuid.UUID, since time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.MoodLog{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count mood entries: %w", err)
	}
	return count > 0, nil
}

func (s *Store) EntriesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.MoodLog, error) {
	var entries []models.MoodLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load mood entries: %w", err)
	}
	return entries, nil
}

// ReminderUsers lists users eligible for the daily reminder. A missing
// settings row counts as opted in.
func (s *Store) ReminderUsers(ctx context.Context) ([]uuid.UUID, error) {
	return s.optedInUsers(ctx, "notifications_mood_reminder")
}

// WeeklyReportUsers lists users eligible for the weekly report. A
// missing settings row counts as opted in.
func (s *Store) WeeklyReportUsers(ctx context.Context) ([]uuid.UUID, error) {
	return s.optedInUsers(ctx, "notifications_weekly_report")
}

func (s *Store) optedInUsers(ctx context.Context, column string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Joins("LEFT JOIN user_settings ON user_settings.user_id = users.id").
		Where("user_settings.id IS NULL OR user_settings." + column + " = true").
		Pluck("users.id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list opted-in users: %w", err)
	}
	return ids, nil
}
