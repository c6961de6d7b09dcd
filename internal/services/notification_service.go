package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/moodmate/moodmate-backend/internal/dto"
	"github.com/moodmate/moodmate-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrEmptyToken           = errors.New("device token is required")
)

// NotificationService backs the user-facing notification endpoints:
// the in-app inbox, device token registration and preference edits.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// List returns the user's most recent in-app notifications plus their
// unread count.
func (s *NotificationService) List(userID uuid.UUID, limit int) ([]models.Notification, int64, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}

	var notifications []models.Notification
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load notifications: %w", err)
	}

	var unread int64
	err = s.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = false", userID).
		Count(&unread).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return notifications, unread, nil
}

// MarkRead flags one of the user's notifications as read.
func (s *NotificationService) MarkRead(userID, notificationID uuid.UUID) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// RegisterToken stores a device token for push delivery. A token seen
// on a new account moves to that account.
func (s *NotificationService) RegisterToken(userID uuid.UUID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	record := models.FCMToken{
		ID:     uuid.New(),
		UserID: userID,
		Token:  token,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to register fcm token: %w", err)
	}
	return nil
}

// Settings returns the user's notification settings, creating the
// default row if registration somehow skipped it.
func (s *NotificationService) Settings(userID uuid.UUID) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.db.Where(models.UserSettings{UserID: userID}).
		Attrs(models.UserSettings{
			ID:                        uuid.New(),
			NotificationsEmail:        true,
			NotificationsPush:         true,
			NotificationsMoodReminder: true,
			NotificationsWeeklyReport: true,
			MoodReminderTime:          "20:00:00",
		}).
		FirstOrCreate(&settings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load user settings: %w", err)
	}
	return &settings, nil
}

// UpdateSettings applies a partial preference update.
func (s *NotificationService) UpdateSettings(userID uuid.UUID, req *dto.UpdateSettingsRequest) (*models.UserSettings, error) {
	settings, err := s.Settings(userID)
	if err != nil {
		return nil, err
	}

	if req.NotificationsEmail != nil {
		settings.NotificationsEmail = *req.NotificationsEmail
	}
	if req.NotificationsPush != nil {
		settings.NotificationsPush = *req.NotificationsPush
	}
	if req.NotificationsMoodReminder != nil {
		settings.NotificationsMoodReminder = *req.NotificationsMoodReminder
	}
	if req.NotificationsWeeklyReport != nil {
		settings.NotificationsWeeklyReport = *req.NotificationsWeeklyReport
	}
	if req.MoodReminderTime != nil {
		settings.MoodReminderTime = *req.MoodReminderTime
	}

	if err := s.db.Save(settings).Error; err != nil {
		return nil, fmt.Errorf("failed to update user settings: %w", err)
	}
	return settings, nil
}
