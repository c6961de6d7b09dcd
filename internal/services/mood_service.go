package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/moodmate/moodmate-backend/internal/analytics"
	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/moodmate/moodmate-backend/internal/notify"
	"gorm.io/gorm"
)

var ErrEmptyMoodText = errors.New("mood text is required")

// streakMilestones maps a streak length to the achievement it unlocks.
var streakMilestones = map[int]string{
	3:   "3-Day Streak",
	7:   "7-Day Streak",
	30:  "30-Day Streak",
	100: "100-Day Streak",
}

// crisisKeywords trigger a support-resources alert when they appear in
// a mood entry.
var crisisKeywords = []string{
	"suicide", "kill myself", "end it all", "not worth living", "want to die",
}

type MoodService struct {
	db         *gorm.DB
	analyzer   SentimentAnalyzer
	dispatcher *notify.Dispatcher
}

func NewMoodService(db *gorm.DB, analyzer SentimentAnalyzer, dispatcher *notify.Dispatcher) *MoodService {
	return &MoodService{db: db, analyzer: analyzer, dispatcher: dispatcher}
}

// Create classifies the text, stores the entry and kicks off the
// milestone check in the background. A dead inference service degrades
// to the keyword classifier instead of failing the write.
func (s *MoodService) Create(ctx context.Context, userID uuid.UUID, text string) (*models.MoodLog, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMoodText
	}

	result, err := s.analyzer.Analyze(ctx, text)
	if err != nil {
		slog.Warn("sentiment analysis failed, using keyword fallback", "error", err)
		result, _ = KeywordAnalyzer{}.Analyze(ctx, text)
	}

	entry := models.MoodLog{
		ID:        uuid.New(),
		UserID:    userID,
		Text:      text,
		Sentiment: result.Sentiment,
		Score:     result.Score,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}

	go s.checkStreakMilestone(userID)
	if containsCrisisKeyword(text) {
		go s.sendCrisisAlert(userID)
	}

	return &entry, nil
}

func containsCrisisKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range crisisKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// List returns a page of the user's entries, newest first, plus the
// total count.
func (s *MoodService) List(userID uuid.UUID, page, limit int) ([]models.MoodLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := s.db.Model(&models.MoodLog{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count mood entries: %w", err)
	}

	var entries []models.MoodLog
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load mood entries: %w", err)
	}
	return entries, total, nil
}

// Snapshot recomputes the user's analytics view from their full entry
// set.
func (s *MoodService) Snapshot(userID uuid.UUID) (analytics.Snapshot, error) {
	entries, err := s.allEntries(userID)
	if err != nil {
		return analytics.Snapshot{}, err
	}
	return analytics.BuildSnapshot(entries, time.Now()), nil
}

func (s *MoodService) Insights(userID uuid.UUID) ([]analytics.Insight, error) {
	entries, err := s.allEntries(userID)
	if err != nil {
		return nil, err
	}
	return analytics.GenerateInsights(entries), nil
}

func (s *MoodService) allEntries(userID uuid.UUID) ([]models.MoodLog, error) {
	var entries []models.MoodLog
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load mood entries: %w", err)
	}
	return entries, nil
}

// checkStreakMilestone dispatches an achievement when the entry that
// was just written lands the user exactly on a milestone streak.
func (s *MoodService) checkStreakMilestone(userID uuid.UUID) {
	if s.dispatcher == nil {
		return
	}

	entries, err := s.allEntries(userID)
	if err != nil {
		slog.Error("milestone check failed", "user_id", userID.String(), "error", err)
		return
	}

	streak := analytics.CurrentStreak(entries, time.Now())
	title, ok := streakMilestones[streak]
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	payload := notify.Payload{
		Title:     title,
		Message:   fmt.Sprintf("You've logged your mood %d days in a row. Keep the streak alive!", streak),
		ActionURL: "/profile",
		Metadata:  map[string]interface{}{"streak": streak},
	}
	s.dispatcher.Dispatch(ctx, userID, notify.TypeAchievement, payload,
		notify.ChannelPush, notify.ChannelInApp)
}

// sendCrisisAlert points the user at immediate support resources. Sent
// over email and in-app so it reaches them even with the app closed.
func (s *MoodService) sendCrisisAlert(userID uuid.UUID) {
	if s.dispatcher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	payload := notify.Payload{
		Title:    "Support Resources",
		Message:  "You're not alone. Immediate help is available: call 988 or text HOME to 741741.",
		Priority: "high",
	}
	s.dispatcher.Dispatch(ctx, userID, notify.TypeCrisisAlert, payload,
		notify.ChannelEmail, notify.ChannelInApp)
}
