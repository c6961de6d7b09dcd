package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func entryAt(t time.Time, sentiment string, score float64) models.MoodLog {
	return models.MoodLog{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Text:      "test entry",
		Sentiment: sentiment,
		Score:     score,
		CreatedAt: t,
	}
}

func entryDaysAgo(days int, sentiment string, score float64) models.MoodLog {
	return entryAt(testNow.AddDate(0, 0, -days), sentiment, score)
}

func TestCurrentStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, CurrentStreak(nil, testNow))
}

func TestCurrentStreakConsecutiveDays(t *testing.T) {
	entries := []models.MoodLog{
		entryDaysAgo(0, models.SentimentPositive, 0.8),
		entryDaysAgo(1, models.SentimentNeutral, 0.5),
		entryDaysAgo(2, models.SentimentNegative, 0.3),
	}
	assert.Equal(t, 3, CurrentStreak(entries, testNow))
}

func TestCurrentStreakSameDayEntriesCountOnce(t *testing.T) {
	// Two entries today plus one yesterday is a streak of 2, not 3.
	entries := []models.MoodLog{
		entryAt(testNow, models.SentimentPositive, 0.8),
		entryAt(testNow.Add(-2*time.Hour), models.SentimentPositive, 0.7),
		entryDaysAgo(1, models.SentimentNeutral, 0.5),
	}
	assert.Equal(t, 2, CurrentStreak(entries, testNow))
}

func TestCurrentStreakStopsAtGap(t *testing.T) {
	entries := []models.MoodLog{
		entryDaysAgo(0, models.SentimentPositive, 0.8),
		entryDaysAgo(1, models.SentimentPositive, 0.8),
		entryDaysAgo(3, models.SentimentPositive, 0.8),
		entryDaysAgo(4, models.SentimentPositive, 0.8),
	}
	assert.Equal(t, 2, CurrentStreak(entries, testNow))
}

func TestCurrentStreakNoEntryToday(t *testing.T) {
	entries := []models.MoodLog{
		entryDaysAgo(1, models.SentimentPositive, 0.8),
		entryDaysAgo(2, models.SentimentPositive, 0.8),
	}
	assert.Equal(t, 0, CurrentStreak(entries, testNow))
}

func TestCurrentStreakUnsortedInput(t *testing.T) {
	// The walk sorts internally, so chronological input gives the same
	// answer as descending input.
	entries := []models.MoodLog{
		entryDaysAgo(2, models.SentimentPositive, 0.8),
		entryDaysAgo(0, models.SentimentPositive, 0.8),
		entryDaysAgo(1, models.SentimentPositive, 0.8),
	}
	assert.Equal(t, 3, CurrentStreak(entries, testNow))
}

func TestCurrentStreakNeverExceedsTotalEntries(t *testing.T) {
	entries := []models.MoodLog{
		entryDaysAgo(0, models.SentimentPositive, 0.8),
	}
	streak := CurrentStreak(entries, testNow)
	assert.GreaterOrEqual(t, streak, 0)
	assert.LessOrEqual(t, streak, len(entries))
}
