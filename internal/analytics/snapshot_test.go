package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildSnapshotEmpty(t *testing.T) {
	snap := BuildSnapshot(nil, testNow)
	assert.Equal(t, 0, snap.TotalEntries)
	assert.Equal(t, 0.0, snap.AverageScore)
	assert.Equal(t, 0, snap.Streak)
	assert.Equal(t, models.SentimentNeutral, snap.Trend)
}

func TestBuildSnapshotAverageRounded(t *testing.T) {
	entries := []models.MoodLog{
		entryDaysAgo(0, models.SentimentPositive, 0.8),
		entryDaysAgo(1, models.SentimentNegative, 0.45),
		entryDaysAgo(2, models.SentimentNeutral, 0.5),
	}
	snap := BuildSnapshot(entries, testNow)
	// (0.8 + 0.45 + 0.5) / 3 = 0.5833..., rounded to 2 decimals.
	assert.Equal(t, 0.58, snap.AverageScore)
}

func TestBuildSnapshotDayCountsSumToTotal(t *testing.T) {
	entries := []models.MoodLog{
		entryDaysAgo(0, models.SentimentPositive, 0.9),
		entryDaysAgo(1, models.SentimentPositive, 0.8),
		entryDaysAgo(2, models.SentimentNegative, 0.2),
		entryDaysAgo(3, models.SentimentNeutral, 0.5),
	}
	snap := BuildSnapshot(entries, testNow)
	assert.Equal(t, snap.TotalEntries, snap.PositiveDays+snap.NegativeDays+snap.NeutralDays)
	assert.Equal(t, 2, snap.PositiveDays)
	assert.Equal(t, 1, snap.NegativeDays)
	assert.Equal(t, 1, snap.NeutralDays)
}

func TestBuildSnapshotTrendUsesChronologicalOrder(t *testing.T) {
	// Newest entry has the highest score, so chronologically the mood
	// rose: oldest 0.3 -> newest 0.9.
	entries := []models.MoodLog{
		entryDaysAgo(0, models.SentimentPositive, 0.9),
		entryDaysAgo(1, models.SentimentNeutral, 0.5),
		entryDaysAgo(2, models.SentimentNegative, 0.3),
	}
	snap := BuildSnapshot(entries, testNow)
	assert.Equal(t, models.SentimentPositive, snap.Trend)
	assert.Equal(t, 3, snap.Streak)
}

func TestBuildPlatformStats(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	entries := []models.MoodLog{
		{UserID: alice, Sentiment: models.SentimentPositive, Score: 0.8, CreatedAt: testNow},
		{UserID: bob, Sentiment: models.SentimentPositive, Score: 0.6, CreatedAt: testNow},
	}
	stats := BuildPlatformStats(2, entries)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalEntries)
	assert.Equal(t, 0.70, stats.AverageMoodScore)
	assert.Equal(t, 2, stats.ActiveUsers)
}

func TestBuildPlatformStatsDistinctAuthors(t *testing.T) {
	alice := uuid.New()
	entries := []models.MoodLog{
		{UserID: alice, Sentiment: models.SentimentPositive, Score: 0.8, CreatedAt: testNow},
		{UserID: alice, Sentiment: models.SentimentNegative, Score: 0.2, CreatedAt: testNow},
	}
	stats := BuildPlatformStats(5, entries)
	assert.Equal(t, 1, stats.ActiveUsers)
	assert.Equal(t, 5, stats.TotalUsers)
}
