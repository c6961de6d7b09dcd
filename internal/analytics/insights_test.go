package analytics

import (
	"testing"

	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(insights []Insight) []string {
	out := make([]string, len(insights))
	for i, in := range insights {
		out[i] = in.Title
	}
	return out
}

func TestGenerateInsightsEmpty(t *testing.T) {
	assert.Empty(t, GenerateInsights(nil))
}

func TestGenerateInsightsConsistencyAtSevenEntries(t *testing.T) {
	var entries []models.MoodLog
	for i := 0; i < 7; i++ {
		entries = append(entries, entryDaysAgo(i, models.SentimentNegative, 0.2))
	}
	insights := GenerateInsights(entries)
	require.Len(t, insights, 1)
	assert.Equal(t, "Great Consistency", insights[0].Title)
	assert.Equal(t, 0.9, insights[0].Confidence)
}

func TestGenerateInsightsNoConsistencyAtSixEntries(t *testing.T) {
	var entries []models.MoodLog
	for i := 0; i < 6; i++ {
		entries = append(entries, entryDaysAgo(i, models.SentimentNeutral, 0.5))
	}
	assert.NotContains(t, titles(GenerateInsights(entries)), "Great Consistency")
}

func TestGenerateInsightsPositivePattern(t *testing.T) {
	var entries []models.MoodLog
	for i := 0; i < 8; i++ {
		entries = append(entries, entryDaysAgo(i, models.SentimentPositive, 0.9))
	}
	entries = append(entries, entryDaysAgo(8, models.SentimentNegative, 0.2))
	entries = append(entries, entryDaysAgo(9, models.SentimentNeutral, 0.5))

	insights := GenerateInsights(entries)
	got := titles(insights)
	assert.Contains(t, got, "Positive Pattern")

	for _, in := range insights {
		if in.Title == "Positive Pattern" {
			assert.Equal(t, 0.7, in.Confidence)
		}
	}
}

func TestGenerateInsightsPatternBelowThreshold(t *testing.T) {
	// 7 of 10 positive is exactly 70%, which does not clear the strict
	// threshold.
	var entries []models.MoodLog
	for i := 0; i < 7; i++ {
		entries = append(entries, entryDaysAgo(i, models.SentimentPositive, 0.9))
	}
	for i := 7; i < 10; i++ {
		entries = append(entries, entryDaysAgo(i, models.SentimentNegative, 0.2))
	}
	assert.NotContains(t, titles(GenerateInsights(entries)), "Positive Pattern")
}

func TestGenerateInsightsImprovingMood(t *testing.T) {
	var entries []models.MoodLog
	for i := 0; i < 7; i++ {
		entries = append(entries, entryDaysAgo(i, models.SentimentPositive, 0.8))
	}
	for i := 7; i < 14; i++ {
		entries = append(entries, entryDaysAgo(i, models.SentimentNeutral, 0.4))
	}

	insights := GenerateInsights(entries)
	require.NotEmpty(t, insights)
	// Check order is preserved: trend insight comes first.
	assert.Equal(t, "Improving Mood", insights[0].Title)
	assert.Equal(t, 0.8, insights[0].Confidence)
}

func TestGenerateInsightsAreAdditive(t *testing.T) {
	var entries []models.MoodLog
	for i := 0; i < 7; i++ {
		entries = append(entries, entryDaysAgo(i, models.SentimentPositive, 0.9))
	}
	for i := 7; i < 14; i++ {
		entries = append(entries, entryDaysAgo(i, models.SentimentPositive, 0.4))
	}

	// Improving, consistent and mostly positive all at once.
	got := titles(GenerateInsights(entries))
	assert.Equal(t, []string{"Improving Mood", "Great Consistency", "Positive Pattern"}, got)
}
