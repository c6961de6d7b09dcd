package analytics

import (
	"sort"

	"github.com/moodmate/moodmate-backend/internal/models"
)

// InsightWindow is how many of the most recent entries insight
// generation looks at.
const InsightWindow = 30

// positivePatternShare is the fraction of positive-sentiment entries
// above which the pattern insight fires.
const positivePatternShare = 0.7

// Insight is a qualitative observation card shown to the user.
type Insight struct {
	Type       string  `json:"type"`
	Title      string  `json:"title"`
	Message    string  `json:"message"`
	Confidence float64 `json:"confidence"`
}

// GenerateInsights derives insight cards from a user's recent entries.
// The checks are independent and additive; the result preserves check
// order. A user with no entries gets no insights.
func GenerateInsights(entries []models.MoodLog) []Insight {
	if len(entries) == 0 {
		return nil
	}

	window := make([]models.MoodLog, len(entries))
	copy(window, entries)
	sort.SliceStable(window, func(i, j int) bool {
		return window[i].CreatedAt.After(window[j].CreatedAt)
	})
	if len(window) > InsightWindow {
		window = window[:InsightWindow]
	}

	scores := make([]float64, len(window))
	positives := 0
	for i, e := range window {
		scores[i] = e.Score
		if e.Sentiment == models.SentimentPositive {
			positives++
		}
	}

	var insights []Insight

	if HasImprovingTrend(scores) {
		insights = append(insights, Insight{
			Type:       "trend",
			Title:      "Improving Mood",
			Message:    "Your mood has been trending upward this week. Whatever you're doing, keep it up!",
			Confidence: 0.8,
		})
	}

	if len(window) >= TrendWindow {
		insights = append(insights, Insight{
			Type:       "consistency",
			Title:      "Great Consistency",
			Message:    "You've been logging your mood regularly. Consistent tracking builds self-awareness.",
			Confidence: 0.9,
		})
	}

	if float64(positives) > positivePatternShare*float64(len(window)) {
		insights = append(insights, Insight{
			Type:       "pattern",
			Title:      "Positive Pattern",
			Message:    "Most of your recent entries have been positive. You're in a good place right now.",
			Confidence: 0.7,
		})
	}

	return insights
}
