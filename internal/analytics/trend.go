package analytics

import "github.com/moodmate/moodmate-backend/internal/models"

// TrendWindow is the number of recent scores the two-point trend looks at.
const TrendWindow = 7

// improvementMargin is the minimum average gain required before the
// improving-mood insight fires.
const improvementMargin = 0.1

// TwoPointTrend classifies the direction of recent mood scores. Scores
// must be in chronological order; only the last TrendWindow samples are
// considered. Fewer than 2 samples is neutral. The comparison is strict,
// so a flat window reads as negative.
//
// This is deliberately a different algorithm from HasImprovingTrend:
// the snapshot trend compares two endpoints, the insight threshold
// compares week-over-week averages. They serve different consumers and
// are kept separate.
func TwoPointTrend(scores []float64) string {
	if len(scores) > TrendWindow {
		scores = scores[len(scores)-TrendWindow:]
	}
	if len(scores) < 2 {
		return models.SentimentNeutral
	}
	if scores[len(scores)-1] > scores[0] {
		return models.SentimentPositive
	}
	return models.SentimentNegative
}

// HasImprovingTrend reports whether the average of the most recent 7
// scores exceeds the average of the preceding 7 by more than
// improvementMargin. Scores must be ordered most-recent-first. With
// fewer than 14 samples the baseline falls back to the recent average
// itself, so the check can never fire.
func HasImprovingTrend(scores []float64) bool {
	if len(scores) == 0 {
		return false
	}
	n := len(scores)
	recentEnd := TrendWindow
	if n < recentEnd {
		recentEnd = n
	}
	recent := mean(scores[:recentEnd])

	older := recent
	if n >= 2*TrendWindow {
		older = mean(scores[TrendWindow : 2*TrendWindow])
	}
	return recent > older+improvementMargin
}

func mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
