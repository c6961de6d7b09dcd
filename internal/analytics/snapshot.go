package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/moodmate/moodmate-backend/internal/models"
)

// Snapshot is the derived analytics view over a user's entries. It is
// recomputed from the current entry set on every request and never
// persisted.
type Snapshot struct {
	TotalEntries int     `json:"total_entries"`
	AverageScore float64 `json:"average_score"`
	PositiveDays int     `json:"positive_days"`
	NegativeDays int     `json:"negative_days"`
	NeutralDays  int     `json:"neutral_days"`
	Streak       int     `json:"streak"`
	Trend        string  `json:"trend"`
}

// PlatformStats is the admin-wide aggregate across all users.
type PlatformStats struct {
	TotalUsers       int     `json:"total_users"`
	TotalEntries     int     `json:"total_entries"`
	AverageMoodScore float64 `json:"average_mood_score"`
	ActiveUsers      int     `json:"active_users"`
}

// BuildSnapshot aggregates a user's entries into a Snapshot. Sentiment
// day counts cover all entries; the trend only looks at the last
// TrendWindow scores in chronological order.
func BuildSnapshot(entries []models.MoodLog, now time.Time) Snapshot {
	snap := Snapshot{
		TotalEntries: len(entries),
		Trend:        models.SentimentNeutral,
	}
	if len(entries) == 0 {
		return snap
	}

	var sum float64
	for _, e := range entries {
		sum += e.Score
		switch e.Sentiment {
		case models.SentimentPositive:
			snap.PositiveDays++
		case models.SentimentNegative:
			snap.NegativeDays++
		default:
			snap.NeutralDays++
		}
	}
	snap.AverageScore = round2(sum / float64(len(entries)))

	chrono := make([]models.MoodLog, len(entries))
	copy(chrono, entries)
	sort.SliceStable(chrono, func(i, j int) bool {
		return chrono[i].CreatedAt.Before(chrono[j].CreatedAt)
	})
	scores := make([]float64, len(chrono))
	for i, e := range chrono {
		scores[i] = e.Score
	}
	snap.Trend = TwoPointTrend(scores)
	snap.Streak = CurrentStreak(entries, now)

	return snap
}

// BuildPlatformStats reduces all entries into the admin aggregate. A
// plain reduction, no windowing: active users is the distinct count of
// entry authors.
func BuildPlatformStats(totalUsers int, entries []models.MoodLog) PlatformStats {
	stats := PlatformStats{
		TotalUsers:   totalUsers,
		TotalEntries: len(entries),
	}
	if len(entries) == 0 {
		return stats
	}

	var sum float64
	authors := make(map[uuid.UUID]struct{})
	for _, e := range entries {
		sum += e.Score
		authors[e.UserID] = struct{}{}
	}
	stats.AverageMoodScore = round2(sum / float64(len(entries)))
	stats.ActiveUsers = len(authors)
	return stats
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
