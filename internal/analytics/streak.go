package analytics

import (
	"sort"
	"time"

	"github.com/moodmate/moodmate-backend/internal/models"
)

// CurrentStreak returns the number of consecutive calendar days, ending
// at the calendar date of now, on which the user logged at least one
// entry. Multiple entries on the same day count once. The walk stops at
// the first gap, so a user whose newest entry is before today has a
// streak of 0.
func CurrentStreak(entries []models.MoodLog, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	// The walk requires true-timestamp descending order; sort a copy so
	// callers holding chronological slices stay untouched.
	sorted := make([]models.MoodLog, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	streak := 0
	expected := dayOf(now)
	for _, e := range sorted {
		d := dayOf(e.CreatedAt)
		switch {
		case d.Equal(expected):
			streak++
			expected = expected.AddDate(0, 0, -1)
		case d.After(expected):
			// Another entry on an already-counted day.
			continue
		default:
			return streak
		}
	}
	return streak
}

// dayOf truncates a timestamp to its UTC calendar date.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
