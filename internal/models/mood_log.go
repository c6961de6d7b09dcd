package models

import (
	"time"

	"github.com/google/uuid"
)

// Sentiment labels attached to mood logs by the inference collaborator.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// MoodLog is a single mood submission. Rows are immutable once created;
// all analytics are derived from the ordered set of a user's logs.
type MoodLog struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Sentiment string    `gorm:"size:20;not null" json:"sentiment"`
	Score     float64   `gorm:"not null" json:"score"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// ValidSentiment reports whether s is one of the three known labels.
func ValidSentiment(s string) bool {
	return s == SentimentPositive || s == SentimentNegative || s == SentimentNeutral
}
