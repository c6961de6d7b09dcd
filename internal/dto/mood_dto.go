package dto

import "github.com/moodmate/moodmate-backend/internal/models"

type CreateMoodRequest struct {
	Text string `json:"text"`
}

type MoodListResponse struct {
	Entries []models.MoodLog `json:"entries"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}
