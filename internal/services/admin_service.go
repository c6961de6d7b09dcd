package services

import (
	"fmt"

	"github.com/moodmate/moodmate-backend/internal/analytics"
	"github.com/moodmate/moodmate-backend/internal/models"
	"gorm.io/gorm"
)

// AdminService computes the platform-wide aggregate for the admin
// overview endpoint.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) Overview() (analytics.PlatformStats, error) {
	var totalUsers int64
	if err := s.db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return analytics.PlatformStats{}, fmt.Errorf("failed to count users: %w", err)
	}

	var entries []models.MoodLog
	if err := s.db.Find(&entries).Error; err != nil {
		return analytics.PlatformStats{}, fmt.Errorf("failed to load mood entries: %w", err)
	}

	return analytics.BuildPlatformStats(int(totalUsers), entries), nil
}
