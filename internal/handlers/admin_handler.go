package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/moodmate/moodmate-backend/internal/dto"
	"github.com/moodmate/moodmate-backend/internal/notify"
	"github.com/moodmate/moodmate-backend/internal/services"
)

type AdminHandler struct {
	adminService *services.AdminService
	scheduler    *notify.Scheduler
}

func NewAdminHandler(adminService *services.AdminService, scheduler *notify.Scheduler) *AdminHandler {
	return &AdminHandler{adminService: adminService, scheduler: scheduler}
}

func (h *AdminHandler) Overview(c *fiber.Ctx) error {
	stats, err := h.adminService.Overview()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute platform stats",
		})
	}
	return c.JSON(stats)
}

// RunReminders triggers the daily reminder job outside its schedule.
func (h *AdminHandler) RunReminders(c *fiber.Ctx) error {
	sent, err := h.scheduler.RunDailyReminders(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Reminder job failed",
		})
	}
	return c.JSON(dto.JobRunResponse{Job: "daily_reminders", Sent: sent})
}

// RunWeeklyReports triggers the weekly report job outside its schedule.
func (h *AdminHandler) RunWeeklyReports(c *fiber.Ctx) error {
	sent, err := h.scheduler.RunWeeklyReports(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Weekly report job failed",
		})
	}
	return c.JSON(dto.JobRunResponse{Job: "weekly_reports", Sent: sent})
}
