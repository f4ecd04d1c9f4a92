package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FertVad/CampusConnect-sub003/internal/dto"
	"github.com/FertVad/CampusConnect-sub003/internal/repository"
)

// ScheduleHandler serves the imported schedule.
type ScheduleHandler struct {
	scheduleRepo *repository.ScheduleRepository
}

func NewScheduleHandler(scheduleRepo *repository.ScheduleRepository) *ScheduleHandler {
	return &ScheduleHandler{scheduleRepo: scheduleRepo}
}

// ListByGroup returns a group's timetable.
func (h *ScheduleHandler) ListByGroup(c *fiber.Ctx) error {
	group := c.Query("group")
	if group == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse("INVALID_QUERY", "group is required"))
	}

	items, err := h.scheduleRepo.ListByGroup(group)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse("INTERNAL_ERROR", "Failed to load schedule"))
	}
	return c.JSON(dto.SuccessResponse(items, ""))
}
