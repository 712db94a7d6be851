package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postdeck/internal/service"
)

type AnalyticsHandler struct {
	s service.AnalyticsService
}

func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{s: service}
}

func (h *AnalyticsHandler) Series(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	days := c.QueryInt("days", 7)

	series, err := h.s.Series(c.Context(), ownerID, days)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(series)
}

func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)

	summary, err := h.s.Summary(c.Context(), ownerID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(summary)
}
