package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postdeck/internal/service"
)

type PlatformHandler struct {
	s service.PlatformService
}

func NewPlatformHandler(service service.PlatformService) *PlatformHandler {
	return &PlatformHandler{s: service}
}

func (h *PlatformHandler) ListPlatforms(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)

	platforms, err := h.s.List(c.Context(), ownerID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(platforms)
}

func (h *PlatformHandler) Connect(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	platformID := c.Query("id")

	platform, err := h.s.Connect(c.Context(), ownerID, platformID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(platform)
}

func (h *PlatformHandler) Disconnect(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	platformID := c.Query("id")

	platform, err := h.s.Disconnect(c.Context(), ownerID, platformID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(platform)
}
