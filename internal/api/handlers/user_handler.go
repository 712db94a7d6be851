package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postdeck/internal/service"
	"github.com/maheshrc27/postdeck/internal/session"
)

type UserHandler struct {
	s service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{s: service}
}

func (h *UserHandler) GetUserInfo(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == session.DefaultOwner {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not signed in",
		})
	}

	user, err := h.s.UserInfo(c.Context(), ownerID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
