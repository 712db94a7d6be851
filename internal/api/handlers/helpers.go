package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postdeck/internal/lifecycle"
	"github.com/maheshrc27/postdeck/internal/session"
	"github.com/maheshrc27/postdeck/internal/store"
)

func GetOwnerID(c *fiber.Ctx) string {
	owner, ok := c.Locals("owner_id").(string)
	if !ok || owner == "" {
		return session.DefaultOwner
	}
	return owner
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = fiber.StatusNotFound
	case lifecycle.IsValidation(err):
		status = fiber.StatusBadRequest
	case store.IsTransient(err):
		status = fiber.StatusBadGateway
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
