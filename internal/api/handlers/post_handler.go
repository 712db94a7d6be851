package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postdeck/internal/projection"
	"github.com/maheshrc27/postdeck/internal/service"
	"github.com/maheshrc27/postdeck/internal/transfer"
)

type PostHandler struct {
	s service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{s: service}
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)

	if postID := c.Query("id"); postID != "" {
		post, err := h.s.PostInfo(c.Context(), ownerID, postID)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(post)
	}

	filters := projection.Filters{
		Status:   c.Query("status"),
		Platform: c.Query("platform"),
		Search:   c.Query("search"),
	}

	posts, err := h.s.List(c.Context(), ownerID, filters)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)

	var pc transfer.PostCreation
	if err := c.BodyParser(&pc); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	post, err := h.s.Create(c.Context(), ownerID, &pc)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	postID := c.Query("id")

	var pu transfer.PostUpdate
	if err := c.BodyParser(&pu); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	post, err := h.s.Update(c.Context(), ownerID, postID, &pu)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) RemovePost(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	postID := c.Query("id")

	if err := h.s.Remove(c.Context(), ownerID, postID); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// Schedule serves the calendar view: scheduled posts grouped by day.
func (h *PostHandler) Schedule(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)

	grouped, err := h.s.Schedule(c.Context(), ownerID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(grouped)
}

// Upcoming serves the agenda view: scheduled posts, soonest first.
func (h *PostHandler) Upcoming(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)

	posts, err := h.s.Upcoming(c.Context(), ownerID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}
