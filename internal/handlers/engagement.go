package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/medshare/internal/models"
	"github.com/example/medshare/internal/storage"
)

// EngagementHandler captures feedback messages and newsletter signups.
type EngagementHandler struct {
	store *storage.Store
}

// NewEngagementHandler constructs EngagementHandler.
func NewEngagementHandler(store *storage.Store) *EngagementHandler {
	return &EngagementHandler{store: store}
}

type feedbackRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Feedback string `json:"feedback" validate:"required"`
}

// CreateFeedback appends a feedback row.
func (h *EngagementHandler) CreateFeedback(c *fiber.Ctx) error {
	var req feedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}

	err := h.store.AppendFeedback(models.Feedback{
		Name:      req.Name,
		Email:     req.Email,
		Feedback:  req.Feedback,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

type newsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe appends a newsletter subscription row.
func (h *EngagementHandler) Subscribe(c *fiber.Ctx) error {
	var req newsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid email")
	}

	err := h.store.AppendNewsletter(models.NewsletterSubscription{
		Email:     req.Email,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}
