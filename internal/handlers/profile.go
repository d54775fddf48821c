package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/medshare/internal/middleware"
	"github.com/example/medshare/internal/storage"
)

// ProfileHandler manages user profile endpoints.
type ProfileHandler struct {
	store *storage.Store
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(store *storage.Store) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// GetProfile returns the authenticated user's record.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := h.store.GetUserByPhone(claims.Phone)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return err
	}

	return c.JSON(user)
}

type updateProfileRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	State   string `json:"state"`
	City    string `json:"city"`
}

// UpdateProfile overwrites the provided profile fields. Phone, userType and
// isVerified cannot be changed through this endpoint.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, err := h.store.UpdateUserProfile(claims.Phone, storage.ProfileUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		State:   req.State,
		City:    req.City,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return err
	}

	return c.JSON(user)
}
