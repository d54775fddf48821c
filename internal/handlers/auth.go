package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/example/medshare/internal/config"
	"github.com/example/medshare/internal/models"
	"github.com/example/medshare/internal/otp"
	"github.com/example/medshare/internal/services"
	"github.com/example/medshare/internal/storage"
	"github.com/example/medshare/internal/utils"
)

var validate = validator.New()

// AuthHandler bundles dependencies for registration and login endpoints.
type AuthHandler struct {
	store *storage.Store
	otp   *otp.Store
	sms   *services.SMSService
	cfg   *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(store *storage.Store, otpStore *otp.Store, sms *services.SMSService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: store, otp: otpStore, sms: sms, cfg: cfg}
}

type sendOTPRequest struct {
	Phone string `json:"phone" validate:"required,len=10,number"`
}

// SendOTP issues a one-time code for the given phone, replacing any
// outstanding one.
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var req sendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Valid 10-digit phone number is required")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Valid 10-digit phone number is required")
	}

	code, err := h.otp.Generate(req.Phone)
	if err != nil {
		return err
	}
	if err := h.sms.SendOTP(req.Phone, code); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "OTP sent successfully"})
}

type verifyOTPRequest struct {
	Phone    string `json:"phone"`
	OTP      string `json:"otp"`
	Name     string `json:"name"`
	State    string `json:"state"`
	City     string `json:"city"`
	UserType string `json:"userType"`
}

// VerifyOTP validates the code, enforces the pharmacist allow-list when
// registering as a pharmacist, upserts the user record and issues a session
// token carrying the phone claim.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req verifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.otp.Check(req.Phone, req.OTP); err != nil {
		if errors.Is(err, otp.ErrCodeMismatch) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid OTP")
		}
		return fiber.NewError(fiber.StatusBadRequest, "OTP expired or invalid")
	}

	if req.UserType == models.UserTypePharmacist {
		allowed, err := h.store.IsPharmacistAllowed(req.Phone)
		if err != nil {
			return err
		}
		if !allowed {
			return fiber.NewError(fiber.StatusForbidden, "Phone number not registered as pharmacist")
		}
	}

	user, err := h.store.UpsertOnVerify(req.Phone, req.Name, req.State, req.City, req.UserType)
	if err != nil {
		return err
	}

	h.otp.Consume(req.Phone)

	token, err := utils.GenerateUserToken(h.cfg.JWTSecret, req.Phone, h.cfg.TokenExpires)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP verified successfully",
		"token":   token,
		"user":    user,
	})
}

type professionalLoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ProfessionalLogin authenticates the single configured moderator credential
// and issues a session token carrying the professional role.
func (h *AuthHandler) ProfessionalLogin(c *fiber.Ctx) error {
	var req professionalLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if h.cfg.ProfessionalName == "" || h.cfg.ProfessionalPasswordHash == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}
	if req.Name != h.cfg.ProfessionalName || !utils.CheckPassword(h.cfg.ProfessionalPasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := utils.GenerateProfessionalToken(h.cfg.JWTSecret, h.cfg.ProfessionalName, h.cfg.TokenExpires)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"name": h.cfg.ProfessionalName,
			"role": utils.RoleProfessional,
		},
	})
}
