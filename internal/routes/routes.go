package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/medshare/internal/config"
	"github.com/example/medshare/internal/handlers"
	"github.com/example/medshare/internal/middleware"
	"github.com/example/medshare/internal/otp"
	"github.com/example/medshare/internal/services"
	"github.com/example/medshare/internal/storage"
)

// NewApp builds the fiber application with middleware, static mounts and all
// API routes registered.
func NewApp(store *storage.Store, otpStore *otp.Store, sms *services.SMSService, cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "MedShare Backend",
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/images/medicines", cfg.UploadsDir)
	if cfg.FrontendDir != "" {
		app.Static("/", cfg.FrontendDir)
	}

	Register(app, store, otpStore, sms, cfg)
	return app
}

// Register wires up all HTTP routes.
func Register(app *fiber.App, store *storage.Store, otpStore *otp.Store, sms *services.SMSService, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(store, otpStore, sms, cfg)
	profileHandler := handlers.NewProfileHandler(store)
	medicineHandler := handlers.NewMedicineHandler(store, cfg.UploadsDir)
	engagementHandler := handlers.NewEngagementHandler(store)

	api := app.Group("/api")

	// Registration and login
	api.Post("/send-otp", authHandler.SendOTP)
	api.Post("/verify-otp", authHandler.VerifyOTP)
	api.Post("/professional-login", authHandler.ProfessionalLogin)

	// Profile (any authenticated session with a phone claim)
	user := api.Group("/user", middleware.AuthMiddleware(cfg))
	user.Get("/profile", profileHandler.GetProfile)
	user.Put("/profile", profileHandler.UpdateProfile)

	// Public listings
	api.Get("/medicines", medicineHandler.ListApproved)
	api.Post("/medicines", medicineHandler.Create)

	// Moderation (professional role only)
	moderation := api.Group("/medicines", middleware.AuthMiddleware(cfg), middleware.RequireProfessional())
	moderation.Get("/pending", medicineHandler.ListPending)
	moderation.Post("/:id/approve", medicineHandler.Approve)
	moderation.Post("/:id/reject", medicineHandler.Reject)

	// Engagement capture
	api.Post("/feedback", engagementHandler.CreateFeedback)
	api.Post("/newsletter", engagementHandler.Subscribe)
}

// errorHandler renders every error as a JSON payload. fiber.Error carries the
// intended status and client-facing message; anything else is a 500 with the
// detail kept out of the response.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}
