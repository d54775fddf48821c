package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/example/medshare/internal/config"
	"github.com/example/medshare/internal/otp"
	"github.com/example/medshare/internal/routes"
	"github.com/example/medshare/internal/services"
	"github.com/example/medshare/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap.NewProduction error: %v", err)
	}
	defer logger.Sync()

	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		logger.Fatal("failed to open data store", zap.Error(err))
	}
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		logger.Fatal("failed to create uploads directory", zap.Error(err))
	}

	// OTP challenges live in process memory only: a restart drops every
	// outstanding code and callers must request a new one.
	otpStore := otp.NewStore(cfg.OTPExpires)
	sms := services.NewSMSService(cfg.SMSGatewayURL, logger)

	app := routes.NewApp(store, otpStore, sms, cfg)

	logger.Info("starting server", zap.String("port", cfg.AppPort))
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		logger.Fatal("fiber.Listen error", zap.Error(err))
	}
}
