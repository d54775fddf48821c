package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	AppPort     string
	DataDir     string
	UploadsDir  string
	FrontendDir string

	JWTSecret    string
	TokenExpires time.Duration
	OTPExpires   time.Duration

	// Single moderator credential; the password is supplied as a bcrypt
	// hash, never as plaintext.
	ProfessionalName         string
	ProfessionalPasswordHash string

	// Optional SMS gateway endpoint. When empty, OTP codes are only logged.
	SMSGatewayURL string
}

// Load reads environment variables and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:                  getEnv("APP_PORT", "3000"),
		DataDir:                  getEnv("DATA_DIR", "data"),
		UploadsDir:               getEnv("UPLOADS_DIR", "public/images/medicines"),
		FrontendDir:              getEnv("FRONTEND_DIR", ""),
		JWTSecret:                getEnv("JWT_SECRET", ""),
		TokenExpires:             getEnvHours("JWT_TTL_HOURS", 7*24),
		OTPExpires:               getEnvMinutes("OTP_TTL_MINUTES", 5),
		ProfessionalName:         getEnv("PROFESSIONAL_NAME", ""),
		ProfessionalPasswordHash: getEnv("PROFESSIONAL_PASSWORD_HASH", ""),
		SMSGatewayURL:            getEnv("SMS_GATEWAY_URL", ""),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvHours(key string, fallback int) time.Duration {
	return time.Duration(getEnvInt(key, fallback)) * time.Hour
}

func getEnvMinutes(key string, fallback int) time.Duration {
	return time.Duration(getEnvInt(key, fallback)) * time.Minute
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
