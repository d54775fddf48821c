package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()

	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenExpires)
	assert.Equal(t, 5*time.Minute, cfg.OTPExpires)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_PORT", "8081")
	t.Setenv("DATA_DIR", "/tmp/medshare-data")
	t.Setenv("JWT_TTL_HOURS", "24")
	t.Setenv("OTP_TTL_MINUTES", "2")
	t.Setenv("PROFESSIONAL_NAME", "Dr Doon")

	cfg := Load()

	assert.Equal(t, "8081", cfg.AppPort)
	assert.Equal(t, "/tmp/medshare-data", cfg.DataDir)
	assert.Equal(t, 24*time.Hour, cfg.TokenExpires)
	assert.Equal(t, 2*time.Minute, cfg.OTPExpires)
	assert.Equal(t, "Dr Doon", cfg.ProfessionalName)
}
