package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "admin")
	t.Setenv("DB_NAME", "tokoprima")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PAYSTACK_SECRET_KEY", "sk_test_abc")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, "https://api.paystack.co", cfg.Paystack.BaseURL)
	assert.Equal(t, 5*time.Minute, cfg.Worker.DiscountExpiryInterval)
}

func TestLoadMissingDatabase(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PAYSTACK_SECRET_KEY", "sk_test_abc")

	_, err := Load()
	assert.ErrorContains(t, err, "database configuration incomplete")
}

func TestLoadMissingJWTSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadMissingPaystackKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PAYSTACK_SECRET_KEY", "")

	_, err := Load()
	assert.ErrorContains(t, err, "PAYSTACK_SECRET_KEY")
}

func TestLoadBadWorkerInterval(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DISCOUNT_EXPIRY_INTERVAL", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "DISCOUNT_EXPIRY_INTERVAL")
}

func TestLoadWorkerIntervalOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DISCOUNT_EXPIRY_INTERVAL", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Worker.DiscountExpiryInterval)
}
