package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigTestProfile(t *testing.T) {
	t.Setenv("DP_ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "donations_test", cfg.Database.Database)
	assert.Equal(t, 1, cfg.Database.RetryAttempts)
	assert.Equal(t, []int{100, 500}, cfg.Intake.PresetAmounts)

	// durations are converted from whole units
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 2*time.Second, cfg.CloudPayments.APITimeout)
	assert.Equal(t, 24*time.Hour, cfg.Redis.DedupTTL)

	// defaults fill what the file leaves out
	assert.Equal(t, "/api/payments/check", cfg.CloudPayments.Webhooks.Check)
	assert.Equal(t, "/api/donations", cfg.Intake.Path)
	assert.Equal(t, "Month", cfg.CloudPayments.Recurrent.Interval)
	assert.Equal(t, "info@rare-diseases.ru", cfg.Mail.AdminEmail)
	assert.False(t, cfg.CloudPayments.UsesPlaceholderSecret())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DP_ENV", "test")
	t.Setenv("DP_DB_HOST", "db.internal")
	t.Setenv("DP_SERVER_PORT", "9090")
	t.Setenv("DP_DB_QUERY_TIMEOUT_SECONDS", "7")
	t.Setenv("CLOUDPAYMENTS_PUBLIC_ID", "pk_live")
	t.Setenv("CLOUDPAYMENTS_API_SECRET", "live_secret")
	t.Setenv("CLOUDPAYMENTS_TEST_MODE", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 7*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "pk_live", cfg.CloudPayments.PublicID)
	assert.Equal(t, "live_secret", cfg.CloudPayments.APISecret)
	assert.False(t, cfg.CloudPayments.TestMode)
}

func TestLoadConfigUnknownEnvironment(t *testing.T) {
	t.Setenv("DP_ENV", "staging-does-not-exist")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestUsesPlaceholderSecret(t *testing.T) {
	assert.True(t, CloudPaymentsConfig{APISecret: PlaceholderAPISecret}.UsesPlaceholderSecret())
	assert.True(t, CloudPaymentsConfig{}.UsesPlaceholderSecret())
	assert.False(t, CloudPaymentsConfig{APISecret: "s3cr3t"}.UsesPlaceholderSecret())
}
