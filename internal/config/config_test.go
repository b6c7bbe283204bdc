package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"master_booking/internal/ratelimit"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "memory", cfg.RateLimit.Store)
	assert.Equal(t, "Master <hello@wearemaster.com>", cfg.Email.From)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 15*time.Minute, cfg.Scheduler.RecoveryInterval)
	assert.Empty(t, cfg.Stripe.SecretKey)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", " Development ")
	t.Setenv("RATE_LIMIT_PAYMENT", "3")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)

	rules := cfg.RateLimit.Rules()
	assert.Equal(t, ratelimit.Rule{Limit: 3, Window: 30 * time.Second}, rules[ratelimit.ClassPayment])
	assert.Equal(t, 100, rules[ratelimit.ClassDefault].Limit)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown environment", "ENVIRONMENT", "mars"},
		{"unknown store", "RATE_LIMIT_STORE", "memcached"},
		{"zero limit", "RATE_LIMIT_AUTH", "0"},
		{"bad ops address", "EMAIL_OPS_TO", "not-an-email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestStripeConfig_MockEnabled(t *testing.T) {
	for _, v := range []string{"1", "true", " YES ", "on", "mock"} {
		assert.True(t, StripeConfig{GatewayMock: v}.MockEnabled(), v)
	}
	for _, v := range []string{"", "0", "false", "off", "stripe"} {
		assert.False(t, StripeConfig{GatewayMock: v}.MockEnabled(), v)
	}
}
