package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://localhost:8000/api/v1", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Cooldown)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PAYZEE_ADDR", ":9090")
	t.Setenv("PAYZEE_BACKEND_BASE_URL", "https://api.payzee.example/api/v1")
	t.Setenv("PAYZEE_BACKEND_TIMEOUT", "3s")
	t.Setenv("PAYZEE_SESSION_TTL", "1h")
	t.Setenv("PAYZEE_TRUSTED_PROXIES", "10.0.0.0/8,192.168.0.0/16")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "https://api.payzee.example/api/v1", cfg.Backend.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.0.0/16"}, cfg.TrustedProxies)
}

func TestLoadExplicitValuesWinOverDefaults(t *testing.T) {
	v := viper.New()
	v.Set("backend.failure_threshold", 2)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Backend.FailureThreshold)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Server)
		wantErr string
	}{
		{"defaults are valid", func(*Server) {}, ""},
		{"relative backend url", func(s *Server) { s.Backend.BaseURL = "/api/v1" }, "backend.base_url"},
		{"zero backend timeout", func(s *Server) { s.Backend.Timeout = 0 }, "backend.timeout"},
		{"zero breaker threshold", func(s *Server) { s.Backend.FailureThreshold = 0 }, "thresholds"},
		{"short secret", func(s *Server) { s.Session.Secret = "short" }, "at least 16"},
		{"no login attempts", func(s *Server) { s.Login.MaxAttempts = 0 }, "login lockout"},
		{"production with dev secret", func(s *Server) {
			s.Environment = "production"
			s.Session.SecureCookie = true
		}, "must be set in production"},
		{"production without secure cookie", func(s *Server) {
			s.Environment = "production"
			s.Session.Secret = "a-real-production-secret"
		}, "secure_cookie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
