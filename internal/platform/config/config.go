// Package config resolves the dashboard server configuration from defaults,
// an optional config file, command-line flags, and PAYZEE_* environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the server reads,
// e.g. PAYZEE_BACKEND_BASE_URL.
const EnvPrefix = "PAYZEE"

const devSessionSecret = "dev-session-secret-change-in-production"

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string        `mapstructure:"addr"`
	Environment    string        `mapstructure:"environment"`
	LogLevel       string        `mapstructure:"log_level"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
	TrustedProxies []string      `mapstructure:"trusted_proxies"`
	Backend        Backend       `mapstructure:"backend"`
	Session        Session       `mapstructure:"session"`
	Login          Login         `mapstructure:"login"`
}

// Backend configures the REST API client.
type Backend struct {
	BaseURL          string        `mapstructure:"base_url"`
	Timeout          time.Duration `mapstructure:"timeout"`
	FailureThreshold int           `mapstructure:"failure_threshold"`
	SuccessThreshold int           `mapstructure:"success_threshold"`
	Cooldown         time.Duration `mapstructure:"cooldown"`
}

// Session configures the signed identity cookie.
type Session struct {
	Secret       string        `mapstructure:"secret"`
	TTL          time.Duration `mapstructure:"ttl"`
	SecureCookie bool          `mapstructure:"secure_cookie"`
}

// Login configures the failed-login lockout.
type Login struct {
	MaxAttempts     int           `mapstructure:"max_attempts"`
	Window          time.Duration `mapstructure:"window"`
	LockDuration    time.Duration `mapstructure:"lock_duration"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Server {
	return Server{
		Addr:           ":8080",
		Environment:    "development",
		LogLevel:       "info",
		RequestTimeout: 30 * time.Second,
		MaxBodyBytes:   1 << 20,
		Backend: Backend{
			BaseURL:          "http://localhost:8000/api/v1",
			Timeout:          10 * time.Second,
			FailureThreshold: 5,
			SuccessThreshold: 2,
			Cooldown:         10 * time.Second,
		},
		Session: Session{
			Secret: devSessionSecret,
			TTL:    12 * time.Hour,
		},
		Login: Login{
			MaxAttempts:     5,
			Window:          15 * time.Minute,
			LockDuration:    15 * time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
	}
}

// SetDefaults registers every key with v so environment overrides are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("addr", d.Addr)
	v.SetDefault("environment", d.Environment)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("request_timeout", d.RequestTimeout)
	v.SetDefault("max_body_bytes", d.MaxBodyBytes)
	v.SetDefault("trusted_proxies", []string{})
	v.SetDefault("backend.base_url", d.Backend.BaseURL)
	v.SetDefault("backend.timeout", d.Backend.Timeout)
	v.SetDefault("backend.failure_threshold", d.Backend.FailureThreshold)
	v.SetDefault("backend.success_threshold", d.Backend.SuccessThreshold)
	v.SetDefault("backend.cooldown", d.Backend.Cooldown)
	v.SetDefault("session.secret", d.Session.Secret)
	v.SetDefault("session.ttl", d.Session.TTL)
	v.SetDefault("session.secure_cookie", d.Session.SecureCookie)
	v.SetDefault("login.max_attempts", d.Login.MaxAttempts)
	v.SetDefault("login.window", d.Login.Window)
	v.SetDefault("login.lock_duration", d.Login.LockDuration)
	v.SetDefault("login.cleanup_interval", d.Login.CleanupInterval)
}

// Load resolves a Server from v. Nested keys map to environment variables
// by replacing dots with underscores: backend.base_url -> PAYZEE_BACKEND_BASE_URL.
func Load(v *viper.Viper) (Server, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return Server{}, fmt.Errorf("decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// IsProduction reports whether the server runs with production safeguards.
func (s Server) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

// Validate rejects configurations the server cannot run with.
func (s Server) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	u, err := url.Parse(s.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend.base_url %q is not an absolute URL", s.Backend.BaseURL)
	}
	if s.Backend.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be positive")
	}
	if s.Backend.FailureThreshold < 1 || s.Backend.SuccessThreshold < 1 {
		return fmt.Errorf("backend breaker thresholds must be at least 1")
	}
	if s.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	if len(s.Session.Secret) < 16 {
		return fmt.Errorf("session.secret must be at least 16 characters")
	}
	if s.Login.MaxAttempts < 1 || s.Login.Window <= 0 || s.Login.LockDuration <= 0 || s.Login.CleanupInterval <= 0 {
		return fmt.Errorf("login lockout attempts and durations must be positive")
	}
	if s.IsProduction() {
		if s.Session.Secret == devSessionSecret {
			return fmt.Errorf("session.secret must be set in production")
		}
		if !s.Session.SecureCookie {
			return fmt.Errorf("session.secure_cookie must be enabled in production")
		}
	}
	return nil
}
