// Package service locks out repeated failed logins per id number and client IP.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"payzee/internal/platform/tracer"
	"payzee/internal/ratelimit/models"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/requestcontext"
)

const keyPrefixLogin = "login"

type Store interface {
	Get(ctx context.Context, key string) (models.Lockout, bool, error)
	Update(ctx context.Context, key string, fn func(models.Lockout) models.Lockout) (models.Lockout, error)
	Clear(ctx context.Context, key string) error
	Sweep(ctx context.Context, now time.Time, window time.Duration) (int, error)
}

// Config bounds failed logins: MaxAttempts failures inside Window lock the
// key for LockDuration.
type Config struct {
	MaxAttempts  int
	Window       time.Duration
	LockDuration time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxAttempts:  5,
		Window:       15 * time.Minute,
		LockDuration: 15 * time.Minute,
	}
}

type Service struct {
	store  Store
	config Config
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithConfig(cfg Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("lockout store is required")
	}
	svc := &Service{
		store:  store,
		config: DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.config.MaxAttempts < 1 || svc.config.Window <= 0 || svc.config.LockDuration <= 0 {
		return nil, fmt.Errorf("invalid lockout config: attempts, window and lock duration must be positive")
	}
	return svc, nil
}

// Check refuses the login while the key is locked.
func (s *Service) Check(ctx context.Context, identifier, ip string) error {
	key := lockoutKey(identifier, ip)
	record, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to read login lockout")
	}
	now := requestcontext.Now(ctx)
	if !ok || !record.IsLocked(now) {
		return nil
	}

	minutes := int(math.Ceil(record.LockedUntil.Sub(now).Minutes()))
	return dErrors.New(dErrors.CodeRateLimited,
		fmt.Sprintf("too many failed login attempts, try again in %d minute(s)", minutes))
}

// RecordFailure counts a rejected login and locks the key once the
// attempts inside the window reach the limit.
func (s *Service) RecordFailure(ctx context.Context, identifier, ip string) error {
	now := requestcontext.Now(ctx)
	record, err := s.store.Update(ctx, lockoutKey(identifier, ip), func(l models.Lockout) models.Lockout {
		if l.Failures == 0 || l.WindowExpired(now, s.config.Window) {
			l.Failures = 0
			l.WindowStart = now
		}
		l.Failures++
		l.LastFailureAt = now
		if l.Failures >= s.config.MaxAttempts && !l.IsLocked(now) {
			l.LockedUntil = now.Add(s.config.LockDuration)
		}
		return l
	})
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record login failure")
	}

	if record.Failures == s.config.MaxAttempts {
		s.logger.WarnContext(ctx, "login lockout triggered",
			"login_id_hash", tracer.HashIdentifier(identifier),
			"locked_until", record.LockedUntil,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return nil
}

// Clear forgets the failures of a key after a successful login.
func (s *Service) Clear(ctx context.Context, identifier, ip string) error {
	if err := s.store.Clear(ctx, lockoutKey(identifier, ip)); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear login failures")
	}
	return nil
}

// Sweep removes records that can no longer refuse a login.
func (s *Service) Sweep(ctx context.Context, now time.Time) (int, error) {
	return s.store.Sweep(ctx, now, s.config.Window)
}

// StartCleanup sweeps every interval until ctx is done.
func (s *Service) StartCleanup(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			start := time.Now()
			removed, err := s.Sweep(ctx, start)
			if err != nil {
				s.logger.Error("login lockout cleanup failed", "error", err)
				continue
			}
			s.logger.Debug("login lockout cleanup completed",
				"removed", removed,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		case <-ctx.Done():
			s.logger.Info("login lockout cleanup stopping", "reason", ctx.Err())
			return ctx.Err()
		}
	}
}

// lockoutKey never carries the raw id number.
func lockoutKey(identifier, ip string) string {
	return keyPrefixLogin + ":" + tracer.HashIdentifier(identifier) + ":" + ip
}
