// Package store keeps login lockout records in process memory. Records are
// lost on restart, which only shortens an active lockout.
package store

import (
	"context"
	"time"

	"payzee/internal/ratelimit/models"
	psync "payzee/pkg/platform/sync"
)

type Memory struct {
	records *psync.ShardedMap[models.Lockout]
}

func NewMemory() *Memory {
	return &Memory{records: psync.NewShardedMap[models.Lockout]()}
}

func (s *Memory) Get(_ context.Context, key string) (models.Lockout, bool, error) {
	l, ok := s.records.Get(key)
	return l, ok, nil
}

// Update applies fn to the record under key (the zero Lockout with Key set
// when none exists) and stores the result.
func (s *Memory) Update(_ context.Context, key string, fn func(models.Lockout) models.Lockout) (models.Lockout, error) {
	return s.records.Update(key, func(current models.Lockout, exists bool) (models.Lockout, bool) {
		if !exists {
			current = models.Lockout{Key: key}
		}
		return fn(current), true
	}), nil
}

func (s *Memory) Clear(_ context.Context, key string) error {
	s.records.Delete(key)
	return nil
}

// Sweep drops records that are neither locked nor inside their window.
func (s *Memory) Sweep(_ context.Context, now time.Time, window time.Duration) (int, error) {
	return s.records.DeleteFunc(func(_ string, l models.Lockout) bool {
		return l.Stale(now, window)
	}), nil
}

func (s *Memory) Len() int {
	return s.records.Len()
}
