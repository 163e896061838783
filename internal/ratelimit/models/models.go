package models

import "time"

// Lockout tracks failed logins for one id number and client IP.
type Lockout struct {
	Key           string    `json:"key"`
	Failures      int       `json:"failures"`
	WindowStart   time.Time `json:"window_start"`
	LastFailureAt time.Time `json:"last_failure_at"`
	LockedUntil   time.Time `json:"locked_until,omitzero"`
}

// IsLocked reports whether logins are refused at now.
func (l Lockout) IsLocked(now time.Time) bool {
	return !l.LockedUntil.IsZero() && now.Before(l.LockedUntil)
}

// WindowExpired reports whether the failure window that started at
// WindowStart is over at now.
func (l Lockout) WindowExpired(now time.Time, window time.Duration) bool {
	return !now.Before(l.WindowStart.Add(window))
}

// Stale reports whether the record no longer affects any decision.
func (l Lockout) Stale(now time.Time, window time.Duration) bool {
	return !l.IsLocked(now) && l.WindowExpired(now, window)
}
