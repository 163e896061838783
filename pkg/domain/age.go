package domain

import "time"

// AgeAt returns the completed years between birthDate and now using calendar
// arithmetic, so the birthday itself counts as the new year. Returns 0 for a
// zero birth date or a birth date in the future.
func AgeAt(birthDate, now time.Time) int {
	if birthDate.IsZero() {
		return 0
	}
	b := birthDate.UTC()
	n := now.UTC()
	if n.Before(b) {
		return 0
	}
	years := n.Year() - b.Year()
	if n.Before(b.AddDate(years, 0, 0)) {
		years--
	}
	return years
}
