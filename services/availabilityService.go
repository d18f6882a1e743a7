package services

import (
	"errors"
	"time"
)

const DefaultMaxDailyBookings = 3

var ErrDateInPast = errors.New("date must not be in the past")

// ParseBookingDate parses a YYYY-MM-DD date string.
func ParseBookingDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// ValidateBookingDate rejects dates strictly before today. Both sides are
// compared as calendar days so the caller's zone cannot shift the boundary.
func ValidateBookingDate(date time.Time, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		return ErrDateInPast
	}
	return nil
}

// DayRange returns the inclusive window covering the whole calendar day,
// [00:00:00.000, 23:59:59.999].
func DayRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// IsAvailable reports whether another booking fits under the daily cap.
// A missing or non-positive cap falls back to DefaultMaxDailyBookings.
func IsAvailable(existingBookings int64, maxDailyBookings int) bool {
	if maxDailyBookings <= 0 {
		maxDailyBookings = DefaultMaxDailyBookings
	}
	return existingBookings < int64(maxDailyBookings)
}
