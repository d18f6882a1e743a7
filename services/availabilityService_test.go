package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseBookingDate(t *testing.T) {
	date, err := ParseBookingDate("2025-12-31")
	assert.NoError(t, err)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, time.December, date.Month())
	assert.Equal(t, 31, date.Day())

	_, err = ParseBookingDate("31/12/2025")
	assert.Error(t, err)

	_, err = ParseBookingDate("not-a-date")
	assert.Error(t, err)
}

func TestValidateBookingDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	yesterday := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, ValidateBookingDate(yesterday, now), ErrDateInPast)

	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, ValidateBookingDate(today, now), "today is bookable")

	tomorrow := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, ValidateBookingDate(tomorrow, now))
}

func TestValidateBookingDateSameDayInOtherZones(t *testing.T) {
	// A host west of UTC must still accept a booking for its current day.
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.FixedZone("EST", -5*3600))

	today, err := ParseBookingDate("2025-06-15")
	assert.NoError(t, err)
	assert.NoError(t, ValidateBookingDate(today, now))

	yesterday, err := ParseBookingDate("2025-06-14")
	assert.NoError(t, err)
	assert.ErrorIs(t, ValidateBookingDate(yesterday, now), ErrDateInPast)

	eastOfUTC := time.Date(2025, 6, 15, 10, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	assert.NoError(t, ValidateBookingDate(today, eastOfUTC))
}

func TestDayRange(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	start, end := DayRange(date)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 15, 23, 59, 59, 999000000, time.UTC), end)
}

func TestIsAvailable(t *testing.T) {
	assert.True(t, IsAvailable(0, 3))
	assert.True(t, IsAvailable(2, 3))
	assert.False(t, IsAvailable(3, 3), "cap reached")
	assert.False(t, IsAvailable(4, 3))
}

func TestIsAvailableDefaultsCap(t *testing.T) {
	assert.True(t, IsAvailable(2, 0), "unset cap falls back to 3")
	assert.False(t, IsAvailable(3, 0))
	assert.False(t, IsAvailable(3, -1))
}
