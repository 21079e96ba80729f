package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("America/Chicago"))
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
}

func TestLocationFallsBack(t *testing.T) {
	loc := Location("not-a-zone")
	assert.Equal(t, DefaultTimezone, loc.String())

	loc = Location("America/New_York")
	assert.Equal(t, "America/New_York", loc.String())
}

func TestDayWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	// 1 AM UTC on June 6 is still the evening of June 5 in Chicago.
	at := time.Date(2026, 6, 6, 1, 30, 0, 0, time.UTC)
	start, end := DayWindow(at, "America/Chicago")

	assert.Equal(t, time.Date(2026, 6, 5, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 6, 6, 0, 0, 0, 0, loc), end)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestMonthWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	start, end := MonthWindow(2026, time.February, "America/Chicago")
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), end)

	// December rolls into the next year.
	start, end = MonthWindow(2026, time.December, "America/Chicago")
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, loc), end)
}
