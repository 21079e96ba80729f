package timezone

import "time"

const DefaultTimezone = "America/Chicago"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// DayWindow returns the [start, end) bounds of the calendar day containing t
// in the given zone.
func DayWindow(t time.Time, tz string) (time.Time, time.Time) {
	loc := Location(tz)
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// MonthWindow returns the [start, end) bounds of the given month in the given zone.
func MonthWindow(year int, month time.Month, tz string) (time.Time, time.Time) {
	loc := Location(tz)
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}
