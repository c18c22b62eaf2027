package dateutil

import "time"

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format for clock times stored on showtimes.
	TimeLayout = "15:04"
)

// ScheduleWeekday maps a date to schedule indexing: 0 = Monday .. 6 = Sunday.
func ScheduleWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DateOnly strips the clock and zone, leaving midnight UTC of the same
// calendar date. Date comparisons throughout the service go through this so
// a timestamp and a bare date land on the same value.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseClock parses an HH:MM clock reading.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}
