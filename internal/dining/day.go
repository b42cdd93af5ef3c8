// Package dining resolves which meal is being served and when. Everything in
// this package is pure: callers pass the wall-clock time in and get values back.
package dining

import (
	"strings"
	"time"
)

// Day is a day of the week as the catalog names its menu groups.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// String returns the full English name of the day.
func (d Day) String() string {
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return dayNames[d]
}

// IsWeekend reports whether d is Saturday or Sunday.
func (d Day) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

// Next returns the day after d.
func (d Day) Next() Day {
	return (d + 1) % 7
}

// DayOf converts a timestamp's weekday into a Day.
func DayOf(t time.Time) Day {
	// time.Weekday starts the week on Sunday.
	return Day((int(t.Weekday()) + 6) % 7)
}

// ParseDay matches a token against day names case-insensitively. Any prefix of
// at least three letters is accepted ("wed", "thurs", "wednesday").
func ParseDay(token string) (Day, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if len(token) < 3 {
		return 0, false
	}

	for i, name := range dayNames {
		if strings.HasPrefix(strings.ToLower(name), token) {
			return Day(i), true
		}
	}
	return 0, false
}
