package dining

import (
	"fmt"
	"strings"
	"time"

	"github.com/pageza/pavilion/backend/internal/types"
)

// Clock is a local wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// At builds a Clock from an hour and minute.
func At(hour, minute int) Clock {
	return Clock{Hour: hour, Minute: minute}
}

func (c Clock) offset() time.Duration {
	return time.Duration(c.Hour)*time.Hour + time.Duration(c.Minute)*time.Minute
}

// Format renders the clock like "7:00 AM".
func (c Clock) Format() string {
	return time.Date(2000, 1, 1, c.Hour, c.Minute, 0, 0, time.UTC).Format("3:04 PM")
}

// TimeWindow is a serving window. Start is inclusive and End is exclusive, so
// a meal starting at the instant another ends wins the tie.
type TimeWindow struct {
	Start Clock
	End   Clock
}

// Contains reports whether t's wall-clock time falls inside the window.
func (w TimeWindow) Contains(t time.Time) bool {
	since := sinceMidnight(t)
	return since >= w.Start.offset() && since < w.End.offset()
}

func (w TimeWindow) String() string {
	return w.Start.Format() + " - " + w.End.Format()
}

// MealWindow pairs a meal with the window it is served in.
type MealWindow struct {
	Meal   Meal
	Window TimeWindow
}

var (
	primaryWeekday = []MealWindow{
		{Meal: BreakfastMeal, Window: TimeWindow{Start: At(7, 0), End: At(10, 30)}},
		{Meal: LunchMeal, Window: TimeWindow{Start: At(11, 0), End: At(15, 0)}},
		{Meal: DinnerMeal, Window: TimeWindow{Start: At(16, 0), End: At(21, 0)}},
	}
	primaryWeekend = []MealWindow{
		{Meal: BreakfastMeal, Window: TimeWindow{Start: At(9, 0), End: At(10, 30)}},
		{Meal: LunchMeal, Window: TimeWindow{Start: At(11, 0), End: At(15, 0)}},
		{Meal: DinnerMeal, Window: TimeWindow{Start: At(16, 0), End: At(21, 0)}},
	}

	// SecondaryDinner is the secondary venue's only meal.
	SecondaryDinner = TimeWindow{Start: At(19, 0), End: At(23, 0)}
)

// PrimaryWindows returns the primary venue's meals for a day, in serving order.
func PrimaryWindows(d Day) []MealWindow {
	src := primaryWeekday
	if d.IsWeekend() {
		src = primaryWeekend
	}
	out := make([]MealWindow, len(src))
	copy(out, src)
	return out
}

// NextMeal returns the meal being served at the primary venue at now, or the
// next one to start. Once dinner has ended it rolls over to tomorrow's
// breakfast. now must already be in the venue's local time zone.
func NextMeal(now time.Time) (Day, Meal) {
	day := DayOf(now)
	since := sinceMidnight(now)

	for _, mw := range PrimaryWindows(day) {
		if since < mw.Window.End.offset() {
			return day, mw.Meal
		}
	}

	next := day.Next()
	return next, PrimaryWindows(next)[0].Meal
}

// IsSecondaryDinnerSlot reports whether the secondary venue serves its evening
// meal on d. It is only open on weekdays.
func IsSecondaryDinnerSlot(d Day) bool {
	return !d.IsWeekend()
}

func sinceMidnight(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

// fixedHours lists venues with no catalog presence.
var fixedHours = []types.Section{
	{Title: "Lantern Cafe", Body: "Monday to Friday: 8:00 AM - 7:00 PM"},
	{Title: "Bobcat Snack Shop", Body: "Monday to Friday: 8:00 AM - 6:00 PM"},
}

// HoursSections renders the operating-hour tables for display.
func HoursSections(primary, secondary string) []types.Section {
	sections := []types.Section{
		{Title: primary + " on Weekdays", Body: formatWindows(primaryWeekday)},
		{Title: primary + " on Weekends", Body: formatWindows(primaryWeekend)},
		{Title: secondary + " on Weekdays", Body: fmt.Sprintf("Dinner: %s", SecondaryDinner)},
	}
	return append(sections, fixedHours...)
}

func formatWindows(windows []MealWindow) string {
	lines := make([]string, 0, len(windows))
	for _, mw := range windows {
		lines = append(lines, fmt.Sprintf("%s: %s", mw.Meal, mw.Window))
	}
	return strings.Join(lines, "\n")
}
