package dining

import (
	"fmt"
	"strings"
	"time"
)

// QueryKind selects what a user asked for.
type QueryKind int

const (
	QueryMenu QueryKind = iota
	QueryHours
	QueryAnnouncements
)

// Query is a parsed user request.
type Query struct {
	Kind QueryKind
	Day  Day
	Meal Meal
}

// ParseQuery interprets free text split on single spaces. The meta words
// time/hour and announce/schedule are only honoured when they are the whole
// input. Otherwise day tokens override the day and everything else is joined
// into a custom meal; now supplies the defaults.
func ParseQuery(input string, now time.Time) Query {
	day, meal := NextMeal(now)

	args := strings.Split(input, " ")
	if len(args) == 1 {
		lower := strings.ToLower(args[0])
		switch {
		case strings.Contains(lower, "time"), strings.Contains(lower, "hour"):
			return Query{Kind: QueryHours, Day: day, Meal: meal}
		case strings.Contains(lower, "announce"), strings.Contains(lower, "schedule"):
			return Query{Kind: QueryAnnouncements, Day: day, Meal: meal}
		}
	}

	var custom []string
	for _, arg := range args {
		if d, ok := ParseDay(arg); ok {
			day = d
			continue
		}
		if arg != "" {
			custom = append(custom, arg)
		}
	}

	if len(custom) > 0 {
		meal = ResolveMeal(strings.Join(custom, " "))
	}

	return Query{Kind: QueryMenu, Day: day, Meal: meal}
}

// Title is the heading shown above a menu. Custom meals never echo user text.
func (q Query) Title(primary, secondary string) string {
	return fmt.Sprintf("%s at the %s/%s for %s", q.Meal.Label(), primary, secondary, q.Day)
}
