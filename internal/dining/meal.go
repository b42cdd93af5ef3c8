package dining

import "strings"

// MealKind tags the variant held by a Meal.
type MealKind int

const (
	Breakfast MealKind = iota
	Lunch
	Dinner
	Other
)

// Meal is one of the three named meals or a free-text category filter.
type Meal struct {
	Kind MealKind
	text string
}

var (
	BreakfastMeal = Meal{Kind: Breakfast}
	LunchMeal     = Meal{Kind: Lunch}
	DinnerMeal    = Meal{Kind: Dinner}
)

// OtherMeal wraps unvalidated user text. The text is only used as a filter.
func OtherMeal(text string) Meal {
	return Meal{Kind: Other, text: text}
}

// Wildcard is a meal whose filter matches every category name.
func Wildcard() Meal {
	return OtherMeal("")
}

// ResolveMeal maps user text onto a meal. Only the literal names breakfast,
// lunch and dinner are recognised; everything else becomes Other.
func ResolveMeal(token string) Meal {
	lower := strings.ToLower(token)
	switch {
	case strings.Contains(lower, "breakfast"):
		return BreakfastMeal
	case strings.Contains(lower, "lunch"):
		return LunchMeal
	case strings.Contains(lower, "dinner"):
		return DinnerMeal
	default:
		return OtherMeal(token)
	}
}

// String returns the display name. Other meals echo their text, so titles
// shown to users must go through Label instead.
func (m Meal) String() string {
	switch m.Kind {
	case Breakfast:
		return "Breakfast"
	case Lunch:
		return "Lunch"
	case Dinner:
		return "Dinner"
	default:
		return m.text
	}
}

// Label is safe to show to users.
func (m Meal) Label() string {
	if m.Kind == Other {
		return "Custom Category"
	}
	return m.String()
}

// IsOther reports whether the meal came from unrecognised input.
func (m Meal) IsOther() bool {
	return m.Kind == Other
}

// Matches reports whether a catalog category name belongs to this meal.
func (m Meal) Matches(category string) bool {
	return strings.Contains(strings.ToLower(category), strings.ToLower(m.String()))
}
