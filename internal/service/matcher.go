package service

import (
	"strings"

	"github.com/pageza/pavilion/backend/internal/dining"
	"github.com/pageza/pavilion/backend/internal/types"
)

// VenueTag returns the free-text tag the catalog uses to identify a venue:
// the name of the first special group of the location. The catalog exposes
// no stable venue id, so this convention is the only link and may drift
// between deployments of the upstream data.
func VenueTag(location types.Location) (string, bool) {
	if len(location.SpecialGroupTags) == 0 {
		return "", false
	}
	return location.SpecialGroupTags[0].Name, true
}

// MatchVenue returns the first location whose tag contains tag, compared
// case-insensitively. Locations without a tag are never candidates.
func MatchVenue(locations []types.Location, tag string) (types.Location, bool) {
	needle := strings.ToLower(tag)
	for _, location := range locations {
		name, ok := VenueTag(location)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(name), needle) {
			return location, true
		}
	}
	return types.Location{}, false
}

// VenueTags lists every tag seen, for diagnosing naming drift
func VenueTags(locations []types.Location) []string {
	tags := make([]string, 0, len(locations))
	for _, location := range locations {
		if name, ok := VenueTag(location); ok {
			tags = append(tags, name)
		}
	}
	return tags
}

// FindGroup returns the first menu group named after day
func FindGroup(groups types.MenuGroups, day dining.Day) (types.MenuGroup, bool) {
	return findGroupNamed(groups, day.String())
}

func findGroupNamed(groups types.MenuGroups, name string) (types.MenuGroup, bool) {
	needle := strings.ToLower(name)
	for _, group := range groups.MenuGroups {
		if strings.Contains(strings.ToLower(group.Name), needle) {
			return group, true
		}
	}
	return types.MenuGroup{}, false
}

// MatchCategories returns the categories belonging to meal, in catalog order
func MatchCategories(groups types.MenuGroups, meal dining.Meal) []types.MenuCategory {
	var matched []types.MenuCategory
	for _, category := range groups.MenuCategories {
		if meal.Matches(category.Name) {
			matched = append(matched, category)
		}
	}
	return matched
}

func findCategoryNamed(groups types.MenuGroups, name string) (types.MenuCategory, bool) {
	needle := strings.ToLower(name)
	for _, category := range groups.MenuCategories {
		if strings.Contains(strings.ToLower(category.Name), needle) {
			return category, true
		}
	}
	return types.MenuCategory{}, false
}
