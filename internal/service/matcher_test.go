package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/pavilion/backend/internal/dining"
	"github.com/pageza/pavilion/backend/internal/types"
)

func tagged(id string, tags ...string) types.Location {
	location := types.Location{ID: id}
	for _, tag := range tags {
		location.SpecialGroupTags = append(location.SpecialGroupTags, types.SpecialGroup{Name: tag})
	}
	return location
}

func TestMatchVenue(t *testing.T) {
	locations := []types.Location{
		tagged("untagged"),
		tagged("second-tag", "Catering", "PVL hidden"),
		tagged("pav", "UCM PVL Fall"),
		tagged("pav-dup", "pvl spring"),
		tagged("ywdc", "YWDC Late Night"),
	}

	t.Run("substring of the first tag, case-insensitive", func(t *testing.T) {
		location, ok := MatchVenue(locations, "pvl")
		assert.True(t, ok)
		assert.Equal(t, "pav", location.ID)
	})

	t.Run("upper-case tag", func(t *testing.T) {
		location, ok := MatchVenue(locations, "YWDC")
		assert.True(t, ok)
		assert.Equal(t, "ywdc", location.ID)
	})

	t.Run("no candidate", func(t *testing.T) {
		_, ok := MatchVenue(locations, "lantern")
		assert.False(t, ok)
	})

	t.Run("empty list", func(t *testing.T) {
		_, ok := MatchVenue(nil, "pvl")
		assert.False(t, ok)
	})
}

func TestVenueTags(t *testing.T) {
	locations := []types.Location{tagged("a"), tagged("b", "PVL", "x"), tagged("c", "YWDC")}
	assert.Equal(t, []string{"PVL", "YWDC"}, VenueTags(locations))
}

func TestFindGroup(t *testing.T) {
	groups := types.MenuGroups{MenuGroups: []types.MenuGroup{
		{ID: "g-help", Name: "Help & Info"},
		{ID: "g-mon", Name: "MONDAY MENU"},
		{ID: "g-tue", Name: "tuesday"},
	}}

	group, ok := FindGroup(groups, dining.Monday)
	assert.True(t, ok)
	assert.Equal(t, "g-mon", group.ID)

	_, ok = FindGroup(groups, dining.Sunday)
	assert.False(t, ok)
}

func TestMatchCategories(t *testing.T) {
	groups := types.MenuGroups{MenuCategories: []types.MenuCategory{
		{ID: "1", Name: "Breakfast Grill"},
		{ID: "2", Name: "Lunch Entrees"},
		{ID: "3", Name: "LUNCH Deli"},
		{ID: "4", Name: "Dinner"},
	}}

	names := func(categories []types.MenuCategory) []string {
		var out []string
		for _, c := range categories {
			out = append(out, c.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Lunch Entrees", "LUNCH Deli"}, names(MatchCategories(groups, dining.LunchMeal)))
	assert.Equal(t, []string{"LUNCH Deli"}, names(MatchCategories(groups, dining.OtherMeal("deli"))))
	assert.Len(t, MatchCategories(groups, dining.Wildcard()), 4)
	assert.Empty(t, MatchCategories(groups, dining.OtherMeal("brunch")))
}
