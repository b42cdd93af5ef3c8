package types

// Envelope is the wrapper every catalog response arrives in
type Envelope[T any] struct {
	Data T `json:"data"`
}

// Company is the root of the catalog hierarchy
type Company struct {
	ID string `json:"id"`
}

// SpecialGroup is a free-text tag attached to a location
type SpecialGroup struct {
	Name string `json:"name"`
}

// Location is a restaurant listed under a company
type Location struct {
	ID               string         `json:"id"`
	SpecialGroupTags []SpecialGroup `json:"locationSpecialGroupIds"`
}

// MenuGroup is a day-level grouping, e.g. "Monday Menu"
type MenuGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MenuCategory is a meal-level grouping, e.g. "Lunch - Grill"
type MenuCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MenuGroups is the payload of the menu-groups endpoint
type MenuGroups struct {
	MenuGroups     []MenuGroup    `json:"menuGroups"`
	MenuCategories []MenuCategory `json:"menuCategories"`
}

// MenuItem is a single dish
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MenuItems is the payload of the menu-items endpoint
type MenuItems struct {
	MenuItems []MenuItem `json:"menuItems"`
}

// RawMaterial is an ingredient or nutrition line of an item
type RawMaterial struct {
	Name string `json:"name"`
}
