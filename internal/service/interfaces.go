package service

import (
	"context"

	"github.com/pageza/pavilion/backend/internal/dining"
	"github.com/pageza/pavilion/backend/internal/types"
)

// ICatalogClient defines the five upstream catalog calls
type ICatalogClient interface {
	FetchCompany(ctx context.Context) (types.Company, error)
	FetchLocations(ctx context.Context, company types.Company) ([]types.Location, error)
	FetchMenuGroups(ctx context.Context, company types.Company, location types.Location) (types.MenuGroups, error)
	FetchMenuItems(ctx context.Context, company types.Company, location types.Location, categoryID, groupID string) (types.MenuItems, error)
	FetchRawMaterials(ctx context.Context, company types.Company, location types.Location, item types.MenuItem) ([]types.RawMaterial, error)
}

// IMenuService defines the aggregation operations exposed to renderers
type IMenuService interface {
	BuildMenu(ctx context.Context, day dining.Day, meal dining.Meal) []types.Section
	BuildAnnouncement(ctx context.Context, venueTag string) string
	BuildAnnouncements(ctx context.Context) []types.Section
	Hours() []types.Section
	Venues() (primary, secondary Venue)
}
