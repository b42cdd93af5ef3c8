package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pageza/pavilion/backend/internal/dining"
	"github.com/pageza/pavilion/backend/internal/logging"
	"github.com/pageza/pavilion/backend/internal/types"
)

// DefaultFanOut bounds concurrent category fetches within one branch
const DefaultFanOut = 4

// housekeeping category names of the secondary venue that are not menus
var housekeeping = []string{"schedule", "how to"}

// Venue names a dining venue and the tags that locate it in the catalog
type Venue struct {
	Name            string
	MenuTag         string
	AnnouncementTag string
}

// MenuService aggregates catalog data for the primary and secondary venues.
// It keeps no state between calls; every request fetches the hierarchy fresh.
type MenuService struct {
	catalog   ICatalogClient
	primary   Venue
	secondary Venue
	fanOut    int
	logger    *zap.Logger
}

// NewMenuService creates a new MenuService instance
func NewMenuService(catalog ICatalogClient, primary, secondary Venue, fanOut int, logger *zap.Logger) *MenuService {
	if fanOut <= 0 {
		fanOut = DefaultFanOut
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MenuService{
		catalog:   catalog,
		primary:   primary,
		secondary: secondary,
		fanOut:    fanOut,
		logger:    logger,
	}
}

// Venues returns the configured venues
func (s *MenuService) Venues() (primary, secondary Venue) {
	return s.primary, s.secondary
}

// Hours returns the operating-hour tables
func (s *MenuService) Hours() []types.Section {
	return dining.HoursSections(s.primary.Name, s.secondary.Name)
}

// BuildMenu resolves the menu for day and meal. Primary venue sections come
// first, then the secondary venue's, each in catalog order. A failing branch
// or category contributes one fallback section and never aborts its siblings.
func (s *MenuService) BuildMenu(ctx context.Context, day dining.Day, meal dining.Meal) []types.Section {
	log := logging.FromContext(ctx, s.logger).With(
		zap.Stringer("day", day),
		zap.String("meal", meal.String()),
	)

	company, err := s.catalog.FetchCompany(ctx)
	if err != nil {
		log.Error("Failed to get company info", zap.Error(err))
		return []types.Section{errorSection(MsgCompanyFailed)}
	}

	locations, err := s.catalog.FetchLocations(ctx, company)
	if err != nil {
		log.Error("Failed to read restaurant list", zap.Error(err))
		return []types.Section{errorSection(MsgLocationsFailed)}
	}

	var primarySections, secondarySections []types.Section
	var g errgroup.Group

	g.Go(func() error {
		primarySections = s.branch(ctx, log, company, locations, s.primary, day, meal, nil)
		return nil
	})

	if dining.IsSecondaryDinnerSlot(day) {
		g.Go(func() error {
			secondarySections = s.secondaryBranch(ctx, log, company, locations, day, meal)
			return nil
		})
	} else {
		log.Debug("Secondary venue closed", zap.String("venue", s.secondary.Name))
	}

	_ = g.Wait()

	return append(primarySections, secondarySections...)
}

// secondaryBranch widens a Dinner request to every category, because the
// venue's single nightly meal is not consistently named "Dinner", and drops
// housekeeping categories. Titles get the venue name since both venues use
// "Dinner" verbatim.
func (s *MenuService) secondaryBranch(ctx context.Context, log *zap.Logger, company types.Company, locations []types.Location, day dining.Day, meal dining.Meal) []types.Section {
	filter := meal
	if meal.Kind == dining.Dinner {
		filter = dining.Wildcard()
	}

	sections := s.branch(ctx, log, company, locations, s.secondary, day, filter, isHousekeeping)
	for i := range sections {
		sections[i].Title = fmt.Sprintf("%s %s", s.secondary.Name, sections[i].Title)
	}
	return sections
}

func (s *MenuService) branch(ctx context.Context, log *zap.Logger, company types.Company, locations []types.Location, venue Venue, day dining.Day, meal dining.Meal, exclude func(string) bool) []types.Section {
	log = log.With(zap.String("venue", venue.Name))

	location, ok := MatchVenue(locations, venue.MenuTag)
	if !ok {
		log.Error("Failed to find restaurant",
			zap.String("tag", venue.MenuTag),
			zap.Strings("tags_seen", VenueTags(locations)),
		)
		return []types.Section{errorSection(MsgNoRestaurant)}
	}

	groups, err := s.catalog.FetchMenuGroups(ctx, company, location)
	if err != nil {
		log.Error("Failed to get groups and categories", zap.Error(err))
		return []types.Section{errorSection(MsgGroupsFailed)}
	}

	group, ok := FindGroup(groups, day)
	if !ok {
		log.Info("No menu group for day")
		return []types.Section{errorSection(MsgNoGroupForDay)}
	}

	var categories []types.MenuCategory
	for _, category := range MatchCategories(groups, meal) {
		if exclude != nil && exclude(category.Name) {
			continue
		}
		categories = append(categories, category)
	}

	sections := make([]types.Section, len(categories))

	var g errgroup.Group
	g.SetLimit(s.fanOut)
	for i, category := range categories {
		g.Go(func() error {
			sections[i] = types.Section{
				Title: category.Name,
				Body:  s.categoryBody(ctx, log, company, location, category, group),
			}
			return nil
		})
	}
	_ = g.Wait()

	return sections
}

func (s *MenuService) categoryBody(ctx context.Context, log *zap.Logger, company types.Company, location types.Location, category types.MenuCategory, group types.MenuGroup) string {
	menu, err := s.catalog.FetchMenuItems(ctx, company, location, category.ID, group.ID)
	if err != nil {
		log.Error("Failed to get the menu", zap.String("category", category.Name), zap.Error(err))
		return MsgMenuFailed
	}
	return FormatItems(menu.MenuItems)
}

// FormatItems renders items as "**name** - description" lines
func FormatItems(items []types.MenuItem) string {
	if len(items) == 0 {
		return MsgNothingOnMenu
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("**%s** - %s", item.Name, item.Description))
	}
	return strings.Join(lines, "\n")
}

func isHousekeeping(category string) bool {
	lower := strings.ToLower(category)
	for _, word := range housekeeping {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func errorSection(body string) types.Section {
	return types.Section{Title: ErrorTitle, Body: body}
}
