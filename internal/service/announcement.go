package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pageza/pavilion/backend/internal/logging"
	"github.com/pageza/pavilion/backend/internal/types"
)

// BuildAnnouncement digs the announcement for one venue out of its "help"
// group and "schedule" category. The first item's description is the
// headline and its raw materials are the body. Every failure yields a
// fallback message instead of an error.
func (s *MenuService) BuildAnnouncement(ctx context.Context, venueTag string) string {
	log := logging.FromContext(ctx, s.logger).With(zap.String("tag", venueTag))

	company, err := s.catalog.FetchCompany(ctx)
	if err != nil {
		log.Error("Failed to get company info", zap.Error(err))
		return MsgCompanyFailed
	}

	locations, err := s.catalog.FetchLocations(ctx, company)
	if err != nil {
		log.Error("Failed to read restaurant list", zap.Error(err))
		return MsgLocationsFailed
	}

	location, ok := MatchVenue(locations, venueTag)
	if !ok {
		log.Error("Failed to find restaurant for announcements", zap.Strings("tags_seen", VenueTags(locations)))
		return MsgNoRestaurant
	}

	groups, err := s.catalog.FetchMenuGroups(ctx, company, location)
	if err != nil {
		log.Error("Failed to get groups and categories", zap.Error(err))
		return MsgGroupsFailed
	}

	group, ok := findGroupNamed(groups, "help")
	if !ok {
		log.Error("Failed to find a group for info")
		return MsgAnnounceNoGroup
	}

	category, ok := findCategoryNamed(groups, "schedule")
	if !ok {
		log.Error("Failed to find a category for announcements")
		return MsgAnnounceNoCat
	}

	menu, err := s.catalog.FetchMenuItems(ctx, company, location, category.ID, group.ID)
	if err != nil {
		log.Error("Failed to get the menu", zap.Error(err))
		return MsgAnnounceMenu
	}

	if len(menu.MenuItems) == 0 {
		return MsgAnnounceNone
	}
	announcement := menu.MenuItems[0]

	materials, err := s.catalog.FetchRawMaterials(ctx, company, location, announcement)
	if err != nil {
		log.Error("Failed to get announcement data", zap.Error(err))
		return MsgAnnounceFailed
	}

	return fmt.Sprintf("**%s**\n\n%s", announcement.Description, joinMaterials(materials))
}

// BuildAnnouncements resolves both venues concurrently
func (s *MenuService) BuildAnnouncements(ctx context.Context) []types.Section {
	venues := []Venue{s.primary, s.secondary}
	sections := make([]types.Section, len(venues))

	var g errgroup.Group
	for i, venue := range venues {
		g.Go(func() error {
			sections[i] = types.Section{
				Title: venue.Name + " Announcements",
				Body:  s.BuildAnnouncement(ctx, venue.AnnouncementTag),
			}
			return nil
		})
	}
	_ = g.Wait()

	return sections
}

func joinMaterials(materials []types.RawMaterial) string {
	if len(materials) == 0 {
		return MsgAnnouncementVoid
	}

	names := make([]string, 0, len(materials))
	for _, material := range materials {
		names = append(names, material.Name)
	}
	return strings.Join(names, "\n")
}
