package api

import (
	"context"
	"time"

	"github.com/pageza/pavilion/backend/internal/dining"
	"github.com/pageza/pavilion/backend/internal/service"
	"github.com/pageza/pavilion/backend/internal/types"
)

// Answer parses input against now and builds the rendered response. The HTTP
// handler and the command line share it.
func Answer(ctx context.Context, menus service.IMenuService, input string, now time.Time) types.MenuResponse {
	query := dining.ParseQuery(input, now)

	switch query.Kind {
	case dining.QueryHours:
		return types.MenuResponse{Title: HoursTitle, Sections: service.Render(menus.Hours())}
	case dining.QueryAnnouncements:
		return types.MenuResponse{Title: AnnouncementsTitle, Sections: service.Render(menus.BuildAnnouncements(ctx))}
	}

	primary, secondary := menus.Venues()
	return types.MenuResponse{
		Title:    query.Title(primary.Name, secondary.Name),
		Sections: service.Render(menus.BuildMenu(ctx, query.Day, query.Meal)),
	}
}
