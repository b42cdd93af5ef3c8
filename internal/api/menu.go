package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pavilion/backend/internal/service"
	"github.com/pageza/pavilion/backend/internal/types"
)

const (
	HoursTitle         = "Hours of Operation"
	AnnouncementsTitle = "Announcements"
)

// MenuHandler serves menus, hours and announcements as titled sections
type MenuHandler struct {
	menus service.IMenuService
	clock func() time.Time
}

// NewMenuHandler creates a handler. clock supplies "now" in the venues' time zone.
func NewMenuHandler(menus service.IMenuService, clock func() time.Time) *MenuHandler {
	if clock == nil {
		clock = time.Now
	}
	return &MenuHandler{menus: menus, clock: clock}
}

func (h *MenuHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/menu", h.Menu)
	router.GET("/hours", h.Hours)
	router.GET("/announcements", h.Announcements)
}

// Menu answers a free-text query. Without q it returns the next upcoming meal.
func (h *MenuHandler) Menu(c *gin.Context) {
	c.JSON(http.StatusOK, Answer(c.Request.Context(), h.menus, c.Query("q"), h.clock()))
}

func (h *MenuHandler) Hours(c *gin.Context) {
	c.JSON(http.StatusOK, types.MenuResponse{
		Title:    HoursTitle,
		Sections: service.Render(h.menus.Hours()),
	})
}

func (h *MenuHandler) Announcements(c *gin.Context) {
	c.JSON(http.StatusOK, types.MenuResponse{
		Title:    AnnouncementsTitle,
		Sections: service.Render(h.menus.BuildAnnouncements(c.Request.Context())),
	})
}
