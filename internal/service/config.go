package service

import (
	"go.uber.org/zap"

	"github.com/pageza/pavilion/backend/config"
)

// VenuesFromConfig returns the configured primary and secondary venues
func VenuesFromConfig(cfg *config.Config) (primary, secondary Venue) {
	return Venue{
			Name:            cfg.PrimaryName,
			MenuTag:         cfg.PrimaryMenuTag,
			AnnouncementTag: cfg.PrimaryAnnouncementTag,
		}, Venue{
			Name:            cfg.SecondaryName,
			MenuTag:         cfg.SecondaryMenuTag,
			AnnouncementTag: cfg.SecondaryAnnouncementTag,
		}
}

// NewFromConfig wires a catalog client and menu service from cfg
func NewFromConfig(cfg *config.Config, logger *zap.Logger) *MenuService {
	catalog := NewCatalogClient(cfg.CatalogURL, cfg.CatalogTenant, cfg.RequestTimeout)
	primary, secondary := VenuesFromConfig(cfg)
	return NewMenuService(catalog, primary, secondary, cfg.FanOut, logger)
}
