package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/pavilion/backend/internal/dining"
	"github.com/pageza/pavilion/backend/internal/service"
	"github.com/pageza/pavilion/backend/internal/types"
)

// MockMenuService is a mock implementation of the IMenuService interface
type MockMenuService struct {
	mock.Mock
	Primary   service.Venue
	Secondary service.Venue
}

// NewMockMenuService returns a mock with the default venues
func NewMockMenuService() *MockMenuService {
	return &MockMenuService{
		Primary:   service.Venue{Name: "Pavilion", MenuTag: "pvl", AnnouncementTag: "pav"},
		Secondary: service.Venue{Name: "Yablokoff", MenuTag: "ywdc", AnnouncementTag: "ywdc"},
	}
}

func (m *MockMenuService) BuildMenu(ctx context.Context, day dining.Day, meal dining.Meal) []types.Section {
	args := m.Called(ctx, day, meal)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]types.Section)
}

func (m *MockMenuService) BuildAnnouncement(ctx context.Context, venueTag string) string {
	args := m.Called(ctx, venueTag)
	return args.String(0)
}

func (m *MockMenuService) BuildAnnouncements(ctx context.Context) []types.Section {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]types.Section)
}

func (m *MockMenuService) Hours() []types.Section {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]types.Section)
}

// Venues is not recorded; it returns the fields
func (m *MockMenuService) Venues() (service.Venue, service.Venue) {
	return m.Primary, m.Secondary
}

var _ service.IMenuService = (*MockMenuService)(nil)
