package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"

	"github.com/pageza/pavilion/backend/internal/types"
)

var errUpstream = errors.New("connection reset by peer")

func upstreamFailure(op string) error {
	return &FetchError{Op: op, Kind: FailureNetwork, Err: errUpstream}
}

// fakeCatalog serves a fixed hierarchy keyed by location id.
type fakeCatalog struct {
	companyErr   error
	locationsErr error
	locations    []types.Location
	groups       map[string]types.MenuGroups
	groupsErr    map[string]error
	items        map[string]types.MenuItems
	itemsErr     map[string]error
	materials    map[string][]types.RawMaterial
	materialsErr error

	// blockItems makes FetchMenuItems wait for ctx cancellation.
	blockItems bool
	itemDelay  time.Duration

	mu          sync.Mutex
	calls       []string
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func itemKey(locationID, categoryID, groupID string) string {
	return locationID + "|" + categoryID + "|" + groupID
}

func (f *fakeCatalog) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeCatalog) called(call string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (f *fakeCatalog) FetchCompany(ctx context.Context) (types.Company, error) {
	f.record("company")
	if f.companyErr != nil {
		return types.Company{}, f.companyErr
	}
	return types.Company{ID: "comp-1"}, nil
}

func (f *fakeCatalog) FetchLocations(ctx context.Context, company types.Company) ([]types.Location, error) {
	f.record("locations")
	if f.locationsErr != nil {
		return nil, f.locationsErr
	}
	return f.locations, nil
}

func (f *fakeCatalog) FetchMenuGroups(ctx context.Context, company types.Company, location types.Location) (types.MenuGroups, error) {
	f.record("groups:" + location.ID)
	if err := f.groupsErr[location.ID]; err != nil {
		return types.MenuGroups{}, err
	}
	return f.groups[location.ID], nil
}

func (f *fakeCatalog) FetchMenuItems(ctx context.Context, company types.Company, location types.Location, categoryID, groupID string) (types.MenuItems, error) {
	key := itemKey(location.ID, categoryID, groupID)
	f.record("items:" + key)

	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		peak := f.maxInFlight.Load()
		if n <= peak || f.maxInFlight.CompareAndSwap(peak, n) {
			break
		}
	}

	if f.blockItems {
		<-ctx.Done()
		return types.MenuItems{}, &FetchError{Op: "fetch menu items", Kind: FailureNetwork, Err: ctx.Err()}
	}
	if f.itemDelay > 0 {
		time.Sleep(f.itemDelay)
	}

	if err := f.itemsErr[key]; err != nil {
		return types.MenuItems{}, err
	}
	return f.items[key], nil
}

func (f *fakeCatalog) FetchRawMaterials(ctx context.Context, company types.Company, location types.Location, item types.MenuItem) ([]types.RawMaterial, error) {
	f.record("materials:" + item.ID)
	if f.materialsErr != nil {
		return nil, f.materialsErr
	}
	return f.materials[item.ID], nil
}

// mockCatalog is a testify mock used where the exact call sequence matters.
type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) FetchCompany(ctx context.Context) (types.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).(types.Company), args.Error(1)
}

func (m *mockCatalog) FetchLocations(ctx context.Context, company types.Company) ([]types.Location, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Location), args.Error(1)
}

func (m *mockCatalog) FetchMenuGroups(ctx context.Context, company types.Company, location types.Location) (types.MenuGroups, error) {
	args := m.Called(ctx, company, location)
	return args.Get(0).(types.MenuGroups), args.Error(1)
}

func (m *mockCatalog) FetchMenuItems(ctx context.Context, company types.Company, location types.Location, categoryID, groupID string) (types.MenuItems, error) {
	args := m.Called(ctx, company, location, categoryID, groupID)
	return args.Get(0).(types.MenuItems), args.Error(1)
}

func (m *mockCatalog) FetchRawMaterials(ctx context.Context, company types.Company, location types.Location, item types.MenuItem) ([]types.RawMaterial, error) {
	args := m.Called(ctx, company, location, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.RawMaterial), args.Error(1)
}

var (
	testPrimary   = Venue{Name: "Pavilion", MenuTag: "pvl", AnnouncementTag: "pav"}
	testSecondary = Venue{Name: "Yablokoff", MenuTag: "ywdc", AnnouncementTag: "ywdc"}

	pavLocation  = tagged("pav-loc", "UCM PVL Pavilion")
	ywdcLocation = tagged("ywdc-loc", "YWDC Nights")
)

// newDiningHall returns a catalog with both venues serving Monday and Friday.
func newDiningHall() *fakeCatalog {
	items := func(names ...string) types.MenuItems {
		var out types.MenuItems
		for i, name := range names {
			out.MenuItems = append(out.MenuItems, types.MenuItem{
				ID:          fmt.Sprintf("%s-%d", name, i),
				Name:        name,
				Description: name + " of the day",
			})
		}
		return out
	}

	return &fakeCatalog{
		locations: []types.Location{tagged("no-tag"), pavLocation, ywdcLocation},
		groups: map[string]types.MenuGroups{
			"pav-loc": {
				MenuGroups: []types.MenuGroup{{ID: "g-mon", Name: "Monday"}, {ID: "g-fri", Name: "Friday Menu"}, {ID: "g-help", Name: "Help"}},
				MenuCategories: []types.MenuCategory{
					{ID: "c-b", Name: "Breakfast Grill"},
					{ID: "c-l1", Name: "Lunch Entrees"},
					{ID: "c-l2", Name: "Lunch Deli"},
					{ID: "c-d", Name: "Dinner Entrees"},
					{ID: "c-s", Name: "Weekly Schedule"},
				},
			},
			"ywdc-loc": {
				MenuGroups: []types.MenuGroup{{ID: "y-mon", Name: "monday"}, {ID: "y-fri", Name: "friday"}},
				MenuCategories: []types.MenuCategory{
					{ID: "y1", Name: "Late Night Grill"},
					{ID: "y2", Name: "Schedule"},
					{ID: "y3", Name: "How To Order"},
					{ID: "y4", Name: "Dinner Pizza"},
				},
			},
		},
		items: map[string]types.MenuItems{
			itemKey("pav-loc", "c-b", "g-mon"):  items("Pancakes"),
			itemKey("pav-loc", "c-l1", "g-mon"): items("Tacos", "Rice"),
			itemKey("pav-loc", "c-l2", "g-mon"): items("Sandwich"),
			itemKey("pav-loc", "c-d", "g-mon"):  items("Pasta"),
			itemKey("pav-loc", "c-l1", "g-fri"): items("Fish"),
			itemKey("pav-loc", "c-l2", "g-fri"): items("Wrap"),
			itemKey("pav-loc", "c-d", "g-fri"):  items("Pizza"),
			itemKey("ywdc-loc", "y1", "y-mon"):  items("Burger"),
			itemKey("ywdc-loc", "y2", "y-mon"):  items("Hours"),
			itemKey("ywdc-loc", "y3", "y-mon"):  items("Steps"),
			itemKey("ywdc-loc", "y4", "y-mon"):  items("Pepperoni"),
			itemKey("pav-loc", "c-s", "g-help"): {MenuItems: []types.MenuItem{{ID: "ann-1", Name: "Notice", Description: "Holiday Hours"}}},
		},
		materials: map[string][]types.RawMaterial{
			"ann-1": {{Name: "Closed Thursday"}, {Name: "Brunch Friday"}},
		},
		groupsErr: map[string]error{},
		itemsErr:  map[string]error{},
	}
}

var leakOptions = []goleak.Option{
	goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
	goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
}
