// Package testhelpers serves an in-memory menu catalog over HTTP for tests
// that exercise the real client end to end.
package testhelpers

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pavilion/backend/internal/types"
)

// TenantHeader mirrors the header the catalog authenticates with
const TenantHeader = "x-comp-id"

// CatalogFixture is the hierarchy served by NewCatalogServer
type CatalogFixture struct {
	Tenant    string
	CompanyID string
	Locations []types.Location
	// Groups is keyed by location id
	Groups map[string]types.MenuGroups
	// Items is keyed by ItemsKey
	Items map[string][]types.MenuItem
	// Materials is keyed by item id
	Materials map[string][]types.RawMaterial
	// Fail forces a status code for a path such as "/nearbyrestaurants"
	Fail map[string]int
}

// ItemsKey indexes CatalogFixture.Items
func ItemsKey(locationID, categoryID, groupID string) string {
	return locationID + "|" + categoryID + "|" + groupID
}

// CatalogServer is a running fake catalog
type CatalogServer struct {
	*httptest.Server
	requests atomic.Int64
}

// Requests returns how many calls reached the server
func (s *CatalogServer) Requests() int64 {
	return s.requests.Load()
}

type rawMaterialsRequest struct {
	MenuID     string `json:"menuId"`
	LocationID string `json:"locationId"`
}

// NewCatalogServer starts the fake and closes it when the test ends
func NewCatalogServer(t *testing.T, f CatalogFixture) *CatalogServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := &CatalogServer{}
	r := gin.New()

	r.Use(func(c *gin.Context) {
		srv.requests.Add(1)
		if code, ok := f.Fail[c.Request.URL.Path]; ok {
			c.AbortWithStatusJSON(code, gin.H{"message": "forced failure"})
			return
		}
		want := f.CompanyID
		if c.Request.URL.Path == "/company" {
			want = f.Tenant
		}
		if c.GetHeader(TenantHeader) != want {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "unknown company"})
			return
		}
		c.Next()
	})

	r.GET("/company", func(c *gin.Context) {
		c.JSON(http.StatusOK, types.Envelope[types.Company]{Data: types.Company{ID: f.CompanyID}})
	})

	r.GET("/nearbyrestaurants", func(c *gin.Context) {
		c.JSON(http.StatusOK, types.Envelope[[]types.Location]{Data: f.Locations})
	})

	r.GET("/locations/menugroups", func(c *gin.Context) {
		groups, ok := f.Groups[c.Query("locationId")]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "no such location"})
			return
		}
		c.JSON(http.StatusOK, types.Envelope[types.MenuGroups]{Data: groups})
	})

	r.GET("/menuitems", func(c *gin.Context) {
		if c.Query("userPreferences") == "" || c.Query("isPreview") != "false" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "missing preferences"})
			return
		}
		items := f.Items[ItemsKey(c.Query("locationId"), c.Query("categoryId"), c.Query("menuGroupId"))]
		c.JSON(http.StatusOK, types.Envelope[types.MenuItems]{Data: types.MenuItems{MenuItems: items}})
	})

	r.POST("/raw-materials", func(c *gin.Context) {
		var req rawMaterialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, types.Envelope[[]types.RawMaterial]{Data: f.Materials[req.MenuID]})
	})

	srv.Server = httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}
