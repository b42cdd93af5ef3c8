package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pageza/pavilion/backend/internal/types"
)

const (
	// TenantHeader authenticates every catalog request
	TenantHeader = "x-comp-id"

	// DefaultCatalogURL is the public widget API
	DefaultCatalogURL = "https://widget.api.eagle.bigzpoon.com"

	// DefaultTenant bootstraps the company lookup; later calls use the company id
	DefaultTenant = "uc-merced-the-pavilion"

	// userPreferences is sent as a single query parameter value. The upstream
	// expects this exact JSON document.
	userPreferences = `{"allergies":[],"lifestyleChoices":[],"medicalGoals":[],"preferenceApplyStatus":false}`

	// rawMaterialsBody has M_ID and L_ID replaced by the item and location ids.
	rawMaterialsBody = `{ "menuId": "M_ID", "fdaRounding": true, "allergyIds": [], "lifestyleChoiceIds": [], "nutritionGoals": [], "preferenceApplyStatus": false, "skipCommonIngredients": [], "locationId": "L_ID" }`

	// maxErrorBody bounds how much of a failed response is kept for logs
	maxErrorBody = 512
)

// CatalogClient talks to the upstream menu catalog. It holds no per-request
// state and is safe for concurrent use.
type CatalogClient struct {
	baseURL    string
	tenant     string
	timeout    time.Duration
	httpClient *http.Client
}

// NewCatalogClient creates a client. Every call is bounded by timeout.
func NewCatalogClient(baseURL, tenant string, timeout time.Duration) *CatalogClient {
	if baseURL == "" {
		baseURL = DefaultCatalogURL
	}
	if tenant == "" {
		tenant = DefaultTenant
	}
	return &CatalogClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tenant:  tenant,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
			// A single call never follows redirects.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// FetchCompany retrieves the root of the hierarchy
func (c *CatalogClient) FetchCompany(ctx context.Context) (types.Company, error) {
	return fetch[types.Company](ctx, c, "fetch company", http.MethodGet, c.baseURL+"/company", c.tenant, nil)
}

// FetchLocations retrieves every restaurant of a company
func (c *CatalogClient) FetchLocations(ctx context.Context, company types.Company) ([]types.Location, error) {
	return fetch[[]types.Location](ctx, c, "fetch locations", http.MethodGet, c.baseURL+"/nearbyrestaurants", company.ID, nil)
}

// FetchMenuGroups retrieves the day groups and meal categories of a location
func (c *CatalogClient) FetchMenuGroups(ctx context.Context, company types.Company, location types.Location) (types.MenuGroups, error) {
	query := url.Values{}
	query.Set("locationId", location.ID)

	endpoint := c.baseURL + "/locations/menugroups?" + query.Encode()
	return fetch[types.MenuGroups](ctx, c, "fetch menu groups", http.MethodGet, endpoint, company.ID, nil)
}

// FetchMenuItems retrieves the items of one category within one group
func (c *CatalogClient) FetchMenuItems(ctx context.Context, company types.Company, location types.Location, categoryID, groupID string) (types.MenuItems, error) {
	query := url.Values{}
	query.Set("categoryId", categoryID)
	query.Set("isPreview", "false")
	query.Set("locationId", location.ID)
	query.Set("menuGroupId", groupID)
	query.Set("userPreferences", userPreferences)

	endpoint := c.baseURL + "/menuitems?" + query.Encode()
	return fetch[types.MenuItems](ctx, c, "fetch menu items", http.MethodGet, endpoint, company.ID, nil)
}

// FetchRawMaterials retrieves the ingredient lines of an item
func (c *CatalogClient) FetchRawMaterials(ctx context.Context, company types.Company, location types.Location, item types.MenuItem) ([]types.RawMaterial, error) {
	body := RawMaterialsBody(item.ID, location.ID)
	return fetch[[]types.RawMaterial](ctx, c, "fetch raw materials", http.MethodPost, c.baseURL+"/raw-materials", company.ID, []byte(body))
}

// RawMaterialsBody fills the raw-materials request template
func RawMaterialsBody(itemID, locationID string) string {
	body := strings.ReplaceAll(rawMaterialsBody, "M_ID", itemID)
	return strings.ReplaceAll(body, "L_ID", locationID)
}

func fetch[T any](ctx context.Context, c *CatalogClient, op, method, endpoint, tenant string, body []byte) (T, error) {
	var zero T

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return zero, &FetchError{Op: op, Kind: FailureNetwork, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set(TenantHeader, tenant)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, &FetchError{Op: op, Kind: FailureNetwork, Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return zero, &FetchError{Op: op, Kind: FailureStatus, Status: resp.StatusCode, Err: errors.New(strings.TrimSpace(string(snippet)))}
	}

	var envelope types.Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return zero, &FetchError{Op: op, Kind: FailureDecode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return envelope.Data, nil
}
