package wss

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/storagefront/wss-backend/pkg/config"
	pkgerrors "github.com/storagefront/wss-backend/pkg/errors"
	"github.com/storagefront/wss-backend/pkg/logger"
	"github.com/storagefront/wss-backend/pkg/metrics"
)

const (
	defaultBaseURL = "https://api.webselfstorage.com/v3"
	defaultTimeout = 15 * time.Second

	// Raw body snippets in error messages are capped so upstream HTML error
	// pages do not flood logs or API responses.
	errorSnippetLimit = 300
)

var (
	errAPIKeyRequired   = pkgerrors.New(pkgerrors.CodeConfiguration, "wss api key is required")
	errLocationRequired = pkgerrors.New(pkgerrors.CodeConfiguration, "wss location id is required")
)

// Client talks to the WebSelfStorage API for a single configured location,
// with centralized auth, logging, metrics, and error mapping. It never
// re-derives payload aliases; callers apply booking's normalization first.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	locationID string
	logger     *logger.Logger
	metrics    *metrics.UpstreamMetrics
}

// NewClient validates the WSS credentials and builds the client. Missing
// credential or location id is a configuration failure surfaced before any
// network call is possible.
func NewClient(cfg config.WSSConfig, logg *logger.Logger, m *metrics.UpstreamMetrics) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errAPIKeyRequired
	}

	locationID := strings.TrimSpace(cfg.LocationID)
	if locationID == "" {
		return nil, errLocationRequired
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		locationID: locationID,
		logger:     logg,
		metrics:    m,
	}, nil
}

// LocationID reports the configured deployment location.
func (c *Client) LocationID() string {
	if c == nil {
		return ""
	}
	return c.locationID
}

// FetchLocationDetail returns the static catalog payload for the location.
func (c *Client) FetchLocationDetail(ctx context.Context) (*LocationResponse, error) {
	var out LocationResponse
	if err := c.request(ctx, "location", http.MethodGet, "/location/"+url.PathEscape(c.locationID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchMoveInAvailability returns the live vacancy/rate payload.
func (c *Client) FetchMoveInAvailability(ctx context.Context) (*MoveInResponse, error) {
	var out MoveInResponse
	if err := c.request(ctx, "movein", http.MethodGet, "/movein/"+url.PathEscape(c.locationID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchLocationImages returns fallback imagery links. Best-effort: callers
// treat a failure here as an empty list.
func (c *Client) FetchLocationImages(ctx context.Context) ([]string, error) {
	var out ImagesResponse
	if err := c.request(ctx, "images", http.MethodGet, "/location/"+url.PathEscape(c.locationID)+"/images", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.ImageLinks, nil
}

// InventorySnapshot holds the independently-settled outcomes of the three
// inventory fetches. Each source succeeds or fails on its own; the overall
// fetch only fails when both unit-bearing sources fail.
type InventorySnapshot struct {
	Location    *LocationResponse
	LocationErr error
	MoveIn      *MoveInResponse
	MoveInErr   error
	ImageLinks  []string
	ImagesErr   error
}

// FetchInventory issues the location, move-in, and images GETs concurrently.
// The images call is best-effort. When both the location and move-in calls
// fail, the combined cause is surfaced as a NoInventory error.
func (c *Client) FetchInventory(ctx context.Context) (*InventorySnapshot, error) {
	snap := &InventorySnapshot{}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		snap.Location, snap.LocationErr = c.FetchLocationDetail(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.MoveIn, snap.MoveInErr = c.FetchMoveInAvailability(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.ImageLinks, snap.ImagesErr = c.FetchLocationImages(ctx)
	}()
	wg.Wait()

	if snap.ImagesErr != nil && c.logger != nil {
		c.logger.Warn(c.logger.WithField(ctx, "error", snap.ImagesErr.Error()), "wss images fetch failed, continuing without imagery")
	}

	if snap.LocationErr != nil && snap.MoveInErr != nil {
		combined := multierr.Combine(snap.LocationErr, snap.MoveInErr)
		return nil, pkgerrors.Wrap(pkgerrors.CodeNoInventory, combined, "both inventory sources failed")
	}

	return snap, nil
}

// CreateReservation posts a no-payment hold. The payload must already carry
// the unit/date aliases from booking's normalizer.
func (c *Client) CreateReservation(ctx context.Context, payload any) (map[string]any, error) {
	var out map[string]any
	if err := c.request(ctx, "reservation", http.MethodPost, "/reservation/"+url.PathEscape(c.locationID), payload, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMoveInCost fetches a pre-checkout quote using the aliased query set.
func (c *Client) GetMoveInCost(ctx context.Context, q CostQuery) (*CostResponse, error) {
	params := url.Values{}
	setParam := func(key, value string) {
		if value != "" {
			params.Set(key, value)
		}
	}
	setParam("unitId", q.UnitID)
	setParam("unitID", q.UnitIDAlias)
	setParam("rentableObjectId", q.RentableObjectID)
	setParam("insuranceId", q.InsuranceID)
	setParam("taxExemptNumber", q.TaxExemptNumber)
	setParam("moveInDate", q.MoveInDate)
	setParam("expectedMoveInDate", q.ExpectedMoveInDate)
	setParam("promoCode", q.PromoCode)

	var out CostResponse
	if err := c.request(ctx, "movein_cost", http.MethodGet, "/movein/"+url.PathEscape(c.locationID)+"/cost", nil, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMoveIn posts the paid, finalizing occupancy transaction.
func (c *Client) CreateMoveIn(ctx context.Context, payload any) (map[string]any, error) {
	var out map[string]any
	if err := c.request(ctx, "movein_create", http.MethodPost, "/movein/"+url.PathEscape(c.locationID), payload, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) request(ctx context.Context, endpoint, method, path string, body any, params url.Values, out any) error {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode wss request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build wss request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ObserveDuration(endpoint, time.Since(start))
	if err != nil {
		c.metrics.IncFailure(endpoint)
		c.logRequest(ctx, endpoint, 0, err)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("wss %s call failed", endpoint))
	}
	defer resp.Body.Close()

	responseText, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.IncFailure(endpoint)
		c.logRequest(ctx, endpoint, resp.StatusCode, err)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("read wss %s response", endpoint))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.IncFailure(endpoint)
		msg := buildErrorMessage(resp.StatusCode, responseText, fullURL)
		c.logRequest(ctx, endpoint, resp.StatusCode, fmt.Errorf("%s", msg))
		return pkgerrors.New(pkgerrors.CodeUpstream, msg)
	}

	if out != nil {
		if err := json.Unmarshal(responseText, out); err != nil {
			c.metrics.IncFailure(endpoint)
			c.logRequest(ctx, endpoint, resp.StatusCode, err)
			return pkgerrors.Wrap(pkgerrors.CodeMalformed, err,
				fmt.Sprintf("wss response was not valid JSON (status %d)", resp.StatusCode))
		}
	}

	c.metrics.IncSuccess(endpoint)
	c.logRequest(ctx, endpoint, resp.StatusCode, nil)
	return nil
}

func (c *Client) logRequest(ctx context.Context, endpoint string, status int, err error) {
	if c.logger == nil {
		return
	}
	ctx = c.logger.WithFields(ctx, map[string]any{
		"endpoint": endpoint,
		"status":   status,
	})
	if err != nil {
		c.logger.Error(ctx, "wss request failed", err)
		return
	}
	c.logger.Info(ctx, "wss request complete")
}

// buildErrorMessage extracts the most useful message from a non-2xx body:
// a JSON "message" field, then a JSON "error" field, then a capped raw
// snippet annotated with the failing URL and status.
func buildErrorMessage(status int, responseText []byte, fullURL string) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(responseText, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}

	snippet := strings.TrimSpace(string(responseText))
	if len(snippet) > errorSnippetLimit {
		snippet = snippet[:errorSnippetLimit]
	}
	if snippet == "" {
		return fmt.Sprintf("wss request failed with status %d (url: %s)", status, fullURL)
	}
	return fmt.Sprintf("wss request failed with status %d: %s (url: %s)", status, snippet, fullURL)
}
