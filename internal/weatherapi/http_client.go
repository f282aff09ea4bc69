package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

const (
	// DefaultBaseURL is the WeatherAPI.com v1 endpoint
	DefaultBaseURL = "https://api.weatherapi.com/v1"

	// forecastDays is the forecast horizon requested on every call
	forecastDays = 7
)

// HTTPClient implements Client against the WeatherAPI.com REST API
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	userAgent  string
}

// Option configures an HTTPClient
type Option func(*HTTPClient)

// WithBaseURL points the client at a different API root
func WithBaseURL(u string) Option {
	return func(c *HTTPClient) { c.baseURL = u }
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.httpClient.Timeout = d }
}

// NewHTTPClient creates a new WeatherAPI.com client
func NewHTTPClient(apiKey string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		userAgent: "WeatherTerminal/1.0 (github.com/ngmaloney/weather-terminal)",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchByLocation retrieves the 7-day forecast, air quality and alerts for a place name
func (c *HTTPClient) FetchByLocation(ctx context.Context, query string) (*models.Snapshot, error) {
	return c.forecast(ctx, query)
}

// FetchByCoordinates retrieves the 7-day forecast, air quality and alerts for a lat/lon pair
func (c *HTTPClient) FetchByCoordinates(ctx context.Context, lat, lon float64) (*models.Snapshot, error) {
	q := strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
	return c.forecast(ctx, q)
}

// SearchLocations returns location suggestions for a partial query
func (c *HTTPClient) SearchLocations(ctx context.Context, query string) ([]models.LocationSummary, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)

	var results []models.LocationSummary
	if err := c.getJSON(ctx, "search", "/search.json", params, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.LocationSummary{}
	}
	return results, nil
}

func (c *HTTPClient) forecast(ctx context.Context, q string) (*models.Snapshot, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", q)
	params.Set("days", strconv.Itoa(forecastDays))
	params.Set("aqi", "yes")
	params.Set("alerts", "yes")

	var snapshot models.Snapshot
	if err := c.getJSON(ctx, "forecast", "/forecast.json", params, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// getJSON performs a GET and decodes the body into out
func (c *HTTPClient) getJSON(ctx context.Context, op, path string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &FetchError{Op: op, Reason: ReasonTransport, Err: fmt.Errorf("creating request: %w", err)}
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Op: op, Reason: ReasonTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &FetchError{
			Op:     op,
			Reason: ReasonStatus,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("status %d: %s", resp.StatusCode, string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Op: op, Reason: ReasonDecode, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}
