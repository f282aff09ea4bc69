package geolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultIPLookupURL = "https://ipapi.co/json/"
	userAgent          = "WeatherTerminal/1.0"
)

// IPLocator estimates the position from the public IP address
type IPLocator struct {
	url        string
	httpClient *http.Client
}

// NewIPLocator creates a locator querying url, or the default service when url is empty
func NewIPLocator(url string, timeout time.Duration) *IPLocator {
	if url == "" {
		url = defaultIPLookupURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &IPLocator{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ipLookupResponse represents the lookup service response
type ipLookupResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	City      string   `json:"city"`
	Error     bool     `json:"error"`
	Reason    string   `json:"reason"`
}

// Locate asks the lookup service for the caller's approximate position
func (l *IPLocator) Locate(ctx context.Context) (Position, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return Position{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return Position{}, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Position{}, fmt.Errorf("ip lookup returned status %d", resp.StatusCode)
	}

	var result ipLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Position{}, fmt.Errorf("decoding response: %w", err)
	}
	if result.Error {
		return Position{}, fmt.Errorf("ip lookup failed: %s", result.Reason)
	}
	if result.Latitude == nil || result.Longitude == nil {
		return Position{}, fmt.Errorf("ip lookup returned no coordinates")
	}

	return Position{Latitude: *result.Latitude, Longitude: *result.Longitude}, nil
}
