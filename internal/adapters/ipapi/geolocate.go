package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sushantvema/zupo/internal/core/domain"
)

const (
	defaultURL = "http://ip-api.com/json/"

	// fields trims the response to what we use; ip-api returns
	// everything otherwise.
	fields = "status,lat,lon,city,regionName,country"
)

// Locator resolves the caller's approximate location from their public IP.
// It implements ports.Geolocator.
type Locator struct {
	HTTPClient *http.Client
	URL        string
}

// New creates a new Locator with a 5s timeout.
func New() *Locator {
	return &Locator{
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		URL:        defaultURL,
	}
}

type lookupResponse struct {
	Status     string  `json:"status"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	City       string  `json:"city"`
	RegionName string  `json:"regionName"`
	Country    string  `json:"country"`
}

// Locate returns the current approximate location.
func (l *Locator) Locate(ctx context.Context) (*domain.GeoLocation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL+"?fields="+fields, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ip lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ip lookup: HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ip lookup: %w", err)
	}

	var r lookupResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("ip lookup: %w", err)
	}
	if r.Status != "success" {
		return nil, fmt.Errorf("ip lookup failed: status %q", r.Status)
	}

	return &domain.GeoLocation{
		Lat:         r.Lat,
		Lng:         r.Lon,
		Description: describe(r.City, r.RegionName, r.Country),
	}, nil
}

// describe joins the non-empty location parts.
func describe(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
