package googleapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/pkg/metrics"
)

const (
	defaultPlacesBaseURL = "https://places.googleapis.com/v1"
	defaultRoutesBaseURL = "https://routes.googleapis.com"

	defaultTimeout = 10 * time.Second

	// maxResponseBytes caps API response bodies. Place payloads stay in
	// the tens of kilobytes even with reviews attached.
	maxResponseBytes = 1 << 20

	// maxPhotoBytes caps raw photo downloads.
	maxPhotoBytes = 20 << 20
)

// Client talks to the Google Places and Routes APIs. It implements the
// provider ports consumed by the use-case services.
type Client struct {
	apiKey        string
	placesBaseURL string
	routesBaseURL string
	httpClient    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default 10s request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithPlacesBaseURL points the client at a different Places endpoint.
func WithPlacesBaseURL(u string) Option {
	return func(c *Client) { c.placesBaseURL = strings.TrimSuffix(u, "/") }
}

// WithRoutesBaseURL points the client at a different Routes endpoint.
func WithRoutesBaseURL(u string) Option {
	return func(c *Client) { c.routesBaseURL = strings.TrimSuffix(u, "/") }
}

// New creates a new Client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}
	c := &Client{
		apiKey:        apiKey,
		placesBaseURL: defaultPlacesBaseURL,
		routesBaseURL: defaultRoutesBaseURL,
		httpClient:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// --- shared wire shapes ---

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type wireCircle struct {
	Center latLng  `json:"center"`
	Radius float64 `json:"radius"`
}

type locationArea struct {
	Circle wireCircle `json:"circle"`
}

func areaFrom(c *domain.Circle) *locationArea {
	if c == nil {
		return nil
	}
	return &locationArea{Circle: wireCircle{
		Center: latLng{Latitude: c.Center.Lat, Longitude: c.Center.Lng},
		Radius: c.Radius,
	}}
}

// --- request plumbing ---

// postJSON sends body as JSON and decodes the response into out.
func (c *Client) postJSON(ctx context.Context, url, endpoint, fieldMask string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", endpoint, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, endpoint, fieldMask, out)
}

// getJSON issues a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, url, endpoint, fieldMask string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return c.do(req, endpoint, fieldMask, out)
}

func (c *Client) do(req *http.Request, endpoint, fieldMask string, out any) error {
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	if fieldMask != "" {
		req.Header.Set("X-Goog-FieldMask", fieldMask)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return &domain.ProviderError{Message: fmt.Sprintf("%s request failed", endpoint), Err: err}
	}
	defer resp.Body.Close()

	metrics.APIRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return &domain.ProviderError{Status: resp.StatusCode, Message: fmt.Sprintf("read %s response", endpoint), Err: err}
	}
	if len(body) > maxResponseBytes {
		return &domain.ProviderError{Status: resp.StatusCode, Message: "response too large"}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.ProviderError{Status: resp.StatusCode, Message: apiErrorMessage(body)}
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &domain.ProviderError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("failed to parse %s response", endpoint),
			Err:     err,
		}
	}
	return nil
}

// apiErrorMessage pulls the human-readable message out of a Google error
// payload, falling back to the raw body.
func apiErrorMessage(body []byte) string {
	var e struct {
		Error struct {
			Message string `json:"message"`
			Status  string `json:"status"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return "empty error response"
	}
	return msg
}
