package googleapi

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/pkg/metrics"
)

// PhotoMedia implements ports.PhotoFetcher. It resolves a photo resource
// name ("places/.../photos/...") to a short-lived servable URI.
func (c *Client) PhotoMedia(ctx context.Context, req *domain.PhotoMediaRequest) (*domain.PhotoMedia, error) {
	q := url.Values{}
	// Without skipHttpRedirect the endpoint 302s straight to the image.
	q.Set("skipHttpRedirect", "true")
	if req.MaxWidth <= 0 && req.MaxHeight <= 0 {
		q.Set("maxWidthPx", "400")
	}
	if req.MaxWidth > 0 {
		q.Set("maxWidthPx", strconv.Itoa(req.MaxWidth))
	}
	if req.MaxHeight > 0 {
		q.Set("maxHeightPx", strconv.Itoa(req.MaxHeight))
	}

	u := c.placesBaseURL + "/" + req.Name + "/media?" + q.Encode()

	var media domain.PhotoMedia
	if err := c.getJSON(ctx, u, "photo_media", "", &media); err != nil {
		return nil, err
	}
	return &media, nil
}

// DownloadBytes fetches raw image bytes from a resolved photo URI. The URI
// is pre-signed, so no API headers are attached.
func (c *Client) DownloadBytes(ctx context.Context, uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues("photo_download", "error").Inc()
		return nil, &domain.ProviderError{Message: "photo download failed", Err: err}
	}
	defer resp.Body.Close()

	metrics.APIRequestsTotal.WithLabelValues("photo_download", strconv.Itoa(resp.StatusCode)).Inc()
	metrics.APIRequestDuration.WithLabelValues("photo_download").Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.ProviderError{Status: resp.StatusCode, Message: "photo download failed"}
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPhotoBytes+1))
	if err != nil {
		return nil, &domain.ProviderError{Status: resp.StatusCode, Message: "read photo bytes", Err: err}
	}
	if len(data) > maxPhotoBytes {
		return nil, &domain.ProviderError{Status: resp.StatusCode, Message: "photo too large"}
	}
	return data, nil
}
