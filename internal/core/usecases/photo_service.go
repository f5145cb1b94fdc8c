package usecases

import (
	"context"

	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/core/ports"
)

// PhotoService resolves photo resource names to servable URIs and
// downloads the underlying media.
type PhotoService struct {
	fetcher ports.PhotoFetcher
}

// NewPhotoService creates a new PhotoService.
func NewPhotoService(fetcher ports.PhotoFetcher) *PhotoService {
	return &PhotoService{fetcher: fetcher}
}

// Media resolves a photo resource name to a URI.
func (s *PhotoService) Media(ctx context.Context, req *domain.PhotoMediaRequest) (*domain.PhotoMedia, error) {
	if req.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "photo resource name is required"}
	}
	return s.fetcher.PhotoMedia(ctx, req)
}

// Download fetches the raw image bytes behind a resolved photo URI.
func (s *PhotoService) Download(ctx context.Context, uri string) ([]byte, error) {
	if uri == "" {
		return nil, &domain.ValidationError{Field: "uri", Message: "photo URI is empty"}
	}
	return s.fetcher.DownloadBytes(ctx, uri)
}
