package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/core/ports"
)

// DetailsService fetches extended information about a single place.
type DetailsService struct {
	fetcher ports.DetailsFetcher
	cache   ports.CacheService
}

// NewDetailsService creates a new DetailsService.
func NewDetailsService(fetcher ports.DetailsFetcher, cache ports.CacheService) *DetailsService {
	return &DetailsService{fetcher: fetcher, cache: cache}
}

// Details returns one place by ID.
func (s *DetailsService) Details(ctx context.Context, req *domain.DetailsRequest) (*domain.Place, error) {
	if req.PlaceID == "" {
		return nil, &domain.ValidationError{Field: "place_id", Message: "place_id is required"}
	}

	// Try cache
	cacheKey := fmt.Sprintf("zupo:details:%s:%t:%t:%s:%s",
		req.PlaceID, req.IncludeReviews, req.IncludePhotos, req.Language, req.Region)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var place domain.Place
			if err := json.Unmarshal(data, &place); err == nil {
				return &place, nil
			}
		}
	}

	place, err := s.fetcher.Details(ctx, req)
	if err != nil {
		return nil, err
	}

	// Cache for an hour; place details change rarely
	if s.cache != nil {
		if data, err := json.Marshal(place); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 3600)
		}
	}

	return place, nil
}
