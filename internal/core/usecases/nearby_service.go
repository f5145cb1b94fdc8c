package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/core/ports"
)

// NearbyService handles searches around an explicit point.
type NearbyService struct {
	searcher ports.NearbySearcher
	cache    ports.CacheService
}

// NewNearbyService creates a new NearbyService.
func NewNearbyService(searcher ports.NearbySearcher, cache ports.CacheService) *NearbyService {
	return &NearbyService{searcher: searcher, cache: cache}
}

// Nearby returns places around the given point.
func (s *NearbyService) Nearby(ctx context.Context, req *domain.NearbySearchRequest) (*domain.SearchResponse, error) {
	if err := domain.ValidateCoords(req.Lat, req.Lng); err != nil {
		return nil, err
	}
	if req.Radius <= 0 {
		return nil, &domain.ValidationError{Field: "radius", Message: "radius must be positive"}
	}
	if req.Limit <= 0 {
		req.Limit = 10
	} else if req.Limit > 20 {
		req.Limit = 20
	}

	// Try cache
	cacheKey := fmt.Sprintf("zupo:nearby:%.4f:%.4f:%.0f:%v:%v:%d:%s:%s",
		req.Lat, req.Lng, req.Radius, req.IncludedTypes, req.ExcludedTypes,
		req.Limit, req.Language, req.Region)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var resp domain.SearchResponse
			if err := json.Unmarshal(data, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	resp, err := s.searcher.SearchNearby(ctx, req)
	if err != nil {
		return nil, err
	}

	// Cache for 5 minutes
	if s.cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 300)
		}
	}

	return resp, nil
}
