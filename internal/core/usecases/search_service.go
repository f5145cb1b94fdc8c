package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/core/ports"
)

// SearchService handles place text search.
type SearchService struct {
	searcher ports.PlaceSearcher
	cache    ports.CacheService
}

// NewSearchService creates a new SearchService.
func NewSearchService(searcher ports.PlaceSearcher, cache ports.CacheService) *SearchService {
	return &SearchService{searcher: searcher, cache: cache}
}

// Search runs a text search. Results are cached briefly since identical
// queries from the TUI are common.
func (s *SearchService) Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
	if req.Query == "" {
		return nil, &domain.ValidationError{Field: "query", Message: "query is required"}
	}
	if req.Limit <= 0 {
		req.Limit = 10
	} else if req.Limit > 20 {
		req.Limit = 20
	}

	// Try cache
	cacheKey := searchCacheKey(req)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var resp domain.SearchResponse
			if err := json.Unmarshal(data, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	resp, err := s.searcher.SearchText(ctx, req)
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

func searchCacheKey(req *domain.SearchRequest) string {
	loc := ""
	if req.Location != nil {
		loc = fmt.Sprintf("%.4f,%.4f,%.0f", req.Location.Center.Lat, req.Location.Center.Lng, req.Location.Radius)
	}
	return fmt.Sprintf("zupo:search:%s:%s:%.1f:%v:%t:%s:%d:%s:%s",
		req.Query, req.IncludedType, req.MinRating, req.PriceLevels, req.OpenNow,
		loc, req.Limit, req.Language, req.Region)
}
