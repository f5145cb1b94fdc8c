package usecases

import (
	"context"

	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/core/ports"
)

// ResolveService turns free-form location text into place candidates,
// e.g. "vienna opera" into addressable places with coordinates.
type ResolveService struct {
	searcher ports.PlaceSearcher
}

// NewResolveService creates a new ResolveService.
func NewResolveService(searcher ports.PlaceSearcher) *ResolveService {
	return &ResolveService{searcher: searcher}
}

// Resolve looks up candidates for a location string.
func (s *ResolveService) Resolve(ctx context.Context, req *domain.ResolveRequest) (*domain.SearchResponse, error) {
	if req.Location == "" {
		return nil, &domain.ValidationError{Field: "location", Message: "location is required"}
	}
	if req.Limit <= 0 {
		req.Limit = 5
	} else if req.Limit > 10 {
		req.Limit = 10
	}

	return s.searcher.SearchText(ctx, &domain.SearchRequest{
		Query:    req.Location,
		Limit:    req.Limit,
		Language: req.Language,
		Region:   req.Region,
	})
}
