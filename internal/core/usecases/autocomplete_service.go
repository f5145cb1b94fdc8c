package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/core/ports"
)

// AutocompleteService handles typing suggestions. Responses are never
// cached: they are keystroke-sensitive and billed per session.
type AutocompleteService struct {
	completer ports.Autocompleter
}

// NewAutocompleteService creates a new AutocompleteService.
func NewAutocompleteService(completer ports.Autocompleter) *AutocompleteService {
	return &AutocompleteService{completer: completer}
}

// Autocomplete returns suggestions for partial input. When the caller
// supplies no session token a fresh one is generated, so a lone call
// still bills as its own session.
func (s *AutocompleteService) Autocomplete(ctx context.Context, req *domain.AutocompleteRequest) (*domain.AutocompleteResponse, error) {
	if req.Input == "" {
		return nil, &domain.ValidationError{Field: "input", Message: "input is required"}
	}
	if req.SessionToken == "" {
		req.SessionToken = uuid.NewString()
	}
	if req.Limit <= 0 {
		req.Limit = 5
	}

	resp, err := s.completer.Autocomplete(ctx, req)
	if err != nil {
		return nil, err
	}

	// The autocomplete endpoint has no result-count parameter; trim here.
	if len(resp.Suggestions) > req.Limit {
		resp.Suggestions = resp.Suggestions[:req.Limit]
	}

	return resp, nil
}
