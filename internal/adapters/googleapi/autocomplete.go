package googleapi

import (
	"context"

	"github.com/sushantvema/zupo/internal/core/domain"
)

const autocompleteFieldMask = "suggestions.placePrediction,suggestions.queryPrediction"

type autocompleteBody struct {
	Input        string        `json:"input"`
	SessionToken string        `json:"sessionToken,omitempty"`
	LocationBias *locationArea `json:"locationBias,omitempty"`
	LanguageCode string        `json:"languageCode,omitempty"`
	RegionCode   string        `json:"regionCode,omitempty"`
}

// Autocomplete implements ports.Autocompleter. The endpoint has no result
// count parameter; trimming happens in the service layer.
func (c *Client) Autocomplete(ctx context.Context, req *domain.AutocompleteRequest) (*domain.AutocompleteResponse, error) {
	body := autocompleteBody{
		Input:        req.Input,
		SessionToken: req.SessionToken,
		LocationBias: areaFrom(req.Location),
		LanguageCode: req.Language,
		RegionCode:   req.Region,
	}

	var resp domain.AutocompleteResponse
	if err := c.postJSON(ctx, c.placesBaseURL+"/places:autocomplete", "autocomplete", autocompleteFieldMask, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
