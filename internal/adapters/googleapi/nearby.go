package googleapi

import (
	"context"

	"github.com/sushantvema/zupo/internal/core/domain"
)

type searchNearbyBody struct {
	LocationRestriction locationArea `json:"locationRestriction"`
	IncludedTypes       []string     `json:"includedTypes,omitempty"`
	ExcludedTypes       []string     `json:"excludedTypes,omitempty"`
	MaxResultCount      int          `json:"maxResultCount,omitempty"`
	LanguageCode        string       `json:"languageCode,omitempty"`
	RegionCode          string       `json:"regionCode,omitempty"`
}

// SearchNearby implements ports.NearbySearcher. Unlike text search, the
// circle here is a hard restriction, not a bias.
func (c *Client) SearchNearby(ctx context.Context, req *domain.NearbySearchRequest) (*domain.SearchResponse, error) {
	body := searchNearbyBody{
		LocationRestriction: locationArea{Circle: wireCircle{
			Center: latLng{Latitude: req.Lat, Longitude: req.Lng},
			Radius: req.Radius,
		}},
		IncludedTypes:  req.IncludedTypes,
		ExcludedTypes:  req.ExcludedTypes,
		MaxResultCount: req.Limit,
		LanguageCode:   req.Language,
		RegionCode:     req.Region,
	}

	var resp domain.SearchResponse
	if err := c.postJSON(ctx, c.placesBaseURL+"/places:searchNearby", "search_nearby", searchFieldMask, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
