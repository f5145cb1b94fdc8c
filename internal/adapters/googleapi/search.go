package googleapi

import (
	"context"

	"github.com/sushantvema/zupo/internal/core/domain"
)

// searchFieldMask lists the place fields returned by list-style searches.
// Contact details, opening hours, reviews, and photos are details-only.
const searchFieldMask = "places.id,places.displayName,places.formattedAddress," +
	"places.shortFormattedAddress,places.types,places.primaryType," +
	"places.primaryTypeDisplayName,places.location,places.rating," +
	"places.userRatingCount,places.priceLevel,places.websiteUri," +
	"places.googleMapsUri,places.businessStatus,places.editorialSummary"

type searchTextBody struct {
	TextQuery      string        `json:"textQuery"`
	IncludedType   string        `json:"includedType,omitempty"`
	MinRating      float64       `json:"minRating,omitempty"`
	PriceLevels    []string      `json:"priceLevels,omitempty"`
	OpenNow        bool          `json:"openNow,omitempty"`
	LocationBias   *locationArea `json:"locationBias,omitempty"`
	MaxResultCount int           `json:"maxResultCount,omitempty"`
	LanguageCode   string        `json:"languageCode,omitempty"`
	RegionCode     string        `json:"regionCode,omitempty"`
}

// SearchText implements ports.PlaceSearcher.
func (c *Client) SearchText(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
	body := searchTextBody{
		TextQuery:      req.Query,
		IncludedType:   req.IncludedType,
		MinRating:      req.MinRating,
		PriceLevels:    req.PriceLevels,
		OpenNow:        req.OpenNow,
		LocationBias:   areaFrom(req.Location),
		MaxResultCount: req.Limit,
		LanguageCode:   req.Language,
		RegionCode:     req.Region,
	}

	var resp domain.SearchResponse
	if err := c.postJSON(ctx, c.placesBaseURL+"/places:searchText", "search_text", searchFieldMask, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
