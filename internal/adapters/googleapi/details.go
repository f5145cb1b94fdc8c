package googleapi

import (
	"context"
	"net/url"

	"github.com/sushantvema/zupo/internal/core/domain"
)

// detailsFieldMask is the base field set for a single place lookup.
// Reviews and photos are appended on request; both inflate the payload.
const detailsFieldMask = "id,displayName,formattedAddress,shortFormattedAddress," +
	"types,primaryType,primaryTypeDisplayName,location,rating,userRatingCount," +
	"priceLevel,websiteUri,googleMapsUri,nationalPhoneNumber," +
	"internationalPhoneNumber,currentOpeningHours,regularOpeningHours," +
	"businessStatus,editorialSummary"

// Details implements ports.DetailsFetcher.
func (c *Client) Details(ctx context.Context, req *domain.DetailsRequest) (*domain.Place, error) {
	mask := detailsFieldMask
	if req.IncludeReviews {
		mask += ",reviews"
	}
	if req.IncludePhotos {
		mask += ",photos"
	}

	u := c.placesBaseURL + "/places/" + url.PathEscape(req.PlaceID)
	q := url.Values{}
	if req.Language != "" {
		q.Set("languageCode", req.Language)
	}
	if req.Region != "" {
		q.Set("regionCode", req.Region)
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var place domain.Place
	if err := c.getJSON(ctx, u, "place_details", mask, &place); err != nil {
		return nil, err
	}
	return &place, nil
}
