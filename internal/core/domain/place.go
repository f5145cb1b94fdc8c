package domain

// Place is the unified place record returned by text search, nearby
// search, resolve, and details. Every field beyond ID is optional; which
// ones are populated depends on the field mask of the originating call.
type Place struct {
	ID                     string           `json:"id,omitempty"`
	DisplayName            *LocalizedText   `json:"displayName,omitempty"`
	FormattedAddress       string           `json:"formattedAddress,omitempty"`
	ShortFormattedAddress  string           `json:"shortFormattedAddress,omitempty"`
	Types                  []string         `json:"types,omitempty"`
	PrimaryType            string           `json:"primaryType,omitempty"`
	PrimaryTypeDisplayName *LocalizedText   `json:"primaryTypeDisplayName,omitempty"`
	Location               *GeoPoint        `json:"location,omitempty"`
	Rating                 float64          `json:"rating,omitempty"`
	UserRatingCount        int              `json:"userRatingCount,omitempty"`
	PriceLevel             string           `json:"priceLevel,omitempty"`
	WebsiteURI             string           `json:"websiteUri,omitempty"`
	GoogleMapsURI          string           `json:"googleMapsUri,omitempty"`
	NationalPhoneNumber    string           `json:"nationalPhoneNumber,omitempty"`
	InternationalPhone     string           `json:"internationalPhoneNumber,omitempty"`
	CurrentOpeningHours    *OpeningHours    `json:"currentOpeningHours,omitempty"`
	RegularOpeningHours    *OpeningHours    `json:"regularOpeningHours,omitempty"`
	BusinessStatus         string           `json:"businessStatus,omitempty"`
	EditorialSummary       *LocalizedText   `json:"editorialSummary,omitempty"`
	Reviews                []Review         `json:"reviews,omitempty"`
	Photos                 []Photo          `json:"photos,omitempty"`
}

// Name returns the display name text, falling back to the place ID.
func (p *Place) Name() string {
	if p.DisplayName != nil && p.DisplayName.Text != "" {
		return p.DisplayName.Text
	}
	return p.ID
}

// LocalizedText is a string with an optional BCP-47 language code.
type LocalizedText struct {
	Text         string `json:"text,omitempty"`
	LanguageCode string `json:"languageCode,omitempty"`
}

// OpeningHours describes when a place is open.
type OpeningHours struct {
	OpenNow             *bool    `json:"openNow,omitempty"`
	WeekdayDescriptions []string `json:"weekdayDescriptions,omitempty"`
}

// Review is a user review attached to a place.
type Review struct {
	AuthorAttribution   *AuthorAttribution `json:"authorAttribution,omitempty"`
	Rating              float64            `json:"rating,omitempty"`
	RelativePublishTime string             `json:"relativePublishTimeDescription,omitempty"`
	Text                *LocalizedText     `json:"text,omitempty"`
	OriginalText        *LocalizedText     `json:"originalText,omitempty"`
}

// AuthorAttribution credits the author of a review or photo.
type AuthorAttribution struct {
	DisplayName string `json:"displayName,omitempty"`
	URI         string `json:"uri,omitempty"`
	PhotoURI    string `json:"photoUri,omitempty"`
}

// Photo is a photo resource attached to a place. Name is the resource
// handle passed to the photo media endpoint.
type Photo struct {
	Name               string              `json:"name"`
	WidthPx            int                 `json:"widthPx,omitempty"`
	HeightPx           int                 `json:"heightPx,omitempty"`
	AuthorAttributions []AuthorAttribution `json:"authorAttributions,omitempty"`
}

// SearchRequest is a text search over places.
type SearchRequest struct {
	Query        string   `json:"query"`
	IncludedType string   `json:"includedType,omitempty"`
	MinRating    float64  `json:"minRating,omitempty"`
	PriceLevels  []string `json:"priceLevels,omitempty"`
	OpenNow      bool     `json:"openNow,omitempty"`
	Location     *Circle  `json:"location,omitempty"`
	Limit        int      `json:"limit,omitempty"`
	Language     string   `json:"language,omitempty"`
	Region       string   `json:"region,omitempty"`
}

// SearchResponse holds ordered text-search results.
type SearchResponse struct {
	Places []Place `json:"places"`
}

// AutocompleteRequest asks for typing suggestions.
type AutocompleteRequest struct {
	Input        string  `json:"input"`
	SessionToken string  `json:"sessionToken,omitempty"`
	Location     *Circle `json:"location,omitempty"`
	Limit        int     `json:"limit,omitempty"`
	Language     string  `json:"language,omitempty"`
	Region       string  `json:"region,omitempty"`
}

// AutocompleteResponse holds ordered suggestions.
type AutocompleteResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// Suggestion is either a place prediction or a query prediction.
type Suggestion struct {
	PlacePrediction *PlacePrediction `json:"placePrediction,omitempty"`
	QueryPrediction *QueryPrediction `json:"queryPrediction,omitempty"`
}

// PlacePrediction suggests a concrete place.
type PlacePrediction struct {
	Place            string            `json:"place,omitempty"`
	PlaceID          string            `json:"placeId,omitempty"`
	Text             *FormattedText    `json:"text,omitempty"`
	StructuredFormat *StructuredFormat `json:"structuredFormat,omitempty"`
	Types            []string          `json:"types,omitempty"`
}

// QueryPrediction suggests a search query.
type QueryPrediction struct {
	Text             *FormattedText    `json:"text,omitempty"`
	StructuredFormat *StructuredFormat `json:"structuredFormat,omitempty"`
}

// FormattedText is prediction text with match offsets.
type FormattedText struct {
	Text    string      `json:"text,omitempty"`
	Matches []TextMatch `json:"matches,omitempty"`
}

// TextMatch marks a matched span inside prediction text.
type TextMatch struct {
	StartOffset int `json:"startOffset,omitempty"`
	EndOffset   int `json:"endOffset,omitempty"`
}

// StructuredFormat splits a prediction into main and secondary text.
type StructuredFormat struct {
	MainText      *FormattedText `json:"mainText,omitempty"`
	SecondaryText *FormattedText `json:"secondaryText,omitempty"`
}

// NearbySearchRequest searches around an explicit point.
type NearbySearchRequest struct {
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	Radius        float64  `json:"radius"`
	IncludedTypes []string `json:"includedTypes,omitempty"`
	ExcludedTypes []string `json:"excludedTypes,omitempty"`
	Limit         int      `json:"limit,omitempty"`
	Language      string   `json:"language,omitempty"`
	Region        string   `json:"region,omitempty"`
}

// DetailsRequest fetches one place by ID.
type DetailsRequest struct {
	PlaceID        string `json:"placeId"`
	IncludeReviews bool   `json:"includeReviews,omitempty"`
	IncludePhotos  bool   `json:"includePhotos,omitempty"`
	Language       string `json:"language,omitempty"`
	Region         string `json:"region,omitempty"`
}

// PhotoMediaRequest resolves a photo resource name to a servable URI.
type PhotoMediaRequest struct {
	Name      string `json:"name"`
	MaxWidth  int    `json:"maxWidth,omitempty"`
	MaxHeight int    `json:"maxHeight,omitempty"`
}

// PhotoMedia is the resolved photo URI.
type PhotoMedia struct {
	Name     string `json:"name,omitempty"`
	PhotoURI string `json:"photoUri,omitempty"`
}

// ResolveRequest turns free-form location text into place candidates.
type ResolveRequest struct {
	Location string `json:"location"`
	Limit    int    `json:"limit,omitempty"`
	Language string `json:"language,omitempty"`
	Region   string `json:"region,omitempty"`
}

// PriceLevelToAPI maps a 0-4 price tier to the API enum value. Returns
// "" for out-of-range tiers.
func PriceLevelToAPI(level int) string {
	switch level {
	case 0:
		return "PRICE_LEVEL_FREE"
	case 1:
		return "PRICE_LEVEL_INEXPENSIVE"
	case 2:
		return "PRICE_LEVEL_MODERATE"
	case 3:
		return "PRICE_LEVEL_EXPENSIVE"
	case 4:
		return "PRICE_LEVEL_VERY_EXPENSIVE"
	default:
		return ""
	}
}

// PriceLevelDisplay maps an API price level enum to its display form.
func PriceLevelDisplay(level string) string {
	switch level {
	case "PRICE_LEVEL_FREE":
		return "Free"
	case "PRICE_LEVEL_INEXPENSIVE":
		return "$"
	case "PRICE_LEVEL_MODERATE":
		return "$$"
	case "PRICE_LEVEL_EXPENSIVE":
		return "$$$"
	case "PRICE_LEVEL_VERY_EXPENSIVE":
		return "$$$$"
	default:
		return level
	}
}
