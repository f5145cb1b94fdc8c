package ports

import (
	"context"

	"github.com/sushantvema/zupo/internal/core/domain"
)

// DirectionsProvider computes routes between free-form locations.
type DirectionsProvider interface {
	// ComputeRoutePolyline returns the encoded polyline of the best route,
	// or an error when no route exists between the two locations.
	ComputeRoutePolyline(ctx context.Context, from, to string, mode domain.TravelMode) (string, error)
}

// PlaceSearcher runs text searches over places.
type PlaceSearcher interface {
	SearchText(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error)
}

// NearbySearcher finds places around an explicit point.
type NearbySearcher interface {
	SearchNearby(ctx context.Context, req *domain.NearbySearchRequest) (*domain.SearchResponse, error)
}

// Autocompleter suggests completions for partial input.
type Autocompleter interface {
	Autocomplete(ctx context.Context, req *domain.AutocompleteRequest) (*domain.AutocompleteResponse, error)
}

// DetailsFetcher fetches one place with extended fields.
type DetailsFetcher interface {
	Details(ctx context.Context, req *domain.DetailsRequest) (*domain.Place, error)
}

// PhotoFetcher resolves photo resource names and downloads media.
type PhotoFetcher interface {
	PhotoMedia(ctx context.Context, req *domain.PhotoMediaRequest) (*domain.PhotoMedia, error)
	DownloadBytes(ctx context.Context, url string) ([]byte, error)
}

// Geolocator estimates the caller's location without explicit coordinates.
type Geolocator interface {
	Locate(ctx context.Context) (*domain.GeoLocation, error)
}
