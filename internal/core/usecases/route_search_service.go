package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/core/ports"
	"github.com/sushantvema/zupo/internal/pkg/geospatial"
)

var tracer = otel.Tracer("github.com/sushantvema/zupo/internal/core/usecases")

// RouteSearchService finds places along a route: it computes the route
// between two locations, samples waypoints evenly along it, and runs one
// place search around each waypoint.
type RouteSearchService struct {
	directions ports.DirectionsProvider
	places     ports.PlaceSearcher
}

// NewRouteSearchService creates a new RouteSearchService.
func NewRouteSearchService(directions ports.DirectionsProvider, places ports.PlaceSearcher) *RouteSearchService {
	return &RouteSearchService{directions: directions, places: places}
}

// Search runs the route discovery pipeline. Validation failures and route
// computation failures abort the whole operation; a failed search at one
// waypoint only leaves that waypoint's place list empty.
func (s *RouteSearchService) Search(ctx context.Context, req *domain.RouteSearchRequest) (*domain.RouteSearchOutcome, error) {
	if req.Query == "" {
		return nil, &domain.ValidationError{Field: "query", Message: "query is required"}
	}
	if req.From == "" {
		return nil, &domain.ValidationError{Field: "from", Message: "origin is required"}
	}
	if req.To == "" {
		return nil, &domain.ValidationError{Field: "to", Message: "destination is required"}
	}
	if req.MaxWaypoints <= 0 {
		req.MaxWaypoints = 5
	}
	if req.SearchRadius <= 0 {
		req.SearchRadius = 1000
	}
	if req.ResultsPerWaypoint <= 0 {
		req.ResultsPerWaypoint = 5
	} else if req.ResultsPerWaypoint > 20 {
		req.ResultsPerWaypoint = 20
	}

	ctx, span := tracer.Start(ctx, "route.search")
	defer span.End()
	span.SetAttributes(
		attribute.String("route.from", req.From),
		attribute.String("route.to", req.To),
		attribute.String("route.mode", req.Mode.String()),
	)

	polyline, err := s.directions.ComputeRoutePolyline(ctx, req.From, req.To, req.Mode)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	// Decoding is lenient: a malformed polyline truncates silently instead
	// of erroring, so a corrupt provider response surfaces here only as a
	// short or empty path.
	points := geospatial.DecodePolyline(polyline)
	if len(points) == 0 {
		err := &domain.ProviderError{Message: "route returned no path points"}
		span.RecordError(err)
		return nil, err
	}

	waypoints := geospatial.SampleWaypoints(points, req.MaxWaypoints)
	span.SetAttributes(
		attribute.Int("route.path_points", len(points)),
		attribute.Int("route.waypoints", len(waypoints)),
	)

	results := make([]domain.WaypointResult, 0, len(waypoints))
	for idx, wp := range waypoints {
		center := domain.GeoPoint{Lat: wp.Lat, Lng: wp.Lng}

		wpCtx, wpSpan := tracer.Start(ctx, "route.waypoint_search")
		wpSpan.SetAttributes(attribute.Int("waypoint.index", idx))

		resp, err := s.places.SearchText(wpCtx, &domain.SearchRequest{
			Query:    req.Query,
			Location: &domain.Circle{Center: center, Radius: req.SearchRadius},
			Limit:    req.ResultsPerWaypoint,
			Language: req.Language,
			Region:   req.Region,
		})

		places := []domain.Place{}
		if err != nil {
			// A failed waypoint keeps its slot; the remaining waypoints
			// are unaffected.
			wpSpan.RecordError(err)
		} else if resp.Places != nil {
			places = resp.Places
		}
		wpSpan.End()

		results = append(results, domain.WaypointResult{
			Waypoint:      center,
			WaypointIndex: idx,
			Places:        places,
		})
	}

	return &domain.RouteSearchOutcome{
		From:       req.From,
		To:         req.To,
		TravelMode: req.Mode.String(),
		Waypoints:  results,
	}, nil
}
