package domain

import (
	"fmt"
	"strings"
)

// TravelMode selects how the route between origin and destination is
// computed.
type TravelMode int

const (
	TravelModeDrive TravelMode = iota
	TravelModeWalk
	TravelModeBicycle
	TravelModeTwoWheeler
	TravelModeTransit
)

// String returns the Routes API form of the mode, e.g. "TWO_WHEELER".
func (m TravelMode) String() string {
	switch m {
	case TravelModeWalk:
		return "WALK"
	case TravelModeBicycle:
		return "BICYCLE"
	case TravelModeTwoWheeler:
		return "TWO_WHEELER"
	case TravelModeTransit:
		return "TRANSIT"
	default:
		return "DRIVE"
	}
}

// ParseTravelMode parses a mode name case-insensitively.
func ParseTravelMode(s string) (TravelMode, error) {
	switch strings.ToUpper(s) {
	case "DRIVE":
		return TravelModeDrive, nil
	case "WALK":
		return TravelModeWalk, nil
	case "BICYCLE":
		return TravelModeBicycle, nil
	case "TWO_WHEELER":
		return TravelModeTwoWheeler, nil
	case "TRANSIT":
		return TravelModeTransit, nil
	default:
		return TravelModeDrive, &ValidationError{
			Field:   "mode",
			Message: fmt.Sprintf("invalid travel mode '%s': use DRIVE, WALK, BICYCLE, TWO_WHEELER, or TRANSIT", s),
		}
	}
}

// RouteSearchRequest asks for places matching Query along the route from
// From to To.
type RouteSearchRequest struct {
	Query              string     `json:"query"`
	From               string     `json:"from"`
	To                 string     `json:"to"`
	Mode               TravelMode `json:"mode"`
	SearchRadius       float64    `json:"searchRadius"`       // meters around each waypoint
	MaxWaypoints       int        `json:"maxWaypoints"`       // waypoints sampled along the route
	ResultsPerWaypoint int        `json:"resultsPerWaypoint"` // place cap per waypoint
	Language           string     `json:"language,omitempty"`
	Region             string     `json:"region,omitempty"`
}

// WaypointResult is one sampled waypoint and the places found around it.
// Places is empty both when nothing was found and when that waypoint's
// search failed; failures never abort the other waypoints.
type WaypointResult struct {
	Waypoint      GeoPoint `json:"waypoint"`
	WaypointIndex int      `json:"waypointIndex"`
	Places        []Place  `json:"places"`
}

// RouteSearchOutcome is the aggregate result of a route search, with
// waypoint results ordered by waypoint index.
type RouteSearchOutcome struct {
	From       string           `json:"from"`
	To         string           `json:"to"`
	TravelMode string           `json:"travelMode"`
	Waypoints  []WaypointResult `json:"waypoints"`
}
