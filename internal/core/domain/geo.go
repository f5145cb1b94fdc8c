package domain

// GeoPoint represents a geographic coordinate (WGS 84).
type GeoPoint struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// Path is an ordered sequence of geographic coordinates, e.g. a decoded
// route polyline. A path may be empty.
type Path []GeoPoint

// Circle is a center point plus a radius in meters, used to bias or
// restrict a search to a geographic area.
type Circle struct {
	Center GeoPoint `json:"center"`
	Radius float64  `json:"radius"`
}

// GeoLocation is a coarse location fix from IP geolocation.
type GeoLocation struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Description string  `json:"description,omitempty"` // e.g. "Vienna, Austria"
}

// ValidateCoords checks that a latitude/longitude pair is within bounds.
func ValidateCoords(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return &ValidationError{Field: "lat", Message: "latitude must be between -90 and 90"}
	}
	if lng < -180 || lng > 180 {
		return &ValidationError{Field: "lng", Message: "longitude must be between -180 and 180"}
	}
	return nil
}
