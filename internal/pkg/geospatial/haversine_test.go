package geospatial_test

import (
	"math"
	"testing"

	"github.com/sushantvema/zupo/internal/pkg/geospatial"
)

func TestHaversine_SamePoint(t *testing.T) {
	if d := geospatial.Haversine(48.2082, 16.3738, 48.2082, 16.3738); d != 0 {
		t.Errorf("expected 0 for identical points, got %v", d)
	}
}

func TestHaversine_Symmetry(t *testing.T) {
	ab := geospatial.Haversine(48.2082, 16.3738, 37.7749, -122.4194)
	ba := geospatial.Haversine(37.7749, -122.4194, 48.2082, 16.3738)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("expected symmetric distances, got %v and %v", ab, ba)
	}
}

func TestHaversine_OneDegreeAtEquator(t *testing.T) {
	// One degree of longitude on the equator is R * pi/180.
	want := 6371000.0 * math.Pi / 180
	got := geospatial.Haversine(0, 0, 0, 1)
	if math.Abs(got-want) > 1 {
		t.Errorf("expected ~%.1f m, got %.1f m", want, got)
	}
}
