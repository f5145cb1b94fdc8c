package geospatial_test

import (
	"math"
	"testing"

	"github.com/sushantvema/zupo/internal/pkg/geospatial"
)

// Reference string from the polyline algorithm documentation.
const encodedReference = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

func TestDecodePolyline_Reference(t *testing.T) {
	want := []geospatial.Point{
		{Lat: 38.5, Lng: -120.2},
		{Lat: 40.7, Lng: -120.95},
		{Lat: 43.252, Lng: -126.453},
	}

	got := geospatial.DecodePolyline(encodedReference)
	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got))
	}
	for i := range want {
		if math.Abs(got[i].Lat-want[i].Lat) > 1e-6 || math.Abs(got[i].Lng-want[i].Lng) > 1e-6 {
			t.Errorf("point %d: expected (%v, %v), got (%v, %v)",
				i, want[i].Lat, want[i].Lng, got[i].Lat, got[i].Lng)
		}
	}
}

func TestDecodePolyline_Empty(t *testing.T) {
	if got := geospatial.DecodePolyline(""); len(got) != 0 {
		t.Errorf("expected no points for empty input, got %d", len(got))
	}
}

func TestDecodePolyline_TruncatedInput(t *testing.T) {
	// Dropping the final byte leaves the last longitude group unterminated;
	// the incomplete pair is dropped and the valid prefix survives.
	truncated := encodedReference[:len(encodedReference)-1]

	got := geospatial.DecodePolyline(truncated)
	if len(got) != 2 {
		t.Fatalf("expected 2 points from truncated input, got %d", len(got))
	}
	if math.Abs(got[1].Lat-40.7) > 1e-6 || math.Abs(got[1].Lng-(-120.95)) > 1e-6 {
		t.Errorf("expected last surviving point (40.7, -120.95), got (%v, %v)", got[1].Lat, got[1].Lng)
	}
}

func TestDecodePolyline_TruncatedAfterLatitude(t *testing.T) {
	// "_p~iF" is a complete latitude group with no longitude at all.
	if got := geospatial.DecodePolyline("_p~iF"); len(got) != 0 {
		t.Errorf("expected no points when longitude is missing, got %d", len(got))
	}
}

func TestDecodePolyline_Deterministic(t *testing.T) {
	a := geospatial.DecodePolyline(encodedReference)
	b := geospatial.DecodePolyline(encodedReference)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("point %d differs between runs: %v vs %v", i, a[i], b[i])
		}
	}
}
