package main

import (
	"context"
	"errors"
	"flag"
	"testing"

	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/pkg/config"
)

type stubLocator struct {
	locateFn func(ctx context.Context) (*domain.GeoLocation, error)
	calls    int
}

func (s *stubLocator) Locate(ctx context.Context) (*domain.GeoLocation, error) {
	s.calls++
	return s.locateFn(ctx)
}

func f64(v float64) *float64 { return &v }

func TestResolveLocationExplicitFlagsWin(t *testing.T) {
	loc := &stubLocator{locateFn: func(ctx context.Context) (*domain.GeoLocation, error) {
		return &domain.GeoLocation{Lat: 1, Lng: 2}, nil
	}}
	a := &app{
		cfg:        &config.Config{Location: config.LocationConfig{Lat: f64(40), Lng: f64(-70)}},
		locator:    loc,
		autoLocate: true,
	}

	pt := a.resolveLocation(context.Background(), 48.2082, 16.3738, true, true)
	if pt == nil {
		t.Fatal("expected a location")
	}
	if pt.Lat != 48.2082 || pt.Lng != 16.3738 {
		t.Errorf("got [%v, %v], want explicit flags", pt.Lat, pt.Lng)
	}
	if loc.calls != 0 {
		t.Errorf("locator called %d times, want 0", loc.calls)
	}
}

func TestResolveLocationFallsBackToConfig(t *testing.T) {
	a := &app{
		cfg: &config.Config{Location: config.LocationConfig{Lat: f64(40.7), Lng: f64(-74.0), Label: "home"}},
	}

	pt := a.resolveLocation(context.Background(), 0, 0, false, false)
	if pt == nil {
		t.Fatal("expected config location")
	}
	if pt.Lat != 40.7 || pt.Lng != -74.0 {
		t.Errorf("got [%v, %v], want config default", pt.Lat, pt.Lng)
	}
}

func TestResolveLocationAutoLocate(t *testing.T) {
	loc := &stubLocator{locateFn: func(ctx context.Context) (*domain.GeoLocation, error) {
		return &domain.GeoLocation{Lat: 48.2, Lng: 16.37, Description: "Vienna, Austria"}, nil
	}}
	a := &app{cfg: &config.Config{}, locator: loc, autoLocate: true}

	pt := a.resolveLocation(context.Background(), 0, 0, false, false)
	if pt == nil {
		t.Fatal("expected auto-located position")
	}
	if pt.Lat != 48.2 || pt.Lng != 16.37 {
		t.Errorf("got [%v, %v], want IP location", pt.Lat, pt.Lng)
	}
	if loc.calls != 1 {
		t.Errorf("locator called %d times, want 1", loc.calls)
	}
}

func TestResolveLocationAutoLocateFailureIsNotFatal(t *testing.T) {
	loc := &stubLocator{locateFn: func(ctx context.Context) (*domain.GeoLocation, error) {
		return nil, errors.New("network down")
	}}
	a := &app{cfg: &config.Config{}, locator: loc, autoLocate: true}

	if pt := a.resolveLocation(context.Background(), 0, 0, false, false); pt != nil {
		t.Errorf("got %+v, want nil on auto-locate failure", pt)
	}
}

func TestResolveLocationNoSources(t *testing.T) {
	a := &app{cfg: &config.Config{}}
	if pt := a.resolveLocation(context.Background(), 0, 0, false, false); pt != nil {
		t.Errorf("got %+v, want nil", pt)
	}
}

func TestResolveRadiusPrecedence(t *testing.T) {
	withConfig := &app{cfg: &config.Config{Location: config.LocationConfig{Radius: f64(2500)}}}
	withoutConfig := &app{cfg: &config.Config{}}

	if got := withConfig.resolveRadius(800, true, 5000); got != 800 {
		t.Errorf("explicit flag: got %v, want 800", got)
	}
	if got := withConfig.resolveRadius(0, false, 5000); got != 2500 {
		t.Errorf("config default: got %v, want 2500", got)
	}
	if got := withoutConfig.resolveRadius(0, false, 5000); got != 5000 {
		t.Errorf("fallback: got %v, want 5000", got)
	}
}

func TestParsePriceLevels(t *testing.T) {
	levels, err := parsePriceLevels("1,3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"PRICE_LEVEL_INEXPENSIVE", "PRICE_LEVEL_EXPENSIVE"}
	if len(levels) != len(want) {
		t.Fatalf("got %d levels, want %d", len(levels), len(want))
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Errorf("levels[%d] = %q, want %q", i, levels[i], want[i])
		}
	}

	if levels, err := parsePriceLevels(""); err != nil || levels != nil {
		t.Errorf("empty input: got (%v, %v), want (nil, nil)", levels, err)
	}

	if _, err := parsePriceLevels("5"); !domain.IsValidation(err) {
		t.Errorf("out of range: got %v, want validation error", err)
	}
	if _, err := parsePriceLevels("cheap"); !domain.IsValidation(err) {
		t.Errorf("non-numeric: got %v, want validation error", err)
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV("restaurant, cafe ,,bar")
	want := []string{"restaurant", "cafe", "bar"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if splitCSV("") != nil {
		t.Error("empty input should return nil")
	}
}

func TestFlagWasSet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Float64("lat", 0, "")
	fs.Float64("lng", 0, "")
	if err := fs.Parse([]string{"--lat", "48.2"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if !flagWasSet(fs, "lat") {
		t.Error("lat was set")
	}
	if flagWasSet(fs, "lng") {
		t.Error("lng was not set")
	}
}
