package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/core/usecases"
)

type mockNearbySearcher struct {
	searchFn func(ctx context.Context, req *domain.NearbySearchRequest) (*domain.SearchResponse, error)
	calls    int
	lastReq  *domain.NearbySearchRequest
}

func (m *mockNearbySearcher) SearchNearby(ctx context.Context, req *domain.NearbySearchRequest) (*domain.SearchResponse, error) {
	m.calls++
	m.lastReq = req
	if m.searchFn != nil {
		return m.searchFn(ctx, req)
	}
	return &domain.SearchResponse{}, nil
}

func TestNearbyService_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		req  domain.NearbySearchRequest
	}{
		{"latitude out of range", domain.NearbySearchRequest{Lat: 91, Lng: 0, Radius: 100}},
		{"longitude out of range", domain.NearbySearchRequest{Lat: 0, Lng: -181, Radius: 100}},
		{"zero radius", domain.NearbySearchRequest{Lat: 48.2, Lng: 16.4, Radius: 0}},
		{"negative radius", domain.NearbySearchRequest{Lat: 48.2, Lng: 16.4, Radius: -5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			searcher := &mockNearbySearcher{}
			svc := usecases.NewNearbyService(searcher, nil)

			_, err := svc.Nearby(context.Background(), &tc.req)

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if searcher.calls != 0 {
				t.Errorf("searcher must not be called, got %d calls", searcher.calls)
			}
		})
	}
}

func TestNearbyService_LimitClamped(t *testing.T) {
	searcher := &mockNearbySearcher{}
	svc := usecases.NewNearbyService(searcher, nil)

	_, err := svc.Nearby(context.Background(), &domain.NearbySearchRequest{
		Lat: 48.2082, Lng: 16.3738, Radius: 1000, Limit: 50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if searcher.lastReq.Limit != 20 {
		t.Errorf("expected limit clamped to 20, got %d", searcher.lastReq.Limit)
	}
}

func TestNearbyService_CacheHitSkipsProvider(t *testing.T) {
	searcher := &mockNearbySearcher{}
	cache := &mockCache{
		getFn: func(ctx context.Context, key string) ([]byte, error) {
			return []byte(`{"places":[{"id":"cached"}]}`), nil
		},
	}
	svc := usecases.NewNearbyService(searcher, cache)

	resp, err := svc.Nearby(context.Background(), &domain.NearbySearchRequest{
		Lat: 48.2082, Lng: 16.3738, Radius: 1000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if searcher.calls != 0 {
		t.Errorf("provider must not be called on cache hit, got %d calls", searcher.calls)
	}
	if len(resp.Places) != 1 || resp.Places[0].ID != "cached" {
		t.Errorf("expected cached response, got %+v", resp)
	}
}
