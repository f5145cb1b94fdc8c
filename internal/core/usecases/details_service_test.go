package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/core/usecases"
)

type mockDetailsFetcher struct {
	detailsFn func(ctx context.Context, req *domain.DetailsRequest) (*domain.Place, error)
	calls     int
}

func (m *mockDetailsFetcher) Details(ctx context.Context, req *domain.DetailsRequest) (*domain.Place, error) {
	m.calls++
	if m.detailsFn != nil {
		return m.detailsFn(ctx, req)
	}
	p := place(req.PlaceID)
	return &p, nil
}

func TestDetailsService_EmptyPlaceID(t *testing.T) {
	fetcher := &mockDetailsFetcher{}
	svc := usecases.NewDetailsService(fetcher, nil)

	_, err := svc.Details(context.Background(), &domain.DetailsRequest{})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if fetcher.calls != 0 {
		t.Errorf("fetcher must not be called, got %d calls", fetcher.calls)
	}
}

func TestDetailsService_CacheHitSkipsFetch(t *testing.T) {
	fetcher := &mockDetailsFetcher{}
	cache := &mockCache{
		getFn: func(ctx context.Context, key string) ([]byte, error) {
			return []byte(`{"id":"cached"}`), nil
		},
	}
	svc := usecases.NewDetailsService(fetcher, cache)

	got, err := svc.Details(context.Background(), &domain.DetailsRequest{PlaceID: "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.calls != 0 {
		t.Errorf("fetcher must not be called on cache hit, got %d calls", fetcher.calls)
	}
	if got.ID != "cached" {
		t.Errorf("expected cached place, got %+v", got)
	}
}

func TestDetailsService_CachesForAnHour(t *testing.T) {
	fetcher := &mockDetailsFetcher{}
	cache := &mockCache{}
	svc := usecases.NewDetailsService(fetcher, cache)

	got, err := svc.Details(context.Background(), &domain.DetailsRequest{PlaceID: "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "abc" {
		t.Errorf("unexpected place: %+v", got)
	}
	if cache.setCalls != 1 {
		t.Errorf("expected place to be cached, got %d sets", cache.setCalls)
	}
	if cache.lastTTL != 3600 {
		t.Errorf("expected 3600s TTL, got %d", cache.lastTTL)
	}
}
