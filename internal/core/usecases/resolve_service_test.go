package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/core/usecases"
)

func TestResolveService_EmptyLocation(t *testing.T) {
	searcher := &mockSearcher{}
	svc := usecases.NewResolveService(searcher)

	_, err := svc.Resolve(context.Background(), &domain.ResolveRequest{})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if searcher.calls != 0 {
		t.Errorf("searcher must not be called, got %d calls", searcher.calls)
	}
}

func TestResolveService_MapsLocationToQuery(t *testing.T) {
	searcher := &mockSearcher{}
	svc := usecases.NewResolveService(searcher)

	_, err := svc.Resolve(context.Background(), &domain.ResolveRequest{Location: "vienna opera"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if searcher.lastReq.Query != "vienna opera" {
		t.Errorf("expected location as query, got %q", searcher.lastReq.Query)
	}
	if searcher.lastReq.Limit != 5 {
		t.Errorf("expected default limit 5, got %d", searcher.lastReq.Limit)
	}
}

func TestResolveService_LimitCapped(t *testing.T) {
	searcher := &mockSearcher{}
	svc := usecases.NewResolveService(searcher)

	_, err := svc.Resolve(context.Background(), &domain.ResolveRequest{Location: "graz", Limit: 99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if searcher.lastReq.Limit != 10 {
		t.Errorf("expected limit capped to 10, got %d", searcher.lastReq.Limit)
	}
}
