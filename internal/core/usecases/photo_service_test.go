package usecases_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/core/usecases"
)

type mockPhotoFetcher struct {
	mediaFn    func(ctx context.Context, req *domain.PhotoMediaRequest) (*domain.PhotoMedia, error)
	downloadFn func(ctx context.Context, url string) ([]byte, error)
	calls      int
}

func (m *mockPhotoFetcher) PhotoMedia(ctx context.Context, req *domain.PhotoMediaRequest) (*domain.PhotoMedia, error) {
	m.calls++
	if m.mediaFn != nil {
		return m.mediaFn(ctx, req)
	}
	return &domain.PhotoMedia{Name: req.Name, PhotoURI: "https://example.com/img.jpg"}, nil
}

func (m *mockPhotoFetcher) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	m.calls++
	if m.downloadFn != nil {
		return m.downloadFn(ctx, url)
	}
	return []byte{0xff, 0xd8}, nil
}

func TestPhotoService_EmptyName(t *testing.T) {
	fetcher := &mockPhotoFetcher{}
	svc := usecases.NewPhotoService(fetcher)

	_, err := svc.Media(context.Background(), &domain.PhotoMediaRequest{})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if fetcher.calls != 0 {
		t.Errorf("fetcher must not be called, got %d calls", fetcher.calls)
	}
}

func TestPhotoService_Media(t *testing.T) {
	fetcher := &mockPhotoFetcher{}
	svc := usecases.NewPhotoService(fetcher)

	media, err := svc.Media(context.Background(), &domain.PhotoMediaRequest{
		Name: "places/abc/photos/xyz", MaxWidth: 400,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if media.PhotoURI == "" {
		t.Error("expected a photo URI")
	}
}

func TestPhotoService_DownloadEmptyURI(t *testing.T) {
	fetcher := &mockPhotoFetcher{}
	svc := usecases.NewPhotoService(fetcher)

	_, err := svc.Download(context.Background(), "")

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPhotoService_Download(t *testing.T) {
	fetcher := &mockPhotoFetcher{}
	svc := usecases.NewPhotoService(fetcher)

	data, err := svc.Download(context.Background(), "https://example.com/img.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(data, []byte{0xff, 0xd8}) {
		t.Errorf("unexpected bytes: %v", data)
	}
}
