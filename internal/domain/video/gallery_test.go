package video_test

import (
	"context"
	"errors"
	"testing"

	"cloudreel-server/internal/domain/video"
)

// MockVideoService is a mock implementation of video.Service for gallery tests.
type MockVideoService struct {
	CreateFunc      func(ctx context.Context, params video.CreateParams) (*video.Video, error)
	ListByOwnerFunc func(ctx context.Context, ownerID string) ([]video.Video, error)
	BuildCardFunc   func(v video.Video) video.Card
}

func (m *MockVideoService) Create(ctx context.Context, params video.CreateParams) (*video.Video, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockVideoService) ListByOwner(ctx context.Context, ownerID string) ([]video.Video, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockVideoService) BuildCard(v video.Video) video.Card {
	if m.BuildCardFunc != nil {
		return m.BuildCardFunc(v)
	}
	return video.Card{Video: v}
}

func TestGallery_Load(t *testing.T) {
	svc := &MockVideoService{
		ListByOwnerFunc: func(ctx context.Context, ownerID string) ([]video.Video, error) {
			return []video.Video{{ID: "reel_2", Title: "Newest"}, {ID: "reel_1", Title: "Oldest"}}, nil
		},
	}

	g := video.NewGallery(svc, "user_2abc")
	if g.State() != video.GalleryLoading {
		t.Errorf("Expected loading state before Load, got %v", g.State())
	}

	if err := g.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if g.State() != video.GalleryLoaded {
		t.Errorf("Expected loaded state, got %v", g.State())
	}
	if g.Empty() {
		t.Error("Gallery with cards must not report empty")
	}

	cards := g.Cards()
	if len(cards) != 2 || cards[0].ID != "reel_2" {
		t.Errorf("Expected newest-first card order, got %v", cards)
	}
}

func TestGallery_Load_Once(t *testing.T) {
	calls := 0
	svc := &MockVideoService{
		ListByOwnerFunc: func(ctx context.Context, ownerID string) ([]video.Video, error) {
			calls++
			return nil, nil
		},
	}

	g := video.NewGallery(svc, "user_2abc")
	if err := g.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if err := g.Load(context.Background()); !errors.Is(err, video.ErrGalleryLoaded) {
		t.Errorf("Expected ErrGalleryLoaded on second Load, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected exactly one fetch, got %d", calls)
	}
}

func TestGallery_Load_Failure(t *testing.T) {
	svc := &MockVideoService{
		ListByOwnerFunc: func(ctx context.Context, ownerID string) ([]video.Video, error) {
			return nil, errors.New("connection refused")
		},
	}

	g := video.NewGallery(svc, "user_2abc")
	if err := g.Load(context.Background()); err == nil {
		t.Fatal("Expected Load to fail")
	}
	if g.State() != video.GalleryFailed {
		t.Errorf("Expected failed state, got %v", g.State())
	}
	if g.Err() == nil {
		t.Error("Expected Err to report the failure")
	}
	if g.Empty() {
		t.Error("A failed gallery is not empty; it is failed")
	}
}

func TestGallery_Empty(t *testing.T) {
	svc := &MockVideoService{
		ListByOwnerFunc: func(ctx context.Context, ownerID string) ([]video.Video, error) {
			return []video.Video{}, nil
		},
	}

	g := video.NewGallery(svc, "user_2abc")
	if err := g.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !g.Empty() {
		t.Error("Expected empty gallery")
	}
}

func TestGallery_MarkPreviewFailed(t *testing.T) {
	svc := &MockVideoService{
		ListByOwnerFunc: func(ctx context.Context, ownerID string) ([]video.Video, error) {
			return []video.Video{{ID: "reel_1"}}, nil
		},
	}

	g := video.NewGallery(svc, "user_2abc")
	if err := g.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	g.MarkPreviewFailed(0)
	if !g.Cards()[0].PreviewFailed {
		t.Error("Expected card 0 marked as preview-failed")
	}

	// Out-of-range indexes are ignored.
	g.MarkPreviewFailed(-1)
	g.MarkPreviewFailed(5)
}
