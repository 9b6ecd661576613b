package video_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"cloudreel-server/internal/config"
	"cloudreel-server/internal/domain/video"
	"cloudreel-server/internal/infrastructure/mediastore"
	"cloudreel-server/utils/assetid"
	"cloudreel-server/utils/platformerrors"
)

// MockRepository is a mock implementation of video.Repository for testing.
type MockRepository struct {
	CreateFunc      func(ctx context.Context, v *video.Video) error
	ListByOwnerFunc func(ctx context.Context, ownerID string) ([]video.Video, error)
}

func (m *MockRepository) Create(ctx context.Context, v *video.Video) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, v)
	}
	return nil
}

func (m *MockRepository) ListByOwner(ctx context.Context, ownerID string) ([]video.Video, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

// StubURLFormatter composes predictable URLs for testing.
type StubURLFormatter struct{}

func (StubURLFormatter) URL(asset mediastore.AssetType, publicID string, t mediastore.Transform) string {
	return fmt.Sprintf("https://cdn.example.com/%s/w_%d,h_%d/%s", asset, t.Width, t.Height, publicID)
}

func newTestService(repo video.Repository) *video.MetadataService {
	return video.NewService(&config.Config{}, repo, StubURLFormatter{}, zerolog.Nop())
}

func TestMetadataService_Create(t *testing.T) {
	var saved *video.Video
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, v *video.Video) error {
			saved = v
			return nil
		},
	}

	svc := newTestService(repo)
	created, err := svc.Create(context.Background(), video.CreateParams{
		OwnerID:      "user_2abc",
		Title:        "Demo reel",
		Description:  "A short demo",
		PublicID:     "videos/abc123",
		Duration:     42.5,
		OriginalSize: 1000000,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if saved == nil {
		t.Fatal("Expected repository Create to be called")
	}

	if !assetid.IsValid(created.ID) {
		t.Errorf("Expected a valid asset id, got %q", created.ID)
	}
	if created.UserID != "user_2abc" {
		t.Errorf("Expected owner 'user_2abc', got %q", created.UserID)
	}
	if created.OriginalSize != "1000000" {
		t.Errorf("Expected originalSize '1000000', got %q", created.OriginalSize)
	}
	if created.CompressedSize != "800000.0" {
		t.Errorf("Expected compressedSize '800000.0', got %q", created.CompressedSize)
	}
	if created.Bytes != 1000000 {
		t.Errorf("Expected bytes 1000000, got %d", created.Bytes)
	}
}

func TestMetadataService_Create_CompressedSizeFormat(t *testing.T) {
	cases := []struct {
		original   float64
		compressed string
	}{
		{1000000, "800000.0"},
		{123456789, "98765431.2"},
		{0, "0.0"},
		{-5, "0.0"},
	}

	svc := newTestService(&MockRepository{})
	for _, tc := range cases {
		created, err := svc.Create(context.Background(), video.CreateParams{
			OwnerID:      "user_2abc",
			Title:        "Demo",
			PublicID:     "videos/abc",
			OriginalSize: tc.original,
		})
		if err != nil {
			t.Fatalf("Create(%v) returned error: %v", tc.original, err)
		}
		if created.CompressedSize != tc.compressed {
			t.Errorf("Create(%v): expected compressedSize %q, got %q", tc.original, tc.compressed, created.CompressedSize)
		}
	}
}

func TestMetadataService_Create_Validation(t *testing.T) {
	called := false
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, v *video.Video) error {
			called = true
			return nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), video.CreateParams{OwnerID: "user_2abc", PublicID: "videos/abc"})
	if err == nil {
		t.Fatal("Expected error for missing title")
	}
	perr := platformerrors.GetPlatformError(err)
	if perr == nil || perr.Type != platformerrors.ErrorTypeValidation {
		t.Errorf("Expected a validation error, got %v", err)
	}

	_, err = svc.Create(context.Background(), video.CreateParams{Title: "Demo", PublicID: "videos/abc"})
	if err == nil {
		t.Fatal("Expected error for missing owner")
	}
	perr = platformerrors.GetPlatformError(err)
	if perr == nil || perr.Type != platformerrors.ErrorTypeUnauthorized {
		t.Errorf("Expected an unauthorized error, got %v", err)
	}

	if called {
		t.Error("Repository must not be called when validation fails")
	}
}

func TestMetadataService_Create_RepositoryError(t *testing.T) {
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, v *video.Video) error {
			return errors.New("connection refused")
		},
	}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), video.CreateParams{
		OwnerID:  "user_2abc",
		Title:    "Demo",
		PublicID: "videos/abc",
	})
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Expected repository error to surface, got %v", err)
	}
}

func TestMetadataService_ListByOwner(t *testing.T) {
	repo := &MockRepository{
		ListByOwnerFunc: func(ctx context.Context, ownerID string) ([]video.Video, error) {
			if ownerID != "user_2abc" {
				t.Errorf("Expected owner 'user_2abc', got %q", ownerID)
			}
			return []video.Video{{ID: "reel_2"}, {ID: "reel_1"}}, nil
		},
	}
	svc := newTestService(repo)

	videos, err := svc.ListByOwner(context.Background(), "user_2abc")
	if err != nil {
		t.Fatalf("ListByOwner returned error: %v", err)
	}
	if len(videos) != 2 || videos[0].ID != "reel_2" {
		t.Errorf("Expected repository order preserved, got %v", videos)
	}

	_, err = svc.ListByOwner(context.Background(), " ")
	if err == nil {
		t.Error("Expected error for blank owner")
	}
}
