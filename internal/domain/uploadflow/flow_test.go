package uploadflow_test

import (
	"context"
	"errors"
	"testing"

	"cloudreel-server/internal/domain/uploadflow"
	"cloudreel-server/internal/domain/video"
)

// MockVideoService is a mock implementation of video.Service for flow tests.
type MockVideoService struct {
	CreateFunc func(ctx context.Context, params video.CreateParams) (*video.Video, error)
}

func (m *MockVideoService) Create(ctx context.Context, params video.CreateParams) (*video.Video, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockVideoService) ListByOwner(ctx context.Context, ownerID string) ([]video.Video, error) {
	return nil, nil
}

func (m *MockVideoService) BuildCard(v video.Video) video.Card {
	return video.Card{Video: v}
}

func TestFlow_Submit(t *testing.T) {
	var captured video.CreateParams
	svc := &MockVideoService{
		CreateFunc: func(ctx context.Context, params video.CreateParams) (*video.Video, error) {
			captured = params
			return &video.Video{ID: "reel_1", UserID: params.OwnerID, Title: params.Title}, nil
		},
	}

	flow := uploadflow.New(svc, "user_2abc")
	if flow.State() != uploadflow.StateIdle {
		t.Errorf("Expected idle state, got %v", flow.State())
	}

	flow.CompleteUpload(uploadflow.UploadResult{PublicID: "videos/abc123", Duration: 42.5, Bytes: 1000000})
	if flow.State() != uploadflow.StateUploaded {
		t.Errorf("Expected uploaded state, got %v", flow.State())
	}

	flow.SetTitle("Demo reel")
	flow.SetDescription("A short demo")

	created, err := flow.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if flow.State() != uploadflow.StateDone {
		t.Errorf("Expected done state, got %v", flow.State())
	}
	if created.ID != "reel_1" {
		t.Errorf("Unexpected created record %+v", created)
	}

	if captured.OwnerID != "user_2abc" || captured.PublicID != "videos/abc123" {
		t.Errorf("Unexpected create params %+v", captured)
	}
	if captured.Duration != 42.5 || captured.OriginalSize != 1000000 {
		t.Errorf("Expected upload result mapped to params, got %+v", captured)
	}
}

func TestFlow_SubmitWithoutUpload(t *testing.T) {
	called := false
	svc := &MockVideoService{
		CreateFunc: func(ctx context.Context, params video.CreateParams) (*video.Video, error) {
			called = true
			return nil, nil
		},
	}

	flow := uploadflow.New(svc, "user_2abc")
	flow.SetTitle("Demo reel")

	if _, err := flow.Submit(context.Background()); !errors.Is(err, uploadflow.ErrNoUpload) {
		t.Errorf("Expected ErrNoUpload, got %v", err)
	}
	if called {
		t.Error("Service must not be called before an upload completes")
	}
	if flow.State() != uploadflow.StateIdle {
		t.Errorf("Validation failure must not advance the state, got %v", flow.State())
	}
}

func TestFlow_SubmitWithoutTitle(t *testing.T) {
	called := false
	svc := &MockVideoService{
		CreateFunc: func(ctx context.Context, params video.CreateParams) (*video.Video, error) {
			called = true
			return nil, nil
		},
	}

	flow := uploadflow.New(svc, "user_2abc")
	flow.CompleteUpload(uploadflow.UploadResult{PublicID: "videos/abc123"})
	flow.SetTitle("   ")

	if _, err := flow.Submit(context.Background()); !errors.Is(err, uploadflow.ErrTitleRequired) {
		t.Errorf("Expected ErrTitleRequired, got %v", err)
	}
	if called {
		t.Error("Service must not be called when the title is blank")
	}
}

func TestFlow_RetryAfterFailedSave(t *testing.T) {
	failures := 1
	svc := &MockVideoService{
		CreateFunc: func(ctx context.Context, params video.CreateParams) (*video.Video, error) {
			if failures > 0 {
				failures--
				return nil, errors.New("connection refused")
			}
			return &video.Video{ID: "reel_1"}, nil
		},
	}

	flow := uploadflow.New(svc, "user_2abc")
	flow.CompleteUpload(uploadflow.UploadResult{PublicID: "videos/abc123"})
	flow.SetTitle("Demo reel")

	if _, err := flow.Submit(context.Background()); err == nil {
		t.Fatal("Expected first submit to fail")
	}
	if flow.State() != uploadflow.StateFailed {
		t.Errorf("Expected failed state, got %v", flow.State())
	}
	if !flow.Uploaded() {
		t.Error("A failed save must keep the upload result")
	}
	if flow.Err() == nil {
		t.Error("Expected Err to report the failure")
	}

	// Resubmission reuses the original upload; no second upload happens.
	if _, err := flow.Submit(context.Background()); err != nil {
		t.Fatalf("Retry returned error: %v", err)
	}
	if flow.State() != uploadflow.StateDone {
		t.Errorf("Expected done state after retry, got %v", flow.State())
	}
	if flow.Err() != nil {
		t.Errorf("Expected Err cleared after success, got %v", flow.Err())
	}
}
