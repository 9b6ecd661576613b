package video_test

import (
	"strings"
	"testing"

	"cloudreel-server/internal/domain/video"
)

func TestSavingsPercent(t *testing.T) {
	cases := []struct {
		name       string
		original   string
		compressed string
		percent    int
		known      bool
	}{
		{"placeholder ratio", "1000000", "800000.0", 20, true},
		{"half", "200", "100", 50, true},
		{"rounding", "3", "2", 33, true},
		{"no savings", "100", "100", 0, false},
		{"grew", "100", "120", 0, false},
		{"zero original", "0", "0.0", 0, false},
		{"garbage original", "n/a", "100", 0, false},
		{"garbage compressed", "100", "n/a", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			percent, known := video.SavingsPercent(tc.original, tc.compressed)
			if percent != tc.percent || known != tc.known {
				t.Errorf("SavingsPercent(%q, %q) = (%d, %v), want (%d, %v)",
					tc.original, tc.compressed, percent, known, tc.percent, tc.known)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds float64
		label   string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59.4, "0:59"},
		{59.6, "1:00"},
		{75, "1:15"},
		{3599.5, "60:00"},
		{-3, "0:00"},
	}

	for _, tc := range cases {
		if got := video.FormatDuration(tc.seconds); got != tc.label {
			t.Errorf("FormatDuration(%v) = %q, want %q", tc.seconds, got, tc.label)
		}
	}
}

func TestBuildCard(t *testing.T) {
	svc := newTestService(&MockRepository{})
	card := svc.BuildCard(video.Video{
		ID:             "reel_1",
		Title:          "Demo reel",
		PublicID:       "videos/abc123",
		OriginalSize:   "1000000",
		CompressedSize: "800000.0",
		Duration:       95,
	})

	if card.ThumbnailURL != "https://cdn.example.com/video/w_400,h_225/videos/abc123" {
		t.Errorf("Unexpected thumbnail URL %q", card.ThumbnailURL)
	}
	if !strings.Contains(card.DownloadURL, "w_1920,h_1080") {
		t.Errorf("Expected full-size download transform, got %q", card.DownloadURL)
	}
	if card.DownloadName != "Demo reel.mp4" {
		t.Errorf("Expected download name 'Demo reel.mp4', got %q", card.DownloadName)
	}
	if card.DurationLabel != "1:35" {
		t.Errorf("Expected duration label '1:35', got %q", card.DurationLabel)
	}
	if card.SavingsPercent != 20 || !card.SavingsKnown {
		t.Errorf("Expected known 20%% savings, got (%d, %v)", card.SavingsPercent, card.SavingsKnown)
	}
}
