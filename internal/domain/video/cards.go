package video

import (
	"fmt"
	"math"
	"strconv"

	"cloudreel-server/internal/infrastructure/mediastore"
	"cloudreel-server/internal/infrastructure/metrics"
)

// Rendition presets for gallery cards. The publicId stays opaque; only these
// parameters are handed to the media store's URL formatter.
var (
	thumbnailTransform = mediastore.Transform{
		Width:   400,
		Height:  225,
		Crop:    "fill",
		Gravity: "auto",
		Quality: "auto",
		Format:  "jpg",
	}

	previewTransform = mediastore.Transform{
		Width:  400,
		Height: 225,
		Raw:    []string{"e_preview:duration_15:max_seg_9:min_seg_dur_1"},
	}

	fullTransform = mediastore.Transform{
		Width:  1920,
		Height: 1080,
	}
)

// Card is a gallery entry: the record plus everything a view needs to render
// it, with rendition URLs derived from the media identifier.
type Card struct {
	Video

	ThumbnailURL  string `json:"thumbnailUrl"`
	PreviewURL    string `json:"previewUrl"`
	DownloadURL   string `json:"downloadUrl"`
	DownloadName  string `json:"downloadName"`
	DurationLabel string `json:"durationLabel"`

	// SavingsPercent is derived from the placeholder compressed size; values
	// at or below zero are "not yet meaningful" and reported as unknown.
	SavingsPercent int  `json:"savingsPercent"`
	SavingsKnown   bool `json:"savingsKnown"`

	// PreviewFailed marks a card whose hover preview failed to load; the view
	// degrades it to a placeholder instead of surfacing an error.
	PreviewFailed bool `json:"-"`
}

// BuildCard derives the gallery card for a video record.
func (s *MetadataService) BuildCard(v Video) Card {
	metrics.RecordRendition("card")
	percent, known := SavingsPercent(v.OriginalSize, v.CompressedSize)
	return Card{
		Video:          v,
		ThumbnailURL:   s.urls.URL(mediastore.AssetVideo, v.PublicID, thumbnailTransform),
		PreviewURL:     s.urls.URL(mediastore.AssetVideo, v.PublicID, previewTransform),
		DownloadURL:    s.urls.URL(mediastore.AssetVideo, v.PublicID, fullTransform),
		DownloadName:   v.Title + ".mp4",
		DurationLabel:  FormatDuration(v.Duration),
		SavingsPercent: percent,
		SavingsKnown:   known,
	}
}

// SavingsPercent computes round((1 - compressed/original) * 100) from the
// decimal-text sizes. The boolean is false when the value is not yet
// meaningful (unparseable sizes, zero original, or a non-positive result).
func SavingsPercent(originalSize, compressedSize string) (int, bool) {
	original, err := strconv.ParseFloat(originalSize, 64)
	if err != nil || original <= 0 {
		return 0, false
	}
	compressed, err := strconv.ParseFloat(compressedSize, 64)
	if err != nil {
		return 0, false
	}
	percent := int(math.Round((1 - compressed/original) * 100))
	if percent <= 0 {
		return 0, false
	}
	return percent, true
}

// FormatDuration renders seconds as m:ss.
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	rounded := int(math.Round(seconds))
	return fmt.Sprintf("%d:%02d", rounded/60, rounded%60)
}
