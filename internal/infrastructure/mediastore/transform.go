package mediastore

import (
	"fmt"
	"strings"
)

// AssetType selects the media store asset namespace a URL addresses.
type AssetType string

const (
	AssetImage AssetType = "image"
	AssetVideo AssetType = "video"
)

// Transform describes the derivation parameters for a rendition. The media
// identifier itself stays opaque; only these parameters are formatted into
// the delivery URL.
type Transform struct {
	Width       int
	Height      int
	AspectRatio string
	Crop        string
	Gravity     string
	Quality     string
	Format      string

	// Raw carries provider-specific transformation segments appended verbatim,
	// e.g. "e_preview:duration_15:max_seg_9:min_seg_dur_1".
	Raw []string
}

// IsZero reports whether the transform requests no derivation at all.
func (t Transform) IsZero() bool {
	return t.Width == 0 && t.Height == 0 && t.AspectRatio == "" && t.Crop == "" &&
		t.Gravity == "" && t.Quality == "" && t.Format == "" && len(t.Raw) == 0
}

// segments renders the transform as URL path segments in a fixed order so
// generated URLs are deterministic.
func (t Transform) segments() []string {
	var params []string
	if t.Crop != "" {
		params = append(params, "c_"+t.Crop)
	}
	if t.Gravity != "" {
		params = append(params, "g_"+t.Gravity)
	}
	if t.AspectRatio != "" {
		params = append(params, "ar_"+t.AspectRatio)
	}
	if t.Width > 0 {
		params = append(params, fmt.Sprintf("w_%d", t.Width))
	}
	if t.Height > 0 {
		params = append(params, fmt.Sprintf("h_%d", t.Height))
	}
	if t.Quality != "" {
		params = append(params, "q_"+t.Quality)
	}
	if t.Format != "" {
		params = append(params, "f_"+t.Format)
	}

	var segments []string
	if len(params) > 0 {
		segments = append(segments, strings.Join(params, ","))
	}
	segments = append(segments, t.Raw...)
	return segments
}
