package social

import (
	"errors"

	"cloudreel-server/internal/infrastructure/mediastore"
	"cloudreel-server/internal/infrastructure/metrics"
)

// ErrNoImage is returned when a rendition is requested before an upload.
var ErrNoImage = errors.New("no image uploaded")

// ErrUnknownFormat is returned for a preset name outside Formats.
var ErrUnknownFormat = errors.New("unknown social format")

// URLFormatter derives delivery URLs from an opaque media identifier and
// transformation parameters.
type URLFormatter interface {
	URL(asset mediastore.AssetType, publicID string, t mediastore.Transform) string
}

// View is the per-page-load state of the social-format screen. Nothing here
// is persisted server-side; the view only tracks the uploaded image and the
// asynchronous rendition currently loading.
//
// Each preset selection increments a generation. A rendition load completion
// carries the generation it was requested under, and only the current
// generation clears the transforming flag; completions for stale presets are
// ignored rather than racing on a shared flag.
type View struct {
	publicID     string
	format       Format
	transforming bool
	generation   uint64
}

// NewView creates a view with the first preset selected and no image.
func NewView() *View {
	return &View{format: Formats[0]}
}

// SetImage records a completed image upload and starts transforming the
// selected preset.
func (v *View) SetImage(publicID string) uint64 {
	v.publicID = publicID
	return v.beginTransform()
}

// SelectFormat switches the preset and starts a new rendition request. The
// returned generation identifies this request for RenditionLoaded.
func (v *View) SelectFormat(name string) (uint64, error) {
	format, ok := FormatByName(name)
	if !ok {
		return 0, ErrUnknownFormat
	}
	v.format = format
	if v.publicID == "" {
		return v.generation, nil
	}
	return v.beginTransform(), nil
}

// RenditionLoaded reports a rendition finished loading. Only a completion for
// the current generation clears the transforming flag; stale completions
// return false and change nothing.
func (v *View) RenditionLoaded(generation uint64) bool {
	if generation != v.generation {
		return false
	}
	v.transforming = false
	return true
}

// Transforming reports whether a rendition for the current preset is still
// loading.
func (v *View) Transforming() bool {
	return v.transforming
}

// Format returns the selected preset.
func (v *View) Format() Format {
	return v.format
}

// RenditionURL derives the delivery URL for the current image and preset.
func (v *View) RenditionURL(urls URLFormatter) (string, error) {
	if v.publicID == "" {
		return "", ErrNoImage
	}
	metrics.RecordRendition("social")
	return urls.URL(mediastore.AssetImage, v.publicID, v.format.Transform()), nil
}

// DownloadName is the filename the browser saves the current rendition as.
func (v *View) DownloadName() string {
	return v.format.DownloadName()
}

func (v *View) beginTransform() uint64 {
	v.generation++
	v.transforming = true
	return v.generation
}
