package social

import (
	"strings"

	"cloudreel-server/internal/infrastructure/mediastore"
)

// Format is a preset social-media crop: fixed dimensions and aspect ratio.
type Format struct {
	Name        string `json:"name"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	AspectRatio string `json:"aspectRatio"`
}

// Formats are the five supported presets, in display order.
var Formats = []Format{
	{Name: "Instagram Square (1:1)", Width: 1080, Height: 1080, AspectRatio: "1:1"},
	{Name: "Instagram Portrait (4:5)", Width: 1080, Height: 1350, AspectRatio: "4:5"},
	{Name: "Twitter Post (16:9)", Width: 1200, Height: 675, AspectRatio: "16:9"},
	{Name: "Twitter Header (3:1)", Width: 1500, Height: 500, AspectRatio: "3:1"},
	{Name: "Facebook Cover (205:78)", Width: 820, Height: 312, AspectRatio: "205:78"},
}

// FormatByName looks up a preset by its display name.
func FormatByName(name string) (Format, bool) {
	for _, f := range Formats {
		if f.Name == name {
			return f, true
		}
	}
	return Format{}, false
}

// Transform returns the media store transformation for the preset: an
// auto-gravity fill crop at the preset dimensions.
func (f Format) Transform() mediastore.Transform {
	return mediastore.Transform{
		Width:       f.Width,
		Height:      f.Height,
		AspectRatio: f.AspectRatio,
		Crop:        "fill",
		Gravity:     "auto",
	}
}

// DownloadName derives the client-side download filename from the preset
// name.
func (f Format) DownloadName() string {
	return strings.ReplaceAll(f.Name, " ", "_") + ".jpg"
}
