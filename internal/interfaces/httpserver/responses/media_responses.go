package responses

import (
	"cloudreel-server/internal/domain/social"
	"cloudreel-server/internal/infrastructure/mediastore"
)

// ImageUploadResponse reports a completed server-side image upload.
type ImageUploadResponse struct {
	PublicID string `json:"publicId"`
	Bytes    int64  `json:"bytes"`
	Format   string `json:"format"`
}

// BuildImageUploadResponse creates the response from a media store result.
func BuildImageUploadResponse(result *mediastore.UploadResult) *ImageUploadResponse {
	return &ImageUploadResponse{
		PublicID: result.PublicID,
		Bytes:    result.Bytes,
		Format:   result.Format,
	}
}

// SocialFormatsResponse lists the preset social formats.
type SocialFormatsResponse struct {
	Formats []social.Format `json:"formats"`
}

// RenditionResponse carries a derived rendition URL and its download name.
type RenditionResponse struct {
	URL          string        `json:"url"`
	DownloadName string        `json:"downloadName"`
	Format       social.Format `json:"format"`
}

// BuildRenditionResponse creates the rendition response.
func BuildRenditionResponse(url, downloadName string, format social.Format) *RenditionResponse {
	return &RenditionResponse{
		URL:          url,
		DownloadName: downloadName,
		Format:       format,
	}
}
