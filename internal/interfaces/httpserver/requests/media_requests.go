package requests

// SignUploadRequest asks for a signed direct-upload parameter set.
type SignUploadRequest struct {
	ResourceType string `json:"resourceType"`
}

// SocialRenditionRequest asks for a preset rendition of an uploaded image.
type SocialRenditionRequest struct {
	PublicID string `json:"publicId" binding:"required"`
	Format   string `json:"format" binding:"required"`
}
