package handlers

import (
	"github.com/rs/zerolog"

	"cloudreel-server/internal/config"
	"cloudreel-server/internal/domain/social"
	"cloudreel-server/internal/domain/video"
)

// Provider wires HTTP handlers.
type Provider struct {
	Video  *VideoHandler
	Upload *UploadHandler
	Social *SocialHandler
}

func NewProvider(cfg *config.Config, videoService video.Service, store MediaStore, urls social.URLFormatter, log zerolog.Logger) *Provider {
	return &Provider{
		Video:  NewVideoHandler(cfg, videoService, log),
		Upload: NewUploadHandler(cfg, store, log),
		Social: NewSocialHandler(urls, log),
	}
}
