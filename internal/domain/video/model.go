package video

import (
	"context"
	"time"

	"cloudreel-server/internal/infrastructure/mediastore"
)

// Video represents a stored video's metadata.
type Video struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PublicID       string    `json:"publicId"`
	OriginalSize   string    `json:"originalSize"`
	CompressedSize string    `json:"compressedSize"`
	Duration       float64   `json:"duration"`
	Bytes          int64     `json:"bytes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CreateParams defines the payload for persisting a new video record.
type CreateParams struct {
	OwnerID      string
	Title        string
	Description  string
	PublicID     string
	Duration     float64
	OriginalSize float64
}

// Service exposes the video metadata operations.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*Video, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Video, error)
	BuildCard(v Video) Card
}

// Repository defines persistence operations needed by the service.
type Repository interface {
	Create(ctx context.Context, v *Video) error
	ListByOwner(ctx context.Context, ownerID string) ([]Video, error)
}

// URLFormatter derives delivery URLs from an opaque media identifier and
// transformation parameters.
type URLFormatter interface {
	URL(asset mediastore.AssetType, publicID string, t mediastore.Transform) string
}
