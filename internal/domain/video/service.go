package video

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"

	"cloudreel-server/internal/config"
	"cloudreel-server/internal/infrastructure/metrics"
	"cloudreel-server/internal/infrastructure/observability"
	"cloudreel-server/utils/assetid"
	"cloudreel-server/utils/platformerrors"
)

// compressionPlaceholderRatio is a documented placeholder: the stored
// compressed size is 80% of the original, not a measured value. The media
// store does the real compression; its output size is not reported back.
const compressionPlaceholderRatio = 0.8

// MetadataService orchestrates video metadata persistence and gallery
// derivation.
type MetadataService struct {
	cfg  *config.Config
	repo Repository
	urls URLFormatter
	log  zerolog.Logger
}

func NewService(cfg *config.Config, repo Repository, urls URLFormatter, log zerolog.Logger) *MetadataService {
	return &MetadataService{
		cfg:  cfg,
		repo: repo,
		urls: urls,
		log:  log.With().Str("component", "video-service").Logger(),
	}
}

// Create persists a new video record owned by params.OwnerID.
func (s *MetadataService) Create(ctx context.Context, params CreateParams) (*Video, error) {
	if strings.TrimSpace(params.OwnerID) == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeUnauthorized,
			"owner identifier is required",
			nil,
			"5c1f8a2d-9e3b-4f6c-8a1d-7b2e9c4f5a60",
		)
	}
	if strings.TrimSpace(params.Title) == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"title is required",
			nil,
			"8d4a2b6e-1f7c-4e9a-b3d5-0c8f6a2e4b71",
		)
	}
	if strings.TrimSpace(params.PublicID) == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"publicId is required",
			nil,
			"2e9b4c7f-6a1d-4b8e-9f3c-5d0a7e2b8c43",
		)
	}

	originalSize := params.OriginalSize
	if originalSize < 0 {
		originalSize = 0
	}

	v := &Video{
		ID:             assetid.New(),
		UserID:         params.OwnerID,
		Title:          params.Title,
		Description:    params.Description,
		PublicID:       params.PublicID,
		OriginalSize:   strconv.FormatFloat(originalSize, 'f', -1, 64),
		CompressedSize: strconv.FormatFloat(originalSize*compressionPlaceholderRatio, 'f', 1, 64),
		Duration:       params.Duration,
		Bytes:          int64(originalSize),
	}

	ctx, span := observability.StartVideoSaveSpan(ctx, v.ID, v.UserID, v.PublicID)
	defer span.End()

	if err := s.repo.Create(ctx, v); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create video failed")
		metrics.RecordVideoSave("error", 0)
		return nil, err
	}
	metrics.RecordVideoSave("success", v.Bytes)

	s.log.Info().
		Str("video_id", v.ID).
		Str("owner_id", v.UserID).
		Int64("bytes", v.Bytes).
		Msg("video record created")

	return v, nil
}

// ListByOwner returns the owner's records ordered newest first.
func (s *MetadataService) ListByOwner(ctx context.Context, ownerID string) ([]Video, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeUnauthorized,
			"owner identifier is required",
			nil,
			"94d7e1a3-5b8f-4c2e-a6d9-3f0b8c5e7a12",
		)
	}

	ctx, span := observability.StartVideoListSpan(ctx, ownerID)
	defer span.End()

	videos, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list videos failed")
		return nil, err
	}
	return videos, nil
}
