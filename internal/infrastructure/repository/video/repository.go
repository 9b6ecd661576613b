package video

import (
	"context"

	"gorm.io/gorm"

	domain "cloudreel-server/internal/domain/video"
	"cloudreel-server/internal/infrastructure/database/entities"
	"cloudreel-server/utils/platformerrors"
)

// Repository handles video record persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, v *domain.Video) error {
	entity := entities.Video{
		ID:             v.ID,
		UserID:         v.UserID,
		Title:          v.Title,
		Description:    v.Description,
		PublicID:       v.PublicID,
		OriginalSize:   v.OriginalSize,
		CompressedSize: v.CompressedSize,
		Duration:       v.Duration,
		Bytes:          v.Bytes,
	}
	err := r.db.WithContext(ctx).Create(&entity).Error
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create video record",
			err,
			"3f8c1d5a-7b2e-4c9f-8d6a-1e4b7c0f9a25",
		)
	}
	v.CreatedAt = entity.CreatedAt
	v.UpdatedAt = entity.UpdatedAt
	return nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Video, error) {
	var records []entities.Video
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list video records",
			err,
			"b6e2a9c4-0d7f-4a3b-9c5e-8f1d4b6a2e70",
		)
	}

	videos := make([]domain.Video, 0, len(records))
	for _, entity := range records {
		videos = append(videos, mapEntity(entity))
	}
	return videos, nil
}

func mapEntity(entity entities.Video) domain.Video {
	return domain.Video{
		ID:             entity.ID,
		UserID:         entity.UserID,
		Title:          entity.Title,
		Description:    entity.Description,
		PublicID:       entity.PublicID,
		OriginalSize:   entity.OriginalSize,
		CompressedSize: entity.CompressedSize,
		Duration:       entity.Duration,
		Bytes:          entity.Bytes,
		CreatedAt:      entity.CreatedAt,
		UpdatedAt:      entity.UpdatedAt,
	}
}
