//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"cloudreel-server/internal/config"
	"cloudreel-server/internal/domain/social"
	"cloudreel-server/internal/domain/video"
	"cloudreel-server/internal/infrastructure/auth"
	"cloudreel-server/internal/infrastructure/database"
	"cloudreel-server/internal/infrastructure/logger"
	"cloudreel-server/internal/infrastructure/mediastore"
	repo "cloudreel-server/internal/infrastructure/repository/video"
	"cloudreel-server/internal/interfaces/httpserver"
	"cloudreel-server/internal/interfaces/httpserver/handlers"
)

var videoSet = wire.NewSet(
	repo.NewRepository,
	wire.Bind(new(video.Repository), new(*repo.Repository)),
	video.NewService,
	wire.Bind(new(video.Service), new(*video.MetadataService)),
)

var mediaSet = wire.NewSet(
	mediastore.NewClient,
	wire.Bind(new(handlers.MediaStore), new(*mediastore.Client)),
	wire.Bind(new(video.URLFormatter), new(*mediastore.Client)),
	wire.Bind(new(social.URLFormatter), new(*mediastore.Client)),
)

// BuildApplication assembles the CloudReel API with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		auth.NewValidator,
		newGormDB,
		videoSet,
		mediaSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newGormDB(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}
