package setup

import (
	"context"

	"github.com/palengke-dev/palengke/internal/config"
	"github.com/palengke-dev/palengke/internal/handler"
	"github.com/palengke-dev/palengke/internal/service"
	"github.com/palengke-dev/palengke/internal/service/utils"
	"github.com/palengke-dev/palengke/internal/storage/pg"
	"github.com/palengke-dev/palengke/internal/storage/s3"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Images  *s3.Storage
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	images, err := s3.New(ctx, cfg)
	if err != nil {
		storage.Cleanup()
		return nil, err
	}

	sanitizer := utils.NewSanitizer()
	listing := service.NewListing(storage, sanitizer)
	message := service.NewMessage(storage, sanitizer)
	upload := service.NewUpload(images, cfg.Public.Upload.AllowedMimeTypes)

	h := handler.New(listing, message, upload, storage, cfg)

	return &Dependencies{
		Storage: storage,
		Images:  images,
		Handler: h,
		Config:  cfg,
	}, nil
}
