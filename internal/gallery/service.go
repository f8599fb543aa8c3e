package gallery

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/dcebotari/vatra/internal/platform/apperr"
	"github.com/dcebotari/vatra/internal/platform/validate"
	"github.com/dcebotari/vatra/pkg/pagination"
	"github.com/dcebotari/vatra/pkg/uuid"
)

type Service struct {
	repo    Repository
	storage Storage
	bucket  string
	logger  *slog.Logger
}

func NewService(repo Repository, storage Storage, bucket string, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		storage: storage,
		bucket:  bucket,
		logger:  logger,
	}
}

func (service *Service) List(context context.Context, params pagination.Params) ([]Image, pagination.Meta, error) {
	images, total, err := service.repo.List(context, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return images, pagination.NewMeta(params, total), nil
}

type UploadInput struct {
	AltText     string
	Filename    string
	ContentType string
	Body        io.Reader
}

func (service *Service) Upload(context context.Context, input UploadInput) (*Image, error) {
	if input.Filename == "" {
		return nil, validate.RequiredError("filename", "filename is required")
	}

	key := uuid.New() + strings.ToLower(path.Ext(input.Filename))
	if err := service.storage.Upload(context, service.bucket, key, input.ContentType, input.Body); err != nil {
		return nil, apperr.Internal(err)
	}

	altText := strings.TrimSpace(input.AltText)
	if altText == "" {
		altText = strings.TrimSuffix(input.Filename, path.Ext(input.Filename))
	}

	image := &Image{
		ImageURL: service.storage.PublicURL(service.bucket, key),
		AltText:  altText,
	}
	if err := service.repo.Create(context, image); err != nil {
		return nil, err
	}

	service.logger.Info("gallery image uploaded", "id", image.ID, "key", key)
	return image, nil
}

// Delete removes the row, then the object best-effort.
func (service *Service) Delete(context context.Context, id int) error {
	image, err := service.repo.Delete(context, id)
	if err != nil {
		return err
	}

	prefix := service.storage.PublicURL(service.bucket, "")
	if key, ok := strings.CutPrefix(image.ImageURL, prefix); ok && key != "" {
		if err := service.storage.Remove(context, service.bucket, []string{key}); err != nil {
			service.logger.Warn("gallery image object removal failed",
				"id", id,
				"key", key,
				"error", err,
			)
		}
	}

	service.logger.Info("gallery image deleted", "id", id)
	return nil
}
