package menuimg

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/dcebotari/vatra/internal/platform/apperr"
	"github.com/dcebotari/vatra/internal/platform/validate"
	"github.com/dcebotari/vatra/pkg/pagination"
	"github.com/dcebotari/vatra/pkg/slug"
	"github.com/dcebotari/vatra/pkg/uuid"
)

type Service struct {
	repo       Repository
	categories CategoryDirectory
	storage    Storage
	bucket     string
	logger     *slog.Logger
}

func NewService(repo Repository, categories CategoryDirectory, storage Storage, bucket string, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		storage:    storage,
		bucket:     bucket,
		logger:     logger,
	}
}

func (service *Service) ListByCategory(context context.Context, categoryID int, params pagination.Params) ([]Image, pagination.Meta, error) {
	if categoryID <= 0 {
		return nil, pagination.Meta{}, validate.RequiredError("category_id", "category_id must be a positive integer")
	}

	images, total, err := service.repo.ListByCategory(context, categoryID, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return images, pagination.NewMeta(params, total), nil
}

type UploadInput struct {
	CategoryID  int
	AltText     string
	Filename    string
	ContentType string
	Body        io.Reader
}

// Upload stores the file in the category's bucket folder under a fresh name
// and records the row. The folder layout matches what Sync expects, so
// uploaded images survive later synchronization runs untouched.
func (service *Service) Upload(context context.Context, input UploadInput) (*Image, error) {
	validator := &validate.Validator{}
	validator.
		Custom("category_id", input.CategoryID <= 0, "category_id must be a positive integer").
		Required("filename", input.Filename)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	category, err := service.categories.Get(context, input.CategoryID)
	if err != nil {
		return nil, err
	}

	key := category.Menu + "/" + slug.From(category.NameRo) + "/" + uuid.New() + strings.ToLower(path.Ext(input.Filename))
	if err := service.storage.Upload(context, service.bucket, key, input.ContentType, input.Body); err != nil {
		return nil, apperr.Internal(err)
	}

	altText := strings.TrimSpace(input.AltText)
	if altText == "" {
		altText = strings.TrimSuffix(input.Filename, path.Ext(input.Filename))
	}

	image := &Image{
		ImageURL:   service.storage.PublicURL(service.bucket, key),
		AltText:    altText,
		CategoryID: category.ID,
	}
	if err := service.repo.Create(context, image); err != nil {
		return nil, err
	}

	service.logger.Info("menu image uploaded",
		"id", image.ID,
		"category_id", category.ID,
		"key", key,
	)
	return image, nil
}

// Delete removes the row and then the stored object. The row is
// authoritative: a failed object removal is logged and the delete still
// succeeds, leaving an orphan in the bucket for the next manual cleanup.
func (service *Service) Delete(context context.Context, id int) error {
	image, err := service.repo.Delete(context, id)
	if err != nil {
		return err
	}

	if key, ok := service.objectKey(image.ImageURL); ok {
		if err := service.storage.Remove(context, service.bucket, []string{key}); err != nil {
			service.logger.Warn("menu image object removal failed",
				"id", id,
				"key", key,
				"error", err,
			)
		}
	}

	service.logger.Info("menu image deleted", "id", id)
	return nil
}

// objectKey extracts the bucket key from a public URL. URLs pointing outside
// the configured bucket have nothing to remove.
func (service *Service) objectKey(imageURL string) (string, bool) {
	prefix := service.storage.PublicURL(service.bucket, "")
	key, ok := strings.CutPrefix(imageURL, prefix)
	return key, ok && key != ""
}
