package promo

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/dcebotari/vatra/internal/platform/apperr"
	"github.com/dcebotari/vatra/internal/platform/constants"
	"github.com/dcebotari/vatra/internal/platform/sec"
	"github.com/dcebotari/vatra/internal/platform/validate"
	"github.com/dcebotari/vatra/pkg/uuid"
)

// folderPrefix is the bucket folder promo photos live under.
const folderPrefix = "promo/"

type Service struct {
	repo    Repository
	storage Storage
	bucket  string
	tokens  *sec.UploadTokenService
	logger  *slog.Logger
}

func NewService(repo Repository, storage Storage, bucket string, tokens *sec.UploadTokenService, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		storage: storage,
		bucket:  bucket,
		tokens:  tokens,
		logger:  logger,
	}
}

func (service *Service) List(context context.Context) ([]Item, error) {
	return service.repo.List(context)
}

type UploadInput struct {
	Title       string
	Price       string
	Filename    string
	ContentType string
	Body        io.Reader
}

// Upload is the one-shot path: file and fields in a single request.
func (service *Service) Upload(context context.Context, input UploadInput) (*Item, error) {
	validator := &validate.Validator{}
	validator.
		Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		Required("price", input.Price).
		MaxLen("price", input.Price, 50).
		Required("filename", input.Filename)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	key := folderPrefix + uuid.New() + strings.ToLower(path.Ext(input.Filename))
	if err := service.storage.Upload(context, service.bucket, key, input.ContentType, input.Body); err != nil {
		return nil, apperr.Internal(err)
	}

	return service.record(context, input.Title, input.Price, key)
}

// SignedUpload authorizes one future upload: the object path plus a
// short-lived token bound to it.
type SignedUpload struct {
	Path      string `json:"path"`
	Token     string `json:"token"`
	UploadURL string `json:"upload_url"`
}

// SignUpload is step one of the two-phase flow. The dashboard later PUTs
// the bytes to UploadURL and then calls Complete with the returned path.
func (service *Service) SignUpload(filename string) (*SignedUpload, error) {
	if filename == "" {
		return nil, validate.RequiredError("filename", "filename is required")
	}

	key := folderPrefix + uuid.New() + strings.ToLower(path.Ext(filename))
	token, err := service.tokens.Sign(service.bucket, key, constants.UploadTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &SignedUpload{
		Path:      key,
		Token:     token,
		UploadURL: "/api/uploads/" + token,
	}, nil
}

// ReceiveUpload verifies the token and streams the bytes to the destination
// it was signed for. The token is the whole authorization, so this endpoint
// is reachable without a session.
func (service *Service) ReceiveUpload(context context.Context, token, contentType string, body io.Reader) error {
	claims, err := service.tokens.Verify(token)
	if err != nil {
		return apperr.Unauthorized("invalid or expired upload token")
	}

	if err := service.storage.Upload(context, claims.Bucket, claims.Path, contentType, body); err != nil {
		return apperr.Internal(err)
	}

	service.logger.Info("signed upload received", "bucket", claims.Bucket, "path", claims.Path)
	return nil
}

type CompleteInput struct {
	Title string `json:"title"`
	Price string `json:"price"`
	Path  string `json:"path"`
}

// Complete is step two: record the row for an object uploaded via the
// signed flow.
func (service *Service) Complete(context context.Context, input CompleteInput) (*Item, error) {
	validator := &validate.Validator{}
	validator.
		Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		Required("price", input.Price).
		MaxLen("price", input.Price, 50).
		Custom("path", !strings.HasPrefix(input.Path, folderPrefix), "path must point into the promo folder")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.record(context, input.Title, input.Price, input.Path)
}

func (service *Service) record(context context.Context, title, price, key string) (*Item, error) {
	item := &Item{
		Title:    strings.TrimSpace(title),
		Price:    strings.TrimSpace(price),
		ImageURL: service.storage.PublicURL(service.bucket, key),
	}
	if err := service.repo.Create(context, item); err != nil {
		return nil, err
	}

	service.logger.Info("promo item created", "id", item.ID, "key", key)
	return item, nil
}

// Delete removes the row, then the object best-effort.
func (service *Service) Delete(context context.Context, id int) error {
	item, err := service.repo.Delete(context, id)
	if err != nil {
		return err
	}

	prefix := service.storage.PublicURL(service.bucket, "")
	if key, ok := strings.CutPrefix(item.ImageURL, prefix); ok && key != "" {
		if err := service.storage.Remove(context, service.bucket, []string{key}); err != nil {
			service.logger.Warn("promo item object removal failed",
				"id", id,
				"key", key,
				"error", err,
			)
		}
	}

	service.logger.Info("promo item deleted", "id", id)
	return nil
}
