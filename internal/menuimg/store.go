package menuimg

import (
	"context"
	"io"

	"github.com/dcebotari/vatra/internal/category"
	"github.com/dcebotari/vatra/internal/platform/objstore"
	"github.com/dcebotari/vatra/pkg/pagination"
)

type Repository interface {
	ListByCategory(context context.Context, categoryID int, params pagination.Params) ([]Image, int, error)
	FindByURLs(context context.Context, urls []string) (map[string]Image, error)
	InsertBatch(context context.Context, images []Image) (int, error)
	UpdateCategory(context context.Context, id, categoryID int) error
	Create(context context.Context, image *Image) error
	Delete(context context.Context, id int) (*Image, error)
}

// Storage is the slice of the object-store client the service depends on.
// *objstore.Client satisfies it.
type Storage interface {
	List(context context.Context, bucket, prefix string) ([]objstore.Object, error)
	PublicURL(bucket, key string) string
	Upload(context context.Context, bucket, key, contentType string, body io.Reader) error
	Remove(context context.Context, bucket string, keys []string) error
}

// CategoryDirectory is the slice of the category service the sync and the
// upload flow need.
type CategoryDirectory interface {
	ListByMenu(context context.Context, menu string) ([]category.Category, error)
	Get(context context.Context, id int) (*category.Category, error)
}
