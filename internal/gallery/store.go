package gallery

import (
	"context"
	"io"

	"github.com/dcebotari/vatra/pkg/pagination"
)

type Repository interface {
	List(context context.Context, params pagination.Params) ([]Image, int, error)
	Create(context context.Context, image *Image) error
	Delete(context context.Context, id int) (*Image, error)
}

// Storage is the slice of the object-store client the service depends on.
type Storage interface {
	PublicURL(bucket, key string) string
	Upload(context context.Context, bucket, key, contentType string, body io.Reader) error
	Remove(context context.Context, bucket string, keys []string) error
}
