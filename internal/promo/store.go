package promo

import (
	"context"
	"io"
)

type Repository interface {
	List(context context.Context) ([]Item, error)
	Create(context context.Context, item *Item) error
	Delete(context context.Context, id int) (*Item, error)
}

// Storage is the slice of the object-store client the service depends on.
type Storage interface {
	PublicURL(bucket, key string) string
	Upload(context context.Context, bucket, key, contentType string, body io.Reader) error
	Remove(context context.Context, bucket string, keys []string) error
}
