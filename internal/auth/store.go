package auth

import (
	"context"
	"time"
)

// SessionRepository stores live admin session tokens.
type SessionRepository interface {
	Set(context context.Context, token string, ttl time.Duration) error
	Exists(context context.Context, token string) (bool, error)
	Delete(context context.Context, token string) error
}
