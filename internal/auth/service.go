// Package auth implements the single-admin session model of the dashboard.
//
// There is no user table: the admin identity is a configured username and
// bcrypt hash, and a session is an opaque random token held in Redis until
// its TTL runs out. Nothing is encoded in the token itself.
package auth

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/dcebotari/vatra/internal/platform/apperr"
	"github.com/dcebotari/vatra/internal/platform/constants"
	"github.com/dcebotari/vatra/internal/platform/ctxutil"
	"github.com/dcebotari/vatra/internal/platform/sec"
)

type Service struct {
	sessions          SessionRepository
	adminUsername     string
	adminPasswordHash string
	logger            *slog.Logger
}

func NewService(sessions SessionRepository, adminUsername, adminPasswordHash string, logger *slog.Logger) *Service {
	return &Service{
		sessions:          sessions,
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		logger:            logger,
	}
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies the admin credentials and mints a session token.
//
// The same Unauthorized error covers wrong username and wrong password, so
// responses do not reveal which half failed.
func (service *Service) Login(context context.Context, input LoginInput) (string, error) {
	usernameMatch := subtle.ConstantTimeCompare([]byte(input.Username), []byte(service.adminUsername)) == 1
	passwordMatch := sec.CheckPasswordHash(input.Password, service.adminPasswordHash)
	if !usernameMatch || !passwordMatch {
		service.logger.Warn("failed login attempt", "username", input.Username)
		return "", apperr.Unauthorized("Invalid credentials")
	}

	token, err := sec.GenerateSecureToken(constants.SessionTokenLength)
	if err != nil {
		return "", apperr.Internal(err)
	}

	if err := service.sessions.Set(context, token, constants.SessionTTL); err != nil {
		return "", apperr.Internal(err)
	}

	service.logger.Info("admin logged in")
	return token, nil
}

// Logout drops the session. Unknown tokens are a no-op.
func (service *Service) Logout(context context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := service.sessions.Delete(context, token); err != nil {
		return apperr.Internal(err)
	}

	service.logger.Info("admin logged out")
	return nil
}

// Validate reports whether token is a live session. It satisfies
// [middleware.SessionValidator]; store errors degrade to anonymous rather
// than failing the request.
func (service *Service) Validate(request *http.Request, token string) bool {
	exists, err := service.sessions.Exists(request.Context(), token)
	if err != nil {
		ctxutil.GetLogger(request.Context()).Warn("session lookup failed", "error", err)
		return false
	}
	return exists
}
