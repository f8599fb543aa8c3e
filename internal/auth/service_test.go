package auth_test

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcebotari/vatra/internal/auth"
	"github.com/dcebotari/vatra/internal/platform/sec"
)

type fakeSessions struct {
	tokens map[string]time.Duration
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: map[string]time.Duration{}}
}

func (sessions *fakeSessions) Set(_ context.Context, token string, ttl time.Duration) error {
	sessions.tokens[token] = ttl
	return nil
}

func (sessions *fakeSessions) Exists(_ context.Context, token string) (bool, error) {
	_, ok := sessions.tokens[token]
	return ok, nil
}

func (sessions *fakeSessions) Delete(_ context.Context, token string) error {
	delete(sessions.tokens, token)
	return nil
}

func newService(t *testing.T, sessions *fakeSessions) *auth.Service {
	t.Helper()
	hash, err := sec.HashPassword("parola-corecta")
	require.NoError(t, err)
	return auth.NewService(sessions, "admin", hash, slog.Default())
}

/*
TestLogin verifies the full credential check and session minting.
*/
func TestLogin(t *testing.T) {
	sessions := newFakeSessions()
	service := newService(t, sessions)

	token, err := service.Login(context.Background(), auth.LoginInput{
		Username: "admin",
		Password: "parola-corecta",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ttl, ok := sessions.tokens[token]
	require.True(t, ok)
	assert.Equal(t, 24*time.Hour, ttl)

	request := httptest.NewRequest("GET", "/", nil)
	assert.True(t, service.Validate(request, token))
}

/*
TestLogin_RejectsBadCredentials verifies both halves of the credential fail
the same way.
*/
func TestLogin_RejectsBadCredentials(t *testing.T) {
	service := newService(t, newFakeSessions())

	_, badUser := service.Login(context.Background(), auth.LoginInput{
		Username: "root",
		Password: "parola-corecta",
	})
	_, badPassword := service.Login(context.Background(), auth.LoginInput{
		Username: "admin",
		Password: "parola-gresita",
	})

	require.Error(t, badUser)
	require.Error(t, badPassword)
	assert.Equal(t, badUser.Error(), badPassword.Error())
}

/*
TestLogout verifies the session disappears and later validation fails.
*/
func TestLogout(t *testing.T) {
	sessions := newFakeSessions()
	service := newService(t, sessions)

	token, err := service.Login(context.Background(), auth.LoginInput{
		Username: "admin",
		Password: "parola-corecta",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), token))

	request := httptest.NewRequest("GET", "/", nil)
	assert.False(t, service.Validate(request, token))
}

func TestLogout_EmptyTokenIsNoop(t *testing.T) {
	service := newService(t, newFakeSessions())
	assert.NoError(t, service.Logout(context.Background(), ""))
}
