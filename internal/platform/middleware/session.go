// Copyright (c) 2026 Vatra. All rights reserved.
// Author: d.cebotari.dev@gmail.com

package middleware

import (
	"net/http"

	"github.com/dcebotari/vatra/internal/platform/apperr"
	"github.com/dcebotari/vatra/internal/platform/constants"
	"github.com/dcebotari/vatra/internal/platform/ctxutil"
	"github.com/dcebotari/vatra/internal/platform/respond"
	"github.com/dcebotari/vatra/internal/platform/sec"
)

// SessionValidator defines the interface needed to resolve session cookies.
//
// # Why an interface?
//
// Defining SessionValidator here decouples the middleware from the `auth`
// service implementation, allowing us to easily inject fakes during unit testing.
type SessionValidator interface {
	// Validate reports whether the opaque token corresponds to a live session.
	Validate(request *http.Request, token string) bool
}

// Authenticate resolves the session cookie into an explicit context value.
//
// # Flow
//  1. Read the session cookie; absent means anonymous — request proceeds.
//  2. Validate the token against the session store.
//  3. On success, inject [*sec.Session] into the request context.
//
// An invalid or expired token is treated as anonymous rather than rejected:
// rejection is the job of [RequireSession] on protected routes and of the
// edge interceptor on protected pages.
func Authenticate(validator SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			if !validator.Validate(request, cookie.Value) {
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithSession(request.Context(), &sec.Session{Token: cookie.Value})
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireSession blocks API requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. API routes respond
// with 401 JSON; page-level gating (redirects) lives in the edge interceptor.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !ctxutil.IsAuthenticated(request.Context()) {
			respond.Error(writer, request, apperr.Unauthorized("Unauthorized"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
