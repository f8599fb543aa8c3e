// Copyright (c) 2026 Vatra. All rights reserved.
// Author: d.cebotari.dev@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: Cookie names and session lifetimes.
  - Delivery: Cache-Control policies for the image route.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "vatra-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	// Image proxying and storage sync both fit comfortably under this.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Sessions & Cookies

const (
	// SessionCookieName is the cookie that carries the opaque admin session token.
	SessionCookieName = "auth_token"

	// LocaleCookieName is the cookie that persists the visitor's language choice.
	LocaleCookieName = "locale"

	// SessionTTL is how long an admin session stays valid after login.
	SessionTTL = 24 * time.Hour

	// SessionTokenLength is the byte length of the opaque session token.
	SessionTokenLength = 32

	// UploadTokenTTL bounds how long a signed upload authorization stays usable.
	UploadTokenTTL = 15 * time.Minute
)

// # Routing

const (
	// PathPrefixAssets is the framework-internal asset prefix excluded from routing.
	PathPrefixAssets = "/_next"

	// PathPrefixAPI is the JSON API prefix excluded from locale routing.
	PathPrefixAPI = "/api"

	// PathPrefixImages is the image delivery route prefix.
	PathPrefixImages = "/images"

	// PathHealth is the liveness probe endpoint.
	PathHealth = "/health"

	// PathReady is the readiness probe endpoint.
	PathReady = "/ready"

	// PathDashboard is the protected admin area path (locale-stripped).
	PathDashboard = "/dashboard"

	// PathLogin is the login page path (locale-stripped).
	PathLogin = "/login"
)

// # Image Delivery

const (
	// CacheControlImmutable is sent for local mirror hits. Mirrored files are
	// named by upload UUID and never change in place.
	CacheControlImmutable = "public, max-age=31536000, immutable"

	// CacheControlProxied is sent for remote fallbacks. Bounded, because the
	// local mirror may be populated later and should win on the next fetch.
	CacheControlProxied = "public, max-age=86400"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderContentType   = "Content-Type"
	HeaderCacheControl  = "Cache-Control"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixSession = "auth:session:"
)
