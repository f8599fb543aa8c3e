package routing

import (
	"net/http"
	"path"
	"strings"

	"github.com/dcebotari/vatra/internal/platform/constants"
	"github.com/dcebotari/vatra/internal/platform/ctxutil"
)

// Excluded reports whether a path bypasses the edge interceptor entirely.
//
// Framework asset paths, the JSON API, the image delivery route, the health
// probes, and anything that looks like a static file request (dotted final
// segment) are served as-is. The /images prefix is excluded explicitly:
// object keys usually end in a file extension, but nothing enforces that.
func Excluded(requestPath string) bool {
	if strings.HasPrefix(requestPath, constants.PathPrefixAssets) {
		return true
	}
	if strings.HasPrefix(requestPath, constants.PathPrefixAPI) {
		return true
	}
	if strings.HasPrefix(requestPath, constants.PathPrefixImages) {
		return true
	}
	if requestPath == constants.PathHealth || requestPath == constants.PathReady {
		return true
	}
	return strings.Contains(path.Base(requestPath), ".")
}

// Interceptor is the single per-request decision point for page traffic.
//
// # Flow
//  1. Excluded paths pass through unchanged.
//  2. The access gate runs against the (possibly locale-prefixed) path;
//     a gate redirect wins over locale rewriting.
//  3. Paths that already carry a locale prefix pass through.
//  4. Everything else is redirected to the same path with the resolved
//     locale prepended.
//
// A non-excluded request therefore reaches, after at most one redirect hop,
// a URL that both carries a valid locale prefix and satisfies the gate rule
// for its area. The gate's redirect target reuses the original path's locale
// when it had one, so the hop never re-resolves to a different language.
//
// Must be registered AFTER the session middleware: credential presence is
// read from the request context.
func Interceptor() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requestPath := request.URL.Path

			if Excluded(requestPath) {
				next.ServeHTTP(writer, request)
				return
			}

			authenticated := ctxutil.IsAuthenticated(request.Context())

			// Resolution is deferred: paths that already name their locale
			// never consult the cookie or header.
			resolve := func() Locale { return localeFromRequest(request) }

			decision := EvaluateGate(requestPath, authenticated, resolve)
			if decision.Action != GateAllow {
				http.Redirect(writer, request, decision.Target, http.StatusTemporaryRedirect)
				return
			}

			if _, _, hasLocale := SplitLocale(requestPath); hasLocale {
				next.ServeHTTP(writer, request)
				return
			}

			target := "/" + string(resolve()) + requestPath
			if requestPath == "/" {
				target = "/" + string(resolve())
			}
			http.Redirect(writer, request, target, http.StatusTemporaryRedirect)
		})
	}
}

// localeFromRequest resolves the request's locale from the preference cookie
// and the Accept-Language header.
func localeFromRequest(request *http.Request) Locale {
	preference := ""
	if cookie, err := request.Cookie(constants.LocaleCookieName); err == nil {
		preference = cookie.Value
	}
	return ResolveLocale(preference, request.Header.Get("Accept-Language"))
}
