package routing_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcebotari/vatra/internal/platform/ctxutil"
	"github.com/dcebotari/vatra/internal/platform/sec"
	"github.com/dcebotari/vatra/internal/routing"
)

// serve routes one GET through the interceptor in front of a marker handler.
func serve(t *testing.T, path string, authenticated bool, cookies map[string]string, header string) *httptest.ResponseRecorder {
	t.Helper()

	passed := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte("page"))
	})

	handler := routing.Interceptor()(passed)

	request := httptest.NewRequest(http.MethodGet, path, nil)
	for name, value := range cookies {
		request.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	if header != "" {
		request.Header.Set("Accept-Language", header)
	}
	if authenticated {
		ctx := ctxutil.WithSession(request.Context(), &sec.Session{Token: "tok"})
		request = request.WithContext(ctx)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestInterceptor_Exclusions verifies that internal, API, and static-file paths
are never redirected regardless of cookies.
*/
func TestInterceptor_Exclusions(t *testing.T) {
	paths := []string{
		"/_next/static/chunk.js",
		"/api/login",
		"/favicon.ico",
		"/images/menu/taverna/ciorbe/1.webp",
		"/images/menu/taverna/ciorbe/noext",
		"/health",
		"/ready",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			recorder := serve(t, path, false, map[string]string{"locale": "ru"}, "en")
			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}

/*
TestInterceptor_AuthRedirectBeforeLocale verifies that the protected-area
rule fires before locale rewriting: a bare /dashboard goes straight to the
login page of the resolved locale in one hop.
*/
func TestInterceptor_AuthRedirectBeforeLocale(t *testing.T) {
	recorder := serve(t, "/dashboard", false, nil, "")
	require.Equal(t, http.StatusTemporaryRedirect, recorder.Code)
	assert.Equal(t, "/ro/login", recorder.Header().Get("Location"))
}

/*
TestInterceptor_LocaleRewrite verifies locale-prefix redirects for bare
public paths.
*/
func TestInterceptor_LocaleRewrite(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		cookies map[string]string
		header  string
		want    string
	}{
		{"root_with_preference", "/", map[string]string{"locale": "ru"}, "", "/ru"},
		{"root_default", "/", nil, "", "/ro"},
		{"page_with_header", "/menu", nil, "en-US,en;q=0.9", "/en/menu"},
		{"invalid_preference_uses_header", "/menu", map[string]string{"locale": "de"}, "ru", "/ru/menu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(t, tt.path, false, tt.cookies, tt.header)
			require.Equal(t, http.StatusTemporaryRedirect, recorder.Code)
			assert.Equal(t, tt.want, recorder.Header().Get("Location"))
		})
	}
}

/*
TestInterceptor_SingleRedirectConvergence verifies that following a redirect
once always lands on an allowed URL.
*/
func TestInterceptor_SingleRedirectConvergence(t *testing.T) {
	// Hop 1: bare protected path, anonymous.
	first := serve(t, "/dashboard", false, nil, "")
	require.Equal(t, http.StatusTemporaryRedirect, first.Code)
	target := first.Header().Get("Location")
	require.Equal(t, "/ro/login", target)

	// Hop 2: the redirect target is allowed as-is.
	second := serve(t, target, false, nil, "")
	assert.Equal(t, http.StatusOK, second.Code)

	// Same property for a plain page.
	first = serve(t, "/menu", false, map[string]string{"locale": "ru"}, "")
	require.Equal(t, http.StatusTemporaryRedirect, first.Code)
	second = serve(t, first.Header().Get("Location"), false, map[string]string{"locale": "ru"}, "")
	assert.Equal(t, http.StatusOK, second.Code)
}

/*
TestInterceptor_AuthenticatedFlows verifies the credential-present rules.
*/
func TestInterceptor_AuthenticatedFlows(t *testing.T) {
	// Valid session on a locale-prefixed dashboard: allowed.
	allowed := serve(t, "/ru/dashboard", true, nil, "")
	assert.Equal(t, http.StatusOK, allowed.Code)

	// Valid session on the login page: bounced to the dashboard.
	bounced := serve(t, "/ru/login", true, nil, "")
	require.Equal(t, http.StatusTemporaryRedirect, bounced.Code)
	assert.Equal(t, "/ru/dashboard", bounced.Header().Get("Location"))

	// Locale-prefixed public page: untouched.
	page := serve(t, "/en/menu", true, nil, "")
	assert.Equal(t, http.StatusOK, page.Code)
}
