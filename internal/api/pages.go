// Copyright (c) 2026 Vatra. All rights reserved.
// Author: d.cebotari.dev@gmail.com

package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dcebotari/vatra/internal/routing"
)

// PageHandler serves the prebuilt, locale-prefixed frontend export from the
// public directory. It is the router's fallback: by the time a request gets
// here the edge interceptor has already normalized its locale prefix.
type PageHandler struct {
	publicDir string
}

func NewPageHandler(publicDir string) *PageHandler {
	return &PageHandler{publicDir: publicDir}
}

// ServePage resolves a URL path to an exported page file.
//
// Resolution order: the path itself, then {path}.html, then
// {path}/index.html. Misses fall back to the locale's 404 page when one was
// exported.
func (handler *PageHandler) ServePage(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet && request.Method != http.MethodHead {
		http.Error(writer, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	cleaned := path.Clean("/" + request.URL.Path)
	relative := strings.TrimPrefix(cleaned, "/")
	if relative == "" {
		relative = "index.html"
	}

	for _, candidate := range []string{relative, relative + ".html", path.Join(relative, "index.html")} {
		target := filepath.Join(handler.publicDir, filepath.FromSlash(candidate))
		if info, err := os.Stat(target); err == nil && info.Mode().IsRegular() {
			http.ServeFile(writer, request, target)
			return
		}
	}

	handler.serveNotFound(writer, request, cleaned)
}

func (handler *PageHandler) serveNotFound(writer http.ResponseWriter, request *http.Request, cleaned string) {
	locale := routing.DefaultLocale
	if l, _, ok := routing.SplitLocale(cleaned); ok {
		locale = l
	}

	notFoundPage := filepath.Join(handler.publicDir, string(locale), "404.html")
	if page, err := os.ReadFile(notFoundPage); err == nil {
		writer.Header().Set("Content-Type", "text/html; charset=utf-8")
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write(page)
		return
	}

	http.NotFound(writer, request)
}
