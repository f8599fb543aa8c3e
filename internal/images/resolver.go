package images

import (
	"strings"

	"github.com/dcebotari/vatra/internal/platform/constants"
	"github.com/dcebotari/vatra/internal/platform/objstore"
)

// Resolver rewrites absolute object-store URLs into relative /images paths
// so the browser always hits the application's own delivery route.
//
// URLs pointing anywhere else are returned unchanged: stored records may
// reference third-party hosts or already-relative paths, and those must
// survive a round trip through the resolver untouched.
type Resolver struct {
	publicPrefix string
}

func NewResolver(storageBaseURL string) *Resolver {
	return &Resolver{
		publicPrefix: strings.TrimRight(storageBaseURL, "/") + objstore.PublicPrefix,
	}
}

// Rewrite maps a public object-store URL to its local delivery path.
//
//	https://store.example/storage/v1/object/public/menu/taverna/ciorbe/1.webp
//	-> /images/menu/taverna/ciorbe/1.webp
func (resolver *Resolver) Rewrite(rawURL string) string {
	rest, ok := strings.CutPrefix(rawURL, resolver.publicPrefix)
	if !ok || rest == "" {
		return rawURL
	}
	return constants.PathPrefixImages + "/" + rest
}
