package images_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dcebotari/vatra/internal/images"
)

func TestResolver_Rewrite(t *testing.T) {
	resolver := images.NewResolver("https://store.example")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "store_url",
			in:   "https://store.example/storage/v1/object/public/menu/taverna/ciorbe/1.webp",
			want: "/images/menu/taverna/ciorbe/1.webp",
		},
		{
			name: "gallery_url",
			in:   "https://store.example/storage/v1/object/public/gallery/interior.webp",
			want: "/images/gallery/interior.webp",
		},
		{
			name: "foreign_host_untouched",
			in:   "https://cdn.other.example/storage/v1/object/public/menu/x.webp",
			want: "https://cdn.other.example/storage/v1/object/public/menu/x.webp",
		},
		{
			name: "relative_path_untouched",
			in:   "/images/menu/taverna/ciorbe/1.webp",
			want: "/images/menu/taverna/ciorbe/1.webp",
		},
		{
			name: "bare_prefix_untouched",
			in:   "https://store.example/storage/v1/object/public/",
			want: "https://store.example/storage/v1/object/public/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Rewrite(tt.in))
		})
	}
}

func TestResolver_Rewrite_TrailingSlashBase(t *testing.T) {
	resolver := images.NewResolver("https://store.example/")

	got := resolver.Rewrite("https://store.example/storage/v1/object/public/menu/bar/fresh/2.png")
	assert.Equal(t, "/images/menu/bar/fresh/2.png", got)
}
