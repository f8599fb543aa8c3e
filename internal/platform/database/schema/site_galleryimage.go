package schema

// GalleryImageTable represents the 'site.gallery_image' table
type GalleryImageTable struct {
	Table     string
	ID        string
	ImageURL  string
	AltText   string
	CreatedAt string
}

// GalleryImage is the schema definition for site.gallery_image
var GalleryImage = GalleryImageTable{
	Table:     "site.gallery_image",
	ID:        "id",
	ImageURL:  "image_url",
	AltText:   "alt_text",
	CreatedAt: "created_at",
}

func (t GalleryImageTable) Columns() []string {
	return []string{t.ID, t.ImageURL, t.AltText}
}
