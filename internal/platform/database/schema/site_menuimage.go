package schema

// MenuImageTable represents the 'site.menu_image' table
type MenuImageTable struct {
	Table      string
	ID         string
	ImageURL   string
	AltText    string
	CategoryID string
	CreatedAt  string
}

// MenuImage is the schema definition for site.menu_image
var MenuImage = MenuImageTable{
	Table:      "site.menu_image",
	ID:         "id",
	ImageURL:   "image_url",
	AltText:    "alt_text",
	CategoryID: "category_id",
	CreatedAt:  "created_at",
}

func (t MenuImageTable) Columns() []string {
	return []string{t.ID, t.ImageURL, t.AltText, t.CategoryID}
}
