package schema

// PromoItemTable represents the 'site.promo_item' table
type PromoItemTable struct {
	Table     string
	ID        string
	Title     string
	Price     string
	ImageURL  string
	CreatedAt string
}

// PromoItem is the schema definition for site.promo_item
var PromoItem = PromoItemTable{
	Table:     "site.promo_item",
	ID:        "id",
	Title:     "title",
	Price:     "price",
	ImageURL:  "image_url",
	CreatedAt: "created_at",
}

func (t PromoItemTable) Columns() []string {
	return []string{t.ID, t.Title, t.Price, t.ImageURL}
}
