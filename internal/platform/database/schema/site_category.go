package schema

// CategoryTable represents the 'site.category' table
type CategoryTable struct {
	Table     string
	ID        string
	Name      string
	NameRo    string
	NameRu    string
	NameEn    string
	Icon      string
	Menu      string
	CreatedAt string
}

// Category is the schema definition for site.category
var Category = CategoryTable{
	Table:     "site.category",
	ID:        "id",
	Name:      "name",
	NameRo:    "name_ro",
	NameRu:    "name_ru",
	NameEn:    "name_en",
	Icon:      "icon",
	Menu:      "menu",
	CreatedAt: "created_at",
}

func (t CategoryTable) Columns() []string {
	return []string{t.ID, t.Name, t.NameRo, t.NameRu, t.NameEn, t.Icon, t.Menu}
}
