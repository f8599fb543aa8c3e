package category

import (
	"time"

	"github.com/dcebotari/vatra/internal/routing"
)

// Menu tags. Every category belongs to exactly one of the three menus.
const (
	MenuTaverna = "taverna"
	MenuBar     = "bar"
	MenuSushi   = "sushi"
)

// Menus lists the valid menu tags.
var Menus = []string{MenuTaverna, MenuBar, MenuSushi}

// Category is a menu section, named in all three site languages.
type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	NameRo    string    `json:"name_ro"`
	NameRu    string    `json:"name_ru"`
	NameEn    string    `json:"name_en"`
	Icon      string    `json:"icon"`
	Menu      string    `json:"menu"`
	CreatedAt time.Time `json:"-"`
}

// LocalizedName returns the name for locale, falling back to the Romanian
// name and then the base name for rows with missing translations.
func (c Category) LocalizedName(locale routing.Locale) string {
	var name string
	switch locale {
	case routing.LocaleRu:
		name = c.NameRu
	case routing.LocaleEn:
		name = c.NameEn
	default:
		name = c.NameRo
	}
	if name == "" {
		name = c.NameRo
	}
	if name == "" {
		name = c.Name
	}
	return name
}

// Section is the public, localized projection of a category. Href anchors
// into the menu page the category belongs to.
type Section struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Icon string `json:"icon"`
	Menu string `json:"menu"`
	Href string `json:"href"`
}

// IsValidMenu reports whether menu names one of the three menus.
func IsValidMenu(menu string) bool {
	for _, m := range Menus {
		if m == menu {
			return true
		}
	}
	return false
}
