package category

// DefaultIcon is rendered for categories whose stored icon is unknown.
const DefaultIcon = "utensils"

// icons is the closed set of symbols the frontend ships. A plain lookup
// table keeps validation a map access.
var icons = map[string]struct{}{
	"utensils": {},
	"soup":     {},
	"salad":    {},
	"beef":     {},
	"fish":     {},
	"pizza":    {},
	"sandwich": {},
	"dessert":  {},
	"coffee":   {},
	"beer":     {},
	"wine":     {},
	"cocktail": {},
	"sushi":    {},
}

// IsValidIcon reports whether icon names a known symbol.
func IsValidIcon(icon string) bool {
	_, ok := icons[icon]
	return ok
}

// NormalizeIcon maps unknown symbols to [DefaultIcon]. Stored rows predate
// icon validation, so reads normalize instead of failing.
func NormalizeIcon(icon string) string {
	if IsValidIcon(icon) {
		return icon
	}
	return DefaultIcon
}
