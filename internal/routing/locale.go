// Package routing implements the per-request edge decisions for the public
// site: locale resolution, admin access gating, and the interceptor that
// combines both into an allow/redirect/rewrite outcome before any page is
// served.
package routing

import (
	"regexp"
	"strings"
)

// Locale is a supported language tag.
type Locale string

const (
	LocaleRo Locale = "ro"
	LocaleRu Locale = "ru"
	LocaleEn Locale = "en"

	// DefaultLocale is served when neither the preference cookie nor the
	// Accept-Language header selects a supported tag.
	DefaultLocale = LocaleRo
)

// Locales lists the supported tags in detection priority order. Header
// matching walks this order, not the header's own ordering.
var Locales = []Locale{LocaleRo, LocaleRu, LocaleEn}

// headerPatterns match a tag as a standalone word inside an Accept-Language
// value, so "ro-RO,ro;q=0.9" matches "ro" but "romanian-menu" does not.
var headerPatterns = map[Locale]*regexp.Regexp{
	LocaleRo: regexp.MustCompile(`(?i)\bro\b`),
	LocaleRu: regexp.MustCompile(`(?i)\bru\b`),
	LocaleEn: regexp.MustCompile(`(?i)\ben\b`),
}

// IsSupported reports whether tag is one of the supported locales.
func IsSupported(tag string) bool {
	for _, locale := range Locales {
		if string(locale) == tag {
			return true
		}
	}
	return false
}

// ResolveLocale derives the active locale for a request.
//
// Resolution order, first match wins:
//  1. A persisted preference that names a supported tag.
//  2. The first supported tag present in the Accept-Language header,
//     checked in [Locales] priority order.
//  3. [DefaultLocale].
//
// Resolution is total: any input, including a malformed header, yields a
// member of the supported set.
func ResolveLocale(preference, acceptLanguage string) Locale {
	if IsSupported(preference) {
		return Locale(preference)
	}

	for _, locale := range Locales {
		if headerPatterns[locale].MatchString(acceptLanguage) {
			return locale
		}
	}

	return DefaultLocale
}

// SplitLocale extracts a supported locale prefix from a path.
//
// It returns the locale, the remainder of the path (always starting with
// "/"), and whether a prefix was present. "/ru/menu" yields (ru, "/menu",
// true); "/menu" yields ("", "/menu", false).
func SplitLocale(path string) (Locale, string, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	segment, rest, _ := strings.Cut(trimmed, "/")

	if !IsSupported(segment) {
		return "", path, false
	}

	if rest == "" {
		return Locale(segment), "/", true
	}
	return Locale(segment), "/" + rest, true
}
