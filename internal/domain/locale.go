package domain

import "strings"

// Locale is one of the two display languages.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleAR Locale = "ar"
)

// Locales lists the supported locales, default first.
var Locales = []Locale{LocaleEN, LocaleAR}

// ParseLocale accepts "en", "ar" and region variants such as "ar-SA".
func ParseLocale(s string) (Locale, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	switch Locale(s) {
	case LocaleEN:
		return LocaleEN, true
	case LocaleAR:
		return LocaleAR, true
	}
	return "", false
}

// Dir is the text direction used when rendering the locale.
func (l Locale) Dir() string {
	if l == LocaleAR {
		return "rtl"
	}
	return "ltr"
}
