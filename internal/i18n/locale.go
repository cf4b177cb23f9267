package i18n

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/text/language"

	"elhamas/internal/domain"
)

// CookieName holds the persisted locale preference.
const CookieName = "elhamas_locale"

const cookieMaxAge = 365 * 24 * time.Hour

type ctxKey struct{}

// WithLocale returns a copy of ctx carrying loc.
func WithLocale(ctx context.Context, loc domain.Locale) context.Context {
	return context.WithValue(ctx, ctxKey{}, loc)
}

// FromContext returns the locale stored by WithLocale, or English.
func FromContext(ctx context.Context) domain.Locale {
	if loc, ok := ctx.Value(ctxKey{}).(domain.Locale); ok {
		return loc
	}
	return domain.LocaleEN
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// Negotiate picks the request locale: persisted cookie, then ?lang=, then
// Accept-Language, then def.
func Negotiate(r *http.Request, def domain.Locale) domain.Locale {
	if c, err := r.Cookie(CookieName); err == nil {
		if loc, ok := domain.ParseLocale(c.Value); ok {
			return loc
		}
	}
	if loc, ok := domain.ParseLocale(r.URL.Query().Get("lang")); ok {
		return loc
	}
	if header := r.Header.Get("Accept-Language"); header != "" {
		if tags, _, err := language.ParseAcceptLanguage(header); err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return domain.Locales[idx]
			}
		}
	}
	return def
}

// SetCookie persists loc as the user's preference for a year.
func SetCookie(w http.ResponseWriter, loc domain.Locale, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(loc),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
