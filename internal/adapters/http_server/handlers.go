package httpserver

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"elhamas/internal/app"
	"elhamas/internal/domain"
	"elhamas/internal/i18n"
)

// Handlers serves the public site API.
type Handlers struct {
	Q            *app.QueryService
	Inquiries    *app.InquiryService
	Dict         *i18n.Dictionary
	CookieSecure bool
	// InquiryLimit wraps POST /api/inquiries; nil means unlimited.
	InquiryLimit func(http.Handler) http.Handler
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/api", func(r chi.Router) {
		r.Get("/home", h.home)
		r.Get("/locations", list(h.Q.Locations))
		r.Get("/categories", list(h.Q.Categories))
		r.Get("/hotels", h.hotels)
		r.Get("/hotels/{id}", detail("id", h.Q.Hotel))
		r.Get("/hotels/{id}/rooms", h.rooms)
		r.Get("/packages", h.packages)
		r.Get("/packages/{id}", detail("id", h.Q.Package))
		r.Get("/discover-card", h.discoverCard)
		r.Get("/events", list(h.Q.Events))
		r.Get("/events/{slug}", detail("slug", h.Q.Event))
		r.Get("/transportation", list(h.Q.Transportation))
		r.Get("/transportation/{id}", detail("id", h.Q.TransportationByID))
		r.Get("/visas", list(h.Q.Visas))
		r.Get("/visas/{id}", detail("id", h.Q.Visa))
		r.Get("/blog", list(h.Q.Posts))
		r.Get("/blog/{slug}", detail("slug", h.Q.Post))
		r.Get("/testimonials", list(h.Q.Testimonials))
		r.Get("/i18n/{locale}", h.dictionary)
		r.Get("/locale", h.getLocale)
		r.Put("/locale", h.putLocale)

		inquiry := http.Handler(http.HandlerFunc(h.submitInquiry))
		if h.InquiryLimit != nil {
			inquiry = h.InquiryLimit(inquiry)
		}
		r.Method(http.MethodPost, "/inquiries", inquiry)
	})
}

func list[V any](fetch func(ctx context.Context) []V) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeCached(w, r, fetch(r.Context()))
	}
}

// detail answers 404 when the row is missing or inactive.
func detail[V any](param string, fetch func(ctx context.Context, key string) *V) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := fetch(r.Context(), chi.URLParam(r, param))
		if v == nil {
			writeError(w, r, domain.ErrNotFound)
			return
		}
		writeCached(w, r, v)
	}
}

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, h.Q.Home(r.Context(), i18n.FromContext(r.Context())))
}

func (h *Handlers) hotels(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, h.Q.Hotels(r.Context(), r.URL.Query().Get("location")))
}

func (h *Handlers) rooms(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.Q.Hotel(r.Context(), id) == nil {
		writeError(w, r, domain.ErrNotFound)
		return
	}
	writeCached(w, r, h.Q.Rooms(r.Context(), id))
}

func (h *Handlers) packages(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, h.Q.Packages(r.Context(), r.URL.Query().Get("category")))
}

// discoverCard returns null rather than 404; the card is optional page chrome.
func (h *Handlers) discoverCard(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, h.Q.DiscoverCard(r.Context()))
}

type dictionaryResponse struct {
	Locale   domain.Locale     `json:"locale"`
	Dir      string            `json:"dir"`
	Messages map[string]string `json:"messages"`
}

func (h *Handlers) dictionary(w http.ResponseWriter, r *http.Request) {
	loc, ok := domain.ParseLocale(chi.URLParam(r, "locale"))
	if !ok {
		writeError(w, r, domain.ErrNotFound)
		return
	}
	writeCached(w, r, dictionaryResponse{Locale: loc, Dir: loc.Dir(), Messages: h.Dict.Table(loc)})
}

type localeBody struct {
	Locale string `json:"locale"`
}

type localeResponse struct {
	Locale    domain.Locale   `json:"locale"`
	Dir       string          `json:"dir"`
	Available []domain.Locale `json:"available"`
}

func newLocaleResponse(loc domain.Locale) localeResponse {
	return localeResponse{Locale: loc, Dir: loc.Dir(), Available: domain.Locales}
}

func (h *Handlers) getLocale(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newLocaleResponse(i18n.FromContext(r.Context())))
}

// putLocale is the only place the persisted preference changes.
func (h *Handlers) putLocale(w http.ResponseWriter, r *http.Request) {
	var body localeBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	loc, ok := domain.ParseLocale(body.Locale)
	if !ok {
		writeError(w, r, domain.Invalid("locale", "locale must be one of: en ar"))
		return
	}
	i18n.SetCookie(w, loc, h.CookieSecure)
	w.Header().Set("Content-Language", string(loc))
	writeJSON(w, http.StatusOK, newLocaleResponse(loc))
}

func (h *Handlers) submitInquiry(w http.ResponseWriter, r *http.Request) {
	var in domain.InquiryInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	row, err := h.Inquiries.Submit(r.Context(), in, i18n.FromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}
