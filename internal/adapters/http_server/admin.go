package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"elhamas/internal/app"
	"elhamas/internal/domain"
)

// AdminHandlers serves /api/admin. Everything except login needs a session.
type AdminHandlers struct {
	Admin        *app.Admin
	Auth         *app.AuthService
	Uploads      *app.UploadService
	CookieSecure bool
	// LoginLimit wraps POST /login; nil means unlimited.
	LoginLimit func(http.Handler) http.Handler
}

func (s *Server) MountAdmin(a *AdminHandlers) {
	s.mux.Route("/api/admin", func(r chi.Router) {
		login := http.Handler(http.HandlerFunc(a.login))
		if a.LoginLimit != nil {
			login = a.LoginLimit(login)
		}
		r.Method(http.MethodPost, "/login", login)

		r.Group(func(r chi.Router) {
			r.Use(RequireAdmin(a.Auth))

			r.Post("/logout", a.logout)
			r.Get("/me", a.me)

			mountResource(r, "/locations", a.Admin.Locations)
			mountResource(r, "/categories", a.Admin.Categories)
			mountResource(r, "/hotels", a.Admin.Hotels, func(r chi.Router) {
				r.Get("/{id}/rooms", a.listRooms)
				r.Post("/{id}/rooms", a.createRoom)
			})
			r.Route("/rooms", func(r chi.Router) {
				r.Get("/{id}", getOne(a.Admin.Rooms))
				r.Put("/{id}", update(a.Admin.Rooms))
				r.Patch("/{id}", update(a.Admin.Rooms))
				r.Delete("/{id}", remove(a.Admin.Rooms))
			})
			mountResource(r, "/packages", a.Admin.Packages, func(r chi.Router) {
				r.Post("/wizard/{step}", a.wizardStep)
			})
			mountResource(r, "/events", a.Admin.Events)
			mountResource(r, "/transportation", a.Admin.Transportation)
			mountResource(r, "/visas", a.Admin.Visas)
			mountResource(r, "/blog-posts", a.Admin.BlogPosts)
			mountResource(r, "/testimonials", a.Admin.Testimonials)

			r.Get("/discover-card", a.getDiscoverCard)
			r.Put("/discover-card", a.putDiscoverCard)

			r.Route("/inquiries", func(r chi.Router) {
				r.Get("/", listAll(a.Admin.Inquiries))
				r.Get("/{id}", getOne(a.Admin.Inquiries))
				r.Patch("/{id}", update(a.Admin.Inquiries))
				r.Delete("/{id}", remove(a.Admin.Inquiries))
			})

			r.Post("/uploads", a.upload)
		})
	})
}

/********** generic CRUD **********/

func mountResource[T, In any](r chi.Router, path string, m *app.Manager[T, In], extra ...func(chi.Router)) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", listAll(m))
		r.Post("/", create(m))
		r.Get("/{id}", getOne(m))
		r.Put("/{id}", update(m))
		r.Patch("/{id}", update(m))
		r.Delete("/{id}", remove(m))
		for _, fn := range extra {
			fn(r)
		}
	})
}

func listAll[T, In any](m *app.Manager[T, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := m.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

func getOne[T, In any](m *app.Manager[T, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		row, err := m.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, row)
	}
}

func create[T, In any](m *app.Manager[T, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := new(In)
		if err := decodeJSON(w, r, in); err != nil {
			writeError(w, r, err)
			return
		}
		row, err := m.Create(r.Context(), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, row)
	}
}

func update[T, In any](m *app.Manager[T, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := new(In)
		if err := decodeJSON(w, r, in); err != nil {
			writeError(w, r, err)
			return
		}
		row, err := m.Update(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, row)
	}
}

func remove[T, In any](m *app.Manager[T, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := m.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

/********** rooms **********/

func (a *AdminHandlers) listRooms(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "id")
	if _, err := a.Admin.Hotels.Get(r.Context(), hotelID); err != nil {
		writeError(w, r, err)
		return
	}
	rows, err := a.Admin.Rooms.ListWhere(r.Context(), map[string]any{"hotel_id": hotelID})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (a *AdminHandlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var in domain.RoomInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	hotelID := chi.URLParam(r, "id")
	in.HotelID = &hotelID
	row, err := a.Admin.Rooms.Create(r.Context(), &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

/********** package wizard **********/

type stepResponse struct {
	Step  string `json:"step"`
	Valid bool   `json:"valid"`
	Next  string `json:"next,omitempty"`
}

func (a *AdminHandlers) wizardStep(w http.ResponseWriter, r *http.Request) {
	step := chi.URLParam(r, "step")
	var in domain.PackageInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	if msg := app.ValidateStep(step, &in); msg != "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
		return
	}
	out := stepResponse{Step: step, Valid: true}
	for i, s := range app.WizardSteps {
		if s == step && i+1 < len(app.WizardSteps) {
			out.Next = app.WizardSteps[i+1]
		}
	}
	writeJSON(w, http.StatusOK, out)
}

/********** discover card **********/

func (a *AdminHandlers) getDiscoverCard(w http.ResponseWriter, r *http.Request) {
	row, err := a.Admin.DiscoverCards.First(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (a *AdminHandlers) putDiscoverCard(w http.ResponseWriter, r *http.Request) {
	var in domain.DiscoverCardInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	row, created, err := a.Admin.DiscoverCards.Upsert(r.Context(), &in, func(c *domain.PackageDiscoverCard) string { return c.ID })
	if err != nil {
		writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, row)
}

/********** auth **********/

func (a *AdminHandlers) setSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	maxAge := int(time.Until(expires).Seconds())
	if token == "" {
		maxAge = -1
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   a.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *AdminHandlers) login(w http.ResponseWriter, r *http.Request) {
	var in domain.LoginInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	sess, err := a.Auth.Login(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	a.setSessionCookie(w, sess.Token, sess.ExpiresAt)
	writeJSON(w, http.StatusOK, sess)
}

func (a *AdminHandlers) logout(w http.ResponseWriter, r *http.Request) {
	if err := a.Auth.Logout(r.Context(), sessionToken(r)); err != nil {
		writeError(w, r, err)
		return
	}
	a.setSessionCookie(w, "", time.Unix(0, 0))
	w.WriteHeader(http.StatusNoContent)
}

func (a *AdminHandlers) me(w http.ResponseWriter, r *http.Request) {
	admin, err := a.Auth.Me(r.Context(), adminID(r.Context()))
	if errors.Is(err, domain.ErrNotFound) {
		// session outlived the account
		err = domain.ErrUnauthorized
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, admin)
}

/********** uploads **********/

// multipart framing on top of the file itself
const multipartOverhead = 64 << 10

type uploadResponse struct {
	URL string `json:"url"`
}

func (a *AdminHandlers) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.Uploads.MaxBytes()+multipartOverhead)
	file, _, err := r.FormFile("file")
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeError(w, r, domain.ErrTooLarge)
			return
		}
		writeError(w, r, domain.Invalid("file", "file is required"))
		return
	}
	defer file.Close()

	url, err := a.Uploads.Upload(r.Context(), file)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, uploadResponse{URL: url})
}
