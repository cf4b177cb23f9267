package httpserver

import (
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"elhamas/internal/domain"
)

type Server struct{ mux *chi.Mux }

// New builds the router with the shared middleware stack. Every request
// gets a locale in its context before any handler runs. Forwarding headers
// are honoured only from the trusted proxy networks.
func New(defaultLocale domain.Locale, trustedProxies ...*net.IPNet) *Server {
	m := chi.NewRouter()

	if len(trustedProxies) > 0 {
		m.Use(RealIP(trustedProxies))
	}
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(15 * time.Second))
	m.Use(Metrics)
	m.Use(Logger(log.Logger))
	m.Use(Locale(defaultLocale))

	m.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, domain.ErrNotFound)
	})
	m.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "method not allowed"})
	})

	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
