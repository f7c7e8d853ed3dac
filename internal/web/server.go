// Package web exposes the solver as a small JSON HTTP front door: a
// streaming solve endpoint and a health check, routed with gorilla/mux.
package web

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/ehrlich-b/twisty/internal/kociemba/tables"
)

// Server is the HTTP front end over a shared, already-open table set.
type Server struct {
	router *mux.Router
	tables *tables.Tables
	maxLen int
	log    zerolog.Logger
}

// NewServer builds a Server backed by tbl. maxLen bounds solve requests
// that don't specify their own max_length.
func NewServer(tbl *tables.Tables, maxLen int, log zerolog.Logger) *Server {
	s := &Server{tables: tbl, maxLen: maxLen, log: log}
	s.router = mux.NewRouter()
	s.router.Use(s.requestIDMiddleware)
	s.router.HandleFunc("/solve", s.handleSolve).Methods(http.MethodPost)
	s.router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	return s
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

type requestIDKey struct{}

// requestIDMiddleware tags every request with a UUID for log
// correlation, echoing it back as X-Request-Id.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
		s.log.Info().
			Str("request_id", id).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("handled request")
	})
}
