// Package httpapi exposes the membership node's command surface over HTTP, for operators and the out-of-scope
// downstream service that would otherwise have to shell out to a CLI.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine is the subset of the protocol engine's command surface the HTTP server drives.
type Engine interface {
	ListMembers() ([]byte, error)
	ListSelf() ([]byte, error)
	Join() error
	Leave() error
	Stop() string
	IsIntroducer() bool
}

// Server is the HTTP control surface for one membership node.
type Server struct {
	logger logr.Logger
	engine Engine
}

// NewServer creates a Server driving the given engine.
func NewServer(logger logr.Logger, engine Engine) *Server {
	return &Server{logger: logger, engine: engine}
}

// Handler returns the chi router with every route mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))

	r.Get("/members", s.handleListMembers)
	r.Get("/self", s.handleListSelf)
	r.Get("/introducer", s.handleIntroducer)
	r.Post("/join", s.handleJoin)
	r.Post("/leave", s.handleLeave)
	r.Post("/stop", s.handleStop)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	body, err := s.engine.ListMembers()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSONBody(w, body)
}

func (s *Server) handleListSelf(w http.ResponseWriter, r *http.Request) {
	body, err := s.engine.ListSelf()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSONBody(w, body)
}

func (s *Server) handleIntroducer(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"is_introducer": s.engine.IsIntroducer()})
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.Join(); err != nil {
		s.writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "join requested"})
}

func (s *Server) handleLeave(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.Leave(); err != nil {
		s.writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "left"})
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": s.engine.Stop()})
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Error(err, "HTTP request failed.")
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// writeJSONBody writes a pre-encoded JSON byte slice through unmodified, since the command methods already return
// marshaled JSON.
func (s *Server) writeJSONBody(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
