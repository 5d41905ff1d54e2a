// Package http exposes a materialized UI instance for inspection.
//
/// This is development tooling: the endpoints describe the binding layer
// (components, lifecycle state, recorded layout), they do not transport the
// UI itself. The `vine serve` command wires a definition file to this
// handler.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/vine"
	"github.com/aretw0/vine/pkg/binding"
	"github.com/aretw0/vine/pkg/domain"
)

// Inspectable is the view of a UI instance the inspector needs.
type Inspectable interface {
	Components() []*binding.Component
	State() domain.LifecycleState
}

// ComponentInfo is the JSON shape of one bound component.
type ComponentInfo struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	WidgetID  string `json:"widget_id"`
	HasSource bool   `json:"has_source"`
	Placed    bool   `json:"placed"`
}

// Server serves the inspection endpoints.
type Server struct {
	instance Inspectable
	tree     func() any
	logger   *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithTree exposes the runtime's recorded layout hierarchy under /layout.
// Runtimes that do not record one simply leave this unset.
func WithTree(fn func() any) Option {
	return func(s *Server) {
		s.tree = fn
	}
}

// WithLogger sets a structured logger for request errors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for an instance.
func NewHandler(instance Inspectable, opts ...Option) http.Handler {
	server := &Server{
		instance: instance,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/healthz", server.handleHealth)
	r.Get("/state", server.handleState)
	r.Get("/components", server.handleComponents)
	r.Get("/layout", server.handleLayout)
	return enableCORS(r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"status":  "ok",
		"version": strings.TrimSpace(vine.Version),
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"state": string(s.instance.State()),
	})
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	comps := s.instance.Components()
	out := make([]ComponentInfo, 0, len(comps))
	for _, c := range comps {
		out = append(out, ComponentInfo{
			Name:      c.Name(),
			Kind:      c.Kind(),
			WidgetID:  c.Handle().ID(),
			HasSource: c.HasSource(),
			Placed:    c.Placed(),
		})
	}
	s.writeJSON(w, out)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	if s.tree == nil {
		http.Error(w, "runtime does not expose a layout tree", http.StatusNotFound)
		return
	}
	s.writeJSON(w, s.tree())
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
