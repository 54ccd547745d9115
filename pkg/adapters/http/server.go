// Package http exposes the application machine and its stores over a JSON
// API. Every mutating endpoint performs its side effects first and then sends
// the matching outcome event, so the machine context always reflects what the
// stores accepted.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stateboard/stateboard"
	"github.com/stateboard/stateboard/internal/logging"
	"github.com/stateboard/stateboard/pkg/domain"
	"github.com/stateboard/stateboard/pkg/ports"
)

// maxBodyBytes caps request bodies; profile pictures arrive as base64 strings.
const maxBodyBytes = 5 << 20

// Server routes API requests into the machine service and the stores.
type Server struct {
	service *stateboard.Service
	users   ports.UserStore
	tasks   ports.TaskStore
	logger  *slog.Logger
	metrics prometheus.Gatherer
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics mounts a Prometheus scrape endpoint at /metrics for the given
// gatherer.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = g
	}
}

// NewHandler builds the HTTP handler for a running service and its stores.
func NewHandler(service *stateboard.Service, users ports.UserStore, tasks ports.TaskStore, opts ...Option) http.Handler {
	s := &Server{
		service: service,
		users:   users,
		tasks:   tasks,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()

	r.Post("/fsm/event", s.handleEvent)
	r.Get("/fsm/state", s.handleState)

	r.Post("/auth/signup", s.handleSignup)
	r.Post("/auth/login", s.handleLogin)
	r.Put("/auth/profile", s.handleUpdateProfile)
	r.Get("/auth/profile", s.handleGetProfile)

	r.Get("/healthz", s.handleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// stateResponse is the envelope every machine-touching endpoint returns.
// State and Context are always the post-dispatch view.
type stateResponse struct {
	State   domain.StateValue `json:"state"`
	Context domain.Context    `json:"context"`
	Success bool              `json:"success,omitempty"`
	Error   string            `json:"error,omitempty"`
	Message string            `json:"message,omitempty"`
	Task    *domain.Task      `json:"task,omitempty"`
	User    *domain.User      `json:"user,omitempty"`
	Users   []domain.User     `json:"users,omitempty"`
}

// respondState writes the current snapshot with optional extras applied.
func (s *Server) respondState(w http.ResponseWriter, status int, snap domain.Snapshot, mutate func(*stateResponse)) {
	resp := stateResponse{State: snap.State, Context: snap.Context}
	if mutate != nil {
		mutate(&resp)
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("response encode failed", "err", err)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}
