// Package api provides the Planboard HTTP API.
//
// The API exposes the board pipeline over HTTP for editors and dashboards:
//
//	GET  /healthz                     Liveness check
//	POST /v1/layout                   Stateless layout computation for a posted plan
//	POST /v1/missions                 Create a mission from a posted plan
//	GET  /v1/missions                 List stored missions
//	GET  /v1/missions/{id}            Fetch one mission
//	PUT  /v1/missions/{id}            Replace a mission's plan
//	DELETE /v1/missions/{id}          Delete a mission
//	GET  /v1/missions/{id}/layout     Fetch the computed board
//	GET  /v1/missions/{id}/render     Render the board (format/style/viz query params)
//
// Mission documents live in a [store.Store]; reads go through the runner's
// cache so a Redis-backed deployment serves hot missions without touching
// the database. Errors are returned as a JSON envelope:
//
//	{"error": {"code": "MISSION_NOT_FOUND", "message": "..."}}
package api

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/planboard/planboard/pkg/observability"
	"github.com/planboard/planboard/pkg/pipeline"
	"github.com/planboard/planboard/pkg/store"
)

// Config configures the API server.
type Config struct {
	Addr string // Listen address (default: :8080)
}

// Server serves the Planboard HTTP API.
type Server struct {
	cfg    Config
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
}

// NewServer creates an API server over the given store and pipeline runner.
// If logger is nil, the runner's logger is used.
func NewServer(cfg Config, st store.Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if logger == nil {
		logger = runner.Logger
	}
	return &Server{
		cfg:    cfg,
		store:  st,
		runner: runner,
		logger: logger,
	}
}

// Router assembles the chi router with middleware and all routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealthz)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleComputeLayout)

		r.Route("/missions", func(r chi.Router) {
			r.Get("/", s.handleListMissions)
			r.Post("/", s.handleCreateMission)

			r.Route("/{missionID}", func(r chi.Router) {
				r.Get("/", s.handleGetMission)
				r.Put("/", s.handleUpdateMission)
				r.Delete("/", s.handleDeleteMission)
				r.Get("/layout", s.handleMissionLayout)
				r.Get("/render", s.handleRenderMission)
			})
		})
	})

	return r
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("api listening", "addr", s.cfg.Addr)

	select {
	case err := <-errc:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("api shutting down")
		return srv.Shutdown(shutCtx)
	}
}

// requestLogger logs each request and feeds the HTTP observability hooks.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", duration)
	})
}
