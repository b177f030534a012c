// Package server exposes the simulation catalog over HTTP. It is a thin
// transport: all semantics live in the catalog, schema, and experiment
// packages.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/desci-intelligent-universe/physics-tutorial/internal/catalog"
	"github.com/desci-intelligent-universe/physics-tutorial/internal/experiment"
	"github.com/desci-intelligent-universe/physics-tutorial/internal/observability"
)

// Config holds server configuration.
type Config struct {
	Bind      string
	Port      int
	AccessLog string
	Metrics   *observability.Collector
}

// Server wraps the HTTP server and router.
type Server struct {
	cfg    Config
	reg    *catalog.Registry
	runner *experiment.Runner
	router *chi.Mux
}

// New returns an initialized server serving the given catalog.
func New(cfg Config, reg *catalog.Registry) *Server {
	s := &Server{
		cfg:    cfg,
		reg:    reg,
		runner: experiment.NewRunner(reg),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if cfg.AccessLog != "" {
		r.Use(accessLogger(cfg.AccessLog))
	}
	if cfg.Metrics != nil {
		r.Use(requestMetrics(cfg.Metrics))
		r.Handle("/metrics", cfg.Metrics.Handler())
		cfg.Metrics.CatalogSize.Set(float64(len(reg.List())))
	}

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/simulations", s.handleList)
	r.Get("/api/simulations/{id}", s.handleDetails)
	r.Post("/api/simulations/{id}/run", s.handleRun)

	s.router = r
	return s
}

// Router returns the underlying router, useful for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Addr returns the listening address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Bind, fmt.Sprint(s.cfg.Port))
}

// Start begins serving until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.Addr(), Handler: s.router}
	go func() {
		<-ctx.Done()
		ctxTo, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(ctxTo)
	}()
	log.Printf("physics tutorial listening on %s", s.Addr())
	return srv.ListenAndServe()
}

func accessLogger(path string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Printf("open log: %v", err)
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			rec := r.RemoteAddr + " " + r.Method + " " + r.URL.Path + "\n"
			f.Write([]byte(rec))
		})
	}
}

func requestMetrics(col *observability.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = r.URL.Path
			}
			col.RecordRequest(route, ww.Status())
		})
	}
}
