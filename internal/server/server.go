// Package server implements the playground backend: the REST surface
// the client consumes, a JSON-document session store, and the
// deterministic prompt generator behind POST /generate.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds server configuration.
type Config struct {
	Host    string
	Port    int
	DataDir string
}

// DefaultConfig returns a default configuration matching the client's
// default backend URL.
func DefaultConfig() Config {
	return Config{
		Host:    "localhost",
		Port:    8000,
		DataDir: "data",
	}
}

// HTTPServer serves the playground REST API.
type HTTPServer struct {
	store     *Store
	generator *Generator
	router    chi.Router
	config    Config
}

// NewHTTPServer creates the backend server.
func NewHTTPServer(config Config) *HTTPServer {
	s := &HTTPServer{
		store:     NewStore(config.DataDir),
		generator: NewGenerator(),
		config:    config,
	}
	s.router = s.setupRouter()
	return s
}

// setupRouter configures all routes.
func (s *HTTPServer) setupRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(corsMiddleware)

	r.Get("/", s.handleRoot)
	r.Post("/generate", s.handleGenerate)
	r.Get("/history", s.handleHistory)
	r.Post("/history/{sessionID}/like", s.handleLike)
	r.Get("/references", s.handleReferences)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Router returns the chi router, mainly for tests.
func (s *HTTPServer) Router() chi.Router {
	return s.router
}

// Addr returns the server address.
func (s *HTTPServer) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// ListenAndServe starts the HTTP server and shuts down gracefully when
// the context is canceled.
func (s *HTTPServer) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Addr(),
		Handler: s.router,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	// Update port if it was auto-assigned
	if s.config.Port == 0 {
		s.config.Port = ln.Addr().(*net.TCPAddr).Port
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	fmt.Printf("Playground backend running at http://%s\n", s.Addr())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// corsMiddleware adds CORS headers for local development; the original
// web frontend runs off a different origin.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
