// Package proxy serves the two passthrough endpoints the dashboard reads from. Nothing
// is cached or retried, each request results in exactly one upstream call.
package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/leighmacdonald/fpl-tui/internal/gateway"
)

var ErrServe = errors.New("proxy server failed")

// Upstream is implemented by gateway.Client.
type Upstream interface {
	BootstrapStatic(ctx context.Context) (gateway.Response, error)
	ElementSummary(ctx context.Context, playerID string) (gateway.Response, error)
}

type Options struct {
	// StatusPassthrough relays the upstream status code. When false every relayed response
	// is sent as 200, matching the behaviour of the original hosted proxy.
	StatusPassthrough bool
	AllowedOrigins    []string
	Timeout           time.Duration
}

type Server struct {
	upstream Upstream
	opts     Options
	router   *chi.Mux
}

func New(upstream Upstream, opts Options) *Server {
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	server := &Server{upstream: upstream, opts: opts, router: chi.NewRouter()}
	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(loggingMiddleware)
	s.router.Use(middleware.Timeout(s.opts.Timeout))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/bootstrap-static", s.handleBootstrapStatic)
		r.Get("/element-summary", s.handleElementSummary)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleBootstrapStatic(w http.ResponseWriter, r *http.Request) {
	resp, err := s.upstream.BootstrapStatic(r.Context())
	s.relay(w, r, resp, err)
}

func (s *Server) handleElementSummary(w http.ResponseWriter, r *http.Request) {
	resp, err := s.upstream.ElementSummary(r.Context(), r.URL.Query().Get("id"))
	s.relay(w, r, resp, err)
}

func (s *Server) relay(w http.ResponseWriter, r *http.Request, resp gateway.Response, err error) {
	if err != nil {
		slog.Error("Upstream request failed", slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())), slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})

		return
	}

	status := http.StatusOK
	if s.opts.StatusPassthrough {
		status = resp.StatusCode
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)

	if _, errWrite := w.Write(resp.Body); errWrite != nil {
		slog.Error("Failed to write response body", slog.String("error", errWrite.Error()))
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode JSON response", slog.String("error", err.Error()))
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		slog.Info("HTTP request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}

// Listen binds the listener up front so that a port of 0 can be resolved before serving.
func Listen(ctx context.Context, address string) (net.Listener, error) {
	var listenConfig net.ListenConfig

	listener, err := listenConfig.Listen(ctx, "tcp", address)
	if err != nil {
		return nil, errors.Join(err, ErrServe)
	}

	return listener, nil
}

// Serve runs the proxy on listener until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.opts.Timeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		slog.Info("Proxy listening", slog.String("address", listener.Addr().String()))
		errs <- httpServer.Serve(listener)
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return errors.Join(err, ErrServe)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil { //nolint:contextcheck
			return errors.Join(err, ErrServe)
		}

		return nil
	}
}
