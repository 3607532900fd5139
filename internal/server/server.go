package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/HaiderNakara/doc-extract-web/internal/config"
	"github.com/HaiderNakara/doc-extract-web/internal/demo"
	"github.com/HaiderNakara/doc-extract-web/internal/site"
)

// requestTimeout bounds every non-websocket request. Uploads get the
// configured demo timeout on top of it.
const requestTimeout = 30 * time.Second

// Server serves the site pages and forwards demo uploads.
type Server struct {
	mu     sync.RWMutex
	cfg    *config.Config
	site   *site.Site
	parser demo.Parser

	fixedParser demo.Parser
	liveReload  bool
	logger      *zap.Logger
	hub         *reloadHub
	router      chi.Router
	httpServer  *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithParser replaces the HTTP parser built from the demo endpoint.
func WithParser(p demo.Parser) Option {
	return func(s *Server) { s.fixedParser = p }
}

// WithLiveReload makes served pages listen on the reload websocket.
func WithLiveReload(on bool) Option {
	return func(s *Server) { s.liveReload = on }
}

// New creates a server for cfg.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	s := &Server{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.hub = newReloadHub(s.logger)
	if err := s.apply(cfg); err != nil {
		return nil, err
	}
	s.router = s.buildRouter(cfg.Server.AllowAllOrigins)
	// Built once so Shutdown never races Start. Port and timeouts are
	// fixed for the life of the process; Reload does not touch them.
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.uploadTimeout() + 10*time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s, nil
}

func (s *Server) apply(cfg *config.Config) error {
	st, err := site.New(cfg,
		site.WithRoutes(site.ServerRoutes()),
		site.WithLiveReload(s.liveReload),
	)
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}
	parser := s.fixedParser
	if parser == nil {
		timeout := time.Duration(cfg.Demo.TimeoutSeconds) * time.Second
		parser = demo.NewHTTPParser(cfg.Demo.Endpoint, timeout)
	}

	s.mu.Lock()
	s.cfg = cfg
	s.site = st
	s.parser = parser
	s.mu.Unlock()
	return nil
}

// Reload swaps in a new configuration and tells open pages to refresh.
// CORS and port settings only take effect on restart.
func (s *Server) Reload(cfg *config.Config) error {
	if err := s.apply(cfg); err != nil {
		return err
	}
	n := s.hub.broadcast(reloadMessage)
	s.logger.Info("site reloaded", zap.Int("clients", n))
	return nil
}

func (s *Server) current() (*config.Config, *site.Site, demo.Parser) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, s.site, s.parser
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter(allowAll bool) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", demo.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if allowAll {
		corsOpts.AllowedOrigins = []string{"*"}
		corsOpts.AllowCredentials = false
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// The reload socket is long-lived and stays outside the request timeout.
	r.Get("/ws/reload", s.hub.serve)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(s.uploadTimeout()))
		s.RegisterRoutes(r)
	})

	return r
}

func (s *Server) uploadTimeout() time.Duration {
	cfg, _, _ := s.current()
	return requestTimeout + time.Duration(cfg.Demo.TimeoutSeconds)*time.Second
}

// RegisterRoutes mounts the page, asset and API routes on r.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/", s.handleIndex)
	r.Get("/demo", s.handleDemo)
	r.Post("/demo", s.handleDemoUpload)
	r.Get("/demo/reset", s.handleDemoReset)
	r.Post("/demo/reset", s.handleDemoReset)
	r.Get("/style.css", s.handleAsset("style.css"))
	r.Get("/script.js", s.handleAsset("script.js"))
	r.Post("/api/parse", s.handleParse)
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port. After Shutdown it
// returns http.ErrServerClosed.
func (s *Server) Start() error {
	s.logger.Info("docextract site listening", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown closes reload sockets and gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.close()
	return s.httpServer.Shutdown(ctx)
}
