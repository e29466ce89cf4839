// Package server exposes the feedback engine over HTTP: feedback generation
// and acknowledgement, per-user settings, the haptic pattern catalog and
// per-session history.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/haptitalk/feedback-engine/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . FeedbackEngine
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	engine  FeedbackEngine
	store   Store
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// FeedbackEngine makes and acknowledges feedback decisions
type FeedbackEngine interface {
	GenerateFeedback(ctx context.Context, userID, sessionID string, snapshot domain.TelemetrySnapshot) (*domain.FeedbackEvent, error)
	AcknowledgeFeedback(ctx context.Context, feedbackID string, receivedAt time.Time) error
}

// Store provides settings, pattern catalog and history reads for the API
type Store interface {
	GetUserSettings(ctx context.Context, userID string) (domain.UserSettings, error)
	UpdateUserSettings(ctx context.Context, userID string, patch domain.SettingsPatch) (domain.UserSettings, error)
	GetPattern(ctx context.Context, id string) (*domain.PatternSpec, error)
	ListPatterns(ctx context.Context, category string) ([]domain.PatternSpec, error)
	ListEvents(ctx context.Context, sessionID string, limit, offset int) ([]domain.FeedbackEvent, error)
	CountEvents(ctx context.Context, sessionID string) (int, error)
	GetEvent(ctx context.Context, eventID string) (*domain.FeedbackEvent, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, engine FeedbackEngine, store Store, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		engine:  engine,
		store:   store,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedback-engine", "haptitalk", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /feedback/generate", s.generateFeedbackHandler)
		r.HandleFunc("POST /feedback/{id}/ack", s.ackFeedbackHandler)
		r.HandleFunc("GET /feedback/{id}", s.getFeedbackHandler)

		r.HandleFunc("GET /settings/{user}", s.getSettingsHandler)
		r.HandleFunc("PUT /settings/{user}", s.updateSettingsHandler)

		r.HandleFunc("GET /patterns", s.listPatternsHandler)
		r.HandleFunc("GET /patterns/{id}", s.getPatternHandler)

		r.HandleFunc("GET /history/{session}", s.historyHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
