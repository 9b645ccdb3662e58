package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/synapse-ai/sourcing-agent/internal/outreach"
	"github.com/synapse-ai/sourcing-agent/internal/sourcing"
)

//go:embed ui/index.html
var uiFS embed.FS

const (
	readHeaderTimeout = 10 * time.Second
	// Sourcing runs call out to an LLM per candidate; give them room.
	writeTimeout    = 120 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Agent is the pipeline surface the server depends on.
type Agent interface {
	ProcessJob(ctx context.Context, req sourcing.Request) (*sourcing.Result, error)
}

// Server exposes the sourcing pipeline over HTTP: a JSON API plus a small
// embedded UI.
type Server struct {
	agent     Agent
	recruiter outreach.Recruiter
	logger    *zap.Logger
	version   string
	httpSrv   *http.Server
}

func New(agent Agent, recruiter outreach.Recruiter, logger *zap.Logger, addr, version string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recruiter == (outreach.Recruiter{}) {
		recruiter = outreach.DefaultRecruiter()
	}

	s := &Server{
		agent:     agent,
		recruiter: recruiter,
		logger:    logger,
		version:   version,
	}

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.router(),
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}

	return s
}

func (s *Server) router() http.Handler {
	router := mux.NewRouter()
	router.Use(s.requestLogging)

	router.HandleFunc("/", s.handleUI).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	api.HandleFunc("/recruiter", s.handleRecruiter).Methods(http.MethodGet)
	api.HandleFunc("/source", s.handleSource).Methods(http.MethodPost)
	api.HandleFunc("/source/demo", s.handleSourceDemo).Methods(http.MethodPost)

	return router
}

// Run starts the HTTP server and blocks until the context is cancelled or the
// listener fails. Shutdown is graceful with a bounded timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.httpSrv.Addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	return nil
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

func (s *Server) handleUI(rw http.ResponseWriter, _ *http.Request) {
	page, err := uiFS.ReadFile("ui/index.html")
	if err != nil {
		writeErrResponse(rw, err, http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	rw.WriteHeader(http.StatusOK)
	rw.Write(page)
}

func (s *Server) handleStatus(rw http.ResponseWriter, _ *http.Request) {
	writeResponse(rw, map[string]any{
		"status":  "healthy",
		"version": s.version,
		"components": map[string]string{
			"searcher":          "active",
			"scorer":            "active",
			"message_generator": "active",
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

func (s *Server) handleRecruiter(rw http.ResponseWriter, _ *http.Request) {
	writeResponse(rw, map[string]any{
		"recruiter": s.recruiter,
		"message":   fmt.Sprintf("All outreach messages are sent on behalf of %s from %s", s.recruiter.Name, s.recruiter.Company),
	}, http.StatusOK)
}

func (s *Server) handleSource(rw http.ResponseWriter, r *http.Request) {
	var req sourcing.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrResponse(rw, fmt.Errorf("decoding request body: %w", err), http.StatusBadRequest)
		return
	}

	s.processJob(r.Context(), rw, req)
}

func (s *Server) handleSourceDemo(rw http.ResponseWriter, r *http.Request) {
	req := sourcing.Request{
		JobDescription:     sourcing.DemoJobDescription,
		MaxCandidates:      5,
		LocationPreference: "Mountain View, CA",
	}

	s.processJob(r.Context(), rw, req)
}

func (s *Server) processJob(ctx context.Context, rw http.ResponseWriter, req sourcing.Request) {
	result, err := s.agent.ProcessJob(ctx, req)
	if err != nil {
		if errors.Is(err, sourcing.ErrEmptyJobDescription) {
			writeErrResponse(rw, err, http.StatusBadRequest)
			return
		}
		s.logger.Error("sourcing run failed", zap.Error(err))
		writeErrResponse(rw, err, http.StatusInternalServerError)
		return
	}

	writeResponse(rw, result, http.StatusOK)
}

func (s *Server) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(rw, r)
		s.logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func writeResponse(rw http.ResponseWriter, data any, statusCode int) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(statusCode)

	if data == nil {
		return
	}

	if err := json.NewEncoder(rw).Encode(data); err != nil {
		http.Error(rw, "failed to encode response", http.StatusInternalServerError)
	}
}

func writeErrResponse(rw http.ResponseWriter, err error, statusCode int) {
	writeResponse(rw, map[string]string{"error": err.Error()}, statusCode)
}
