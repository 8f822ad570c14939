package server

import (
	"log/slog"
	"net/http"
	"sort"
	"time"

	relayerrors "github.com/foodsearch/relay/pkg/errors"
	"github.com/foodsearch/relay/pkg/serializer"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	// API endpoints with middleware
	for path, handler := range s.config.Handlers {
		mux.HandleFunc(path, s.withMiddleware(handler))
	}

	return mux
}

// handleDefault describes the service on "/" and answers 404 for any path
// no other route claims.
func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, relayerrors.ErrCodeNotFound,
			"Not Found", false, map[string]any{"path": r.URL.Path})
		return
	}

	if !requireGet(w, r) {
		return
	}

	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	resp := struct {
		Name      string   `json:"name"`
		Version   string   `json:"version"`
		Ready     bool     `json:"ready"`
		Timestamp string   `json:"timestamp"`
		Routes    []string `json:"routes"`
	}{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.isReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    s.routes(),
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// routes lists the API routes followed by the system endpoints.
func (s *Server) routes() []string {
	api := make([]string, 0, len(s.config.Handlers))
	for path := range s.config.Handlers {
		if path == "/" {
			continue
		}
		api = append(api, "GET "+path)
	}
	sort.Strings(api)

	return append(api, "GET /health", "GET /ready", "GET /metrics")
}
