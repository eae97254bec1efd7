// Package http exposes the dashboard as a local JSON API. Handlers only
// decode, validate and delegate; every number the client sees comes from
// the services and core packages.
package http

import (
	"net/http"

	"fintrack/internal/middleware/security"
	"fintrack/internal/middleware/trace"
	"fintrack/internal/services"
)

// Server dispatches API requests to the dashboard service.
type Server struct {
	dash *services.Dashboard
}

// NewServer builds the HTTP server with its routes and middleware chain.
func NewServer(addr string, dash *services.Dashboard) *http.Server {
	s := &Server{dash: dash}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleHealth)

	mux.HandleFunc("/api/transactions", s.handleTransactions)
	mux.HandleFunc("/api/transactions/", s.handleTransactionByID)
	mux.HandleFunc("/api/assets", s.handleAssets)
	mux.HandleFunc("/api/assets/", s.handleAssetByID)
	mux.HandleFunc("/api/goals", s.handleGoals)
	mux.HandleFunc("/api/goals/", s.handleGoalByID)

	mux.HandleFunc("/api/dashboard", s.handleDashboard)
	mux.HandleFunc("/api/dashboard/trend", s.handleTrend)
	mux.HandleFunc("/api/dashboard/categories", s.handleCategories)

	mux.HandleFunc("/api/theme", s.handleTheme)
	mux.HandleFunc("/api/resources", s.handleResources)
	mux.HandleFunc("/api/resources/", s.handleResourceByID)
	mux.HandleFunc("/api/news", s.handleNews)

	tracer := trace.NewMiddleware(clientIP)
	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())

	return &http.Server{
		Addr:    addr,
		Handler: tracer.Middleware(headers.Middleware(mux)),
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}
