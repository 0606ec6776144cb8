// -----------------------------------------------------------------------
// Last Modified: Thursday, 20th August 2026 2:10:00 pm
// Modified By: Bob McAllan
// -----------------------------------------------------------------------

package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// UI Page routes (HTML templates)
	mux.HandleFunc("/", s.app.PageHandler.ServePage("index.html", "home"))

	// Static files (CSS, JS, images)
	mux.HandleFunc("/static/", s.app.PageHandler.StaticFileHandler)

	// API routes - Advisory flow
	mux.HandleFunc("/api/login", s.app.SessionHandler.LoginHandler)       // POST - simulated login
	mux.HandleFunc("/api/advice", s.app.AdviceHandler.AdviceHandler)      // POST - full advisory result
	mux.HandleFunc("/api/report", s.app.ReportHandler.GenerateHandler)    // POST - PDF export
	mux.HandleFunc("/api/feedback", s.app.SessionHandler.FeedbackHandler) // POST - satisfaction rating

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)
	mux.HandleFunc("/api/shutdown", s.ShutdownHandler) // Graceful shutdown endpoint (dev mode)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}
