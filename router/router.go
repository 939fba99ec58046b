package router

import (
	"database/sql"
	"net/http"
	"path/filepath"

	"github.com/vitalcheck/backend/cliparse"
	"github.com/vitalcheck/backend/handlers"
	"github.com/vitalcheck/backend/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	assessmentHandler := handlers.NewAssessmentHandler(db, cfg)
	statsHandler := handlers.NewStatsHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Admin authentication (public)
	mux.HandleFunc("POST /api/admin/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /api/admin/register", middleware.WithLogging(authHandler.Register))

	// Assessment submission (public form)
	mux.HandleFunc("POST /api/assessments", middleware.WithLogging(assessmentHandler.Submit))

	// Assessment management (admin only)
	mux.HandleFunc("GET /api/admin/assessments",
		middleware.WithLogging(middleware.RequireAdmin(db, cfg, assessmentHandler.List)))
	mux.HandleFunc("GET /api/admin/assessments/export",
		middleware.WithLogging(middleware.RequireAdmin(db, cfg, assessmentHandler.Export)))
	mux.HandleFunc("DELETE /api/admin/assessments/{id}",
		middleware.WithLogging(middleware.RequireAdmin(db, cfg, assessmentHandler.Delete)))
	mux.HandleFunc("DELETE /api/admin/assessments",
		middleware.WithLogging(middleware.RequireAdmin(db, cfg, assessmentHandler.DeleteAll)))

	// Dashboard statistics (admin only)
	mux.HandleFunc("GET /api/admin/stats",
		middleware.WithLogging(middleware.RequireAdmin(db, cfg, statsHandler.GetStats)))

	// Admin panel page
	mux.HandleFunc("GET /admin", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.PublicDir, "admin.html"))
	})

	// Public form and any other static assets; index.html serves at /
	mux.Handle("GET /", http.FileServer(http.Dir(cfg.PublicDir)))

	return mux
}
