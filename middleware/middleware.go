package middleware

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/vitalcheck/backend/auth"
	"github.com/vitalcheck/backend/cliparse"
	"github.com/vitalcheck/backend/models"
)

// adminContextKey is unexported so only this package can attach the admin;
// handlers read it through AdminFrom
type adminContextKey struct{}

// WithLogging wraps a handler with request logging
func WithLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Log request
		slog.Info("request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
		)

		// Call the next handler
		next(w, r)

		// Log completion
		duration := time.Since(start)
		slog.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", duration.Milliseconds(),
		)
	}
}

// RequireAdmin guards a handler behind bearer token authentication.
// It verifies the Authorization header, resolves the embedded admin ID
// against the admin table, and attaches the record to the request context.
func RequireAdmin(db *sql.DB, cfg cliparse.Config, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			ErrorResponse(w, http.StatusUnauthorized, "No token provided")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			ErrorResponse(w, http.StatusUnauthorized, "No token provided")
			return
		}

		adminID, err := auth.VerifyToken(tokenString, cfg.JWTSecret)
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		// A valid signature is not enough - the admin must still exist
		var admin models.Admin
		err = db.QueryRow(`
			SELECT id, name, email, password, created_at
			FROM admin
			WHERE id = $1
		`, adminID).Scan(&admin.ID, &admin.Name, &admin.Email, &admin.Password, &admin.CreatedAt)

		if err == sql.ErrNoRows {
			ErrorResponse(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		if err != nil {
			slog.Error("failed to resolve admin", "error", err)
			ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		ctx := context.WithValue(r.Context(), adminContextKey{}, admin)
		next(w, r.WithContext(ctx))
	}
}

// AdminFrom returns the authenticated admin attached by RequireAdmin
func AdminFrom(ctx context.Context) (models.Admin, bool) {
	admin, ok := ctx.Value(adminContextKey{}).(models.Admin)
	return admin, ok
}

// Recover converts a panicking handler into a generic 500 response
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("handler panicked",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
				)
				ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// JSONResponse writes a JSON response
func JSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse writes a JSON error response
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	JSONResponse(w, statusCode, models.ErrorResponse{
		Error: message,
	})
}

// ParseJSONBody parses the request body into the given struct
func ParseJSONBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// CORS middleware allows cross-origin requests from the frontend
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
