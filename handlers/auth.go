package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/vitalcheck/backend/auth"
	"github.com/vitalcheck/backend/cliparse"
	"github.com/vitalcheck/backend/middleware"
	"github.com/vitalcheck/backend/models"
)

type AuthHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	var admin models.Admin
	err := h.db.QueryRow(`
		SELECT id, name, email, password, created_at
		FROM admin
		WHERE email = $1
	`, req.Email).Scan(&admin.ID, &admin.Name, &admin.Email, &admin.Password, &admin.CreatedAt)

	// Unknown email and wrong password get the same message so the
	// endpoint does not leak which accounts exist
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("failed to query admin", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := auth.CheckPassword(admin.Password, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(admin.ID, h.cfg.JWTSecret)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("admin logged in", "admin_id", admin.ID)

	middleware.JSONResponse(w, http.StatusOK, models.AuthResponse{
		Token: token,
		Admin: admin.Info(),
	})
}

// Register handles POST /api/admin/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	// Check if admin already exists
	var existingID string
	err := h.db.QueryRow("SELECT id FROM admin WHERE email = $1", req.Email).Scan(&existingID)
	if err == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Admin already exists")
		return
	}
	if err != sql.ErrNoRows {
		slog.Error("failed to query admin", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	admin := models.Admin{
		ID:       auth.NewAdminID(),
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}

	err = h.db.QueryRow(`
		INSERT INTO admin (id, name, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, admin.ID, admin.Name, admin.Email, admin.Password).Scan(&admin.CreatedAt)

	if err != nil {
		slog.Error("failed to insert admin", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := auth.GenerateToken(admin.ID, h.cfg.JWTSecret)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("admin registered", "admin_id", admin.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AuthResponse{
		Token: token,
		Admin: admin.Info(),
	})
}
