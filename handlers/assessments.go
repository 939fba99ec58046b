package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/vitalcheck/backend/cliparse"
	"github.com/vitalcheck/backend/middleware"
	"github.com/vitalcheck/backend/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type AssessmentHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAssessmentHandler(db *sql.DB, cfg cliparse.Config) *AssessmentHandler {
	return &AssessmentHandler{db: db, cfg: cfg}
}

const assessmentColumns = `
	id, patient_name, age, systolic, diastolic, blood_sugar, temperature,
	is_fasting, bp_risk_level, bp_risk_score, sugar_risk_level,
	sugar_risk_score, temp_risk_level, temp_risk_score,
	total_score, overall_risk, created_at`

func scanAssessment(row interface{ Scan(...interface{}) error }) (models.Assessment, error) {
	var a models.Assessment
	err := row.Scan(
		&a.ID, &a.PatientName, &a.Age, &a.Systolic, &a.Diastolic,
		&a.BloodSugar, &a.Temperature, &a.IsFasting,
		&a.BPRiskLevel, &a.BPRiskScore,
		&a.SugarRiskLevel, &a.SugarRiskScore,
		&a.TempRiskLevel, &a.TempRiskScore,
		&a.TotalScore, &a.OverallRisk, &a.CreatedAt,
	)
	return a, err
}

// Submit handles POST /api/assessments (public, unauthenticated).
// Risk scores are computed client-side and persisted verbatim.
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitAssessmentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.PatientName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "patientName is required")
		return
	}
	if req.Age <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "age must be positive")
		return
	}

	row := h.db.QueryRow(`
		INSERT INTO health_assessment (
			patient_name, age, systolic, diastolic, blood_sugar, temperature,
			is_fasting, bp_risk_level, bp_risk_score, sugar_risk_level,
			sugar_risk_score, temp_risk_level, temp_risk_score,
			total_score, overall_risk
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING`+assessmentColumns,
		req.PatientName, req.Age, req.Systolic, req.Diastolic,
		req.BloodSugar, req.Temperature, req.IsFasting,
		req.BPRisk.Risk, req.BPRisk.Score,
		req.SugarRisk.Risk, req.SugarRisk.Score,
		req.TempRisk.Risk, req.TempRisk.Score,
		req.TotalScore, req.OverallRisk,
	)

	assessment, err := scanAssessment(row)
	if err != nil {
		slog.Error("failed to insert assessment", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save assessment")
		return
	}

	slog.Info("assessment submitted",
		"assessment_id", assessment.ID,
		"overall_risk", assessment.OverallRisk,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitAssessmentResponse{
		Success:    true,
		Assessment: assessment,
	})
}

// List handles GET /api/admin/assessments with pagination and an optional
// case-insensitive substring search on the patient name
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", defaultPage)
	limit := queryInt(r, "limit", defaultLimit)
	search := r.URL.Query().Get("search")

	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	// The page query and the total count are independent read-only
	// queries, so run them concurrently and await both
	var (
		assessments = []models.Assessment{}
		total       int
	)

	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		rows, err := h.db.QueryContext(ctx, `
			SELECT`+assessmentColumns+`
			FROM health_assessment
			WHERE patient_name ILIKE '%' || $1 || '%'
			ORDER BY created_at DESC, id DESC
			LIMIT $2 OFFSET $3
		`, search, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			a, err := scanAssessment(rows)
			if err != nil {
				return err
			}
			assessments = append(assessments, a)
		}
		return rows.Err()
	})

	g.Go(func() error {
		return h.db.QueryRowContext(ctx, `
			SELECT COUNT(*)
			FROM health_assessment
			WHERE patient_name ILIKE '%' || $1 || '%'
		`, search).Scan(&total)
	})

	if err := g.Wait(); err != nil {
		slog.Error("failed to fetch assessments", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch assessments")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListAssessmentsResponse{
		Assessments: assessments,
		Pagination: models.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	})
}

// Export handles GET /api/admin/assessments/export.
// Every row, newest first, reshaped with display-friendly labels.
func (h *AssessmentHandler) Export(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT` + assessmentColumns + `
		FROM health_assessment
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		slog.Error("failed to query assessments", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export data")
		return
	}
	defer rows.Close()

	exportData := []models.ExportRecord{}
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			slog.Error("failed to scan assessment", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export data")
			return
		}

		fasting := "No"
		if a.IsFasting {
			fasting = "Yes"
		}

		exportData = append(exportData, models.ExportRecord{
			Date:        a.CreatedAt.Format("1/2/2006"),
			Time:        a.CreatedAt.Format("3:04:05 PM"),
			PatientName: a.PatientName,
			Age:         a.Age,
			Systolic:    a.Systolic,
			Diastolic:   a.Diastolic,
			BloodSugar:  a.BloodSugar,
			Fasting:     fasting,
			Temperature: a.Temperature,
			BPRisk:      a.BPRiskLevel,
			SugarRisk:   a.SugarRiskLevel,
			TempRisk:    a.TempRiskLevel,
			OverallRisk: a.OverallRisk,
			TotalScore:  a.TotalScore,
		})
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read assessments", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export data")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, exportData)
}

// Delete handles DELETE /api/admin/assessments/{id}.
// A missing record is a distinct 404, not a silent success.
func (h *AssessmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid assessment id")
		return
	}

	result, err := h.db.Exec("DELETE FROM health_assessment WHERE id = $1", id)
	if err != nil {
		slog.Error("failed to delete assessment", "error", err, "assessment_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete assessment")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete assessment")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Assessment not found")
		return
	}

	slog.Info("assessment deleted", "assessment_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{
		Success: true,
		Message: "Assessment deleted successfully",
	})
}

// DeleteAll handles DELETE /api/admin/assessments
func (h *AssessmentHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.db.Exec("DELETE FROM health_assessment")
	if err != nil {
		slog.Error("failed to delete assessments", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete all assessments")
		return
	}

	affected, _ := result.RowsAffected()
	slog.Info("all assessments deleted", "count", affected)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{
		Success: true,
		Message: "All assessments deleted successfully",
	})
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or not a number
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
