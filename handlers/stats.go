package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/vitalcheck/backend/cliparse"
	"github.com/vitalcheck/backend/middleware"
	"github.com/vitalcheck/backend/models"
)

// recentLimit caps the dashboard's recent-assessments list
const recentLimit = 5

type StatsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewStatsHandler(db *sql.DB, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{db: db, cfg: cfg}
}

// GetStats handles GET /api/admin/stats.
// Five independent read-only queries run concurrently: total count, one
// count per risk bucket, and the most recent assessments. Bucket matching
// is substring-based, so labels outside the three buckets simply fall
// through - high+mid+low need not sum to the total.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	var (
		total  int
		high   int
		mid    int
		low    int
		recent = []models.RecentAssessment{}
	)

	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		return h.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM health_assessment").Scan(&total)
	})

	countBucket := func(label string, dst *int) func() error {
		return func() error {
			return h.db.QueryRowContext(ctx, `
				SELECT COUNT(*) FROM health_assessment
				WHERE overall_risk LIKE '%' || $1 || '%'
			`, label).Scan(dst)
		}
	}
	g.Go(countBucket(models.RiskHigh, &high))
	g.Go(countBucket(models.RiskMid, &mid))
	g.Go(countBucket(models.RiskLow, &low))

	g.Go(func() error {
		rows, err := h.db.QueryContext(ctx, `
			SELECT id, patient_name, overall_risk, created_at
			FROM health_assessment
			ORDER BY created_at DESC, id DESC
			LIMIT $1
		`, recentLimit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var ra models.RecentAssessment
			if err := rows.Scan(&ra.ID, &ra.PatientName, &ra.OverallRisk, &ra.CreatedAt); err != nil {
				return err
			}
			recent = append(recent, ra)
		}
		return rows.Err()
	})

	if err := g.Wait(); err != nil {
		slog.Error("failed to fetch statistics", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{
		TotalAssessments: total,
		RiskDistribution: models.RiskDistribution{
			High: high,
			Mid:  mid,
			Low:  low,
		},
		RecentAssessments: recent,
	})
}
