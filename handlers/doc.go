/*
Package handlers contains HTTP request handlers for the VitalCheck API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AuthHandler: Admin login and registration
  - AssessmentHandler: Public submission plus admin list/export/delete
  - StatsHandler: Dashboard aggregates

Handlers are created via constructor functions that accept *sql.DB and Config:

	authHandler := handlers.NewAuthHandler(db, cfg)

# Admin Authentication

	POST /api/admin/login    → Login (200, token + admin projection)
	POST /api/admin/register → Register (201; 400 if the email exists)

Both endpoints issue a 24-hour bearer token. Login returns the same
"Invalid credentials" 401 for unknown emails and wrong passwords.

# Assessment Flow

The public form submits a complete assessment, risk scores included:

	POST /api/assessments → Submit (201, stored record echoed back)

Scores are client-computed and persisted verbatim. The server checks shape
(patientName present, age positive) but never recomputes or validates the
scoring itself.

Admin management, all behind middleware.RequireAdmin:

	GET    /api/admin/assessments         → List (page, limit, search)
	GET    /api/admin/assessments/export  → Export (display-labeled array)
	DELETE /api/admin/assessments/{id}    → Delete (404 when missing)
	DELETE /api/admin/assessments         → DeleteAll

List orders by creation time descending and runs the page query and the
total count concurrently. Search is a case-insensitive substring match on
the patient name (ILIKE).

# Statistics

	GET /api/admin/stats → GetStats

Runs five concurrent queries: total count, three substring-matched risk
bucket counts ("High Risk", "Mid Risk", "Low Risk"), and the five most
recent assessments.
*/
package handlers
