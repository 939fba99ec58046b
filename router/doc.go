/*
Package router defines HTTP routes for the VitalCheck API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Admin authentication (public):

	POST /api/admin/login    - Log in, returns bearer token
	POST /api/admin/register - Register, returns bearer token

Assessment submission (public form):

	POST /api/assessments - Persist one assessment

Assessment management (requires Authorization: Bearer <token>):

	GET    /api/admin/assessments        - Paginated, searchable listing
	GET    /api/admin/assessments/export - Display-labeled full export
	DELETE /api/admin/assessments/{id}   - Delete one
	DELETE /api/admin/assessments        - Delete all
	GET    /api/admin/stats              - Dashboard aggregates

Static pages:

	GET /      - Public form (public/index.html)
	GET /admin - Admin panel (public/admin.html)

# Handler Initialization

The router creates handler instances with dependency injection:

	authHandler := handlers.NewAuthHandler(db, cfg)
	assessmentHandler := handlers.NewAssessmentHandler(db, cfg)
	statsHandler := handlers.NewStatsHandler(db, cfg)

All handlers receive the database connection and configuration. Protected
routes are wrapped in middleware.RequireAdmin at registration time.
*/
package router
