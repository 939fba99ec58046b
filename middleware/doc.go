/*
Package middleware provides HTTP middleware and helper functions.

# Admin Authentication

Wrap protected handlers with RequireAdmin:

	mux.HandleFunc("GET /api/admin/stats",
		middleware.RequireAdmin(db, cfg, statsHandler.GetStats))

The middleware expects an "Authorization: Bearer <token>" header. A missing
header yields 401 {"error":"No token provided"}; a bad signature, an expired
token, or a token whose admin no longer exists yields 401
{"error":"Invalid token"}. On success the resolved admin record travels in
the request context:

	admin, ok := middleware.AdminFrom(r.Context())

The context key is unexported, so the admin is a request-scoped value that
only this package can set.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Panic Recovery

Recover is the outermost catch-all: any handler that panics produces a
generic 500 JSON error instead of a dropped connection.

	server := http.Server{
		Handler: middleware.Recover(middleware.CORS(mux)),
	}

# CORS Middleware

Enable cross-origin requests for frontend access:

	mux = middleware.CORS(mux)

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
