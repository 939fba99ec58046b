/*
Package main provides the entry point for the VitalCheck API server.

VitalCheck is a health assessment backend: an unauthenticated public form
submits patient vitals with precomputed risk scores, and an authenticated
administrator lists, searches, exports, and deletes stored assessments and
views aggregate risk statistics.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3000 -d "postgres://..."

A .env file in the working directory is loaded at startup if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - JWT_SECRET (-jwt-secret): Token signing secret. An insecure development
    default exists; startup fails if unset when APP_ENV=production.
  - APP_ENV (-env): Deployment environment (default: development)
  - PUBLIC_DIR (-public): Static file directory (default: public)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (admin auth, assessments, stats)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Admin auth, CORS, logging, panic recovery, JSON helpers
  - models: Request/response types
  - auth: Password hashing and bearer token issue/verify
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
