/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: PostgreSQL connection string (required)
  - JWTSecret: Bearer token signing secret
  - Environment: Deployment environment (default: development)
  - PublicDir: Static file directory (default: public)

# CLI Flags

	-p          Server port
	-d          Database URL
	-jwt-secret Token signing secret
	-env        Deployment environment
	-public     Static file directory

# Environment Variables

Flags fall back to environment variables:

	PORT       → -p
	DATABASE_URL → -d
	JWT_SECRET → -jwt-secret
	APP_ENV    → -env
	PUBLIC_DIR → -public

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - JWT_SECRET must be provided when APP_ENV=production; outside production
    an insecure development default (DevJWTSecret) is substituted
*/
package cliparse
