package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// DevJWTSecret is the insecure fallback signing secret. It exists so local
// development works out of the box; ParseFlags refuses it in production.
const DevJWTSecret = "your-secret-key-change-in-production"

const EnvProduction = "production"

type Config struct {
	Port        int
	DatabaseURL string
	JWTSecret   string
	Environment string
	PublicDir   string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("vitalcheck", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.PublicDir, "public", "", "Static file directory")
	fs.StringVar(&cfg.Environment, "env", "", "Deployment environment")

	// Secret (prefer env variable, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "Token signing secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.Environment == "" {
		cfg.Environment = os.Getenv("APP_ENV")
		if cfg.Environment == "" {
			cfg.Environment = "development"
		}
	}

	if cfg.PublicDir == "" {
		cfg.PublicDir = os.Getenv("PUBLIC_DIR")
		if cfg.PublicDir == "" {
			cfg.PublicDir = "public"
		}
	}

	// Secret - the dev default is never acceptable in production
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.JWTSecret == "" {
		if cfg.Environment == EnvProduction {
			return Config{}, errors.New("JWT_SECRET required in production")
		}
		cfg.JWTSecret = DevJWTSecret
	}

	return cfg, nil
}
