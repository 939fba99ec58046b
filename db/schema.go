package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Administrators
CREATE TABLE IF NOT EXISTS admin (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_admin_email ON admin(email);

-- Health assessments; risk pairs are flattened into level/score columns
CREATE TABLE IF NOT EXISTS health_assessment (
    id SERIAL PRIMARY KEY,
    patient_name TEXT NOT NULL,
    age INTEGER NOT NULL,
    systolic INTEGER NOT NULL,
    diastolic INTEGER NOT NULL,
    blood_sugar DOUBLE PRECISION NOT NULL,
    temperature DOUBLE PRECISION NOT NULL,
    is_fasting BOOLEAN NOT NULL DEFAULT FALSE,
    bp_risk_level TEXT NOT NULL,
    bp_risk_score INTEGER NOT NULL,
    sugar_risk_level TEXT NOT NULL,
    sugar_risk_score INTEGER NOT NULL,
    temp_risk_level TEXT NOT NULL,
    temp_risk_score INTEGER NOT NULL,
    total_score INTEGER NOT NULL,
    overall_risk TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_health_assessment_created_at ON health_assessment(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_health_assessment_patient_name ON health_assessment(patient_name);
`
