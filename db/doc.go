/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - admin: Administrator accounts (unique email, bcrypt password hash)
  - health_assessment: Submitted assessments with flattened risk columns

# Indexes

Performance indexes on:

  - admin.email (unique)
  - health_assessment.created_at (descending - the default listing order)
  - health_assessment.patient_name (search filter)
*/
package db
