package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if missing and applies incremental
// updates. Safe to run on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			role VARCHAR(50) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS claims (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			lecturer_id UUID NOT NULL REFERENCES users(id),
			hours_worked NUMERIC(8,2) NOT NULL CHECK (hours_worked >= 0),
			hourly_rate NUMERIC(10,2) NOT NULL CHECK (hourly_rate >= 0),
			total_amount NUMERIC(12,2) NOT NULL,
			notes TEXT,
			document_path TEXT,
			status VARCHAR(10) NOT NULL DEFAULT 'pending'
				CHECK (status IN ('pending', 'approved', 'rejected')),
			rejection_reason TEXT,
			reviewed_by UUID REFERENCES users(id),
			reviewed_at TIMESTAMP WITH TIME ZONE,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	migrations := []string{
		`ALTER TABLE claims ADD COLUMN IF NOT EXISTS document_path TEXT`,
		`CREATE INDEX IF NOT EXISTS idx_claims_lecturer_id ON claims(lecturer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_claims_status ON claims(status)`,
		`CREATE INDEX IF NOT EXISTS idx_claims_created_at ON claims(created_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			log.Printf("Error running claims migration: %v", err)
			// Continue as some might be duplicate index errors depending on PG version
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
