package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/healthcare-platform/internal/model"
)

type dialect struct {
	idColumn      string
	timestampType string
}

func dialectFor(driver string) dialect {
	if driver == DriverPostgres {
		return dialect{idColumn: "BIGSERIAL PRIMARY KEY", timestampType: "TIMESTAMPTZ"}
	}
	return dialect{idColumn: "INTEGER PRIMARY KEY AUTOINCREMENT", timestampType: "DATETIME"}
}

// tableFor maps each record kind to its table
var tableFor = map[model.RecordKind]string{
	model.KindPatientSubmission:   "patients",
	model.KindConsultationRequest: "consultations",
	model.KindHealthcarePlan:      "healthcare_plans",
	model.KindDataAnalysis:        "data_analysis",
}

func (d dialect) statements() []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS patients (
			id %s,
			name TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			age INTEGER NOT NULL DEFAULT 0,
			symptoms TEXT NOT NULL,
			diagnosis TEXT NOT NULL,
			created_at %s NOT NULL
		)`, d.idColumn, d.timestampType),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS consultations (
			id %s,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			date TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at %s NOT NULL
		)`, d.idColumn, d.timestampType),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS healthcare_plans (
			id %s,
			age INTEGER NOT NULL CHECK (age BETWEEN 1 AND 150),
			goals TEXT NOT NULL,
			plan TEXT NOT NULL,
			created_at %s NOT NULL
		)`, d.idColumn, d.timestampType),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS data_analysis (
			id %s,
			filename TEXT NOT NULL,
			file_type TEXT NOT NULL,
			analysis_result TEXT NOT NULL,
			created_at %s NOT NULL
		)`, d.idColumn, d.timestampType),
		`CREATE INDEX IF NOT EXISTS idx_patients_created_at ON patients(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_patients_email ON patients(email)`,
		`CREATE INDEX IF NOT EXISTS idx_consultations_date ON consultations(date)`,
		`CREATE INDEX IF NOT EXISTS idx_consultations_status ON consultations(status)`,
		`CREATE INDEX IF NOT EXISTS idx_healthcare_plans_age ON healthcare_plans(age)`,
		`CREATE INDEX IF NOT EXISTS idx_data_analysis_file_type ON data_analysis(file_type)`,
	}
}

// Migrate ensures every table and index exists and seeds sample rows on
// first initialization. Safe to call any number of times.
func (db *DB) Migrate(ctx context.Context, seed bool) error {
	for _, stmt := range db.dialect.statements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	if !seed {
		return nil
	}

	// Count and seed under one write transaction so concurrent migrations
	// seed at most once
	if err := db.WithTx(ctx, func(tx *sqlx.Tx) error {
		var count int64
		if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM patients`); err != nil {
			return fmt.Errorf("failed to count patients: %w", err)
		}
		if count > 0 {
			return nil
		}
		return insertSamples(ctx, tx, time.Now().UTC())
	}); err != nil {
		return fmt.Errorf("failed to seed sample data: %w", err)
	}
	return nil
}

func insertSamples(ctx context.Context, tx *sqlx.Tx, now time.Time) error {
	for _, p := range samplePatients {
		if _, err := tx.ExecContext(ctx, tx.Rebind(
			`INSERT INTO patients (name, email, age, symptoms, diagnosis, created_at) VALUES (?, ?, ?, ?, ?, ?)`),
			p.Name, p.Email, p.Age, p.Symptoms, p.Diagnosis, now); err != nil {
			return err
		}
	}
	for _, c := range sampleConsultations {
		if _, err := tx.ExecContext(ctx, tx.Rebind(
			`INSERT INTO consultations (name, email, date, status, created_at) VALUES (?, ?, ?, ?, ?)`),
			c.Name, c.Email, c.Date, c.Status, now); err != nil {
			return err
		}
	}
	for _, p := range samplePlans {
		if _, err := tx.ExecContext(ctx, tx.Rebind(
			`INSERT INTO healthcare_plans (age, goals, plan, created_at) VALUES (?, ?, ?, ?)`),
			p.Age, p.Goals, p.Plan, now); err != nil {
			return err
		}
	}
	for _, a := range sampleAnalyses {
		if _, err := tx.ExecContext(ctx, tx.Rebind(
			`INSERT INTO data_analysis (filename, file_type, analysis_result, created_at) VALUES (?, ?, ?, ?)`),
			a.Filename, a.FileType, a.AnalysisResult, now); err != nil {
			return err
		}
	}
	return nil
}
