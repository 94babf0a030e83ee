package sqlstore

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/healthcare-platform/internal/model"
	"github.com/jwalitptl/healthcare-platform/internal/rules"
	"github.com/jwalitptl/healthcare-platform/pkg/errors"
	"github.com/jwalitptl/healthcare-platform/pkg/metrics"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(Config{Path: filepath.Join(t.TempDir(), "db", "healthcare.db")}, metrics.NewMetrics("test"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func countTables(t *testing.T, db *DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('patients', 'consultations', 'healthcare_plans', 'data_analysis')`))
	return n
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	stats := NewStatsRepository(db)

	require.NoError(t, db.Migrate(ctx, true))
	first, err := stats.CountByKind(ctx)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(ctx, true))
	second, err := stats.CountByKind(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, countTables(t, db))
	assert.Equal(t, first, second)
	assert.EqualValues(t, len(samplePatients), second[model.KindPatientSubmission])
	assert.EqualValues(t, len(sampleConsultations), second[model.KindConsultationRequest])
	assert.EqualValues(t, len(samplePlans), second[model.KindHealthcarePlan])
	assert.EqualValues(t, len(sampleAnalyses), second[model.KindDataAnalysis])

	var indexes int
	require.NoError(t, db.Get(&indexes, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name LIKE 'idx_%'`))
	assert.Equal(t, 6, indexes)
}

func TestSeededRowsMatchGeneratedText(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.Migrate(ctx, true))

	var patients []model.PatientSubmission
	require.NoError(t, db.Select(&patients, `SELECT id, name, email, age, symptoms, diagnosis FROM patients`))
	require.NotEmpty(t, patients)
	for _, p := range patients {
		assert.Equal(t, rules.Diagnosis(p.Symptoms), p.Diagnosis, p.Symptoms)
	}
	assert.NotEqual(t, rules.GeneralAdvice, patients[0].Diagnosis)

	var plans []model.HealthcarePlan
	require.NoError(t, db.Select(&plans, `SELECT id, age, goals, plan FROM healthcare_plans`))
	require.NotEmpty(t, plans)
	for _, p := range plans {
		assert.Equal(t, rules.Plan(p.Age, p.Goals), p.Plan, p.Goals)
	}

	var analyses []model.DataAnalysisRecord
	require.NoError(t, db.Select(&analyses, `SELECT id, filename, file_type, analysis_result FROM data_analysis`))
	require.NotEmpty(t, analyses)
	for _, a := range analyses {
		assert.Equal(t, rules.Analysis(a.FileType), a.AnalysisResult, a.Filename)
	}
}

func TestConcurrentMigrationsSeedOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "healthcare.db")
	ctx := context.Background()

	handles := make([]*DB, 4)
	for i := range handles {
		db, err := Open(Config{Path: path}, metrics.NewMetrics("test"))
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		handles[i] = db
	}
	require.NoError(t, handles[0].Migrate(ctx, false))

	errs := make([]error, len(handles))
	var wg sync.WaitGroup
	for i, db := range handles {
		wg.Add(1)
		go func(i int, db *DB) {
			defer wg.Done()
			errs[i] = db.Migrate(ctx, true)
		}(i, db)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	counts, err := NewStatsRepository(handles[0]).CountByKind(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, len(samplePatients), counts[model.KindPatientSubmission])
	assert.EqualValues(t, len(sampleConsultations), counts[model.KindConsultationRequest])
}

func TestMigrateWithoutSeed(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Migrate(ctx, false))

	counts, err := NewStatsRepository(db).CountByKind(ctx)
	require.NoError(t, err)
	for _, kind := range model.RecordKinds {
		assert.Zero(t, counts[kind], kind)
	}
}

func TestSeedSkippedWhenPatientsExist(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.Migrate(ctx, false))

	_, err := NewPatientSubmissionRepository(db).Create(ctx, &model.PatientSubmission{Name: "Ada", Symptoms: "cough", Diagnosis: "cold"})
	require.NoError(t, err)

	require.NoError(t, db.Migrate(ctx, true))

	counts, err := NewStatsRepository(db).CountByKind(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts[model.KindPatientSubmission])
	assert.Zero(t, counts[model.KindConsultationRequest])
}

func TestCreateRecords(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.Migrate(ctx, false))

	patient := &model.PatientSubmission{Name: "Ada", Email: "ada@example.com", Age: 36, Symptoms: "cough", Diagnosis: "cold"}
	id1, err := NewPatientSubmissionRepository(db).Create(ctx, patient)
	require.NoError(t, err)
	id2, err := NewPatientSubmissionRepository(db).Create(ctx, &model.PatientSubmission{Name: "Bo", Symptoms: "rash", Diagnosis: "unknown"})
	require.NoError(t, err)
	assert.Equal(t, id1, patient.ID)
	assert.False(t, patient.CreatedAt.IsZero())
	assert.Greater(t, id2, id1)

	consultation := &model.ConsultationRequest{Name: "Ada", Email: "ada@example.com", Date: "2024-02-15"}
	_, err = NewConsultationRepository(db).Create(ctx, consultation)
	require.NoError(t, err)
	assert.Equal(t, model.ConsultationStatusPending, consultation.Status)

	var status string
	require.NoError(t, db.Get(&status, `SELECT status FROM consultations WHERE id = ?`, consultation.ID))
	assert.Equal(t, "pending", status)

	_, err = NewHealthcarePlanRepository(db).Create(ctx, &model.HealthcarePlan{Age: 150, Goals: "sleep", Plan: "plan"})
	require.NoError(t, err)

	_, err = NewDataAnalysisRepository(db).Create(ctx, &model.DataAnalysisRecord{Filename: "data.csv", FileType: "csv", AnalysisResult: "csv"})
	require.NoError(t, err)

	counts, err := NewStatsRepository(db).CountByKind(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[model.KindPatientSubmission])
	assert.EqualValues(t, 1, counts[model.KindConsultationRequest])
	assert.EqualValues(t, 1, counts[model.KindHealthcarePlan])
	assert.EqualValues(t, 1, counts[model.KindDataAnalysis])
}

func TestCreateClassifiesStoreFailures(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.Migrate(ctx, false))

	// Violates the age CHECK constraint
	_, err := NewHealthcarePlanRepository(db).Create(ctx, &model.HealthcarePlan{Age: 151, Goals: "x", Plan: "x"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrStorage))

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM healthcare_plans`))
	assert.Zero(t, n)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(Config{Driver: "oracle"}, nil)
	assert.Error(t, err)

	_, err = Open(Config{Driver: DriverSQLite}, nil)
	assert.Error(t, err)
}
