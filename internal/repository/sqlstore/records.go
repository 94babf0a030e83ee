package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/healthcare-platform/internal/model"
	"github.com/jwalitptl/healthcare-platform/internal/repository"
)

type patientSubmissionRepository struct {
	db *DB
}

type consultationRepository struct {
	db *DB
}

type healthcarePlanRepository struct {
	db *DB
}

type dataAnalysisRepository struct {
	db *DB
}

type statsRepository struct {
	db *DB
}

func NewPatientSubmissionRepository(db *DB) repository.PatientSubmissionRepository {
	return &patientSubmissionRepository{db: db}
}

func NewConsultationRepository(db *DB) repository.ConsultationRepository {
	return &consultationRepository{db: db}
}

func NewHealthcarePlanRepository(db *DB) repository.HealthcarePlanRepository {
	return &healthcarePlanRepository{db: db}
}

func NewDataAnalysisRepository(db *DB) repository.DataAnalysisRepository {
	return &dataAnalysisRepository{db: db}
}

func NewStatsRepository(db *DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *patientSubmissionRepository) Create(ctx context.Context, s *model.PatientSubmission) (int64, error) {
	query := `
		INSERT INTO patients (name, email, age, symptoms, diagnosis, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	s.CreatedAt = time.Now().UTC()

	id, err := r.db.insert(ctx, "create patient submission", query,
		s.Name,
		s.Email,
		s.Age,
		s.Symptoms,
		s.Diagnosis,
		s.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	s.ID = id
	return id, nil
}

func (r *consultationRepository) Create(ctx context.Context, c *model.ConsultationRequest) (int64, error) {
	query := `
		INSERT INTO consultations (name, email, date, status, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`
	if c.Status == "" {
		c.Status = model.ConsultationStatusPending
	}
	c.CreatedAt = time.Now().UTC()

	id, err := r.db.insert(ctx, "create consultation", query,
		c.Name,
		c.Email,
		c.Date,
		c.Status,
		c.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}

func (r *healthcarePlanRepository) Create(ctx context.Context, p *model.HealthcarePlan) (int64, error) {
	query := `
		INSERT INTO healthcare_plans (age, goals, plan, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`
	p.CreatedAt = time.Now().UTC()

	id, err := r.db.insert(ctx, "create healthcare plan", query, p.Age, p.Goals, p.Plan, p.CreatedAt)
	if err != nil {
		return 0, err
	}
	p.ID = id
	return id, nil
}

func (r *dataAnalysisRepository) Create(ctx context.Context, a *model.DataAnalysisRecord) (int64, error) {
	query := `
		INSERT INTO data_analysis (filename, file_type, analysis_result, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`
	a.CreatedAt = time.Now().UTC()

	id, err := r.db.insert(ctx, "create data analysis", query, a.Filename, a.FileType, a.AnalysisResult, a.CreatedAt)
	if err != nil {
		return 0, err
	}
	a.ID = id
	return id, nil
}

func (r *statsRepository) CountByKind(ctx context.Context) (map[model.RecordKind]int64, error) {
	counts := make(map[model.RecordKind]int64, len(model.RecordKinds))
	for _, kind := range model.RecordKinds {
		var n int64
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, tableFor[kind])
		if err := r.db.GetContext(ctx, &n, query); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", kind, err)
		}
		counts[kind] = n
	}
	return counts, nil
}
