package repository

import (
	"context"

	"github.com/jwalitptl/healthcare-platform/internal/model"
)

// All repository interfaces in one file. Records are append-only: no
// repository exposes update or delete.
type (
	PatientSubmissionRepository interface {
		Create(ctx context.Context, submission *model.PatientSubmission) (int64, error)
	}

	ConsultationRepository interface {
		Create(ctx context.Context, consultation *model.ConsultationRequest) (int64, error)
	}

	HealthcarePlanRepository interface {
		Create(ctx context.Context, plan *model.HealthcarePlan) (int64, error)
	}

	DataAnalysisRepository interface {
		Create(ctx context.Context, record *model.DataAnalysisRecord) (int64, error)
	}

	StatsRepository interface {
		CountByKind(ctx context.Context) (map[model.RecordKind]int64, error)
	}
)
