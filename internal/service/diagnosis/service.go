package diagnosis

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/healthcare-platform/internal/model"
	"github.com/jwalitptl/healthcare-platform/internal/repository"
	"github.com/jwalitptl/healthcare-platform/internal/rules"
	"github.com/jwalitptl/healthcare-platform/internal/service"
	"github.com/jwalitptl/healthcare-platform/internal/validation"
	"github.com/jwalitptl/healthcare-platform/pkg/metrics"
)

type DiagnosisService interface {
	Submit(ctx context.Context, fields validation.Fields) (*model.DiagnosisResponse, error)
}

type Service struct {
	repo      repository.PatientSubmissionRepository
	validator *validation.Validator
	notifier  service.Notifier
	metrics   *metrics.Metrics
}

func NewService(repo repository.PatientSubmissionRepository, v *validation.Validator, n service.Notifier, m *metrics.Metrics) *Service {
	if n == nil {
		n = service.NopNotifier{}
	}
	return &Service{
		repo:      repo,
		validator: v,
		notifier:  n,
		metrics:   m,
	}
}

// Submit validates a symptom report, derives the advisory and stores both.
// Nothing is stored when validation fails.
func (s *Service) Submit(ctx context.Context, fields validation.Fields) (*model.DiagnosisResponse, error) {
	kind := string(model.KindPatientSubmission)

	in, err := s.validator.Diagnosis(fields)
	if err != nil {
		s.metrics.CountSubmission(kind, service.OutcomeRejected)
		return nil, err
	}

	submission := &model.PatientSubmission{
		Name:      in.PatientName,
		Email:     in.Email,
		Age:       in.Age,
		Symptoms:  in.Symptoms,
		Diagnosis: rules.Diagnosis(in.Symptoms),
	}

	if _, err := s.repo.Create(ctx, submission); err != nil {
		s.metrics.CountSubmission(kind, service.OutcomeFailed)
		return nil, fmt.Errorf("failed to store patient submission: %w", err)
	}
	s.metrics.CountSubmission(kind, service.OutcomeStored)

	log.Ctx(ctx).Debug().Int64("id", submission.ID).Msg("patient submission stored")

	s.notifier.Enqueue(model.SubmissionEvent{
		Kind:      model.KindPatientSubmission,
		ID:        submission.ID,
		CreatedAt: submission.CreatedAt,
	})

	return &model.DiagnosisResponse{
		Diagnosis:   submission.Diagnosis,
		PatientName: submission.Name,
		Symptoms:    submission.Symptoms,
	}, nil
}
