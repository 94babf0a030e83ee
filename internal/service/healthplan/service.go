package healthplan

import (
	"context"
	"fmt"

	"github.com/jwalitptl/healthcare-platform/internal/model"
	"github.com/jwalitptl/healthcare-platform/internal/repository"
	"github.com/jwalitptl/healthcare-platform/internal/rules"
	"github.com/jwalitptl/healthcare-platform/internal/service"
	"github.com/jwalitptl/healthcare-platform/internal/validation"
	"github.com/jwalitptl/healthcare-platform/pkg/metrics"
)

type PlanService interface {
	Generate(ctx context.Context, fields validation.Fields) (*model.PlanResponse, error)
}

type Service struct {
	repo      repository.HealthcarePlanRepository
	validator *validation.Validator
	notifier  service.Notifier
	metrics   *metrics.Metrics
}

func NewService(repo repository.HealthcarePlanRepository, v *validation.Validator, n service.Notifier, m *metrics.Metrics) *Service {
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

func (s *Service) Generate(ctx context.Context, fields validation.Fields) (*model.PlanResponse, error) {
	kind := string(model.KindHealthcarePlan)

	in, err := s.validator.Plan(fields)
	if err != nil {
		s.metrics.CountSubmission(kind, service.OutcomeRejected)
		return nil, err
	}

	plan := &model.HealthcarePlan{
		Age:   in.Age,
		Goals: in.Goals,
		Plan:  rules.Plan(in.Age, in.Goals),
	}

	if _, err := s.repo.Create(ctx, plan); err != nil {
		s.metrics.CountSubmission(kind, service.OutcomeFailed)
		return nil, fmt.Errorf("failed to store healthcare plan: %w", err)
	}
	s.metrics.CountSubmission(kind, service.OutcomeStored)

	s.notifier.Enqueue(model.SubmissionEvent{
		Kind:      model.KindHealthcarePlan,
		ID:        plan.ID,
		CreatedAt: plan.CreatedAt,
	})

	return &model.PlanResponse{
		Plan:  plan.Plan,
		Age:   plan.Age,
		Goals: plan.Goals,
	}, nil
}
