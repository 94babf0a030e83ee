package consultation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/healthcare-platform/internal/model"
	"github.com/jwalitptl/healthcare-platform/internal/repository"
	"github.com/jwalitptl/healthcare-platform/internal/service"
	"github.com/jwalitptl/healthcare-platform/internal/validation"
	"github.com/jwalitptl/healthcare-platform/pkg/metrics"
)

const (
	StatusSuccess = "success"
	BookedMessage = "Consultation booked successfully!"
)

type ConsultationService interface {
	Book(ctx context.Context, fields validation.Fields) (*model.ConsultationResponse, error)
}

type Service struct {
	repo      repository.ConsultationRepository
	validator *validation.Validator
	notifier  service.Notifier
	metrics   *metrics.Metrics
}

func NewService(repo repository.ConsultationRepository, v *validation.Validator, n service.Notifier, m *metrics.Metrics) *Service {
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

// Book stores a pending consultation and echoes it back with its new id.
func (s *Service) Book(ctx context.Context, fields validation.Fields) (*model.ConsultationResponse, error) {
	kind := string(model.KindConsultationRequest)

	in, err := s.validator.Consultation(fields)
	if err != nil {
		s.metrics.CountSubmission(kind, service.OutcomeRejected)
		return nil, err
	}

	c := &model.ConsultationRequest{
		Name:   in.Name,
		Email:  in.Email,
		Date:   in.Date,
		Status: model.ConsultationStatusPending,
	}

	if _, err := s.repo.Create(ctx, c); err != nil {
		s.metrics.CountSubmission(kind, service.OutcomeFailed)
		return nil, fmt.Errorf("failed to store consultation: %w", err)
	}
	s.metrics.CountSubmission(kind, service.OutcomeStored)

	log.Ctx(ctx).Debug().Int64("id", c.ID).Str("date", c.Date).Msg("consultation booked")

	s.notifier.Enqueue(model.SubmissionEvent{
		Kind:      model.KindConsultationRequest,
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		Email:     c.Email,
		Name:      c.Name,
		Date:      c.Date,
	})

	return &model.ConsultationResponse{
		Status:  StatusSuccess,
		Message: BookedMessage,
		Details: model.ConsultationDetails{
			ID:     c.ID,
			Name:   c.Name,
			Email:  c.Email,
			Date:   c.Date,
			Status: c.Status,
		},
	}, nil
}
