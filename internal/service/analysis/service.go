package analysis

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/jwalitptl/healthcare-platform/internal/model"
	"github.com/jwalitptl/healthcare-platform/internal/repository"
	"github.com/jwalitptl/healthcare-platform/internal/rules"
	"github.com/jwalitptl/healthcare-platform/internal/service"
	"github.com/jwalitptl/healthcare-platform/internal/validation"
	"github.com/jwalitptl/healthcare-platform/pkg/metrics"
)

type AnalysisService interface {
	Analyze(ctx context.Context, file *multipart.FileHeader) (*model.AnalysisResponse, error)
}

type Service struct {
	repo      repository.DataAnalysisRepository
	validator *validation.Validator
	notifier  service.Notifier
	metrics   *metrics.Metrics
}

func NewService(repo repository.DataAnalysisRepository, v *validation.Validator, n service.Notifier, m *metrics.Metrics) *Service {
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

// Analyze records an upload by name and type. The file content is never read.
func (s *Service) Analyze(ctx context.Context, file *multipart.FileHeader) (*model.AnalysisResponse, error) {
	kind := string(model.KindDataAnalysis)

	in, err := s.validator.Upload(file)
	if err != nil {
		s.metrics.CountSubmission(kind, service.OutcomeRejected)
		return nil, err
	}

	record := &model.DataAnalysisRecord{
		Filename:       in.Filename,
		FileType:       in.FileType,
		AnalysisResult: rules.Analysis(in.FileType),
	}

	if _, err := s.repo.Create(ctx, record); err != nil {
		s.metrics.CountSubmission(kind, service.OutcomeFailed)
		return nil, fmt.Errorf("failed to store data analysis: %w", err)
	}
	s.metrics.CountSubmission(kind, service.OutcomeStored)

	s.notifier.Enqueue(model.SubmissionEvent{
		Kind:      model.KindDataAnalysis,
		ID:        record.ID,
		CreatedAt: record.CreatedAt,
	})

	return &model.AnalysisResponse{
		Analysis: record.AnalysisResult,
		Filename: record.Filename,
	}, nil
}
