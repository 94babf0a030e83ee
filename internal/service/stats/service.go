package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/jwalitptl/healthcare-platform/internal/model"
	"github.com/jwalitptl/healthcare-platform/internal/repository"
)

const (
	cacheKey   = "record_stats"
	DefaultTTL = 30 * time.Second
)

type StatsService interface {
	Get(ctx context.Context) (*model.RecordStats, error)
}

type Service struct {
	repo  repository.StatsRepository
	cache *cache.Cache
}

// NewService caches the counts for ttl. A non-positive ttl means DefaultTTL.
func NewService(repo repository.StatsRepository, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		repo:  repo,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (s *Service) Get(ctx context.Context) (*model.RecordStats, error) {
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*model.RecordStats), nil
	}

	counts, err := s.repo.CountByKind(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}

	stats := &model.RecordStats{
		Counts:      counts,
		GeneratedAt: time.Now().UTC(),
	}
	s.cache.SetDefault(cacheKey, stats)
	return stats, nil
}
