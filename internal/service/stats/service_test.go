package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/healthcare-platform/internal/model"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CountByKind(ctx context.Context) (map[model.RecordKind]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[model.RecordKind]int64)
	return counts, args.Error(1)
}

func TestGetCachesCounts(t *testing.T) {
	repo := new(mockRepo)
	repo.On("CountByKind", mock.Anything).Return(map[model.RecordKind]int64{
		model.KindPatientSubmission: 3,
	}, nil).Once()

	svc := NewService(repo, time.Minute)

	first, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), first.Counts[model.KindPatientSubmission])

	second, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)

	repo.AssertNumberOfCalls(t, "CountByKind", 1)
}

func TestGetDoesNotCacheErrors(t *testing.T) {
	repo := new(mockRepo)
	repo.On("CountByKind", mock.Anything).Return(nil, errors.New("db closed")).Once()
	repo.On("CountByKind", mock.Anything).Return(map[model.RecordKind]int64{}, nil).Once()

	svc := NewService(repo, 0)

	_, err := svc.Get(context.Background())
	require.Error(t, err)

	_, err = svc.Get(context.Background())
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "CountByKind", 2)
}
