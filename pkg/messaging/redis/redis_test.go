package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPoolOptions(t *testing.T) {
	opts, err := redis.ParseURL("redis://localhost:6379/2")
	require.NoError(t, err)

	applyPoolOptions(opts, Config{MaxRetries: 4, RetryBackoff: 20 * time.Millisecond, PoolSize: 8})

	assert.Equal(t, 4, opts.MaxRetries)
	assert.Equal(t, 20*time.Millisecond, opts.MinRetryBackoff)
	assert.Equal(t, 8, opts.PoolSize)
	assert.Equal(t, 2, opts.DB)
}

func TestNewRedisBrokerRejectsBadURL(t *testing.T) {
	_, err := NewRedisBroker(context.Background(), Config{URL: "http://not-redis"}, nil)
	assert.Error(t, err)
}

func TestPublishTripsBreakerOnUnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 50 * time.Millisecond,
	})
	b := NewWithClient(client, nil)
	defer b.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		assert.Error(t, b.Publish(ctx, "healthcare.submissions", map[string]string{"kind": "test"}))
	}

	err := b.Publish(ctx, "healthcare.submissions", map[string]string{"kind": "test"})
	assert.ErrorContains(t, err, "circuit breaker is open")
}
