package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jwalitptl/healthcare-platform/internal/model"
	"github.com/jwalitptl/healthcare-platform/pkg/logger"
	"github.com/jwalitptl/healthcare-platform/pkg/metrics"
)

type fakeBroker struct {
	mu       sync.Mutex
	failures int
	messages []interface{}
}

func (b *fakeBroker) Publish(_ context.Context, _ string, message interface{}) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failures > 0 {
		b.failures--
		return errors.New("broker unavailable")
	}
	b.messages = append(b.messages, message)
	return nil
}

func (b *fakeBroker) Close() error { return nil }

func (b *fakeBroker) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.messages)
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *fakeMailer) SendConsultationConfirmation(_ context.Context, to, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return nil
}

func (m *fakeMailer) recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent...)
}

func newTestNotifier(b *fakeBroker, m *fakeMailer, cfg NotifierConfig) (*Notifier, *metrics.Metrics) {
	met := metrics.NewMetrics("test")
	return NewNotifier(b, m, cfg, logger.Nop(), met), met
}

func TestNotifierPublishesAndEmails(t *testing.T) {
	b := &fakeBroker{}
	m := &fakeMailer{}
	n, met := newTestNotifier(b, m, NotifierConfig{RetryDelay: time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go n.Start(ctx)

	assert.True(t, n.Enqueue(model.SubmissionEvent{Kind: model.KindPatientSubmission, ID: 1}))
	assert.True(t, n.Enqueue(model.SubmissionEvent{Kind: model.KindConsultationRequest, ID: 2, Email: "ada@example.com", Name: "Ada", Date: "2024-02-15"}))

	assert.Eventually(t, func() bool {
		return b.count() == 2 && len(m.recipients()) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"ada@example.com"}, m.recipients())
	assert.Equal(t, 2.0, testutil.ToFloat64(met.NotificationsSent.WithLabelValues(channelBroker)))
	assert.Equal(t, 1.0, testutil.ToFloat64(met.NotificationsSent.WithLabelValues(channelEmail)))
}

func TestNotifierRetriesBrokerFailures(t *testing.T) {
	b := &fakeBroker{failures: 2}
	n, met := newTestNotifier(b, &fakeMailer{}, NotifierConfig{RetryAttempts: 3, RetryDelay: time.Millisecond})

	n.process(context.Background(), model.SubmissionEvent{Kind: model.KindHealthcarePlan, ID: 9})

	assert.Equal(t, 1, b.count())
	assert.Equal(t, 2.0, testutil.ToFloat64(met.NotificationRetries.WithLabelValues(channelBroker)))
	assert.Equal(t, 0.0, testutil.ToFloat64(met.NotificationsFailed.WithLabelValues(channelBroker)))
}

func TestNotifierGivesUpAfterRetries(t *testing.T) {
	b := &fakeBroker{failures: 10}
	n, met := newTestNotifier(b, &fakeMailer{}, NotifierConfig{RetryAttempts: 2, RetryDelay: time.Millisecond})

	n.process(context.Background(), model.SubmissionEvent{Kind: model.KindDataAnalysis, ID: 3})

	assert.Zero(t, b.count())
	assert.Equal(t, 1.0, testutil.ToFloat64(met.NotificationsFailed.WithLabelValues(channelBroker)))
}

func TestEnqueueDropsWhenFull(t *testing.T) {
	n, met := newTestNotifier(&fakeBroker{}, &fakeMailer{}, NotifierConfig{QueueSize: 1})

	assert.True(t, n.Enqueue(model.SubmissionEvent{ID: 1}))
	assert.False(t, n.Enqueue(model.SubmissionEvent{ID: 2}))
	assert.Equal(t, 1.0, testutil.ToFloat64(met.NotificationsDropped))
}

func TestNewNotifierDefaults(t *testing.T) {
	n := NewNotifier(nil, nil, NotifierConfig{}, logger.Nop(), metrics.NewMetrics("test"))

	assert.Equal(t, DefaultNotifierConfig(), n.config)
	assert.NotPanics(t, func() {
		n.process(context.Background(), model.SubmissionEvent{Kind: model.KindConsultationRequest, Email: "a@b.co"})
	})
}
