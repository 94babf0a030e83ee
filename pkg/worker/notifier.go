package worker

import (
	"context"
	"time"

	"github.com/jwalitptl/healthcare-platform/internal/email"
	"github.com/jwalitptl/healthcare-platform/internal/model"
	"github.com/jwalitptl/healthcare-platform/pkg/logger"
	"github.com/jwalitptl/healthcare-platform/pkg/messaging"
	"github.com/jwalitptl/healthcare-platform/pkg/metrics"
)

const (
	channelBroker = "broker"
	channelEmail  = "email"
)

type NotifierConfig struct {
	Channel       string
	QueueSize     int
	RetryAttempts int
	RetryDelay    time.Duration
}

func DefaultNotifierConfig() NotifierConfig {
	return NotifierConfig{
		Channel:       "healthcare.submissions",
		QueueSize:     256,
		RetryAttempts: 3,
		RetryDelay:    time.Second,
	}
}

// Notifier delivers submission events after the record has been stored.
// Delivery is best-effort and never blocks the request that enqueued it.
type Notifier struct {
	queue   chan model.SubmissionEvent
	broker  messaging.Broker
	mailer  email.Service
	config  NotifierConfig
	logger  *logger.Logger
	metrics *metrics.Metrics
}

func NewNotifier(
	broker messaging.Broker,
	mailer email.Service,
	config NotifierConfig,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *Notifier {
	defaults := DefaultNotifierConfig()
	if config.Channel == "" {
		config.Channel = defaults.Channel
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = defaults.RetryAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = defaults.RetryDelay
	}
	if broker == nil {
		broker = messaging.NopBroker{}
	}
	if mailer == nil {
		mailer = email.NopService{}
	}

	return &Notifier{
		queue:   make(chan model.SubmissionEvent, config.QueueSize),
		broker:  broker,
		mailer:  mailer,
		config:  config,
		logger:  logger,
		metrics: metrics,
	}
}

// Enqueue hands an event to the worker. It reports false and drops the
// event when the queue is full.
func (n *Notifier) Enqueue(evt model.SubmissionEvent) bool {
	select {
	case n.queue <- evt:
		return true
	default:
		n.metrics.NotificationsDropped.Inc()
		n.logger.Warn("Notification queue full, dropping event", "kind", string(evt.Kind), "id", evt.ID)
		return false
	}
}

// Start processes events until ctx is cancelled.
func (n *Notifier) Start(ctx context.Context) {
	n.logger.Info("Starting notification worker", "channel", n.config.Channel)

	for {
		select {
		case <-ctx.Done():
			n.logger.Info("Shutting down notification worker", "pending", len(n.queue))
			return
		case evt := <-n.queue:
			n.process(ctx, evt)
		}
	}
}

func (n *Notifier) process(ctx context.Context, evt model.SubmissionEvent) {
	err := n.retry(ctx, channelBroker, func() error {
		return n.broker.Publish(ctx, n.config.Channel, evt)
	})
	n.record(channelBroker, evt, err)

	if evt.Kind != model.KindConsultationRequest || evt.Email == "" {
		return
	}

	err = n.retry(ctx, channelEmail, func() error {
		return n.mailer.SendConsultationConfirmation(ctx, evt.Email, evt.Name, evt.Date)
	})
	n.record(channelEmail, evt, err)
}

func (n *Notifier) record(channel string, evt model.SubmissionEvent, err error) {
	if err != nil {
		n.metrics.NotificationsFailed.WithLabelValues(channel).Inc()
		n.logger.Error(err, "Failed to deliver notification",
			"channel", channel,
			"kind", string(evt.Kind),
			"id", evt.ID)
		return
	}
	n.metrics.NotificationsSent.WithLabelValues(channel).Inc()
}

func (n *Notifier) retry(ctx context.Context, channel string, fn func() error) error {
	var err error
	for i := 0; i < n.config.RetryAttempts; i++ {
		if i > 0 {
			n.metrics.NotificationRetries.WithLabelValues(channel).Inc()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(n.config.RetryDelay):
			}
		}
		if err = fn(); err == nil {
			return nil
		}
	}
	return err
}
