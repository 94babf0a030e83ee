package service

import "github.com/jwalitptl/healthcare-platform/internal/model"

// Notifier receives an event for every stored record. Enqueue must not block.
type Notifier interface {
	Enqueue(evt model.SubmissionEvent) bool
}

// NopNotifier drops every event
type NopNotifier struct{}

func (NopNotifier) Enqueue(model.SubmissionEvent) bool { return true }

// Submission outcomes reported to metrics
const (
	OutcomeStored   = "stored"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)
