package model

import "time"

// RecordStats counts stored rows per record kind
type RecordStats struct {
	Counts      map[RecordKind]int64 `json:"counts"`
	GeneratedAt time.Time            `json:"generated_at"`
}

// SubmissionEvent announces a stored record to downstream consumers
type SubmissionEvent struct {
	Kind      RecordKind `json:"kind"`
	ID        int64      `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	// Email and Name are set for consultation confirmations only
	Email string `json:"-"`
	Name  string `json:"-"`
	Date  string `json:"-"`
}
