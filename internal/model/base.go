package model

import "time"

// Base contains common fields for all record kinds
type Base struct {
	ID        int64     `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RecordKind names one of the persisted entity types
type RecordKind string

const (
	KindPatientSubmission   RecordKind = "patient_submission"
	KindConsultationRequest RecordKind = "consultation_request"
	KindHealthcarePlan      RecordKind = "healthcare_plan"
	KindDataAnalysis        RecordKind = "data_analysis"
)

// RecordKinds lists every kind in schema order
var RecordKinds = []RecordKind{
	KindPatientSubmission,
	KindConsultationRequest,
	KindHealthcarePlan,
	KindDataAnalysis,
}
