package model

// PatientSubmission is one symptom report and the advisory returned for it
type PatientSubmission struct {
	Base
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Age       int    `db:"age" json:"age"`
	Symptoms  string `db:"symptoms" json:"symptoms"`
	Diagnosis string `db:"diagnosis" json:"diagnosis"`
}

// DiagnosisInput is the normalized diagnosis form
type DiagnosisInput struct {
	PatientName string `form:"patient_name" validate:"required"`
	Email       string `form:"email" validate:"omitempty,email"`
	Age         int    `form:"age" validate:"gte=0"`
	Symptoms    string `form:"symptoms" validate:"required"`
}

// DiagnosisResponse is the body returned by POST /api/diagnosis
type DiagnosisResponse struct {
	Diagnosis   string `json:"diagnosis"`
	PatientName string `json:"patient_name"`
	Symptoms    string `json:"symptoms"`
}
