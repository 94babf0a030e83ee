package sqlstore

import (
	"github.com/jwalitptl/healthcare-platform/internal/model"
	"github.com/jwalitptl/healthcare-platform/internal/rules"
)

// Sample rows carry the same generated text a live submission would store.

var samplePatients = []model.PatientSubmission{
	samplePatient("John Doe", "john.doe@example.com", 34, "fever and cough"),
	samplePatient("Jane Smith", "jane.smith@example.com", 28, "recurring migraine"),
	samplePatient("Sam Lee", "", 0, "stomach ache after meals"),
}

var sampleConsultations = []model.ConsultationRequest{
	{Name: "John Doe", Email: "john.doe@example.com", Date: "2024-03-01", Status: model.ConsultationStatusPending},
	{Name: "Jane Smith", Email: "jane.smith@example.com", Date: "2024-03-05", Status: "confirmed"},
}

var samplePlans = []model.HealthcarePlan{
	{Age: 45, Goals: "weight loss", Plan: rules.Plan(45, "weight loss")},
	{Age: 30, Goals: "better sleep", Plan: rules.Plan(30, "better sleep")},
}

var sampleAnalyses = []model.DataAnalysisRecord{
	{Filename: "blood_pressure.csv", FileType: "csv", AnalysisResult: rules.Analysis("csv")},
	{Filename: "lab_results.json", FileType: "json", AnalysisResult: rules.Analysis("json")},
}

func samplePatient(name, email string, age int, symptoms string) model.PatientSubmission {
	return model.PatientSubmission{
		Name:      name,
		Email:     email,
		Age:       age,
		Symptoms:  symptoms,
		Diagnosis: rules.Diagnosis(symptoms),
	}
}
