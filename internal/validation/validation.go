// Package validation turns raw form fields into normalized inputs for each
// endpoint, or rejects them with a classified error. It never touches storage.
package validation

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/jwalitptl/healthcare-platform/internal/model"
	"github.com/jwalitptl/healthcare-platform/pkg/errors"
	"github.com/jwalitptl/healthcare-platform/pkg/validator"
)

// Fields maps raw form field names to raw values
type Fields map[string]string

func (f Fields) get(key string) string {
	return strings.TrimSpace(f[key])
}

type Validator struct {
	v *validator.Validator
}

func New() *Validator {
	return &Validator{v: validator.New()}
}

// Diagnosis normalizes a symptom report. Age is optional; empty means unknown (0).
func (v *Validator) Diagnosis(f Fields) (model.DiagnosisInput, error) {
	in := model.DiagnosisInput{
		PatientName: f.get("patient_name"),
		Email:       f.get("email"),
		Symptoms:    f.get("symptoms"),
	}

	if raw := f.get("age"); raw != "" {
		age, err := parseAge(raw)
		if err != nil {
			return model.DiagnosisInput{}, err
		}
		in.Age = age
	}

	if err := v.v.Struct(in); err != nil {
		return model.DiagnosisInput{}, err
	}
	return in, nil
}

// Consultation normalizes a booking request.
func (v *Validator) Consultation(f Fields) (model.ConsultationInput, error) {
	in := model.ConsultationInput{
		Name:  f.get("name"),
		Email: f.get("email"),
		Date:  f.get("date"),
	}
	if err := v.v.Struct(in); err != nil {
		return model.ConsultationInput{}, err
	}
	return in, nil
}

// Plan normalizes a healthcare-plan request. Age is required and bounded.
func (v *Validator) Plan(f Fields) (model.PlanInput, error) {
	raw := f.get("age")
	if raw == "" {
		return model.PlanInput{}, errors.NewMissingField("age")
	}
	age, err := parseAge(raw)
	if err != nil {
		return model.PlanInput{}, err
	}

	in := model.PlanInput{
		Age:   age,
		Goals: f.get("goals"),
	}
	if err := v.v.Struct(in); err != nil {
		return model.PlanInput{}, err
	}
	return in, nil
}

// Upload checks the uploaded file's name against the extension allow-list.
// The file content is not read.
func (v *Validator) Upload(fh *multipart.FileHeader) (model.UploadInput, error) {
	if fh == nil || strings.TrimSpace(fh.Filename) == "" {
		return model.UploadInput{}, errors.NewMissingField("dataUpload")
	}

	in := model.UploadInput{Filename: strings.TrimSpace(fh.Filename)}
	if err := v.v.Struct(in); err != nil {
		return model.UploadInput{}, err
	}
	in.FileType = validator.Extension(in.Filename)
	return in, nil
}

func parseAge(raw string) (int, error) {
	age, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewInvalidFormat("age", "age must be a whole number", err)
	}
	return age, nil
}
