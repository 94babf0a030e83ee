package validation

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/healthcare-platform/pkg/errors"
)

func assertCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, errors.Classify(err).Code, err.Error())
}

func TestDiagnosis(t *testing.T) {
	v := New()

	in, err := v.Diagnosis(Fields{"patient_name": "  Ada  ", "symptoms": " Dry cough "})
	require.NoError(t, err)
	assert.Equal(t, "Ada", in.PatientName)
	assert.Equal(t, "Dry cough", in.Symptoms)
	assert.Zero(t, in.Age)

	in, err = v.Diagnosis(Fields{"patient_name": "Ada", "symptoms": "cough", "age": "0", "email": "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", in.Email)

	_, err = v.Diagnosis(Fields{"patient_name": "Ada", "symptoms": "   "})
	assertCode(t, err, errors.ErrMissingField)

	_, err = v.Diagnosis(Fields{"symptoms": "cough"})
	assertCode(t, err, errors.ErrMissingField)

	_, err = v.Diagnosis(Fields{"patient_name": "Ada", "symptoms": "cough", "age": "forty"})
	assertCode(t, err, errors.ErrInvalidFormat)

	_, err = v.Diagnosis(Fields{"patient_name": "Ada", "symptoms": "cough", "age": "-1"})
	assertCode(t, err, errors.ErrOutOfRange)
}

func TestConsultation(t *testing.T) {
	v := New()

	in, err := v.Consultation(Fields{"name": "Ada", "email": "ada@example.com", "date": "2024-02-15"})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-15", in.Date)

	_, err = v.Consultation(Fields{"name": "Ada", "email": "ada@example.com", "date": "2024-02-30"})
	assertCode(t, err, errors.ErrInvalidFormat)

	_, err = v.Consultation(Fields{"name": "Ada", "email": "ada@example.com"})
	assertCode(t, err, errors.ErrMissingField)

	_, err = v.Consultation(Fields{"name": "Ada", "email": "not-an-email", "date": "2024-02-15"})
	assertCode(t, err, errors.ErrInvalidFormat)
}

func TestPlanAgeBoundaries(t *testing.T) {
	v := New()

	for _, age := range []string{"1", "150"} {
		_, err := v.Plan(Fields{"age": age, "goals": "sleep"})
		assert.NoError(t, err, age)
	}
	for _, age := range []string{"0", "151"} {
		_, err := v.Plan(Fields{"age": age, "goals": "sleep"})
		assertCode(t, err, errors.ErrOutOfRange)
	}

	_, err := v.Plan(Fields{"goals": "sleep"})
	assertCode(t, err, errors.ErrMissingField)

	_, err = v.Plan(Fields{"age": "3.5", "goals": "sleep"})
	assertCode(t, err, errors.ErrInvalidFormat)

	_, err = v.Plan(Fields{"age": "30", "goals": ""})
	assertCode(t, err, errors.ErrMissingField)
}

func TestUpload(t *testing.T) {
	v := New()

	in, err := v.Upload(&multipart.FileHeader{Filename: "data.csv"})
	require.NoError(t, err)
	assert.Equal(t, "csv", in.FileType)

	in, err = v.Upload(&multipart.FileHeader{Filename: "Readings.TXT"})
	require.NoError(t, err)
	assert.Equal(t, "txt", in.FileType)

	_, err = v.Upload(&multipart.FileHeader{Filename: "data.exe"})
	assertCode(t, err, errors.ErrUnsupportedType)

	_, err = v.Upload(nil)
	assertCode(t, err, errors.ErrMissingField)

	_, err = v.Upload(&multipart.FileHeader{Filename: ""})
	assertCode(t, err, errors.ErrMissingField)
}
