package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/healthcare-platform/pkg/errors"
)

type booking struct {
	Name  string `form:"name" validate:"required"`
	Email string `form:"email" validate:"required,email"`
	Date  string `form:"date" validate:"required,isodate"`
}

type upload struct {
	Filename string `form:"dataUpload" validate:"required,fileext=csv json txt"`
}

type ranged struct {
	Age int `form:"age" validate:"gte=1,lte=150"`
}

func TestStructTranslatesTags(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		input interface{}
		code  errors.ErrorCode
		field string
	}{
		{"missing name", booking{Email: "a@b.co", Date: "2024-02-15"}, errors.ErrMissingField, "name"},
		{"bad email", booking{Name: "A", Email: "nope", Date: "2024-02-15"}, errors.ErrInvalidFormat, "email"},
		{"impossible date", booking{Name: "A", Email: "a@b.co", Date: "2024-02-30"}, errors.ErrInvalidFormat, "date"},
		{"wrong layout", booking{Name: "A", Email: "a@b.co", Date: "15/02/2024"}, errors.ErrInvalidFormat, "date"},
		{"exe upload", upload{Filename: "data.exe"}, errors.ErrUnsupportedType, "dataUpload"},
		{"no extension", upload{Filename: "README"}, errors.ErrUnsupportedType, "dataUpload"},
		{"too young", ranged{Age: 0}, errors.ErrOutOfRange, "age"},
		{"too old", ranged{Age: 151}, errors.ErrOutOfRange, "age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			require.Error(t, err)
			appErr := errors.Classify(err)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.field, appErr.Field)
		})
	}
}

func TestStructAcceptsValid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(booking{Name: "A", Email: "a@b.co", Date: "2024-02-15"}))
	assert.NoError(t, v.Struct(upload{Filename: "Data.CSV"}))
	assert.NoError(t, v.Struct(ranged{Age: 1}))
	assert.NoError(t, v.Struct(ranged{Age: 150}))
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "csv", Extension("data.csv"))
	assert.Equal(t, "json", Extension("export.v2.JSON"))
	assert.Equal(t, "", Extension("README"))
	assert.Equal(t, "", Extension("trailing."))
}
