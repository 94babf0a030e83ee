package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	missing := NewMissingField("symptoms")
	wrapped := fmt.Errorf("validate diagnosis: %w", missing)

	assert.Same(t, missing, Classify(wrapped))
	assert.Nil(t, Classify(nil))

	internal := Classify(fmt.Errorf("boom"))
	assert.Equal(t, ErrInternal, internal.Code)
	assert.Equal(t, http.StatusInternalServerError, internal.StatusCode())
}

func TestStatusAndPublicMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     *AppError
		status  int
		message string
	}{
		{"missing", NewMissingField("name"), http.StatusBadRequest, "name is required"},
		{"format", NewInvalidFormat("date", "date must use YYYY-MM-DD", nil), http.StatusBadRequest, "date must use YYYY-MM-DD"},
		{"range", NewOutOfRange("age", "age must be between 1 and 150"), http.StatusBadRequest, "age must be between 1 and 150"},
		{"type", NewUnsupportedType("dataUpload", "unsupported file type"), http.StatusBadRequest, "unsupported file type"},
		{"storage", NewStorage(fmt.Errorf("disk full")), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.StatusCode())
			assert.Equal(t, tt.message, tt.err.PublicMessage())
		})
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("insert: %w", NewStorage(fmt.Errorf("locked")))
	assert.True(t, HasCode(err, ErrStorage))
	assert.False(t, HasCode(err, ErrMissingField))
	assert.Equal(t, "StorageError", ErrStorage.String())
}
