package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"input", NewInputError("no input"), ErrorTypeInput, http.StatusBadRequest},
		{"acquisition", NewAcquisitionError("fetch"), ErrorTypeAcquisition, http.StatusInternalServerError},
		{"persistence", NewPersistenceError("save"), ErrorTypePersistence, http.StatusInternalServerError},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Empty(t, tt.err.Details)
		})
	}
}

func TestAppError_Details(t *testing.T) {
	err := NewInputError("Validation failed", "url: max", "ignored")

	assert.Equal(t, "url: max", err.Details)
	assert.Equal(t, "input_error: Validation failed (url: max)", err.Error())
}

func TestAppError_Cause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewPersistenceError("Failed to save summary.").WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Cause())
	assert.NotContains(t, err.Error(), "connection refused")
}

func TestGetAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewAcquisitionError("Could not retrieve content."))

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsAcquisitionError(wrapped))
	assert.False(t, IsInputError(wrapped))
	assert.False(t, IsPersistenceError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))

	assert.Nil(t, GetAppError(errors.New("plain")))
	assert.False(t, IsAppError(nil))
}
