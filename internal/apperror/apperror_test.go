package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Sentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		sentinel error
	}{
		{"validation", ValidationFailed("date is required"), ErrValidation},
		{"unauthorized", Unauthorized("No access token provided"), ErrUnauthorized},
		{"upload", UploadFailed("Failed to upload image"), ErrUpload},
		{"persistence", PersistenceFailed("Failed to create journal entry"), ErrPersistence},
		{"not found", NotFound("journal entry", "abc"), ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel))
		})
	}
}

func TestAppError_UnwrapThroughWrapping(t *testing.T) {
	cause := ValidationFailed("mood is required")
	wrapped := fmt.Errorf("creating entry: %w", cause)

	assert.True(t, errors.Is(wrapped, ErrValidation))

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "mood is required", appErr.Message)
}

func TestNotFound_Message(t *testing.T) {
	err := NotFound("journal entry", "e-123")
	assert.Equal(t, "journal entry not found with id e-123", err.Error())
}
