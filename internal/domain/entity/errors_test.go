package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "required field",
			field:    "name",
			message:  "is required",
			expected: "validation error on field 'name': is required",
		},
		{
			name:     "empty field name",
			field:    "",
			message:  "test message",
			expected: "validation error on field '': test message",
		},
		{
			name:     "empty message",
			field:    "points",
			message:  "",
			expected: "validation error on field 'points': ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Field: tt.field, Message: tt.message}
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_IsValidationFailed(t *testing.T) {
	err := fmt.Errorf("create player: %w", &ValidationError{Field: "position", Message: "must be one of guard, forward, center"})

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(errors.New("validation failed"), ErrValidationFailed))

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "position", validationErr.Field)
}

func TestValidationError_NotOtherSentinels(t *testing.T) {
	err := &ValidationError{Field: "name", Message: "is required"}
	assert.False(t, errors.Is(err, errors.ErrUnsupported))
	assert.Equal(t, "validation failed", ErrValidationFailed.Error())
}
