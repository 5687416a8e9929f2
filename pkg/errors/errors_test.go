package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/Aryan9369/HonestWork/pkg/errors"
)

func TestIsType(t *testing.T) {
	err := apperrors.NewNotFoundError("mentor not found")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	assert.False(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	assert.False(t, apperrors.IsType(stderrors.New("plain"), apperrors.ErrorTypeNotFound))
	assert.False(t, apperrors.IsType(nil, apperrors.ErrorTypeNotFound))
}

func TestIsType_SeesThroughWrapping(t *testing.T) {
	inner := apperrors.NewInvalidTransitionError("session completed")
	wrapped := fmt.Errorf("posting message: %w", inner)
	assert.True(t, apperrors.IsType(wrapped, apperrors.ErrorTypeInvalidTransition))
}

func TestAppError_UnwrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := apperrors.NewInternalError("failed to persist", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), "INTERNAL")
}
