package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_WithDetails(t *testing.T) {
	err := ErrLocationNotFound.WithDetails(map[string]interface{}{"address": "Nowhere"})

	assert.Equal(t, "Nowhere", err.Details["address"])
	assert.Nil(t, ErrLocationNotFound.Details, "shared value must stay untouched")
	assert.True(t, stderrors.Is(err, ErrLocationNotFound))
	assert.True(t, stderrors.Is(fmt.Errorf("wrapped: %w", err), ErrLocationNotFound))
	assert.False(t, stderrors.Is(err, ErrInvalidRequest))
	assert.Equal(t, "LOCATION_NOT_FOUND: Could not find coordinates for address", err.Error())
}
