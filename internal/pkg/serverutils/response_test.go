package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelopeCodesMatchIntendedStatus(t *testing.T) {
	ok := SuccessResponse("done", "payload")
	assert.True(t, ok.Success)
	assert.Equal(t, 200, ok.Code)

	created := CreatedResponse("stored", "payload")
	assert.True(t, created.Success)
	assert.Equal(t, 201, created.Code)

	failed := ErrorResponse(409, "email already registered")
	assert.False(t, failed.Success)
	assert.Equal(t, 409, failed.Code)
	assert.Equal(t, "email already registered", failed.Message)
}
