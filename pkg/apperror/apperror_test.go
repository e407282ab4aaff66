package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(Validation("Question text is required")))
	assert.Equal(t, http.StatusNotFound, StatusCode(fmt.Errorf("lookup: %w", NotFound("Note not found"))))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("disk full")))
}

func TestMessagesArePreserved(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Validation("Title and content are required"))

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "Title and content are required", ve.Message)
}
