package errors

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneMatchesOriginalCode(t *testing.T) {
	err := fmt.Errorf("load: %w", Clone(ErrNotFound, "announcement not found"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))
	assert.Equal(t, "announcement not found", FromError(err).Message)
}

func TestValidationCarriesFields(t *testing.T) {
	err := Validation(map[string]string{"title": "title is a required field", "content": "content is a required field"})

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "validation failed: content, title", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Nil(t, ErrValidation.Fields)
}

func TestFromErrorWrapsUnknown(t *testing.T) {
	appErr := FromError(sql.ErrConnDone)

	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.ErrorIs(t, appErr, sql.ErrConnDone)
	assert.Nil(t, FromError(nil))
}
