package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/teledex/internal/directory"
	"github.com/thenoetrevino/teledex/internal/models"
)

func TestRenderTable_ContainsHeaderAndValues(t *testing.T) {
	t.Parallel()

	rec := models.Record{ID: 1, Fields: map[string]string{
		models.FieldSurname:      "Ivanov",
		models.FieldGivenName:    "Ivan",
		models.FieldPatronymic:   "Ivanovich",
		models.FieldOrganization: "Acme",
		models.FieldWorkPhone:    "1234567",
		models.FieldMobilePhone:  "7654321",
	}}

	out := RenderTable([]models.Record{rec})
	assert.Contains(t, out, models.FieldSurname)
	assert.Contains(t, out, "Ivanov")
	assert.Contains(t, out, "7654321")
}

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err      error
		code     string
		exitCode int
	}{
		{directory.ErrRecordNotFound, "RECORD_NOT_FOUND", ExitNotFound},
		{directory.ErrEmptyField, "VALIDATION_ERROR", ExitValidation},
		{directory.ErrInvalidPhone, "VALIDATION_ERROR", ExitValidation},
		{fmt.Errorf("wrapped: %w", directory.ErrMissingField), "VALIDATION_ERROR", ExitValidation},
		{errors.New("disk full"), "STORAGE_ERROR", ExitError},
	}

	for _, tc := range cases {
		code, exit := classify(tc.err)
		assert.Equal(t, tc.code, code, "error %v", tc.err)
		assert.Equal(t, tc.exitCode, exit, "error %v", tc.err)
	}
}
