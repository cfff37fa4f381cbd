package huhforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/teledex/internal/directory"
	"github.com/thenoetrevino/teledex/internal/models"
)

func TestNewValues_CoversAllUserFields(t *testing.T) {
	t.Parallel()

	values := NewValues()
	require.Len(t, values, len(models.UserFields()))

	*values[models.FieldSurname] = "Ivanov"
	fields := values.Fields()
	assert.Equal(t, "Ivanov", fields[models.FieldSurname])
	assert.Equal(t, "", fields[models.FieldMobilePhone])
}

func TestValidator_AddMode(t *testing.T) {
	t.Parallel()

	v := validatorFor(models.FieldSurname, false)
	assert.ErrorIs(t, v(""), directory.ErrEmptyField)
	assert.ErrorIs(t, v("   "), directory.ErrEmptyField)
	assert.NoError(t, v("Ivanov"))

	phone := validatorFor(models.FieldWorkPhone, false)
	assert.ErrorIs(t, phone("12-34"), directory.ErrInvalidPhone)
	assert.NoError(t, phone("1234"))
}

func TestValidator_EditModeAllowsEmpty(t *testing.T) {
	t.Parallel()

	v := validatorFor(models.FieldMobilePhone, true)
	assert.NoError(t, v(""), "empty means keep current value")
	assert.ErrorIs(t, v("abc"), directory.ErrInvalidPhone)
	assert.NoError(t, v("000"))
}
