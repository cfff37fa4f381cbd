package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Record {
	return Record{
		ID: 7,
		Fields: map[string]string{
			FieldSurname:      "Ivanov",
			FieldGivenName:    "Ivan",
			FieldPatronymic:   "Ivanovich",
			FieldOrganization: "Acme",
			FieldWorkPhone:    "1234567",
			FieldMobilePhone:  "7654321",
		},
	}
}

func TestValue_RendersIDAsText(t *testing.T) {
	t.Parallel()

	rec := sample()
	assert.Equal(t, "7", rec.Value(FieldID))
	assert.Equal(t, "Acme", rec.Value(FieldOrganization))
}

func TestRowRoundTrip(t *testing.T) {
	t.Parallel()

	rec := sample()
	row := rec.Row()
	require.Len(t, row, len(Schema))
	assert.Equal(t, "7", row[0])

	back, err := FromRow(row)
	require.NoError(t, err)
	assert.Equal(t, rec, back)
}

func TestFromRow_BadWidth(t *testing.T) {
	t.Parallel()

	_, err := FromRow([]string{"1", "only", "four", "cells"})
	require.Error(t, err)
}

func TestFromRow_BadID(t *testing.T) {
	t.Parallel()

	row := sample().Row()
	row[0] = "seven"
	_, err := FromRow(row)
	require.Error(t, err)
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	rec := sample()
	clone := rec.Clone()
	clone.Fields[FieldSurname] = "Petrov"
	assert.Equal(t, "Ivanov", rec.Fields[FieldSurname])
}

func TestIsPhoneField(t *testing.T) {
	t.Parallel()

	assert.True(t, IsPhoneField(FieldWorkPhone))
	assert.True(t, IsPhoneField(FieldMobilePhone))
	assert.False(t, IsPhoneField(FieldSurname))
	assert.False(t, IsPhoneField(FieldID))
}

func TestUserFields_ExcludesID(t *testing.T) {
	t.Parallel()

	fields := UserFields()
	assert.Len(t, fields, len(Schema)-1)
	assert.NotContains(t, fields, FieldID)
}
