// Package models defines the record schema shared by the directory store
// and the storage adapters.
package models

import "strconv"

// Schema column names. The persisted file keeps the original Russian
// headers, so these constants are the single place they are spelled out.
const (
	FieldID           = "ID"
	FieldSurname      = "Фамилия"
	FieldGivenName    = "Имя"
	FieldPatronymic   = "Отчество"
	FieldOrganization = "Организация"
	FieldWorkPhone    = "Рабочий телефон"
	FieldMobilePhone  = "Сотовый телефон"
)

// Schema is the fixed, ordered column list every record populates.
// Both the store and the adapters derive their layout from this slice
// instead of hardwiring columns per operation.
var Schema = []string{
	FieldID,
	FieldSurname,
	FieldGivenName,
	FieldPatronymic,
	FieldOrganization,
	FieldWorkPhone,
	FieldMobilePhone,
}

// PhoneFields lists the columns that must contain decimal digits only.
var PhoneFields = []string{FieldWorkPhone, FieldMobilePhone}

// UserFields returns the schema columns the user supplies, i.e. everything
// except the system-assigned ID.
func UserFields() []string {
	return Schema[1:]
}

// IsPhoneField reports whether the column is subject to the digits-only rule.
func IsPhoneField(column string) bool {
	for _, f := range PhoneFields {
		if f == column {
			return true
		}
	}
	return false
}

// Record is one directory entry: a system-assigned integer ID plus one
// string value per user-supplied schema column.
type Record struct {
	ID     int
	Fields map[string]string
}

// Value returns the record's value for the given column as text.
// The ID column is rendered as its decimal string form, which is also the
// representation search matches against.
func (r Record) Value(column string) string {
	if column == FieldID {
		return strconv.Itoa(r.ID)
	}
	return r.Fields[column]
}

// Row returns the record as an ordered row of strings matching Schema.
func (r Record) Row() []string {
	row := make([]string, len(Schema))
	for i, col := range Schema {
		row[i] = r.Value(col)
	}
	return row
}

// Clone returns a deep copy of the record. The store hands out clones so
// callers cannot mutate the canonical collection behind its back.
func (r Record) Clone() Record {
	fields := make(map[string]string, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}
	return Record{ID: r.ID, Fields: fields}
}

// FromRow builds a record from an ordered row matching Schema.
// The first cell must parse as the integer ID.
func FromRow(row []string) (Record, error) {
	if len(row) != len(Schema) {
		return Record{}, &RowError{Got: len(row), Want: len(Schema)}
	}

	id, err := strconv.Atoi(row[0])
	if err != nil {
		return Record{}, err
	}

	fields := make(map[string]string, len(Schema)-1)
	for i, col := range Schema[1:] {
		fields[col] = row[i+1]
	}
	return Record{ID: id, Fields: fields}, nil
}

// RowError reports a row whose width does not match the schema.
type RowError struct {
	Got, Want int
}

func (e *RowError) Error() string {
	return "row has " + strconv.Itoa(e.Got) + " columns, schema has " + strconv.Itoa(e.Want)
}
