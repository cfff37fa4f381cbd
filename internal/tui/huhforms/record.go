// Package huhforms builds the huh forms shared by the TUI and the
// interactive CLI commands.
package huhforms

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/teledex/internal/directory"
	"github.com/thenoetrevino/teledex/internal/models"
)

// Values holds one form-bound value per user-supplied schema column.
// The form updates the pointers in place.
type Values map[string]*string

// NewValues allocates an empty value set covering every non-ID column.
func NewValues() Values {
	v := make(Values, len(models.UserFields()))
	for _, col := range models.UserFields() {
		v[col] = new(string)
	}
	return v
}

// Fields returns the collected values as a plain column→string mapping,
// the shape the store's Add expects.
func (v Values) Fields() map[string]string {
	fields := make(map[string]string, len(v))
	for col, ptr := range v {
		fields[col] = *ptr
	}
	return fields
}

// AddRecordForm creates a huh form for a new record: one input per
// non-ID column. Every field is validated inline so the user hears about
// a blank value or a bad phone number before submitting.
func AddRecordForm(values Values) *huh.Form {
	var fields []huh.Field
	for _, col := range models.UserFields() {
		fields = append(fields,
			huh.NewInput().
				Key(col).
				Title(col).
				Validate(validatorFor(col, false)).
				Value(values[col]),
		)
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}

// EditRecordForm creates a huh form prefilled with nothing: the current
// values appear as placeholders and an empty submission keeps a field
// unchanged, matching the store's edit sentinel.
func EditRecordForm(current models.Record, values Values) *huh.Form {
	var fields []huh.Field
	for _, col := range models.UserFields() {
		fields = append(fields,
			huh.NewInput().
				Key(col).
				Title(col).
				Placeholder(current.Fields[col]).
				Description("leave empty to keep the current value").
				Validate(validatorFor(col, true)).
				Value(values[col]),
		)
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}

// validatorFor returns the inline validation for a column. In edit mode
// the empty string is always acceptable because it means "no change".
func validatorFor(column string, allowEmpty bool) func(string) error {
	return func(value string) error {
		if value == "" && allowEmpty {
			return nil
		}
		if strings.TrimSpace(value) == "" {
			return directory.ErrEmptyField
		}
		if models.IsPhoneField(column) && !directory.ValidPhone(value) {
			return directory.ErrInvalidPhone
		}
		return nil
	}
}
