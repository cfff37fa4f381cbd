package directory

// MapSource adapts a pre-assembled column→value mapping into a FieldSource.
// Columns absent from the mapping yield the empty string, i.e. "keep the
// current value". This is the binding used by the non-interactive CLI edit
// and by tests; the TUI binds a form instead.
func MapSource(values map[string]string) FieldSource {
	return func(column string) (string, error) {
		return values[column], nil
	}
}
