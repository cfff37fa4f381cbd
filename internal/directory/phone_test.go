package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		phone string
		want  bool
	}{
		{"1234567", true},
		{"0", true},
		{"79991234567", true},
		{"", false},
		{" 1234567", false},
		{"+71234567", false},
		{"123-45-67", false},
		{"12a34", false},
		{"１２３", false}, // full-width digits are not decimal ASCII digits
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidPhone(tc.phone), "phone %q", tc.phone)
	}
}
