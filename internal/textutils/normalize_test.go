package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "SuperMarket", "supermarket"},
		{"trims leading and trailing whitespace", "  COOP Geneva  ", "coop geneva"},
		{"empty string stays empty", "", ""},
		{"whitespace only collapses to empty", "   \t ", ""},
		{"inner whitespace preserved", " Flight  XYZ123 ", "flight  xyz123"},
		{"already normalized", "migros", "migros"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}
