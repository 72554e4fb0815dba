package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"plain decimal", "50.25", "50.25", false},
		{"thousands separator", "1,264.82", "1264.82", false},
		{"apostrophe separator", "12'500.00", "12500", false},
		{"surrounding whitespace", " 99.90 ", "99.9", false},
		{"negative amount", "-42.00", "-42", false},
		{"empty string", "", "", true},
		{"not a number", "abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			expected, _ := decimal.NewFromString(tt.expected)
			assert.True(t, expected.Equal(dec), "expected %s, got %s", expected, dec)
		})
	}
}

func TestParseDirection(t *testing.T) {
	dir, err := ParseDirection("Debit")
	assert.NoError(t, err)
	assert.Equal(t, DirectionDebit, dir)

	dir, err = ParseDirection(" Credit ")
	assert.NoError(t, err)
	assert.Equal(t, DirectionCredit, dir)

	_, err = ParseDirection("Transfer")
	assert.Error(t, err)

	_, err = ParseDirection("")
	assert.Error(t, err)
}

func TestTransactionFlowHelpers(t *testing.T) {
	debit := Transaction{Direction: DirectionDebit}
	assert.True(t, debit.IsDebit())
	assert.False(t, debit.IsCredit())

	credit := Transaction{Direction: DirectionCredit}
	assert.True(t, credit.IsCredit())
	assert.False(t, credit.IsDebit())
}
