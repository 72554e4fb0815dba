// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates the flow of money for a transaction.
type Direction string

const (
	// DirectionDebit marks outgoing money.
	DirectionDebit Direction = "Debit"
	// DirectionCredit marks incoming money.
	DirectionCredit Direction = "Credit"
)

// Transaction represents a single record from a bank transaction feed.
// Records are rebuilt from the feed on every load; they are never
// persisted and do not outlive a session.
type Transaction struct {
	Date      time.Time       // Booking date of the transaction
	Details   string          // Free-text description from the bank
	Amount    decimal.Decimal // Signed amount as decimal value
	Direction Direction       // Either Debit or Credit
	Category  string          // Assigned category, defaults to Uncategorized
}

// IsDebit returns true if the transaction is outgoing money.
func (t *Transaction) IsDebit() bool {
	return t.Direction == DirectionDebit
}

// IsCredit returns true if the transaction is incoming money.
func (t *Transaction) IsCredit() bool {
	return t.Direction == DirectionCredit
}

// ParseAmount converts a feed amount string to a decimal value.
// Bank exports write thousands separators and occasionally stray
// whitespace; both are stripped before conversion.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, ",", "")
	amount = strings.ReplaceAll(amount, "'", "")
	amount = strings.ReplaceAll(amount, " ", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", amountStr, err)
	}
	return dec, nil
}

// ParseDirection validates a Debit/Credit label from the feed.
func ParseDirection(label string) (Direction, error) {
	switch Direction(strings.TrimSpace(label)) {
	case DirectionDebit:
		return DirectionDebit, nil
	case DirectionCredit:
		return DirectionCredit, nil
	}
	return "", fmt.Errorf("unknown flow direction %q (expected %s or %s)",
		label, DirectionDebit, DirectionCredit)
}
