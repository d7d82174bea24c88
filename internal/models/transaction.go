// Package models defines the data structures shared by the conversion
// pipeline and the output writer.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is one converted statement row. Construction is
// all-or-nothing: a Transaction only exists once every field of its source
// line parsed successfully.
type Transaction struct {
	// Date is the transaction date in DD/MM/YYYY form, month zero-padded.
	Date string
	// Payee is the counterparty name, trimmed and prefix-stripped.
	Payee string
	// Amount is the signed amount. Negative means money leaving the account.
	Amount decimal.Decimal
}

// IsOutflow reports whether the transaction removes money from the account.
// Zero amounts count as inflows.
func (t Transaction) IsOutflow() bool {
	return t.Amount.IsNegative()
}

// Magnitude returns the absolute amount rendered without trailing
// fractional zeros, the way the budgeting importer expects it
// (271.80 -> "271.8", 610.00 -> "610").
func (t Transaction) Magnitude() string {
	s := t.Amount.Abs().String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}
