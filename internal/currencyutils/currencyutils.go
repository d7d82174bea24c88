// Package currencyutils parses the currency-prefixed signed amounts found
// in the bank export ("$24640.45", "-$610").
package currencyutils

import (
	"errors"

	"github.com/shopspring/decimal"

	"eqtools/eq-ynab/internal/parsererror"
)

var errMissingPayload = errors.New("missing numeric payload after sign")

// ParseSignedAmount extracts sign and magnitude from a raw amount field and
// returns the signed decimal value.
func ParseSignedAmount(field string) (decimal.Decimal, error) {
	payload, negative, err := splitCurrencyPrefix(field)
	if err != nil {
		return decimal.Zero, err
	}

	amount, err := decimal.NewFromString(payload)
	if err != nil {
		return decimal.Zero, &parsererror.AmountParseError{Value: payload, Err: err}
	}

	if negative {
		amount = amount.Neg()
	}
	return amount, nil
}

// splitCurrencyPrefix classifies the leading characters of an amount field
// and returns the numeric payload. The export uses a fixed one-character
// currency symbol after an optional minus, so the payload starts at offset
// 2 for negative values and offset 1 otherwise. Any other prefix format
// leaves a payload that fails the decimal parse rather than being silently
// misread.
func splitCurrencyPrefix(field string) (payload string, negative bool, err error) {
	if len(field) == 0 {
		return "", false, &parsererror.EmptyAmountError{}
	}

	negative = field[0] == '-'
	offset := 1
	if negative {
		offset = 2
	}

	if len(field) < offset {
		return "", negative, &parsererror.AmountParseError{Value: field, Err: errMissingPayload}
	}
	return field[offset:], negative, nil
}
