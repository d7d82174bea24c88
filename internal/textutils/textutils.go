// Package textutils extracts the counterparty name from free-text account
// activity descriptions.
package textutils

import (
	"strings"

	"eqtools/eq-ynab/internal/parsererror"
)

// keywords is the ordered list of directional prepositions that precede
// the counterparty in descriptions like "Payment to CANADA LIFE" or
// "Account Credited from 300605613". Scanned linearly, first match wins.
var keywords = [3]string{" to ", " by ", " from "}

// NormalizePayee strips everything up to and including the first
// directional keyword present in the description and trims the remainder.
// If the keyword occurs several times the segment after the last occurrence
// is kept. A description containing none of the keywords passes through
// unchanged, untrimmed.
//
// This is a best-effort heuristic: when two different keywords both appear,
// only the first keyword in table order is considered, which is not
// necessarily the most specific one.
func NormalizePayee(description string) (string, error) {
	for _, key := range keywords {
		if !strings.Contains(description, key) {
			continue
		}
		segments := strings.Split(description, key)
		if len(segments) == 0 {
			return "", &parsererror.PayeeExtractionError{Value: description}
		}
		return strings.TrimSpace(segments[len(segments)-1]), nil
	}

	return description, nil
}
