// Package dateutils converts statement date tokens between the bank export
// format and the budgeting importer format.
package dateutils

import (
	"fmt"
	"strings"

	"eqtools/eq-ynab/internal/parsererror"
)

// months is the ordered abbreviation table. Resolution is a linear
// first-match scan, not a map lookup, so the priority order is fixed.
var months = [12]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// ConvertDate reparses a "DD MON YYYY" token (e.g. "29 FEB 2024") into
// "DD/MM/YYYY". The month is matched case-sensitively as a substring
// against the JAN..DEC table and zero-padded to two digits. Day and year
// pass through unmodified; in particular a single-digit day stays
// single-digit.
func ConvertDate(date string) (string, error) {
	parts := strings.Fields(date)
	if len(parts) != 3 {
		return "", &parsererror.MalformedDateError{Value: date}
	}

	day, month, year := parts[0], parts[1], parts[2]

	numericMonth, err := convertMonth(month)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", day, numericMonth, year), nil
}

// convertMonth maps a 3-letter month abbreviation to its 1-based index,
// zero-padded to 2 digits.
func convertMonth(month string) (string, error) {
	for idx, abbr := range months {
		if strings.Contains(month, abbr) {
			return fmt.Sprintf("%02d", idx+1), nil
		}
	}
	return "", &parsererror.UnknownMonthError{Month: month}
}
