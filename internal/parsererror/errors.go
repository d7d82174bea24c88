// Package parsererror defines the typed errors produced by the conversion
// pipeline. Every error is fatal: the first one aborts the whole run.
package parsererror

import "fmt"

// InvalidFieldCountError reports a data line that does not split into
// exactly four comma-separated fields.
type InvalidFieldCountError struct {
	Line  string
	Count int
}

func (e *InvalidFieldCountError) Error() string {
	return fmt.Sprintf("invalid number of fields (%d, want 4) in line: %s", e.Count, e.Line)
}

// EmptyAmountError reports an amount field with no leading character to
// classify as sign or currency prefix.
type EmptyAmountError struct{}

func (e *EmptyAmountError) Error() string {
	return "amount field is empty"
}

// AmountParseError reports an amount payload that is not a valid decimal.
type AmountParseError struct {
	Value string
	Err   error
}

func (e *AmountParseError) Error() string {
	return fmt.Sprintf("failed to parse amount '%s': %v", e.Value, e.Err)
}

func (e *AmountParseError) Unwrap() error {
	return e.Err
}

// PayeeExtractionError reports the degenerate case where splitting a payee
// description on a directional keyword yields no segments.
type PayeeExtractionError struct {
	Value string
}

func (e *PayeeExtractionError) Error() string {
	return fmt.Sprintf("failed to extract payee from '%s'", e.Value)
}

// MalformedDateError reports a date token that does not split into exactly
// three whitespace-separated parts.
type MalformedDateError struct {
	Value string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date token '%s': want 'DD MON YYYY'", e.Value)
}

// UnknownMonthError reports a month token that matches no entry of the
// JAN..DEC abbreviation table.
type UnknownMonthError struct {
	Month string
}

func (e *UnknownMonthError) Error() string {
	return fmt.Sprintf("unknown month abbreviation '%s'", e.Month)
}

// OutputWriteError reports a failure writing the converted CSV text.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("failed to write output file '%s': %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}
