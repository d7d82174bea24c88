package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidFieldCountError(t *testing.T) {
	err := &InvalidFieldCountError{Line: "a,b,c", Count: 3}
	assert.Contains(t, err.Error(), "want 4")
	assert.Contains(t, err.Error(), "a,b,c")
}

func TestAmountParseErrorUnwrap(t *testing.T) {
	cause := errors.New("not a number")
	err := &AmountParseError{Value: "abc", Err: cause}
	assert.Contains(t, err.Error(), "abc")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestOutputWriteErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &OutputWriteError{Path: "/tmp/out.csv", Err: cause}
	assert.Contains(t, err.Error(), "/tmp/out.csv")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestErrorMessagesNameTheFailingValue(t *testing.T) {
	assert.Contains(t, (&MalformedDateError{Value: "29 FEB"}).Error(), "29 FEB")
	assert.Contains(t, (&UnknownMonthError{Month: "XYZ"}).Error(), "XYZ")
	assert.Contains(t, (&PayeeExtractionError{Value: "x to y"}).Error(), "x to y")
	assert.Equal(t, "amount field is empty", (&EmptyAmountError{}).Error())
}
