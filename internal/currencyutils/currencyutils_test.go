package currencyutils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eqtools/eq-ynab/internal/parsererror"
)

func TestParseSignedAmount(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"$24640.45", "24640.45"},
		{"$1.59", "1.59"},
		{"-$610", "-610"},
		{"-$271.80", "-271.8"},
		{"$0", "0"},
	}

	for _, tt := range tests {
		got, err := ParseSignedAmount(tt.field)
		assert.NoError(t, err, tt.field)
		assert.Equal(t, tt.want, got.String(), tt.field)
	}
}

func TestParseSignedAmountSignFollowsLeadingMinus(t *testing.T) {
	neg, err := ParseSignedAmount("-$0.01")
	assert.NoError(t, err)
	assert.True(t, neg.IsNegative())

	pos, err := ParseSignedAmount("$0.01")
	assert.NoError(t, err)
	assert.False(t, pos.IsNegative())
}

func TestParseSignedAmountEmptyField(t *testing.T) {
	_, err := ParseSignedAmount("")
	var empty *parsererror.EmptyAmountError
	assert.ErrorAs(t, err, &empty)
}

func TestParseSignedAmountInvalidPayload(t *testing.T) {
	for _, field := range []string{"$abc", "-$", "$", "-", "€12.50"} {
		_, err := ParseSignedAmount(field)
		assert.Error(t, err, field)
		var parse *parsererror.AmountParseError
		assert.ErrorAs(t, err, &parse, field)
	}
}
