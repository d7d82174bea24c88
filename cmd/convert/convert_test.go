package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eqtools/eq-ynab/cmd/convert"
)

func TestConvertCommandMetadata(t *testing.T) {
	assert.Equal(t, "convert", convert.Cmd.Use)
	assert.Contains(t, convert.Cmd.Short, "EQ Bank CSV")
	assert.Contains(t, convert.Cmd.Long, "YNAB import CSV format")
	assert.NotNil(t, convert.Cmd.Run)
}
