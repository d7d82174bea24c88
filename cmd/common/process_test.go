package common

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"eqtools/eq-ynab/internal/models"
)

// fakeParser records calls and returns configured results.
type fakeParser struct {
	valid       bool
	validateErr error
	convertErr  error

	validated bool
	converted bool
}

func (f *fakeParser) Parse(r io.Reader) ([]models.Transaction, error)         { return nil, nil }
func (f *fakeParser) ParseFile(filePath string) ([]models.Transaction, error) { return nil, nil }
func (f *fakeParser) WriteToCSV(transactions []models.Transaction, csvFile string) error {
	return nil
}
func (f *fakeParser) SetLogger(logger *logrus.Logger) {}

func (f *fakeParser) ValidateFormat(filePath string) (bool, error) {
	f.validated = true
	return f.valid, f.validateErr
}

func (f *fakeParser) ConvertToCSV(inputFile, outputFile string) error {
	f.converted = true
	return f.convertErr
}

func TestProcessFileRequiresInputAndOutput(t *testing.T) {
	log := logrus.New()

	err := ProcessFile(&fakeParser{}, "", "out.csv", false, log)
	assert.ErrorContains(t, err, "input file is required")

	err = ProcessFile(&fakeParser{}, "in.csv", "", false, log)
	assert.ErrorContains(t, err, "output file is required")
}

func TestProcessFileConverts(t *testing.T) {
	p := &fakeParser{}

	err := ProcessFile(p, "in.csv", "out.csv", false, logrus.New())
	assert.NoError(t, err)
	assert.True(t, p.converted)
	assert.False(t, p.validated, "validation only runs when requested")
}

func TestProcessFileValidateRejectsInvalid(t *testing.T) {
	p := &fakeParser{valid: false}

	err := ProcessFile(p, "in.csv", "out.csv", true, logrus.New())
	assert.ErrorContains(t, err, "not a valid EQ Bank statement")
	assert.True(t, p.validated)
	assert.False(t, p.converted, "conversion must not run after failed validation")
}

func TestProcessFilePropagatesConversionError(t *testing.T) {
	cause := errors.New("line 2: invalid number of fields")
	p := &fakeParser{valid: true, convertErr: cause}

	err := ProcessFile(p, "in.csv", "out.csv", true, logrus.New())
	assert.ErrorIs(t, err, cause)
}
