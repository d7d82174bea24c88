package eqparser

import (
	"io"

	"github.com/sirupsen/logrus"

	"eqtools/eq-ynab/internal/models"
	"eqtools/eq-ynab/internal/parser"
)

// Adapter implements the parser.Parser interface for EQ Bank CSV exports
// by delegating to the package-level functions.
type Adapter struct{}

// NewAdapter creates a new adapter for the eqparser.
func NewAdapter() parser.Parser {
	return &Adapter{}
}

// Parse implements parser.Parser.Parse
func (a *Adapter) Parse(r io.Reader) ([]models.Transaction, error) {
	return Parse(r)
}

// ParseFile implements parser.Parser.ParseFile
func (a *Adapter) ParseFile(filePath string) ([]models.Transaction, error) {
	return ParseFile(filePath)
}

// ValidateFormat implements parser.Parser.ValidateFormat
func (a *Adapter) ValidateFormat(filePath string) (bool, error) {
	return ValidateFormat(filePath)
}

// ConvertToCSV implements parser.Parser.ConvertToCSV
func (a *Adapter) ConvertToCSV(inputFile, outputFile string) error {
	return ConvertToCSV(inputFile, outputFile)
}

// WriteToCSV implements parser.Parser.WriteToCSV
func (a *Adapter) WriteToCSV(transactions []models.Transaction, csvFile string) error {
	return WriteToCSV(transactions, csvFile)
}

// SetLogger implements parser.Parser.SetLogger
func (a *Adapter) SetLogger(logger *logrus.Logger) {
	SetLogger(logger)
}
