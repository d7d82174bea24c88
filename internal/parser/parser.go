// Package parser defines the interface implemented by statement parsers.
package parser

import (
	"io"

	"github.com/sirupsen/logrus"

	"eqtools/eq-ynab/internal/models"
)

// Parser converts a bank statement export into Transaction models and
// writes them out in the budgeting-tool CSV format.
type Parser interface {
	// Parse reads statement data from r and returns the converted
	// transactions in input order. The first row error aborts the parse.
	Parse(r io.Reader) ([]models.Transaction, error)

	// ParseFile parses the statement file at filePath.
	ParseFile(filePath string) ([]models.Transaction, error)

	// ValidateFormat reports whether the file at filePath carries the
	// expected statement header.
	ValidateFormat(filePath string) (bool, error)

	// ConvertToCSV parses inputFile and writes the budgeting-tool CSV to
	// outputFile. No output file is produced if any row fails.
	ConvertToCSV(inputFile, outputFile string) error

	// WriteToCSV writes already-converted transactions to csvFile.
	WriteToCSV(transactions []models.Transaction, csvFile string) error

	// SetLogger installs a configured logger.
	SetLogger(logger *logrus.Logger)
}
