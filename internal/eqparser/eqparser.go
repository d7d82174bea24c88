// Package eqparser converts EQ Bank transaction CSV exports into the
// budgeting-tool import format. A statement line
//
//	29 FEB 2024,Account Credited from 300605613,$1.59,$24640.45
//
// runs through four stages: the line split into exactly four fields, the
// signed amount parsed from its currency prefix, the payee stripped of its
// directional phrase, and the date reformatted to DD/MM/YYYY. Conversion is
// all-or-nothing: the first failing line aborts the run and no output file
// is written.
package eqparser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"eqtools/eq-ynab/internal/currencyutils"
	"eqtools/eq-ynab/internal/dateutils"
	"eqtools/eq-ynab/internal/fileutils"
	"eqtools/eq-ynab/internal/logging"
	"eqtools/eq-ynab/internal/models"
	"eqtools/eq-ynab/internal/parsererror"
	"eqtools/eq-ynab/internal/textutils"
)

// expected statement columns, in order
var headerColumns = [4]string{"Date", "Description", "Amount", "Balance"}

var log = logging.NewLogrusAdapter("info", "text")

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logging.NewLogrusAdapterFromLogger(logger)
	}
}

// Parse reads an EQ Bank CSV export from r and returns the converted
// transactions in input order. The first line is the header and is skipped
// without inspection. Any row failure aborts the parse.
func Parse(r io.Reader) ([]models.Transaction, error) {
	scanner := bufio.NewScanner(r)

	transactions := []models.Transaction{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue // header
		}

		tx, err := convertLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		transactions = append(transactions, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	log.Info("Parsed EQ Bank statement", logging.Field{Key: "count", Value: len(transactions)})
	return transactions, nil
}

// convertLine runs one data line through the full pipeline and returns the
// Transaction, or the first stage error.
func convertLine(line string) (models.Transaction, error) {
	fields, err := splitLine(line)
	if err != nil {
		return models.Transaction{}, err
	}

	// fields[3] is the running balance, unused.
	amount, err := currencyutils.ParseSignedAmount(fields[2])
	if err != nil {
		return models.Transaction{}, err
	}

	payee, err := textutils.NormalizePayee(fields[1])
	if err != nil {
		return models.Transaction{}, err
	}

	date, err := dateutils.ConvertDate(fields[0])
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		Date:   date,
		Payee:  payee,
		Amount: amount,
	}, nil
}

// splitLine splits a raw line on commas. The export format has no quoting,
// so a positional split is exact; anything other than four fields is
// rejected.
func splitLine(line string) ([]string, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 4 {
		return nil, &parsererror.InvalidFieldCountError{Line: line, Count: len(fields)}
	}
	return fields, nil
}

// ParseFile parses the EQ Bank CSV file at filePath.
func ParseFile(filePath string) ([]models.Transaction, error) {
	log.WithField("file", filePath).Info("Parsing EQ Bank CSV file")

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		log.WithError(err).Error("Failed to open EQ Bank CSV file")
		return nil, fmt.Errorf("error opening EQ Bank CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return Parse(file)
}

// FormatCSV renders the converted transactions as the budgeting-tool CSV
// text, header included. The amount magnitude lands in the Outflow column
// for negative amounts and the Inflow column otherwise; rows keep input
// order.
func FormatCSV(transactions []models.Transaction) (string, error) {
	rows := make([]models.YNABRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, models.ToYNABRow(tx))
	}

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("error marshaling CSV: %w", err)
	}
	return out, nil
}

// WriteToCSV writes the converted transactions to csvFile in the
// budgeting-tool format.
func WriteToCSV(transactions []models.Transaction, csvFile string) error {
	log.Info("Writing transactions to CSV file",
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(transactions)})

	out, err := FormatCSV(transactions)
	if err != nil {
		return &parsererror.OutputWriteError{Path: csvFile, Err: err}
	}

	if err := fileutils.WriteFile(csvFile, []byte(out), 0600); err != nil {
		log.WithError(err).Error("Failed to write CSV file")
		return &parsererror.OutputWriteError{Path: csvFile, Err: err}
	}
	return nil
}

// ConvertToCSV converts an EQ Bank CSV file to the budgeting-tool format.
// The output file is only created once every input line has converted.
func ConvertToCSV(inputFile, outputFile string) error {
	transactions, err := ParseFile(inputFile)
	if err != nil {
		return err
	}
	return WriteToCSV(transactions, outputFile)
}

// ValidateFormat checks that the file starts with the expected EQ Bank
// statement header (Date, Description, Amount, Balance).
func ValidateFormat(filePath string) (bool, error) {
	log.WithField("file", filePath).Info("Validating EQ Bank CSV format")

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return false, fmt.Errorf("error opening file for validation: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("error reading header: %w", err)
		}
		return false, nil // empty file
	}

	columns := strings.Split(scanner.Text(), ",")
	if len(columns) != len(headerColumns) {
		return false, nil
	}
	for i, want := range headerColumns {
		if strings.TrimSpace(columns[i]) != want {
			log.WithField("column", columns[i]).Info("Unexpected header column")
			return false, nil
		}
	}
	return true, nil
}

// BatchConvert converts every .csv file in inputDir into a _ynab.csv file
// in outputDir, skipping files that fail header validation. Returns the
// number of files converted.
func BatchConvert(inputDir, outputDir string) (int, error) {
	log.Info("Starting batch conversion of EQ Bank CSV files",
		logging.Field{Key: "inputDir", Value: inputDir},
		logging.Field{Key: "outputDir", Value: outputDir})

	inputInfo, err := os.Stat(inputDir)
	if err != nil {
		return 0, fmt.Errorf("error accessing input directory: %w", err)
	}
	if !inputInfo.IsDir() {
		return 0, fmt.Errorf("input path is not a directory: %s", inputDir)
	}

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return 0, fmt.Errorf("error creating output directory: %w", err)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return 0, fmt.Errorf("error reading input directory: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			continue
		}

		inputFile := filepath.Join(inputDir, entry.Name())

		valid, err := ValidateFormat(inputFile)
		if err != nil {
			log.WithError(err).WithField("file", inputFile).Warn("Error validating file format, skipping")
			continue
		}
		if !valid {
			log.WithField("file", inputFile).Info("File is not an EQ Bank statement, skipping")
			continue
		}

		baseName := strings.TrimSuffix(entry.Name(), ".csv")
		outputFile := filepath.Join(outputDir, baseName+"_ynab.csv")

		if err := ConvertToCSV(inputFile, outputFile); err != nil {
			log.WithError(err).WithField("file", inputFile).Warn("Error converting file, skipping")
			continue
		}

		count++
	}

	log.WithField("count", count).Info("Batch conversion completed")
	return count, nil
}
