// Package common contains shared functionality for command handlers
package common

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"eqtools/eq-ynab/internal/parser"
)

// ProcessFile converts a single statement file using the given parser.
// With validate set, the input header is checked before conversion.
func ProcessFile(p parser.Parser, inputFile, outputFile string, validate bool, log *logrus.Logger) error {
	p.SetLogger(log)

	if inputFile == "" {
		return fmt.Errorf("input file is required (use --input)")
	}
	if outputFile == "" {
		return fmt.Errorf("output file is required (use --output)")
	}

	if validate {
		log.Info("Validating format...")
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			return fmt.Errorf("error validating file: %w", err)
		}
		if !valid {
			return fmt.Errorf("the file is not a valid EQ Bank statement")
		}
		log.Info("Validation successful.")
	}

	if err := p.ConvertToCSV(inputFile, outputFile); err != nil {
		return fmt.Errorf("error converting to CSV: %w", err)
	}
	log.Info("Conversion completed successfully!")
	return nil
}
