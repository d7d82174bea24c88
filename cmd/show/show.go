// Package show handles the statement preview command
package show

import (
	"github.com/spf13/cobra"

	"eqtools/eq-ynab/cmd/root"
	"eqtools/eq-ynab/internal/eqparser"
	"eqtools/eq-ynab/internal/report"
)

// Cmd represents the show command
var Cmd = &cobra.Command{
	Use:   "show",
	Short: "Show converted transactions without writing a file",
	Long: `Parse an EQ Bank CSV export and print the converted transactions as a
table. Nothing is written to disk.`,
	Run: showFunc,
}

func showFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatalf("Input file is required (use --input)")
	}

	eqparser.SetLogger(root.Log)
	transactions, err := eqparser.ParseFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error parsing EQ Bank CSV file: %v", err)
	}

	report.RenderTransactions(cmd.OutOrStdout(), transactions)
}
