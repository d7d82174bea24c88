// Package batch handles directory batch conversion
package batch

import (
	"github.com/spf13/cobra"

	"eqtools/eq-ynab/cmd/root"
	"eqtools/eq-ynab/internal/eqparser"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert all EQ Bank CSV files in a directory",
	Long: `Convert every EQ Bank CSV export in the input directory into a _ynab.csv
file in the output directory. Files that do not carry the EQ Bank statement
header are skipped.`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.InputDir, "input-dir", "d", "", "Input directory")
	Cmd.Flags().StringVarP(&root.OutputDir, "output-dir", "t", "", "Output directory")
}

func batchFunc(cmd *cobra.Command, args []string) {
	if root.InputDir == "" || root.OutputDir == "" {
		root.Log.Fatalf("Both --input-dir and --output-dir are required")
	}

	eqparser.SetLogger(root.Log)
	count, err := eqparser.BatchConvert(root.InputDir, root.OutputDir)
	if err != nil {
		root.Log.Fatalf("Error during batch conversion: %v", err)
	}
	root.Log.Infof("Batch conversion completed: %d file(s) converted", count)
}
