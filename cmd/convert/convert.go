// Package convert handles the EQ Bank CSV conversion command
package convert

import (
	"github.com/spf13/cobra"

	"eqtools/eq-ynab/cmd/common"
	"eqtools/eq-ynab/cmd/root"
	"eqtools/eq-ynab/internal/eqparser"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an EQ Bank CSV export to YNAB format",
	Long:  `Convert an EQ Bank transaction CSV export into the YNAB import CSV format.`,
	Run:   convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Convert command called")
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output file: %s", root.SharedFlags.Output)

	p := eqparser.NewAdapter()
	if err := common.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, root.Log); err != nil {
		root.Log.Fatalf("Error processing EQ Bank CSV file: %v", err)
	}
}
