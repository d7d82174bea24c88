// Package report renders converted transactions for terminal display.
package report

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"eqtools/eq-ynab/internal/models"
)

// RenderTransactions writes the converted transactions to w as a table with
// the same column split the output file uses.
func RenderTransactions(w io.Writer, transactions []models.Transaction) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "Payee", "Outflow", "Inflow"})
	table.SetAutoWrapText(false)
	for _, tx := range transactions {
		row := models.ToYNABRow(tx)
		table.Append([]string{
			row.Date,
			row.Payee,
			row.Outflow,
			row.Inflow,
		})
	}
	table.Render()
}
