package models

// YNABRow is one row of the budgeting-tool import file. The struct tags
// define the output columns and header verbatim; "Catergory" is the literal
// header the importer requires, not a typo to fix.
type YNABRow struct {
	Date     string `csv:"Date"`
	Payee    string `csv:"Payee"`
	Category string `csv:"Catergory"`
	Memo     string `csv:"Memo"`
	Outflow  string `csv:"Outflow"`
	Inflow   string `csv:"Inflow"`
}

// ToYNABRow maps a converted transaction onto the output columns. The
// magnitude lands in exactly one of Outflow or Inflow depending on sign;
// Category and Memo are always empty.
func ToYNABRow(t Transaction) YNABRow {
	row := YNABRow{
		Date:  t.Date,
		Payee: t.Payee,
	}
	if t.IsOutflow() {
		row.Outflow = t.Magnitude()
	} else {
		row.Inflow = t.Magnitude()
	}
	return row
}
