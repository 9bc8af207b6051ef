package statement

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one signed column (e.g. "Amount" with value "-10,00").
	amountSingle amountMode = iota
	// amountSplit means separate debit and credit columns.
	amountSplit
)

// Profile describes the column layout of one statement export format.
// Supporting a new bank is just adding a Profile to the profiles slice.
type Profile struct {
	Name        string
	DateCol     string
	DescCol     string
	AmountMode  amountMode
	AmountCol   string // used when AmountMode == amountSingle
	DebitCol    string // used when AmountMode == amountSplit
	CreditCol   string // used when AmountMode == amountSplit
	CategoryCol string // optional
	DateLayouts []string
}

// requiredCols returns the column names that must be present for this
// profile to match. The category column is never required.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

var dayFirstLayouts = []string{"02-01-2006", "02/01/2006"}

// profiles is the ordered list of export formats to try during detection.
// More specific profiles come first to avoid false matches.
var profiles = []Profile{
	{
		Name:        "card",
		DateCol:     "Data",
		DescCol:     "Descrição",
		AmountMode:  amountSplit,
		DebitCol:    "Débito",
		CreditCol:   "Crédito",
		DateLayouts: dayFirstLayouts,
	},
	{
		Name:        "extrato",
		DateCol:     "Data mov.",
		DescCol:     "Descrição",
		AmountMode:  amountSingle,
		AmountCol:   "Movimento",
		DateLayouts: dayFirstLayouts,
	},
	{
		Name:        "conta",
		DateCol:     "Data mov.",
		DescCol:     "Descrição",
		AmountMode:  amountSingle,
		AmountCol:   "Montante",
		DateLayouts: dayFirstLayouts,
	},
	{
		Name:        "generic",
		DateCol:     "Date",
		DescCol:     "Description",
		AmountMode:  amountSingle,
		AmountCol:   "Amount",
		CategoryCol: "Category",
		DateLayouts: []string{"2006-01-02", "02/01/2006"},
	},
}
