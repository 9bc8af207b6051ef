// Package statement parses bank statement CSV exports into neutral entries.
// Layouts are described by profiles; detection probes delimiters and scans
// for a header row matching a known profile, so preamble lines and footers
// in real exports are skipped without configuration.
package statement

import (
	"time"

	"github.com/bullseye-app/bullseye/internal/transaction"
)

// Entry is one parsed statement line. Amount is always positive, in cents;
// the direction lives in Type. Category is the raw text of the statement's
// category column when the matched profile has one, empty otherwise.
type Entry struct {
	Date        time.Time
	Description string
	Amount      int64
	Type        transaction.Type
	Category    string
}
