package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses an amount string into cents, accepting both the
// European convention ("1.234,56") and the plain one ("1234.56"). Whichever
// separator appears last is taken as the decimal mark; the other is
// stripped as a thousands separator.
func parseAmount(s string) (int64, error) {
	clean := strings.ReplaceAll(s, " ", "")
	clean = strings.ReplaceAll(clean, " ", "")

	lastComma := strings.LastIndex(clean, ",")
	lastDot := strings.LastIndex(clean, ".")

	if lastComma > lastDot {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.Replace(clean, ",", ".", 1)
	} else {
		clean = strings.ReplaceAll(clean, ",", "")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
