// Package analysis holds the budget calculation core: per-category variance,
// monthly performance aggregation with alerting, and long-run accuracy zones
// for the dartboard visualization. Everything in here is a pure function over
// already-fetched data; fetching and persistence live elsewhere.
package analysis

import (
	"github.com/bullseye-app/bullseye/internal/budget"
)

// Status classifies a category's spend against its monthly limit.
type Status string

const (
	StatusUnder Status = "under"
	// StatusOnTarget means "approaching or within limit", not exactly at it.
	StatusOnTarget Status = "on_target"
	StatusOver     Status = "over"
)

// Trend is always stable: there is no historical comparison, deliberately.
type Trend string

const TrendStable Trend = "stable"

// Comparison is one category's budget-vs-actual result for a month.
// Computed fresh on every call, never persisted.
type Comparison struct {
	Category           string
	Budgeted           int64 // cents
	Actual             int64 // cents
	Variance           int64 // Actual - Budgeted
	VariancePercentage float64
	SpentPercentage    float64
	Status             Status
	Trend              Trend
	WarningThreshold   int
	Unlimited          bool
}

// Compare computes a single category's comparison for one month. A category
// missing from the configuration is treated as zero-budget, not an error.
// Zero-budget categories report a zero variance percentage; that silent zero
// is designed behavior for unlimited or misconfigured categories.
func Compare(name string, actual int64, categories map[string]budget.CategoryConfig) Comparison {
	cfg, ok := categories[name]

	var budgeted int64

	threshold := budget.DefaultWarningThreshold
	if ok {
		budgeted = cfg.MonthlyLimit
		threshold = cfg.Threshold()
	}

	variance := actual - budgeted

	var variancePct, spentPct float64

	if budgeted > 0 {
		variancePct = float64(variance) / float64(budgeted) * 100
		spentPct = float64(actual) / float64(budgeted) * 100
	}

	warningAmount := budgeted * int64(threshold) / 100

	// Order matters: over wins, then approaching-or-within, then under.
	// A zero budget can never be "on target".
	status := StatusUnder

	switch {
	case actual > budgeted:
		status = StatusOver
	case budgeted > 0 && actual >= warningAmount:
		status = StatusOnTarget
	}

	return Comparison{
		Category:           name,
		Budgeted:           budgeted,
		Actual:             actual,
		Variance:           variance,
		VariancePercentage: variancePct,
		SpentPercentage:    spentPct,
		Status:             status,
		Trend:              TrendStable,
		WarningThreshold:   threshold,
		Unlimited:          cfg.Unlimited,
	}
}
