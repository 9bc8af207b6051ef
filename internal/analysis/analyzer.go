package analysis

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/bullseye-app/bullseye/internal/budget"
	"github.com/bullseye-app/bullseye/internal/transaction"
)

type AlertType string

const (
	AlertBudgetExceeded   AlertType = "budget_exceeded"
	AlertApproachingLimit AlertType = "approaching_limit"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// Alert is a derived threshold-crossing notification. The id is built from
// category, month, year and type, so recomputing the same month always yields
// the same id and consumers can deduplicate by it.
type Alert struct {
	ID           string
	Type         AlertType
	Severity     Severity
	Category     string
	Message      string
	Amount       int64 // cents
	Percentage   float64
	Timestamp    time.Time
	Acknowledged bool
}

// Analysis is the cross-category monthly result consumed by the dashboard.
type Analysis struct {
	Month              time.Month
	Year               int
	TotalBudgeted      int64
	TotalSpent         int64
	TotalVariance      int64
	Comparisons        []Comparison
	Income             int64
	SavingsRate        float64
	IncomeExpenseRatio float64
	Alerts             []Alert
}

// Analyze aggregates variance results across all active categories of the
// budget for one (month, year) and derives totals, savings rate and alerts.
// It is a pure function: identical inputs produce identical output, including
// alert ids and timestamps.
//
// Spend recorded against inactive or unconfigured categories is invisible
// here: it contributes to no comparison and no total until reassigned.
func Analyze(txs []*transaction.Transaction, month time.Month, year int, b *budget.PersonalBudget) *Analysis {
	spent := make(map[string]int64)

	var income int64

	for _, tx := range txs {
		if tx.Date.Year() != year || tx.Date.Month() != month {
			continue
		}

		switch tx.Type {
		case transaction.TypeExpense:
			spent[tx.CategoryName] += tx.Amount
		case transaction.TypeIncome:
			income += tx.Amount
		}
	}

	a := &Analysis{
		Month:  month,
		Year:   year,
		Income: income,
	}

	for _, name := range slices.Sorted(maps.Keys(b.Categories)) {
		cfg := b.Categories[name]
		if !cfg.Active {
			continue
		}

		c := Compare(name, spent[name], b.Categories)

		a.Comparisons = append(a.Comparisons, c)
		a.TotalBudgeted += c.Budgeted
		a.TotalSpent += c.Actual
		a.TotalVariance += c.Variance
	}

	if income > 0 {
		a.SavingsRate = float64(income-a.TotalSpent) / float64(income) * 100
	}

	if a.TotalSpent > 0 {
		a.IncomeExpenseRatio = float64(income) / float64(a.TotalSpent)
	}

	if b.Settings.WarningNotifications {
		a.Alerts = buildAlerts(a.Comparisons, month, year)
	}

	return a
}

// buildAlerts emits at most one alert per category: an exceeded alert wins
// over an approaching one. The timestamp is the start of the analyzed month
// so recomputation never changes alert fields.
func buildAlerts(comparisons []Comparison, month time.Month, year int) []Alert {
	ts := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	var alerts []Alert

	for _, c := range comparisons {
		if c.Unlimited {
			continue
		}

		if c.Status == StatusOver {
			alerts = append(alerts, Alert{
				ID:         fmt.Sprintf("exceeded-%s-%s-%d", c.Category, month, year),
				Type:       AlertBudgetExceeded,
				Severity:   SeverityHigh,
				Category:   c.Category,
				Message:    fmt.Sprintf("%s is %.2f over its monthly limit", c.Category, float64(c.Variance)/100),
				Amount:     c.Variance,
				Percentage: c.SpentPercentage,
				Timestamp:  ts,
			})

			continue
		}

		if c.SpentPercentage >= float64(c.WarningThreshold) && c.SpentPercentage < 100 {
			alerts = append(alerts, Alert{
				ID:         fmt.Sprintf("approaching-%s-%s-%d", c.Category, month, year),
				Type:       AlertApproachingLimit,
				Severity:   SeverityMedium,
				Category:   c.Category,
				Message:    fmt.Sprintf("%s has used %.1f%% of its monthly limit", c.Category, c.SpentPercentage),
				Amount:     c.Actual,
				Percentage: c.SpentPercentage,
				Timestamp:  ts,
			})
		}
	}

	return alerts
}
