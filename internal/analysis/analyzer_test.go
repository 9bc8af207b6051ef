package analysis_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bullseye-app/bullseye/internal/analysis"
	"github.com/bullseye-app/bullseye/internal/budget"
	"github.com/bullseye-app/bullseye/internal/transaction"
)

func testBudget() *budget.PersonalBudget {
	return &budget.PersonalBudget{
		Version: 1,
		Active:  true,
		Categories: map[string]budget.CategoryConfig{
			"Groceries":     {MonthlyLimit: 60000, WarningThreshold: 80, Active: true},
			"Transport":     {MonthlyLimit: 15000, WarningThreshold: 80, Active: true},
			"Entertainment": {MonthlyLimit: 20000, WarningThreshold: 80, Active: false},
		},
		Settings: budget.GlobalSettings{Currency: "EUR", WarningNotifications: true},
	}
}

func expense(category string, amount int64, date time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		Amount:       amount,
		Type:         transaction.TypeExpense,
		CategoryName: category,
		Date:         date,
	}
}

func TestAnalyze(t *testing.T) {
	oct := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)

	txs := []*transaction.Transaction{
		expense("Groceries", 65000, oct),
		expense("Transport", 5000, oct),
		expense("Entertainment", 20000, oct), // inactive category
		expense("Groceries", 10000, oct.AddDate(0, -1, 0)), // previous month
		{Amount: 200000, Type: transaction.TypeIncome, CategoryName: "Salary", Date: oct},
	}

	a := analysis.Analyze(txs, time.October, 2025, testBudget())

	// Inactive categories are excluded from comparisons and totals even
	// though they have spend.
	require.Len(t, a.Comparisons, 2)
	assert.Equal(t, "Groceries", a.Comparisons[0].Category)
	assert.Equal(t, "Transport", a.Comparisons[1].Category)

	assert.Equal(t, int64(75000), a.TotalBudgeted)
	assert.Equal(t, int64(70000), a.TotalSpent)
	assert.Equal(t, int64(-5000), a.TotalVariance)

	assert.Equal(t, int64(200000), a.Income)
	assert.InDelta(t, 65.0, a.SavingsRate, 0.01)
	assert.InDelta(t, 200000.0/70000.0, a.IncomeExpenseRatio, 0.0001)

	// Groceries is over: one exceeded alert with the deterministic id.
	require.Len(t, a.Alerts, 1)
	assert.Equal(t, "exceeded-Groceries-October-2025", a.Alerts[0].ID)
	assert.Equal(t, analysis.AlertBudgetExceeded, a.Alerts[0].Type)
	assert.Equal(t, analysis.SeverityHigh, a.Alerts[0].Severity)
	assert.Equal(t, int64(5000), a.Alerts[0].Amount)
}

func TestAnalyze_ApproachingAlert(t *testing.T) {
	oct := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	txs := []*transaction.Transaction{
		expense("Groceries", 50000, oct), // 83.3% of 600
	}

	a := analysis.Analyze(txs, time.October, 2025, testBudget())

	require.Len(t, a.Alerts, 1)
	assert.Equal(t, "approaching-Groceries-October-2025", a.Alerts[0].ID)
	assert.Equal(t, analysis.AlertApproachingLimit, a.Alerts[0].Type)
	assert.Equal(t, analysis.SeverityMedium, a.Alerts[0].Severity)
}

// A category never gets both an exceeded and an approaching alert for the
// same month.
func TestAnalyze_AlertExclusivity(t *testing.T) {
	oct := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)

	for _, amount := range []int64{48000, 50000, 59999, 60000, 60001, 90000, 200000} {
		txs := []*transaction.Transaction{expense("Groceries", amount, oct)}

		a := analysis.Analyze(txs, time.October, 2025, testBudget())

		byCategory := make(map[string]int)
		for _, alert := range a.Alerts {
			byCategory[alert.Category]++
		}

		assert.LessOrEqualf(t, byCategory["Groceries"], 1, "amount %d", amount)
	}
}

// Calling the analyzer twice on identical inputs yields identical output,
// alert ids and timestamps included.
func TestAnalyze_Deterministic(t *testing.T) {
	oct := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	txs := []*transaction.Transaction{
		expense("Groceries", 65000, oct),
		expense("Transport", 13000, oct),
	}

	first := analysis.Analyze(txs, time.October, 2025, testBudget())
	second := analysis.Analyze(txs, time.October, 2025, testBudget())

	assert.Equal(t, first, second)
}

func TestAnalyze_NotificationsDisabled(t *testing.T) {
	oct := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	txs := []*transaction.Transaction{
		expense("Groceries", 99000, oct),
	}

	b := testBudget()
	b.Settings.WarningNotifications = false

	a := analysis.Analyze(txs, time.October, 2025, b)

	assert.Empty(t, a.Alerts)
	// The comparison itself is unaffected by the notification switch.
	assert.Equal(t, analysis.StatusOver, a.Comparisons[0].Status)
}

func TestAnalyze_UnlimitedCategoryNeverAlerts(t *testing.T) {
	oct := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)

	b := testBudget()
	b.Categories["Health"] = budget.CategoryConfig{Active: true, Unlimited: true}

	a := analysis.Analyze([]*transaction.Transaction{expense("Health", 123400, oct)}, time.October, 2025, b)

	for _, alert := range a.Alerts {
		assert.NotEqual(t, "Health", alert.Category)
	}
}

func TestAnalyze_ZeroIncome(t *testing.T) {
	a := analysis.Analyze(nil, time.October, 2025, testBudget())

	assert.Zero(t, a.SavingsRate)
	assert.Zero(t, a.IncomeExpenseRatio)
}

func TestAnalyze_AlertIDFormat(t *testing.T) {
	oct := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	txs := []*transaction.Transaction{expense("Transport", 16000, oct)}

	a := analysis.Analyze(txs, time.February, 2024, testBudget())

	require.Len(t, a.Alerts, 1)
	assert.Equal(t, fmt.Sprintf("exceeded-Transport-%s-%d", time.February, 2024), a.Alerts[0].ID)
}
