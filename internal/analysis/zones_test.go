package analysis_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bullseye-app/bullseye/internal/analysis"
	"github.com/bullseye-app/bullseye/internal/budget"
	"github.com/bullseye-app/bullseye/internal/transaction"
)

func TestZoneConfig_Classify(t *testing.T) {
	zones := analysis.DefaultZones()

	t.Run("PerfectAccuracyIsCenter", func(t *testing.T) {
		zone, pos := zones.Classify(100)

		assert.Equal(t, analysis.ZoneBullseye, zone)
		assert.Zero(t, pos)
	})

	t.Run("Bust", func(t *testing.T) {
		zone, pos := zones.Classify(110)

		assert.Equal(t, analysis.ZoneBust, zone)
		assert.InDelta(t, 1.05, pos, 1e-9)
	})

	t.Run("BustIsCapped", func(t *testing.T) {
		zone, pos := zones.Classify(1000)

		assert.Equal(t, analysis.ZoneBust, zone)
		assert.InDelta(t, 1.5, pos, 1e-9)
	})

	t.Run("ModerateOvershoot", func(t *testing.T) {
		zone, pos := zones.Classify(103)

		assert.Equal(t, analysis.ZoneRing1, zone)
		assert.Greater(t, pos, 0.17)
		assert.Less(t, pos, 0.33)
	})

	t.Run("DeepUndershoot", func(t *testing.T) {
		zone, _ := zones.Classify(10)

		assert.Equal(t, analysis.ZoneRing5, zone)
	})

	t.Run("DegenerateZeroFallsToOuterRing", func(t *testing.T) {
		zone, pos := zones.Classify(0)

		assert.Equal(t, analysis.ZoneRing5, zone)
		assert.Equal(t, 1.0, pos)
	})
}

// Every percentage in (0, 300] lands in exactly one zone: the bands are
// contiguous with no gaps or overlaps.
func TestZoneConfig_PartitionCoverage(t *testing.T) {
	zones := analysis.DefaultZones()

	for pct := 0.1; pct <= 300; pct += 0.1 {
		zone, pos := zones.Classify(pct)

		assert.NotEmptyf(t, zone, "pct %.1f", pct)
		assert.GreaterOrEqualf(t, pos, 0.0, "pct %.1f", pct)
		assert.LessOrEqualf(t, pos, 1.5, "pct %.1f", pct)
	}
}

// Position grows with distance from 100% on both sides of the board.
func TestZoneConfig_PositionMonotonicity(t *testing.T) {
	zones := analysis.DefaultZones()

	// Undershoot: walking down from 100 moves outward.
	prev := -1.0
	for pct := 100.0; pct > 0; pct -= 0.5 {
		_, pos := zones.Classify(pct)

		assert.GreaterOrEqualf(t, pos, prev, "pct %.1f", pct)
		prev = pos
	}

	// Overshoot: walking up from 100 moves outward.
	prev = -1.0
	for pct := 100.5; pct <= 200; pct += 0.5 {
		_, pos := zones.Classify(pct)

		assert.GreaterOrEqualf(t, pos, prev, "pct %.1f", pct)
		prev = pos
	}
}

func TestHitAngle(t *testing.T) {
	a := analysis.HitAngle("Groceries")

	// Deterministic across repeated calls.
	for range 10 {
		assert.Equal(t, a, analysis.HitAngle("Groceries"))
	}

	assert.GreaterOrEqual(t, a, 0.0)
	assert.Less(t, a, 6.2832)

	// Different names usually land at different angles.
	assert.NotEqual(t, analysis.HitAngle("Groceries"), analysis.HitAngle("Transport"))
}

func accuracyBudget() *budget.PersonalBudget {
	return &budget.PersonalBudget{
		Version: 1,
		Active:  true,
		Categories: map[string]budget.CategoryConfig{
			"Groceries": {MonthlyLimit: 60000, WarningThreshold: 80, Active: true},
			"Transport": {MonthlyLimit: 15000, WarningThreshold: 80, Active: true},
		},
		Settings: budget.GlobalSettings{WarningNotifications: true},
	}
}

func TestAccuracy(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)

	// Three months, 600/month budgeted; 1800 spent => exactly 100%.
	txs := []*transaction.Transaction{
		expense("Groceries", 60000, start.AddDate(0, 0, 10)),
		expense("Groceries", 60000, start.AddDate(0, 1, 0)),
		expense("Groceries", 60000, end),
	}

	results := analysis.Accuracy(txs, accuracyBudget(), nil, start, end, analysis.DefaultZones())
	require.Len(t, results, 2)

	groceries := results[0]
	assert.Equal(t, "Groceries", groceries.Category)
	assert.InDelta(t, 60000, groceries.BudgetAverage, 1e-9)
	assert.InDelta(t, 60000, groceries.ActualAverage, 1e-9)
	assert.InDelta(t, 100, groceries.AccuracyPercentage, 1e-9)
	assert.Equal(t, analysis.ZoneBullseye, groceries.Zone)
	assert.Zero(t, groceries.Position)
	assert.False(t, groceries.IsOverBudget)

	// No Transport spend at all: unused beats every percentage rule.
	transport := results[1]
	assert.True(t, transport.IsUnused)
	assert.Equal(t, analysis.ZoneUnused, transport.Zone)
	assert.Zero(t, transport.Position)
}

// Unused takes priority even when the percentage itself is a degenerate
// zero because the budget average is zero too.
func TestAccuracy_UnusedPrecedence(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	b := &budget.PersonalBudget{
		Categories: map[string]budget.CategoryConfig{
			"Empty": {MonthlyLimit: 0, Active: true},
		},
	}

	results := analysis.Accuracy(nil, b, nil, start, end, analysis.DefaultZones())
	require.Len(t, results, 1)
	assert.Equal(t, analysis.ZoneUnused, results[0].Zone)
	assert.True(t, results[0].IsUnused)
}

func TestAccuracy_MonthlySnapshotsOverrideBaseline(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)

	// Baseline says 600/month but the snapshots were overridden to 500.
	monthlies := []*budget.MonthlyBudget{
		{Year: 2025, Month: time.July, Categories: map[string]budget.CategoryConfig{
			"Groceries": {MonthlyLimit: 50000, Active: true},
		}},
		{Year: 2025, Month: time.August, Categories: map[string]budget.CategoryConfig{
			"Groceries": {MonthlyLimit: 50000, Active: true},
		}},
	}

	txs := []*transaction.Transaction{
		expense("Groceries", 50000, start),
		expense("Groceries", 50000, start.AddDate(0, 1, 0)),
	}

	results := analysis.Accuracy(txs, accuracyBudget(), monthlies, start, end, analysis.DefaultZones())

	var groceries analysis.CategoryAccuracy
	for _, r := range results {
		if r.Category == "Groceries" {
			groceries = r
		}
	}

	assert.InDelta(t, 50000, groceries.BudgetAverage, 1e-9)
	assert.InDelta(t, 100, groceries.AccuracyPercentage, 1e-9)
}

func TestAccuracy_OverBudgetBust(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	// 660 spent of 600 budgeted in one month => 110%.
	txs := []*transaction.Transaction{
		expense("Groceries", 66000, start.AddDate(0, 0, 5)),
	}

	results := analysis.Accuracy(txs, accuracyBudget(), nil, start, end, analysis.DefaultZones())

	groceries := results[0]
	assert.True(t, groceries.IsOverBudget)
	assert.Equal(t, analysis.ZoneBust, groceries.Zone)
	assert.InDelta(t, 1.05, groceries.Position, 1e-9)
}

func TestAccuracy_ReversedRangeYieldsZeros(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	results := analysis.Accuracy(nil, accuracyBudget(), nil, start, end, analysis.DefaultZones())

	for _, r := range results {
		assert.Zero(t, r.BudgetAverage)
		assert.Zero(t, r.ActualAverage)
		assert.Zero(t, r.AccuracyPercentage)
		assert.True(t, r.IsUnused)
	}
}
