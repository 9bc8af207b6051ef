package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bullseye-app/bullseye/internal/analysis"
	"github.com/bullseye-app/bullseye/internal/budget"
)

func TestCompare(t *testing.T) {
	categories := map[string]budget.CategoryConfig{
		"Groceries": {MonthlyLimit: 60000, WarningThreshold: 80, Active: true},
	}

	t.Run("OnTargetWithinWarningBand", func(t *testing.T) {
		// 500 of 600 budgeted: past the 80% warning amount (480) but under
		// the limit.
		c := analysis.Compare("Groceries", 50000, categories)

		assert.Equal(t, analysis.StatusOnTarget, c.Status)
		assert.Equal(t, int64(-10000), c.Variance)
		assert.InDelta(t, -16.7, c.VariancePercentage, 0.05)
		assert.InDelta(t, 83.3, c.SpentPercentage, 0.05)
		assert.Equal(t, analysis.TrendStable, c.Trend)
	})

	t.Run("OverLimit", func(t *testing.T) {
		c := analysis.Compare("Groceries", 65000, categories)

		assert.Equal(t, analysis.StatusOver, c.Status)
		assert.Equal(t, int64(5000), c.Variance)
		assert.InDelta(t, 8.3, c.VariancePercentage, 0.05)
	})

	t.Run("UnderWarningAmount", func(t *testing.T) {
		c := analysis.Compare("Groceries", 20000, categories)

		assert.Equal(t, analysis.StatusUnder, c.Status)
	})

	t.Run("MissingCategoryIsZeroBudget", func(t *testing.T) {
		c := analysis.Compare("Nope", 1500, categories)

		assert.Equal(t, int64(0), c.Budgeted)
		assert.Equal(t, analysis.StatusOver, c.Status)
		assert.Zero(t, c.VariancePercentage)
	})
}

// Anything above the limit is over, no matter where the warning threshold
// sits.
func TestCompare_OverWinsOverThreshold(t *testing.T) {
	for _, threshold := range []int{0, 1, 50, 80, 100} {
		categories := map[string]budget.CategoryConfig{
			"Cat": {MonthlyLimit: 10000, WarningThreshold: threshold, Active: true},
		}

		c := analysis.Compare("Cat", 10001, categories)
		assert.Equalf(t, analysis.StatusOver, c.Status, "threshold %d", threshold)
	}
}

// A zero budget reports a zero variance percentage and can only be over
// (with spend) or under (without), never on target.
func TestCompare_ZeroBudget(t *testing.T) {
	categories := map[string]budget.CategoryConfig{
		"Free": {MonthlyLimit: 0, Active: true},
	}

	overspent := analysis.Compare("Free", 1, categories)
	assert.Equal(t, analysis.StatusOver, overspent.Status)
	assert.Zero(t, overspent.VariancePercentage)

	untouched := analysis.Compare("Free", 0, categories)
	assert.Equal(t, analysis.StatusUnder, untouched.Status)
	assert.Zero(t, untouched.VariancePercentage)
}

func TestCompare_ExactlyAtLimit(t *testing.T) {
	categories := map[string]budget.CategoryConfig{
		"Cat": {MonthlyLimit: 10000, WarningThreshold: 80, Active: true},
	}

	c := analysis.Compare("Cat", 10000, categories)
	assert.Equal(t, analysis.StatusOnTarget, c.Status)
	assert.Zero(t, c.Variance)
}
