package analysis

import (
	"maps"
	"math"
	"slices"
	"time"
	"unicode/utf16"

	"github.com/bullseye-app/bullseye/internal/budget"
	"github.com/bullseye-app/bullseye/internal/transaction"
)

// Zone is a band of the dartboard visualization. Bullseye sits at the center
// (spend close to budget), rings move outward as accuracy degrades, bust is
// off the board entirely.
type Zone string

const (
	ZoneBullseye Zone = "bullseye"
	ZoneRing1    Zone = "ring1"
	ZoneRing2    Zone = "ring2"
	ZoneRing3    Zone = "ring3"
	ZoneRing4    Zone = "ring4"
	ZoneRing5    Zone = "ring5"
	ZoneBust     Zone = "bust"
	ZoneUnused   Zone = "unused"
)

// boardEdge is the position of the board's outer rim; bust positions start
// past it.
const boardEdge = 1.0

// Band maps an accuracy percentage interval (Min, Max] onto a slice of the
// radial position axis starting at Start with the given Width. The band edge
// nearest 100% maps to Start and the far edge to Start+Width, so position
// grows monotonically with distance from perfect accuracy.
type Band struct {
	Zone  Zone
	Min   float64 // exclusive
	Max   float64 // inclusive
	Start float64
	Width float64
}

// ZoneConfig is an injected classification policy. Bands must partition
// (0, BustThreshold]; anything above BustThreshold is a bust.
type ZoneConfig struct {
	Bands         []Band
	BustThreshold float64
	BustScale     float64 // percentage points of overshoot per unit of position
	BustCap       float64 // maximum distance past the board edge
}

// DefaultZones returns the canonical asymmetric board: a tight bullseye
// around 100%, a first ring covering moderate over- and undershoot, then
// progressively wider undershoot rings.
func DefaultZones() ZoneConfig {
	return ZoneConfig{
		Bands: []Band{
			{Zone: ZoneBullseye, Min: 95, Max: 100, Start: 0, Width: 0.17},
			{Zone: ZoneRing1, Min: 100, Max: 105, Start: 0.17, Width: 0.16},
			{Zone: ZoneRing1, Min: 80, Max: 95, Start: 0.17, Width: 0.16},
			{Zone: ZoneRing2, Min: 60, Max: 80, Start: 0.33, Width: 0.17},
			{Zone: ZoneRing3, Min: 40, Max: 60, Start: 0.50, Width: 0.17},
			{Zone: ZoneRing4, Min: 20, Max: 40, Start: 0.67, Width: 0.16},
			{Zone: ZoneRing5, Min: 0, Max: 20, Start: 0.83, Width: 0.17},
		},
		BustThreshold: 105,
		BustScale:     100,
		BustCap:       0.5,
	}
}

// Classify resolves an accuracy percentage to its zone and radial position.
// Percentages no band captures (a degenerate zero with nonzero spend) land
// on the outermost ring at the board edge.
func (zc ZoneConfig) Classify(pct float64) (Zone, float64) {
	if pct > zc.BustThreshold {
		over := (pct - zc.BustThreshold) / zc.BustScale

		return ZoneBust, boardEdge + math.Min(over, zc.BustCap)
	}

	for _, b := range zc.Bands {
		if pct <= b.Min || pct > b.Max {
			continue
		}

		// Overshoot bands anchor on 100%, undershoot bands on their own
		// upper edge; either way distance from 100% drives the position.
		var frac float64
		if b.Max > 100 {
			frac = (pct - 100) / (b.Max - 100)
		} else {
			frac = (b.Max - pct) / (b.Max - b.Min)
		}

		return b.Zone, b.Start + frac*b.Width
	}

	return ZoneRing5, boardEdge
}

// CategoryAccuracy is one category's long-run performance mapped onto the
// board. Averages are per-month over the queried range, in cents.
type CategoryAccuracy struct {
	Category           string
	BudgetAverage      float64
	ActualAverage      float64
	AccuracyPercentage float64
	Variance           float64
	IsOverBudget       bool
	IsUnused           bool
	Zone               Zone
	Position           float64
	HitAngle           float64 // radians
}

// Accuracy computes per-category accuracy over [start, end] inclusive.
// Budgeted totals come from the monthly snapshots when any exist, otherwise
// from the personal budget's limit multiplied by the month count. Categories
// with no spend at all are unused and pinned to the board center regardless
// of what their percentage would classify as.
//
// A reversed range yields a non-positive month count and all-zero averages;
// the caller is responsible for date ordering.
func Accuracy(
	txs []*transaction.Transaction,
	b *budget.PersonalBudget,
	monthlies []*budget.MonthlyBudget,
	start, end time.Time,
	zones ZoneConfig,
) []CategoryAccuracy {
	months := monthsInRange(start, end)

	var results []CategoryAccuracy

	for _, name := range slices.Sorted(maps.Keys(b.Categories)) {
		cfg := b.Categories[name]
		if !cfg.Active || cfg.Unlimited {
			continue
		}

		var totalBudgeted int64

		if len(monthlies) > 0 {
			for _, mb := range monthlies {
				totalBudgeted += mb.Categories[name].MonthlyLimit
			}
		} else {
			totalBudgeted = cfg.MonthlyLimit * int64(months)
		}

		var totalSpent int64

		for _, tx := range txs {
			if tx.Type != transaction.TypeExpense || tx.CategoryName != name {
				continue
			}

			if tx.Date.Before(start) || tx.Date.After(end) {
				continue
			}

			totalSpent += tx.Amount
		}

		var budgetAvg, actualAvg float64

		if months > 0 {
			budgetAvg = float64(totalBudgeted) / float64(months)
			actualAvg = float64(totalSpent) / float64(months)
		}

		var pct float64

		if budgetAvg > 0 {
			pct = actualAvg / budgetAvg * 100
		}

		ca := CategoryAccuracy{
			Category:           name,
			BudgetAverage:      budgetAvg,
			ActualAverage:      actualAvg,
			AccuracyPercentage: pct,
			Variance:           actualAvg - budgetAvg,
			IsOverBudget:       totalSpent > totalBudgeted,
			HitAngle:           HitAngle(name),
		}

		// Unused takes priority over every percentage band: several zero
		// paths (zero spend, zero budget) must not be confused.
		if totalSpent == 0 {
			ca.IsUnused = true
			ca.Zone = ZoneUnused
			ca.Position = 0
		} else {
			ca.Zone, ca.Position = zones.Classify(pct)
		}

		results = append(results, ca)
	}

	return results
}

// monthsInRange counts calendar months touched by the range, inclusive of
// both endpoints.
func monthsInRange(start, end time.Time) int {
	return (end.Year()*12 + int(end.Month())) - (start.Year()*12 + int(start.Month())) + 1
}

// HitAngle derives a stable angle in [0, 2π) from the category name, giving
// each category a fixed spot on its ring without persisting anything. The
// hash is the classic multiply-shift over UTF-16 code units truncated to 32
// bits, kept explicit so every platform lands the dart in the same place.
func HitAngle(name string) float64 {
	var h int32

	for _, cu := range utf16.Encode([]rune(name)) {
		h = (h << 5) - h + int32(cu)
	}

	deg := int64(h)
	if deg < 0 {
		deg = -deg
	}

	return float64(deg%360) * math.Pi / 180
}
