package report

import (
	"time"

	"github.com/bullseye-app/bullseye/internal/analysis"
)

type comparisonResponse struct {
	Category           string          `json:"category"`
	Budgeted           int64           `json:"budgeted"`
	Actual             int64           `json:"actual"`
	Variance           int64           `json:"variance"`
	VariancePercentage float64         `json:"variance_percentage"`
	SpentPercentage    float64         `json:"spent_percentage"`
	Status             analysis.Status `json:"status"`
	Trend              analysis.Trend  `json:"trend"`
	WarningThreshold   int             `json:"warning_threshold"`
	Unlimited          bool            `json:"unlimited"`
}

type alertResponse struct {
	ID           string             `json:"id"`
	Type         analysis.AlertType `json:"type"`
	Severity     analysis.Severity  `json:"severity"`
	Category     string             `json:"category"`
	Message      string             `json:"message"`
	Amount       int64              `json:"amount"`
	Percentage   float64            `json:"percentage"`
	Timestamp    time.Time          `json:"timestamp"`
	Acknowledged bool               `json:"acknowledged"`
}

type monthlyReportResponse struct {
	Month              time.Month           `json:"month"`
	Year               int                  `json:"year"`
	TotalBudgeted      int64                `json:"total_budgeted"`
	TotalSpent         int64                `json:"total_spent"`
	TotalVariance      int64                `json:"total_variance"`
	Comparisons        []comparisonResponse `json:"comparisons"`
	Income             int64                `json:"income"`
	SavingsRate        float64              `json:"savings_rate"`
	IncomeExpenseRatio float64              `json:"income_expense_ratio"`
	Alerts             []alertResponse      `json:"alerts"`
	NewAlerts          []alertResponse      `json:"new_alerts"`
}

func toAlertResponse(a analysis.Alert) alertResponse {
	return alertResponse{
		ID:           a.ID,
		Type:         a.Type,
		Severity:     a.Severity,
		Category:     a.Category,
		Message:      a.Message,
		Amount:       a.Amount,
		Percentage:   a.Percentage,
		Timestamp:    a.Timestamp,
		Acknowledged: a.Acknowledged,
	}
}

func toAlertList(alerts []analysis.Alert) []alertResponse {
	resp := make([]alertResponse, len(alerts))
	for i, a := range alerts {
		resp[i] = toAlertResponse(a)
	}

	return resp
}

func toMonthlyResponse(a *analysis.Analysis) monthlyReportResponse {
	comparisons := make([]comparisonResponse, len(a.Comparisons))
	for i, c := range a.Comparisons {
		comparisons[i] = comparisonResponse{
			Category:           c.Category,
			Budgeted:           c.Budgeted,
			Actual:             c.Actual,
			Variance:           c.Variance,
			VariancePercentage: c.VariancePercentage,
			SpentPercentage:    c.SpentPercentage,
			Status:             c.Status,
			Trend:              c.Trend,
			WarningThreshold:   c.WarningThreshold,
			Unlimited:          c.Unlimited,
		}
	}

	return monthlyReportResponse{
		Month:              a.Month,
		Year:               a.Year,
		TotalBudgeted:      a.TotalBudgeted,
		TotalSpent:         a.TotalSpent,
		TotalVariance:      a.TotalVariance,
		Comparisons:        comparisons,
		Income:             a.Income,
		SavingsRate:        a.SavingsRate,
		IncomeExpenseRatio: a.IncomeExpenseRatio,
		Alerts:             toAlertList(a.Alerts),
	}
}

type accuracyResponse struct {
	Category           string        `json:"category"`
	BudgetAverage      float64       `json:"budget_average"`
	ActualAverage      float64       `json:"actual_average"`
	AccuracyPercentage float64       `json:"accuracy_percentage"`
	Variance           float64       `json:"variance"`
	IsOverBudget       bool          `json:"is_over_budget"`
	IsUnused           bool          `json:"is_unused"`
	Zone               analysis.Zone `json:"zone"`
	Position           float64       `json:"position"`
	HitAngle           float64       `json:"hit_angle"`
}

func toAccuracyList(results []analysis.CategoryAccuracy) []accuracyResponse {
	resp := make([]accuracyResponse, len(results))
	for i, r := range results {
		resp[i] = accuracyResponse{
			Category:           r.Category,
			BudgetAverage:      r.BudgetAverage,
			ActualAverage:      r.ActualAverage,
			AccuracyPercentage: r.AccuracyPercentage,
			Variance:           r.Variance,
			IsOverBudget:       r.IsOverBudget,
			IsUnused:           r.IsUnused,
			Zone:               r.Zone,
			Position:           r.Position,
			HitAngle:           r.HitAngle,
		}
	}

	return resp
}
