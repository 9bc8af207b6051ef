package budget

import (
	"time"

	"github.com/google/uuid"

	"github.com/bullseye-app/bullseye/internal/budget"
)

type versionResponse struct {
	ID         uuid.UUID                        `json:"id"`
	Version    int                              `json:"version"`
	Active     bool                             `json:"active"`
	Categories map[string]budget.CategoryConfig `json:"categories"`
	Settings   budget.GlobalSettings            `json:"settings"`
	CreatedAt  time.Time                        `json:"created_at"`
}

func toVersionResponse(b *budget.PersonalBudget) versionResponse {
	return versionResponse{
		ID:         b.ID,
		Version:    b.Version,
		Active:     b.Active,
		Categories: b.Categories,
		Settings:   b.Settings,
		CreatedAt:  b.CreatedAt,
	}
}

type monthlyResponse struct {
	ID              uuid.UUID                        `json:"id"`
	Year            int                              `json:"year"`
	Month           time.Month                       `json:"month"`
	BudgetVersion   int                              `json:"budget_version"`
	Categories      map[string]budget.CategoryConfig `json:"categories"`
	AdjustmentCount int                              `json:"adjustment_count"`
	Locked          bool                             `json:"locked"`
}

func toMonthlyResponse(mb *budget.MonthlyBudget) monthlyResponse {
	return monthlyResponse{
		ID:              mb.ID,
		Year:            mb.Year,
		Month:           mb.Month,
		BudgetVersion:   mb.BudgetVersion,
		Categories:      mb.Categories,
		AdjustmentCount: mb.AdjustmentCount,
		Locked:          mb.Locked,
	}
}

type adjustmentResponse struct {
	ID             uuid.UUID                  `json:"id"`
	CategoryName   string                     `json:"category_name"`
	CurrentLimit   int64                      `json:"current_limit"`
	NewLimit       int64                      `json:"new_limit"`
	Kind           budget.AdjustmentKind      `json:"kind"`
	EffectiveYear  int                        `json:"effective_year"`
	EffectiveMonth time.Month                 `json:"effective_month"`
	Applied        bool                       `json:"applied"`
	AppliedAt      *time.Time                 `json:"applied_at,omitempty"`
	Reason         string                     `json:"reason,omitempty"`
	NewCategory    *budget.NewCategoryPayload `json:"new_category,omitempty"`
	CreatedAt      time.Time                  `json:"created_at"`
}

func toAdjustmentResponse(a *budget.Adjustment) adjustmentResponse {
	return adjustmentResponse{
		ID:             a.ID,
		CategoryName:   a.CategoryName,
		CurrentLimit:   a.CurrentLimit,
		NewLimit:       a.NewLimit,
		Kind:           a.Kind,
		EffectiveYear:  a.EffectiveYear,
		EffectiveMonth: a.EffectiveMonth,
		Applied:        a.Applied,
		AppliedAt:      a.AppliedAt,
		Reason:         a.Reason,
		NewCategory:    a.NewCategory,
		CreatedAt:      a.CreatedAt,
	}
}

func toAdjustmentList(adjs []*budget.Adjustment) []adjustmentResponse {
	resp := make([]adjustmentResponse, len(adjs))
	for i, a := range adjs {
		resp[i] = toAdjustmentResponse(a)
	}

	return resp
}
