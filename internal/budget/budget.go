package budget

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("budget not found")
	ErrNoActiveBudget = errors.New("no active budget version")
	ErrLocked         = errors.New("monthly budget is locked")
	ErrAlreadyApplied = errors.New("adjustment already applied")
)

// DefaultWarningThreshold is the percent of the monthly limit at which a
// category is considered to be approaching it.
const DefaultWarningThreshold = 80

// CategoryConfig holds one category's budget parameters within a budget
// version or monthly snapshot. Unlimited is an explicit state: a category
// with no cap keeps Unlimited=true rather than overloading a zero limit,
// and a zero limit simply means nothing is budgeted.
type CategoryConfig struct {
	MonthlyLimit     int64  `json:"monthly_limit"` // cents
	WarningThreshold int    `json:"warning_threshold"`
	Active           bool   `json:"active"`
	Unlimited        bool   `json:"unlimited"`
	Color            string `json:"color,omitempty"`
	Description      string `json:"description,omitempty"`
}

// Threshold returns the warning threshold clamped to [0, 100], falling back
// to the default when unset.
func (c CategoryConfig) Threshold() int {
	switch {
	case c.WarningThreshold <= 0:
		return DefaultWarningThreshold
	case c.WarningThreshold > 100:
		return 100
	}

	return c.WarningThreshold
}

type GlobalSettings struct {
	Currency             string `json:"currency"`
	WarningNotifications bool   `json:"warning_notifications"`
}

// PersonalBudget is one immutable version of the household's baseline
// configuration. Changing categories or settings creates a new version;
// exactly one version is active at a time.
type PersonalBudget struct {
	ID         uuid.UUID
	Version    int
	Active     bool
	Categories map[string]CategoryConfig
	Settings   GlobalSettings
	CreatedAt  time.Time
}

// MonthlyBudget is a per-(year, month) snapshot taken from the active
// PersonalBudget, independently adjustable so mid-month overrides never
// touch the baseline.
type MonthlyBudget struct {
	ID              uuid.UUID
	Year            int
	Month           time.Month
	BudgetVersion   int // PersonalBudget version the snapshot was taken from
	Categories      map[string]CategoryConfig
	AdjustmentCount int
	Locked          bool
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

type AdjustmentKind string

const (
	AdjustmentIncrease AdjustmentKind = "increase"
	AdjustmentDecrease AdjustmentKind = "decrease"
)

// NewCategoryPayload carries the definition of a category that should be
// created when the adjustment is applied.
type NewCategoryPayload struct {
	Name             string `json:"name"`
	Color            string `json:"color,omitempty"`
	Description      string `json:"description,omitempty"`
	WarningThreshold int    `json:"warning_threshold,omitempty"`
}

// Adjustment is a scheduled future change to a category's monthly limit.
// Applied adjustments are kept as history.
type Adjustment struct {
	ID             uuid.UUID
	CategoryName   string
	CurrentLimit   int64
	NewLimit       int64
	Kind           AdjustmentKind
	EffectiveYear  int
	EffectiveMonth time.Month
	Applied        bool
	AppliedAt      *time.Time
	Reason         string
	NewCategory    *NewCategoryPayload
	CreatedAt      time.Time
}
