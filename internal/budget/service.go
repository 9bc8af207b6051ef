package budget

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	GetActiveBudget(ctx context.Context) (*PersonalBudget, error)
	GetBudgetVersion(ctx context.Context, version int) (*PersonalBudget, error)
	ListBudgetVersions(ctx context.Context) ([]*PersonalBudget, error)
	CreateBudgetVersion(ctx context.Context, b *PersonalBudget) error

	GetMonthlyBudget(ctx context.Context, year int, month time.Month) (*MonthlyBudget, error)
	ListMonthlyBudgets(ctx context.Context, start, end time.Time) ([]*MonthlyBudget, error)
	CreateMonthlyBudget(ctx context.Context, mb *MonthlyBudget) error
	UpdateMonthlyCategory(ctx context.Context, id uuid.UUID, name string, cfg CategoryConfig) error
	SetMonthlyLock(ctx context.Context, id uuid.UUID, locked bool) error

	CreateAdjustment(ctx context.Context, adj *Adjustment) error
	GetAdjustment(ctx context.Context, id uuid.UUID) (*Adjustment, error)
	ListAdjustments(ctx context.Context, pendingOnly bool) ([]*Adjustment, error)
	DeleteAdjustment(ctx context.Context, id uuid.UUID) error

	BeginApply(ctx context.Context) (ApplyTx, error)
}

// ApplyTx is the transactional scope for folding due adjustments into a new
// budget version. Implementations serialize concurrent apply runs.
type ApplyTx interface {
	ActiveBudget(ctx context.Context) (*PersonalBudget, error)
	DueAdjustments(ctx context.Context, year int, month time.Month) ([]*Adjustment, error)
	CreateBudgetVersion(ctx context.Context, b *PersonalBudget) error
	MarkApplied(ctx context.Context, ids []uuid.UUID, at time.Time) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetActive(ctx context.Context) (*PersonalBudget, error) {
	return s.repo.GetActiveBudget(ctx)
}

func (s *Service) GetVersion(ctx context.Context, version int) (*PersonalBudget, error) {
	return s.repo.GetBudgetVersion(ctx, version)
}

func (s *Service) ListVersions(ctx context.Context) ([]*PersonalBudget, error) {
	return s.repo.ListBudgetVersions(ctx)
}

// CreateVersion persists a new budget version with the given categories and
// settings. The store deactivates the previous active version atomically.
// Warning thresholds are normalized before persisting.
func (s *Service) CreateVersion(ctx context.Context, categories map[string]CategoryConfig, settings GlobalSettings) (*PersonalBudget, error) {
	normalized := make(map[string]CategoryConfig, len(categories))
	for name, cfg := range categories {
		cfg.WarningThreshold = cfg.Threshold()
		normalized[name] = cfg
	}

	b := &PersonalBudget{
		Active:     true,
		Categories: normalized,
		Settings:   settings,
	}
	if err := s.repo.CreateBudgetVersion(ctx, b); err != nil {
		return nil, fmt.Errorf("creating budget version: %w", err)
	}

	return b, nil
}

// EnsureMonthly returns the snapshot for (year, month), creating it from the
// active budget on first touch.
func (s *Service) EnsureMonthly(ctx context.Context, year int, month time.Month) (*MonthlyBudget, error) {
	mb, err := s.repo.GetMonthlyBudget(ctx, year, month)
	if err == nil {
		return mb, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	active, err := s.repo.GetActiveBudget(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading active budget for snapshot: %w", err)
	}

	mb = &MonthlyBudget{
		Year:          year,
		Month:         month,
		BudgetVersion: active.Version,
		Categories:    maps.Clone(active.Categories),
	}
	if err := s.repo.CreateMonthlyBudget(ctx, mb); err != nil {
		return nil, fmt.Errorf("creating monthly snapshot: %w", err)
	}

	return mb, nil
}

func (s *Service) GetMonthly(ctx context.Context, year int, month time.Month) (*MonthlyBudget, error) {
	return s.repo.GetMonthlyBudget(ctx, year, month)
}

func (s *Service) ListMonthly(ctx context.Context, start, end time.Time) ([]*MonthlyBudget, error) {
	return s.repo.ListMonthlyBudgets(ctx, start, end)
}

// UpdateCategoryLimit overrides one category's limit in a monthly snapshot.
// The baseline budget is untouched. Locked months reject overrides.
func (s *Service) UpdateCategoryLimit(ctx context.Context, year int, month time.Month, name string, newLimit int64) (*MonthlyBudget, error) {
	if newLimit < 0 {
		return nil, fmt.Errorf("monthly limit must be non-negative, got %d", newLimit)
	}

	mb, err := s.EnsureMonthly(ctx, year, month)
	if err != nil {
		return nil, err
	}

	if mb.Locked {
		return nil, ErrLocked
	}

	cfg, ok := mb.Categories[name]
	if !ok {
		return nil, fmt.Errorf("category %q: %w", name, ErrNotFound)
	}

	cfg.MonthlyLimit = newLimit
	if err := s.repo.UpdateMonthlyCategory(ctx, mb.ID, name, cfg); err != nil {
		return nil, fmt.Errorf("updating monthly category: %w", err)
	}

	mb.Categories[name] = cfg
	mb.AdjustmentCount++

	return mb, nil
}

// LockMonth freezes a monthly snapshot against further overrides. Meant for
// months that are in the past.
func (s *Service) LockMonth(ctx context.Context, year int, month time.Month, locked bool) error {
	mb, err := s.repo.GetMonthlyBudget(ctx, year, month)
	if err != nil {
		return err
	}

	return s.repo.SetMonthlyLock(ctx, mb.ID, locked)
}

type ScheduleParams struct {
	CategoryName   string
	NewLimit       int64
	EffectiveYear  int
	EffectiveMonth time.Month
	Reason         string
	NewCategory    *NewCategoryPayload
}

// ScheduleAdjustment records a future limit change. The adjustment kind is
// derived from the current active limit. When NewCategory is set the
// adjustment creates that category on apply instead of changing an existing
// one.
func (s *Service) ScheduleAdjustment(ctx context.Context, params ScheduleParams) (*Adjustment, error) {
	if params.NewLimit < 0 {
		return nil, fmt.Errorf("new limit must be non-negative, got %d", params.NewLimit)
	}

	var currentLimit int64

	if params.NewCategory == nil {
		active, err := s.repo.GetActiveBudget(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading active budget: %w", err)
		}

		cfg, ok := active.Categories[params.CategoryName]
		if !ok {
			return nil, fmt.Errorf("category %q: %w", params.CategoryName, ErrNotFound)
		}

		currentLimit = cfg.MonthlyLimit
	}

	kind := AdjustmentIncrease
	if params.NewLimit < currentLimit {
		kind = AdjustmentDecrease
	}

	adj := &Adjustment{
		CategoryName:   params.CategoryName,
		CurrentLimit:   currentLimit,
		NewLimit:       params.NewLimit,
		Kind:           kind,
		EffectiveYear:  params.EffectiveYear,
		EffectiveMonth: params.EffectiveMonth,
		Reason:         params.Reason,
		NewCategory:    params.NewCategory,
	}
	if err := s.repo.CreateAdjustment(ctx, adj); err != nil {
		return nil, fmt.Errorf("creating adjustment: %w", err)
	}

	return adj, nil
}

// CancelAdjustment deletes a pending adjustment. Applied adjustments are
// history and cannot be canceled.
func (s *Service) CancelAdjustment(ctx context.Context, id uuid.UUID) error {
	adj, err := s.repo.GetAdjustment(ctx, id)
	if err != nil {
		return err
	}

	if adj.Applied {
		return ErrAlreadyApplied
	}

	return s.repo.DeleteAdjustment(ctx, id)
}

func (s *Service) ListAdjustments(ctx context.Context, pendingOnly bool) ([]*Adjustment, error) {
	return s.repo.ListAdjustments(ctx, pendingOnly)
}

// ApplyResult reports what an ApplyDue run did.
type ApplyResult struct {
	Applied    int
	NewVersion int
}

// ApplyDue folds every unapplied adjustment effective on or before asOf into
// a single new budget version and marks the adjustments applied. The whole
// run is one database transaction; concurrent runs are serialized by the
// store, so applying is idempotent across overlapping schedules.
func (s *Service) ApplyDue(ctx context.Context, asOf time.Time) (*ApplyResult, error) {
	atx, err := s.repo.BeginApply(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin apply: %w", err)
	}
	defer atx.Rollback()

	due, err := atx.DueAdjustments(ctx, asOf.Year(), asOf.Month())
	if err != nil {
		return nil, fmt.Errorf("loading due adjustments: %w", err)
	}

	if len(due) == 0 {
		return &ApplyResult{}, nil
	}

	active, err := atx.ActiveBudget(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading active budget: %w", err)
	}

	categories := maps.Clone(active.Categories)
	ids := make([]uuid.UUID, 0, len(due))

	for _, adj := range due {
		ids = append(ids, adj.ID)

		if adj.NewCategory != nil {
			nc := adj.NewCategory
			cfg := CategoryConfig{
				MonthlyLimit:     adj.NewLimit,
				WarningThreshold: nc.WarningThreshold,
				Active:           true,
				Color:            nc.Color,
				Description:      nc.Description,
			}
			cfg.WarningThreshold = cfg.Threshold()
			categories[nc.Name] = cfg

			continue
		}

		cfg, ok := categories[adj.CategoryName]
		if !ok {
			// Category removed since scheduling; nothing to fold.
			continue
		}

		cfg.MonthlyLimit = adj.NewLimit
		categories[adj.CategoryName] = cfg
	}

	next := &PersonalBudget{
		Active:     true,
		Categories: categories,
		Settings:   active.Settings,
	}
	if err := atx.CreateBudgetVersion(ctx, next); err != nil {
		return nil, fmt.Errorf("creating budget version: %w", err)
	}

	if err := atx.MarkApplied(ctx, ids, asOf); err != nil {
		return nil, fmt.Errorf("marking adjustments applied: %w", err)
	}

	if err := atx.Commit(); err != nil {
		return nil, fmt.Errorf("commit apply: %w", err)
	}

	return &ApplyResult{Applied: len(ids), NewVersion: next.Version}, nil
}
