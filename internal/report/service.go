// Package report assembles analysis reports from the stored domain data.
// It is pure glue: every call refetches and recomputes, nothing is cached.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bullseye-app/bullseye/internal/analysis"
	"github.com/bullseye-app/bullseye/internal/budget"
	"github.com/bullseye-app/bullseye/internal/category"
	"github.com/bullseye-app/bullseye/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=source_mock.go -package=report
type TransactionSource interface {
	List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

type BudgetSource interface {
	GetActive(ctx context.Context) (*budget.PersonalBudget, error)
	ListMonthly(ctx context.Context, start, end time.Time) ([]*budget.MonthlyBudget, error)
}

type CategorySource interface {
	ResolveName(ctx context.Context, name string) (*category.Category, error)
}

type Service struct {
	transactions TransactionSource
	budgets      BudgetSource
	categories   CategorySource
	zones        analysis.ZoneConfig
}

func NewService(
	transactions TransactionSource,
	budgets BudgetSource,
	categories CategorySource,
	zones analysis.ZoneConfig,
) *Service {
	return &Service{
		transactions: transactions,
		budgets:      budgets,
		categories:   categories,
		zones:        zones,
	}
}

// Monthly runs the variance analysis for one calendar month against the
// active budget version.
func (s *Service) Monthly(ctx context.Context, year int, month time.Month) (*analysis.Analysis, error) {
	b, err := s.budgets.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading active budget: %w", err)
	}

	if err := s.normalizeKeys(ctx, b.Categories); err != nil {
		return nil, err
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	txs, err := s.transactions.List(ctx, transaction.ListFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	return analysis.Analyze(txs, month, year, b), nil
}

// Accuracy computes the per-category accuracy report over [start, end],
// preferring monthly snapshots over the active budget's limits when any
// were taken for the range.
func (s *Service) Accuracy(ctx context.Context, start, end time.Time) ([]analysis.CategoryAccuracy, error) {
	b, err := s.budgets.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading active budget: %w", err)
	}

	if err := s.normalizeKeys(ctx, b.Categories); err != nil {
		return nil, err
	}

	monthlies, err := s.budgets.ListMonthly(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing monthly budgets: %w", err)
	}

	for _, mb := range monthlies {
		if err := s.normalizeKeys(ctx, mb.Categories); err != nil {
			return nil, err
		}
	}

	txs, err := s.transactions.List(ctx, transaction.ListFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	return analysis.Accuracy(txs, b, monthlies, start, end, s.zones), nil
}

// normalizeKeys re-keys budget entries stored under a former category name
// to the current one. Transactions always resolve to the current name via
// their category join, so stale snapshot keys would otherwise never match.
// Unknown keys are left alone; analysis treats them as their own category.
func (s *Service) normalizeKeys(ctx context.Context, categories map[string]budget.CategoryConfig) error {
	for name, cfg := range categories {
		c, err := s.categories.ResolveName(ctx, name)
		if errors.Is(err, category.ErrNotFound) {
			continue
		}

		if err != nil {
			return fmt.Errorf("resolving category %q: %w", name, err)
		}

		if c.Name == name {
			continue
		}

		// The current name wins when both spellings are present.
		if _, ok := categories[c.Name]; !ok {
			categories[c.Name] = cfg
		}

		delete(categories, name)
	}

	return nil
}
