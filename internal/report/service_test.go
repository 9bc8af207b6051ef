package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bullseye-app/bullseye/internal/analysis"
	"github.com/bullseye-app/bullseye/internal/budget"
	"github.com/bullseye-app/bullseye/internal/category"
	"github.com/bullseye-app/bullseye/internal/transaction"
)

type mocks struct {
	transactions *MockTransactionSource
	budgets      *MockBudgetSource
	categories   *MockCategorySource
}

func newService(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		transactions: NewMockTransactionSource(ctrl),
		budgets:      NewMockBudgetSource(ctrl),
		categories:   NewMockCategorySource(ctrl),
	}

	return NewService(m.transactions, m.budgets, m.categories, analysis.DefaultZones()), m
}

func activeBudget() *budget.PersonalBudget {
	return &budget.PersonalBudget{
		Version: 2,
		Active:  true,
		Categories: map[string]budget.CategoryConfig{
			"Groceries": {MonthlyLimit: 60000, WarningThreshold: 80, Active: true},
		},
		Settings: budget.GlobalSettings{Currency: "EUR", WarningNotifications: true},
	}
}

func sameName(name string) *category.Category {
	return &category.Category{Name: name}
}

func TestService_Monthly(t *testing.T) {
	svc, m := newService(t)

	m.budgets.EXPECT().GetActive(gomock.Any()).Return(activeBudget(), nil)
	m.categories.EXPECT().ResolveName(gomock.Any(), "Groceries").Return(sameName("Groceries"), nil)
	m.transactions.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			require.NotNil(t, filter.StartDate)
			require.NotNil(t, filter.EndDate)
			assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), *filter.StartDate)
			assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), *filter.EndDate)

			return []*transaction.Transaction{{
				Amount:       50000,
				Type:         transaction.TypeExpense,
				CategoryName: "Groceries",
				Date:         time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC),
			}}, nil
		})

	a, err := svc.Monthly(context.Background(), 2025, time.October)
	require.NoError(t, err)

	assert.Equal(t, int64(60000), a.TotalBudgeted)
	assert.Equal(t, int64(50000), a.TotalSpent)
	require.Len(t, a.Comparisons, 1)
	assert.Equal(t, analysis.StatusOnTarget, a.Comparisons[0].Status)
}

// A budget snapshot keyed by a category's former name still matches spend
// recorded under the current name after a rename.
func TestService_Monthly_FollowsRenamedCategory(t *testing.T) {
	svc, m := newService(t)

	b := activeBudget()
	b.Categories = map[string]budget.CategoryConfig{
		"Food": {MonthlyLimit: 60000, WarningThreshold: 80, Active: true},
	}

	m.budgets.EXPECT().GetActive(gomock.Any()).Return(b, nil)
	m.categories.EXPECT().ResolveName(gomock.Any(), "Food").Return(sameName("Groceries"), nil)
	m.categories.EXPECT().ResolveName(gomock.Any(), "Groceries").Return(sameName("Groceries"), nil).AnyTimes()
	m.transactions.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*transaction.Transaction{{
		Amount:       30000,
		Type:         transaction.TypeExpense,
		CategoryName: "Groceries",
		Date:         time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC),
	}}, nil)

	a, err := svc.Monthly(context.Background(), 2025, time.October)
	require.NoError(t, err)

	require.Len(t, a.Comparisons, 1)
	assert.Equal(t, "Groceries", a.Comparisons[0].Category)
	assert.Equal(t, int64(60000), a.Comparisons[0].Budgeted)
	assert.Equal(t, int64(30000), a.Comparisons[0].Actual)
}

func TestService_Monthly_UnknownKeyKeptVerbatim(t *testing.T) {
	svc, m := newService(t)

	b := activeBudget()

	m.budgets.EXPECT().GetActive(gomock.Any()).Return(b, nil)
	m.categories.EXPECT().ResolveName(gomock.Any(), "Groceries").Return(nil, category.ErrNotFound)
	m.transactions.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

	a, err := svc.Monthly(context.Background(), 2025, time.October)
	require.NoError(t, err)

	require.Len(t, a.Comparisons, 1)
	assert.Equal(t, "Groceries", a.Comparisons[0].Category)
}

func TestService_Monthly_NoActiveBudget(t *testing.T) {
	svc, m := newService(t)

	m.budgets.EXPECT().GetActive(gomock.Any()).Return(nil, budget.ErrNoActiveBudget)

	_, err := svc.Monthly(context.Background(), 2025, time.October)
	assert.ErrorIs(t, err, budget.ErrNoActiveBudget)
}

func TestService_Accuracy(t *testing.T) {
	svc, m := newService(t)

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	m.budgets.EXPECT().GetActive(gomock.Any()).Return(activeBudget(), nil)
	m.categories.EXPECT().ResolveName(gomock.Any(), "Groceries").Return(sameName("Groceries"), nil)
	m.budgets.EXPECT().ListMonthly(gomock.Any(), start, end).Return(nil, nil)
	m.transactions.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*transaction.Transaction{{
		Amount:       60000,
		Type:         transaction.TypeExpense,
		CategoryName: "Groceries",
		Date:         time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
	}}, nil)

	results, err := svc.Accuracy(context.Background(), start, end)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, analysis.ZoneBullseye, results[0].Zone)
	assert.InDelta(t, 100, results[0].AccuracyPercentage, 1e-9)
}

func TestService_Accuracy_NormalizesMonthlySnapshots(t *testing.T) {
	svc, m := newService(t)

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	monthlies := []*budget.MonthlyBudget{{
		Year:  2025,
		Month: time.July,
		Categories: map[string]budget.CategoryConfig{
			"Food": {MonthlyLimit: 40000, Active: true},
		},
	}}

	m.budgets.EXPECT().GetActive(gomock.Any()).Return(activeBudget(), nil)
	m.categories.EXPECT().ResolveName(gomock.Any(), "Groceries").Return(sameName("Groceries"), nil).AnyTimes()
	m.categories.EXPECT().ResolveName(gomock.Any(), "Food").Return(sameName("Groceries"), nil)
	m.budgets.EXPECT().ListMonthly(gomock.Any(), start, end).Return(monthlies, nil)
	m.transactions.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*transaction.Transaction{{
		Amount:       40000,
		Type:         transaction.TypeExpense,
		CategoryName: "Groceries",
		Date:         time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
	}}, nil)

	results, err := svc.Accuracy(context.Background(), start, end)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.InDelta(t, 40000, results[0].BudgetAverage, 1e-9)
	assert.InDelta(t, 100, results[0].AccuracyPercentage, 1e-9)
}
