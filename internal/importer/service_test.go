package importer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bullseye-app/bullseye/internal/category"
	"github.com/bullseye-app/bullseye/internal/transaction"
)

const genericStatement = `Date,Description,Amount,Category
2025-10-03,WEEKLY SHOP,-84.20,Groceries
2025-10-05,SALARY,2500.00,Income
2025-10-07,MYSTERY SHOP,-12.00,Unknown Things
`

func newService(t *testing.T) (*Service, *MockTransactions, *MockCategories) {
	ctrl := gomock.NewController(t)
	txs := NewMockTransactions(ctrl)
	cats := NewMockCategories(ctrl)

	return NewService(txs, cats), txs, cats
}

func TestService_Import(t *testing.T) {
	svc, txs, cats := newService(t)

	groceriesID := uuid.New()
	incomeID := uuid.New()

	cats.EXPECT().ResolveName(gomock.Any(), "Groceries").Return(&category.Category{ID: groceriesID, Name: "Groceries"}, nil)
	cats.EXPECT().ResolveName(gomock.Any(), "Income").Return(&category.Category{ID: incomeID, Name: "Income"}, nil)
	cats.EXPECT().ResolveName(gomock.Any(), "Unknown Things").Return(nil, category.ErrNotFound)

	txs.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			require.NotNil(t, filter.StartDate)
			require.NotNil(t, filter.EndDate)
			assert.Equal(t, time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC), *filter.StartDate)
			assert.Equal(t, time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC), *filter.EndDate)

			return nil, nil
		})

	txs.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params []transaction.CreateParams) ([]*transaction.Transaction, error) {
			require.Len(t, params, 2)
			assert.Equal(t, int64(8420), params[0].Amount)
			assert.Equal(t, transaction.TypeExpense, params[0].Type)
			assert.Equal(t, groceriesID, params[0].CategoryID)
			assert.Equal(t, incomeID, params[1].CategoryID)

			created := make([]*transaction.Transaction, len(params))
			for i, p := range params {
				created[i] = &transaction.Transaction{ID: uuid.New(), Amount: p.Amount}
			}

			return created, nil
		})

	result, err := svc.Import(context.Background(), strings.NewReader(genericStatement), nil)
	require.NoError(t, err)

	assert.Len(t, result.Created, 2)
	assert.Zero(t, result.Duplicates)
	require.Len(t, result.NeedsCategory, 1)
	assert.Equal(t, "MYSTERY SHOP", result.NeedsCategory[0].Description)
}

func TestService_Import_SkipsDuplicates(t *testing.T) {
	svc, txs, cats := newService(t)

	cats.EXPECT().ResolveName(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, name string) (*category.Category, error) {
			return &category.Category{ID: uuid.New(), Name: name}, nil
		}).AnyTimes()

	// The grocery row is already stored with identical date, amount, type
	// and description.
	txs.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*transaction.Transaction{{
		Amount:      8420,
		Type:        transaction.TypeExpense,
		Description: "WEEKLY SHOP",
		Date:        time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC),
	}}, nil)

	txs.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params []transaction.CreateParams) ([]*transaction.Transaction, error) {
			require.Len(t, params, 2)
			for _, p := range params {
				assert.NotEqual(t, "WEEKLY SHOP", p.Description)
			}

			return nil, nil
		})

	result, err := svc.Import(context.Background(), strings.NewReader(genericStatement), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Duplicates)
}

func TestService_Import_AllUncategorized(t *testing.T) {
	svc, txs, cats := newService(t)

	statement := `Date,Description,Amount,Category
2025-10-03,WEEKLY SHOP,-84.20,
`

	txs.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
	cats.EXPECT().ResolveName(gomock.Any(), gomock.Any()).Times(0)

	result, err := svc.Import(context.Background(), strings.NewReader(statement), nil)
	require.NoError(t, err)

	assert.Empty(t, result.Created)
	require.Len(t, result.NeedsCategory, 1)
}

func TestService_Import_BadStatement(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Import(context.Background(), strings.NewReader("garbage"), nil)
	assert.Error(t, err)
}
