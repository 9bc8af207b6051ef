package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bullseye-app/bullseye/internal/transaction"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params transaction.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *transaction.MockRepository)
		wantErr   bool
	}

	catID := uuid.New()

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: transaction.CreateParams{
					Amount:      1250,
					Type:        transaction.TypeExpense,
					CategoryID:  catID,
					Description: "Weekly groceries",
					Date:        time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC),
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "NegativeAmount",
			args: args{
				params: transaction.CreateParams{
					Amount:     -100,
					Type:       transaction.TypeExpense,
					CategoryID: catID,
				},
			},
			wantErr: true,
		},
		{
			name: "RepoError",
			args: args{
				params: transaction.CreateParams{
					Amount:     500,
					CategoryID: catID,
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_List(t *testing.T) {
	type args struct {
		filter transaction.ListFilter
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *transaction.MockRepository)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{filter: transaction.ListFilter{}},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), transaction.ListFilter{}).
					Return([]*transaction.Transaction{
						{ID: uuid.New()},
						{ID: uuid.New()},
					}, nil)
			},
			wantLen: 2,
			wantErr: false,
		},
		{
			name: "Error",
			args: args{filter: transaction.ListFilter{}},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), transaction.ListFilter{}).
					Return(nil, errors.New("list error"))
			},
			wantLen: 0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			got, err := svc.List(context.Background(), tt.args.filter)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_CreateSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	stx := transaction.NewMockBatchTx(ctrl)
	svc := transaction.NewService(repo)

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	params := transaction.CreateParams{
		Amount:      30000,
		Type:        transaction.TypeExpense,
		CategoryID:  uuid.New(),
		Description: "New fridge",
		Date:        date,
	}

	repo.EXPECT().BeginBatch(gomock.Any(), gomock.Any()).Return(stx, nil)
	stx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)
	stx.EXPECT().Commit().Return(nil)
	stx.EXPECT().Rollback().Return(nil)

	txs, err := svc.CreateSeries(context.Background(), params, 3)
	require.NoError(t, err)
	require.Len(t, txs, 3)

	assert.Equal(t, "New fridge (1/3)", txs[0].Description)
	assert.Equal(t, "New fridge (3/3)", txs[2].Description)
	assert.Equal(t, date.AddDate(0, 2, 0), txs[2].Date)

	// All installments share the same series id.
	require.NotNil(t, txs[0].SeriesID)
	assert.Equal(t, txs[0].SeriesID, txs[1].SeriesID)
	assert.Equal(t, txs[0].SeriesID, txs[2].SeriesID)
}

func TestService_CreateSeries_InvalidCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	_, err := svc.CreateSeries(context.Background(), transaction.CreateParams{Amount: 100}, 0)
	assert.Error(t, err)
}

func TestService_CreateSeries_CreateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	stx := transaction.NewMockBatchTx(ctrl)
	svc := transaction.NewService(repo)

	repo.EXPECT().BeginBatch(gomock.Any(), gomock.Any()).Return(stx, nil)
	stx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
	stx.EXPECT().Rollback().Return(nil)

	_, err := svc.CreateSeries(context.Background(), transaction.CreateParams{
		Amount: 100,
		Type:   transaction.TypeExpense,
		Date:   time.Now(),
	}, 2)
	assert.Error(t, err)
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	btx := transaction.NewMockBatchTx(ctrl)
	svc := transaction.NewService(repo)

	params := []transaction.CreateParams{
		{Amount: 8420, Type: transaction.TypeExpense, CategoryID: uuid.New(), Description: "WEEKLY SHOP", Date: time.Now()},
		{Amount: 250000, Type: transaction.TypeIncome, CategoryID: uuid.New(), Description: "SALARY", Date: time.Now()},
	}

	repo.EXPECT().BeginBatch(gomock.Any(), gomock.Any()).Return(btx, nil)
	btx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)
	btx.EXPECT().Commit().Return(nil)
	btx.EXPECT().Rollback().Return(nil)

	txs, err := svc.CreateBatch(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "WEEKLY SHOP", txs[0].Description)
	assert.Nil(t, txs[0].SeriesID)
	assert.Nil(t, txs[1].SeriesID)
}

func TestService_CreateBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	txs, err := svc.CreateBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestService_DeleteSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	seriesID := uuid.New()
	repo.EXPECT().DeleteSeries(gomock.Any(), seriesID).Return(int64(4), nil)

	n, err := svc.DeleteSeries(context.Background(), seriesID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestSpentInRange(t *testing.T) {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	txs := []*transaction.Transaction{
		{Type: transaction.TypeExpense, CategoryName: "Groceries", Amount: 2000, Date: start.AddDate(0, 0, 3)},
		{Type: transaction.TypeExpense, CategoryName: "Groceries", Amount: 1500, Date: end},
		{Type: transaction.TypeExpense, CategoryName: "Transport", Amount: 700, Date: start},
		{Type: transaction.TypeIncome, CategoryName: "Salary", Amount: 100000, Date: start},
		{Type: transaction.TypeExpense, CategoryName: "Groceries", Amount: 999, Date: end.AddDate(0, 0, 1)},
	}

	totals := transaction.SpentInRange(txs, start, end)

	assert.Equal(t, int64(3500), totals["Groceries"])
	assert.Equal(t, int64(700), totals["Transport"])
	assert.NotContains(t, totals, "Salary")
}
