package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	DeleteSeries(ctx context.Context, seriesID uuid.UUID) (int64, error)

	BeginBatch(ctx context.Context, lockID uuid.UUID) (BatchTx, error)
}

// BatchTx is a transactional scope for inserting a group of transactions
// atomically. Implementations serialize concurrent inserts under the same
// lock id, which is a series id for installments and a fresh id for
// statement imports.
type BatchTx interface {
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Amount      int64
	Type        Type
	CategoryID  uuid.UUID
	Description string
	Date        time.Time
	MemberID    *uuid.UUID
}

type ListFilter struct {
	Type       *Type
	CategoryID *uuid.UUID
	MemberID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if params.Amount < 0 {
		return nil, fmt.Errorf("amount must be non-negative, got %d", params.Amount)
	}

	tx := &Transaction{
		Amount:      params.Amount,
		Type:        params.Type,
		CategoryID:  params.CategoryID,
		Description: params.Description,
		Date:        params.Date,
		MemberID:    params.MemberID,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	if tx.Amount < 0 {
		return fmt.Errorf("amount must be non-negative, got %d", tx.Amount)
	}

	return s.repo.UpdateTransaction(ctx, tx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, id)
}

// CreateSeries records an installment purchase as count monthly transactions
// starting at params.Date, each one month apart, all sharing a series id.
// The whole series is inserted atomically.
func (s *Service) CreateSeries(ctx context.Context, params CreateParams, count int) ([]*Transaction, error) {
	if count < 1 {
		return nil, fmt.Errorf("installment count must be at least 1, got %d", count)
	}

	if params.Amount < 0 {
		return nil, fmt.Errorf("amount must be non-negative, got %d", params.Amount)
	}

	seriesID := uuid.New()

	txs := make([]*Transaction, count)
	for i := range count {
		txs[i] = &Transaction{
			Amount:      params.Amount,
			Type:        params.Type,
			CategoryID:  params.CategoryID,
			Description: fmt.Sprintf("%s (%d/%d)", params.Description, i+1, count),
			Date:        params.Date.AddDate(0, i, 0),
			MemberID:    params.MemberID,
			SeriesID:    &seriesID,
		}
	}

	btx, err := s.repo.BeginBatch(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("begin series: %w", err)
	}
	defer btx.Rollback()

	if err := btx.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create series transactions: %w", err)
	}

	if err := btx.Commit(); err != nil {
		return nil, fmt.Errorf("commit series: %w", err)
	}

	return txs, nil
}

// CreateBatch inserts a group of unrelated transactions atomically, used by
// statement imports so a half-imported file never persists.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	txs := make([]*Transaction, len(params))
	for i, p := range params {
		if p.Amount < 0 {
			return nil, fmt.Errorf("amount must be non-negative, got %d", p.Amount)
		}

		txs[i] = &Transaction{
			Amount:      p.Amount,
			Type:        p.Type,
			CategoryID:  p.CategoryID,
			Description: p.Description,
			Date:        p.Date,
			MemberID:    p.MemberID,
		}
	}

	btx, err := s.repo.BeginBatch(ctx, uuid.New())
	if err != nil {
		return nil, fmt.Errorf("begin batch: %w", err)
	}
	defer btx.Rollback()

	if err := btx.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create batch transactions: %w", err)
	}

	if err := btx.Commit(); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}

	return txs, nil
}

// DeleteSeries soft-deletes every transaction in an installment series and
// returns how many rows were affected.
func (s *Service) DeleteSeries(ctx context.Context, seriesID uuid.UUID) (int64, error) {
	return s.repo.DeleteSeries(ctx, seriesID)
}

// SpentInRange sums expense amounts per category name for transactions whose
// date falls in [start, end] inclusive. Used by the TUI for quick summaries;
// full report math lives in the analysis package.
func SpentInRange(txs []*Transaction, start, end time.Time) map[string]int64 {
	totals := make(map[string]int64)

	for _, tx := range txs {
		if tx.Type != TypeExpense {
			continue
		}

		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}

		totals[tx.CategoryName] += tx.Amount
	}

	return totals
}
