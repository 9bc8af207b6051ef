// Package importer turns parsed bank statements into stored transactions,
// matching statement categories to known ones and skipping rows that are
// already present.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/bullseye-app/bullseye/internal/category"
	"github.com/bullseye-app/bullseye/internal/importer/statement"
	"github.com/bullseye-app/bullseye/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=source_mock.go -package=importer
type Transactions interface {
	List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
	CreateBatch(ctx context.Context, params []transaction.CreateParams) ([]*transaction.Transaction, error)
}

type Categories interface {
	ResolveName(ctx context.Context, name string) (*category.Category, error)
}

type Service struct {
	transactions Transactions
	categories   Categories
}

func NewService(transactions Transactions, categories Categories) *Service {
	return &Service{transactions: transactions, categories: categories}
}

// Result summarizes one import run. Entries that could not be assigned a
// category are returned for manual handling, not silently dropped.
type Result struct {
	Created       []*transaction.Transaction
	Duplicates    int
	NeedsCategory []statement.Entry
}

// Import parses the statement, drops rows already present for the covered
// date range, resolves category names (current names and aliases both
// match), and stores the remainder atomically.
func (s *Service) Import(ctx context.Context, r io.Reader, memberID *uuid.UUID) (*Result, error) {
	entries, err := statement.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing statement: %w", err)
	}

	if len(entries) == 0 {
		return &Result{}, nil
	}

	existing, err := s.existingKeys(ctx, entries)
	if err != nil {
		return nil, err
	}

	result := new(Result)
	resolved := make(map[string]uuid.UUID)

	var params []transaction.CreateParams

	for _, e := range entries {
		if _, ok := existing[entryKey(e.Date, e.Amount, e.Type, e.Description)]; ok {
			result.Duplicates++
			continue
		}

		catID, ok, err := s.resolveCategory(ctx, e.Category, resolved)
		if err != nil {
			return nil, err
		}

		if !ok {
			result.NeedsCategory = append(result.NeedsCategory, e)
			continue
		}

		params = append(params, transaction.CreateParams{
			Amount:      e.Amount,
			Type:        e.Type,
			CategoryID:  catID,
			Description: e.Description,
			Date:        e.Date,
			MemberID:    memberID,
		})
	}

	if len(params) > 0 {
		created, err := s.transactions.CreateBatch(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("storing imported transactions: %w", err)
		}

		result.Created = created
	}

	return result, nil
}

// existingKeys fetches transactions covering the entries' date span and
// indexes them for duplicate detection.
func (s *Service) existingKeys(ctx context.Context, entries []statement.Entry) (map[string]struct{}, error) {
	minDate, maxDate := entries[0].Date, entries[0].Date
	for _, e := range entries[1:] {
		if e.Date.Before(minDate) {
			minDate = e.Date
		}

		if e.Date.After(maxDate) {
			maxDate = e.Date
		}
	}

	existing, err := s.transactions.List(ctx, transaction.ListFilter{
		StartDate: &minDate,
		EndDate:   &maxDate,
	})
	if err != nil {
		return nil, fmt.Errorf("listing existing transactions: %w", err)
	}

	keys := make(map[string]struct{}, len(existing))
	for _, tx := range existing {
		keys[entryKey(tx.Date, tx.Amount, tx.Type, tx.Description)] = struct{}{}
	}

	return keys, nil
}

func (s *Service) resolveCategory(ctx context.Context, name string, cache map[string]uuid.UUID) (uuid.UUID, bool, error) {
	if name == "" {
		return uuid.Nil, false, nil
	}

	if id, ok := cache[name]; ok {
		return id, id != uuid.Nil, nil
	}

	c, err := s.categories.ResolveName(ctx, name)
	if errors.Is(err, category.ErrNotFound) {
		cache[name] = uuid.Nil
		return uuid.Nil, false, nil
	}

	if err != nil {
		return uuid.Nil, false, fmt.Errorf("resolving category %q: %w", name, err)
	}

	cache[name] = c.ID

	return c.ID, true, nil
}

func entryKey(date time.Time, amount int64, typ transaction.Type, desc string) string {
	return fmt.Sprintf("%s|%d|%s|%s", date.Format("2006-01-02"), amount, typ, desc)
}
