package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bullseye-app/bullseye/internal/budget"
)

// applyLockKey serializes ApplyDue runs across processes.
const applyLockKey = 0x62756467 // "budg"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const selectBudgetColumns = `
	b.id, b.version, b.active, b.categories, b.settings, b.created_at
`

func scanBudget(s scanner) (*budget.PersonalBudget, error) {
	var b budget.PersonalBudget

	var categoriesJSON, settingsJSON []byte

	if err := s.Scan(&b.ID, &b.Version, &b.Active, &categoriesJSON, &settingsJSON, &b.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(categoriesJSON, &b.Categories); err != nil {
		return nil, fmt.Errorf("decoding budget categories: %w", err)
	}

	if err := json.Unmarshal(settingsJSON, &b.Settings); err != nil {
		return nil, fmt.Errorf("decoding budget settings: %w", err)
	}

	return &b, nil
}

func getActiveBudget(ctx context.Context, q querier) (*budget.PersonalBudget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM personal_budgets b
		WHERE b.active`

	b, err := scanBudget(q.QueryRowContext(ctx, query))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNoActiveBudget
		}

		return nil, fmt.Errorf("getting active budget: %w", err)
	}

	return b, nil
}

func (s *Store) GetActiveBudget(ctx context.Context) (*budget.PersonalBudget, error) {
	return getActiveBudget(ctx, s.db)
}

func (s *Store) GetBudgetVersion(ctx context.Context, version int) (*budget.PersonalBudget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM personal_budgets b
		WHERE b.version = $1`

	b, err := scanBudget(s.db.QueryRowContext(ctx, query, version))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("getting budget version: %w", err)
	}

	return b, nil
}

func (s *Store) ListBudgetVersions(ctx context.Context) ([]*budget.PersonalBudget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM personal_budgets b
		ORDER BY b.version DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing budget versions: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.PersonalBudget

	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning budget version: %w", err)
		}

		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget rows: %w", err)
	}

	return budgets, nil
}

// createBudgetVersion deactivates the current active version and inserts the
// new one with version max+1. Callers must run it inside a transaction.
func createBudgetVersion(ctx context.Context, tx *sql.Tx, b *budget.PersonalBudget) error {
	if _, err := tx.ExecContext(ctx, `UPDATE personal_budgets SET active = FALSE WHERE active`); err != nil {
		return fmt.Errorf("deactivating previous version: %w", err)
	}

	categoriesJSON, err := json.Marshal(b.Categories)
	if err != nil {
		return fmt.Errorf("encoding budget categories: %w", err)
	}

	settingsJSON, err := json.Marshal(b.Settings)
	if err != nil {
		return fmt.Errorf("encoding budget settings: %w", err)
	}

	query := `
		INSERT INTO personal_budgets (version, active, categories, settings, created_at)
		VALUES ((SELECT COALESCE(MAX(version), 0) + 1 FROM personal_budgets), TRUE, $1, $2, NOW())
		RETURNING id, version, created_at
	`

	if err := tx.QueryRowContext(ctx, query, categoriesJSON, settingsJSON).
		Scan(&b.ID, &b.Version, &b.CreatedAt); err != nil {
		return fmt.Errorf("inserting budget version: %w", err)
	}

	b.Active = true

	return nil
}

func (s *Store) CreateBudgetVersion(ctx context.Context, b *budget.PersonalBudget) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning version tx: %w", err)
	}
	defer dbTx.Rollback()

	if err := createBudgetVersion(ctx, dbTx, b); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing budget version: %w", err)
	}

	return nil
}

const selectMonthlyColumns = `
	m.id, m.year, m.month, m.budget_version, m.categories,
	m.adjustment_count, m.locked, m.created_at, m.updated_at
`

func scanMonthly(s scanner) (*budget.MonthlyBudget, error) {
	var mb budget.MonthlyBudget

	var month int

	var categoriesJSON []byte

	if err := s.Scan(
		&mb.ID, &mb.Year, &month, &mb.BudgetVersion, &categoriesJSON,
		&mb.AdjustmentCount, &mb.Locked, &mb.CreatedAt, &mb.UpdatedAt,
	); err != nil {
		return nil, err
	}

	mb.Month = time.Month(month)

	if err := json.Unmarshal(categoriesJSON, &mb.Categories); err != nil {
		return nil, fmt.Errorf("decoding monthly categories: %w", err)
	}

	return &mb, nil
}

func (s *Store) GetMonthlyBudget(ctx context.Context, year int, month time.Month) (*budget.MonthlyBudget, error) {
	query := `SELECT ` + selectMonthlyColumns + `
		FROM monthly_budgets m
		WHERE m.year = $1 AND m.month = $2`

	mb, err := scanMonthly(s.db.QueryRowContext(ctx, query, year, int(month)))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("getting monthly budget: %w", err)
	}

	return mb, nil
}

func (s *Store) ListMonthlyBudgets(ctx context.Context, start, end time.Time) ([]*budget.MonthlyBudget, error) {
	query := `SELECT ` + selectMonthlyColumns + `
		FROM monthly_budgets m
		WHERE (m.year * 12 + m.month - 1) BETWEEN $1 AND $2
		ORDER BY m.year ASC, m.month ASC`

	startIdx := start.Year()*12 + int(start.Month()) - 1
	endIdx := end.Year()*12 + int(end.Month()) - 1

	rows, err := s.db.QueryContext(ctx, query, startIdx, endIdx)
	if err != nil {
		return nil, fmt.Errorf("listing monthly budgets: %w", err)
	}
	defer rows.Close()

	var monthlies []*budget.MonthlyBudget

	for rows.Next() {
		mb, err := scanMonthly(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning monthly budget: %w", err)
		}

		monthlies = append(monthlies, mb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monthly rows: %w", err)
	}

	return monthlies, nil
}

func (s *Store) CreateMonthlyBudget(ctx context.Context, mb *budget.MonthlyBudget) error {
	categoriesJSON, err := json.Marshal(mb.Categories)
	if err != nil {
		return fmt.Errorf("encoding monthly categories: %w", err)
	}

	query := `
		INSERT INTO monthly_budgets (year, month, budget_version, categories, adjustment_count, locked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, FALSE, NOW(), NOW())
		ON CONFLICT (year, month) DO NOTHING
		RETURNING id, created_at
	`

	err = s.db.QueryRowContext(ctx, query,
		mb.Year, int(mb.Month), mb.BudgetVersion, categoriesJSON,
	).Scan(&mb.ID, &mb.CreatedAt)
	if err == sql.ErrNoRows {
		// Lost the race to another snapshot writer; read theirs back.
		existing, getErr := s.GetMonthlyBudget(ctx, mb.Year, mb.Month)
		if getErr != nil {
			return fmt.Errorf("reading concurrent snapshot: %w", getErr)
		}

		*mb = *existing

		return nil
	}

	if err != nil {
		return fmt.Errorf("creating monthly budget: %w", err)
	}

	return nil
}

// UpdateMonthlyCategory overrides one category config inside the snapshot's
// JSON document and bumps the adjustment counter.
func (s *Store) UpdateMonthlyCategory(ctx context.Context, id uuid.UUID, name string, cfg budget.CategoryConfig) error {
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding category config: %w", err)
	}

	query := `
		UPDATE monthly_budgets
		SET categories = jsonb_set(categories, ARRAY[$1], $2::jsonb),
		    adjustment_count = adjustment_count + 1,
		    updated_at = NOW()
		WHERE id = $3 AND NOT locked
	`

	res, err := s.db.ExecContext(ctx, query, name, cfgJSON, id)
	if err != nil {
		return fmt.Errorf("updating monthly category: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("counting updated rows: %w", err)
	}

	if affected == 0 {
		return budget.ErrLocked
	}

	return nil
}

func (s *Store) SetMonthlyLock(ctx context.Context, id uuid.UUID, locked bool) error {
	query := `
		UPDATE monthly_budgets
		SET locked = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := s.db.ExecContext(ctx, query, locked, id)
	if err != nil {
		return fmt.Errorf("setting monthly lock: %w", err)
	}

	return nil
}

const selectAdjustmentColumns = `
	a.id, a.category_name, a.current_limit, a.new_limit, a.kind,
	a.effective_year, a.effective_month, a.applied, a.applied_at,
	a.reason, a.new_category, a.created_at
`

func scanAdjustment(s scanner) (*budget.Adjustment, error) {
	var adj budget.Adjustment

	var month int

	var kindStr string

	var newCategoryJSON []byte

	if err := s.Scan(
		&adj.ID, &adj.CategoryName, &adj.CurrentLimit, &adj.NewLimit, &kindStr,
		&adj.EffectiveYear, &month, &adj.Applied, &adj.AppliedAt,
		&adj.Reason, &newCategoryJSON, &adj.CreatedAt,
	); err != nil {
		return nil, err
	}

	adj.Kind = budget.AdjustmentKind(kindStr)
	adj.EffectiveMonth = time.Month(month)

	if len(newCategoryJSON) > 0 {
		if err := json.Unmarshal(newCategoryJSON, &adj.NewCategory); err != nil {
			return nil, fmt.Errorf("decoding new category payload: %w", err)
		}
	}

	return &adj, nil
}

func (s *Store) CreateAdjustment(ctx context.Context, adj *budget.Adjustment) error {
	var newCategoryJSON []byte

	if adj.NewCategory != nil {
		payload, err := json.Marshal(adj.NewCategory)
		if err != nil {
			return fmt.Errorf("encoding new category payload: %w", err)
		}

		newCategoryJSON = payload
	}

	query := `
		INSERT INTO budget_adjustments
			(category_name, current_limit, new_limit, kind, effective_year, effective_month, applied, reason, new_category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		adj.CategoryName, adj.CurrentLimit, adj.NewLimit, adj.Kind,
		adj.EffectiveYear, int(adj.EffectiveMonth), adj.Reason, newCategoryJSON,
	).Scan(&adj.ID, &adj.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating adjustment: %w", err)
	}

	return nil
}

func (s *Store) GetAdjustment(ctx context.Context, id uuid.UUID) (*budget.Adjustment, error) {
	query := `SELECT ` + selectAdjustmentColumns + `
		FROM budget_adjustments a
		WHERE a.id = $1`

	adj, err := scanAdjustment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("getting adjustment: %w", err)
	}

	return adj, nil
}

func (s *Store) ListAdjustments(ctx context.Context, pendingOnly bool) ([]*budget.Adjustment, error) {
	query := `SELECT ` + selectAdjustmentColumns + `
		FROM budget_adjustments a`

	if pendingOnly {
		query += ` WHERE NOT a.applied`
	}

	query += ` ORDER BY a.effective_year ASC, a.effective_month ASC, a.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing adjustments: %w", err)
	}
	defer rows.Close()

	var adjs []*budget.Adjustment

	for rows.Next() {
		adj, err := scanAdjustment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning adjustment: %w", err)
		}

		adjs = append(adjs, adj)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating adjustment rows: %w", err)
	}

	return adjs, nil
}

func (s *Store) DeleteAdjustment(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM budget_adjustments WHERE id = $1 AND NOT applied`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting adjustment: %w", err)
	}

	return nil
}

type applyTx struct {
	tx *sql.Tx
}

func (s *Store) BeginApply(ctx context.Context) (budget.ApplyTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning apply tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", int64(applyLockKey)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring apply lock: %w", err)
	}

	return &applyTx{tx: dbTx}, nil
}

func (atx *applyTx) Commit() error   { return atx.tx.Commit() }
func (atx *applyTx) Rollback() error { return atx.tx.Rollback() }

func (atx *applyTx) ActiveBudget(ctx context.Context) (*budget.PersonalBudget, error) {
	return getActiveBudget(ctx, atx.tx)
}

func (atx *applyTx) DueAdjustments(ctx context.Context, year int, month time.Month) ([]*budget.Adjustment, error) {
	query := `SELECT ` + selectAdjustmentColumns + `
		FROM budget_adjustments a
		WHERE NOT a.applied
		  AND (a.effective_year * 12 + a.effective_month - 1) <= $1
		ORDER BY a.effective_year ASC, a.effective_month ASC, a.created_at ASC`

	monthIdx := year*12 + int(month) - 1

	rows, err := atx.tx.QueryContext(ctx, query, monthIdx)
	if err != nil {
		return nil, fmt.Errorf("listing due adjustments: %w", err)
	}
	defer rows.Close()

	var adjs []*budget.Adjustment

	for rows.Next() {
		adj, err := scanAdjustment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning due adjustment: %w", err)
		}

		adjs = append(adjs, adj)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating due adjustment rows: %w", err)
	}

	return adjs, nil
}

func (atx *applyTx) CreateBudgetVersion(ctx context.Context, b *budget.PersonalBudget) error {
	return createBudgetVersion(ctx, atx.tx, b)
}

func (atx *applyTx) MarkApplied(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	query := `
		UPDATE budget_adjustments
		SET applied = TRUE, applied_at = $1
		WHERE id = ANY($2::uuid[])
	`

	// database/sql has no array support for uuid.UUID; go through strings.
	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}

	if _, err := atx.tx.ExecContext(ctx, query, at, strIDs); err != nil {
		return fmt.Errorf("marking adjustments applied: %w", err)
	}

	return nil
}
