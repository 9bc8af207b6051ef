package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/bullseye-app/bullseye/internal/category"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(s scanner) (*category.Category, error) {
	var cat category.Category

	var color, desc sql.NullString

	if err := s.Scan(
		&cat.ID, &cat.Name, &color, &desc,
		&cat.CreatedAt, &cat.UpdatedAt, &cat.DeletedAt,
	); err != nil {
		return nil, err
	}

	cat.Color = color.String
	cat.Description = desc.String

	return &cat, nil
}

const selectCategoryColumns = `
	c.id, c.name, c.color, c.description, c.created_at, c.updated_at, c.deleted_at
`

func (s *Store) CreateCategory(ctx context.Context, cat *category.Category) error {
	query := `
		INSERT INTO categories (name, color, description, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		cat.Name,
		cat.Color,
		cat.Description,
	).Scan(&cat.ID, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) GetCategory(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories c
		WHERE c.id = $1 AND c.deleted_at IS NULL`

	cat, err := scanCategory(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return cat, nil
}

func (s *Store) FindByName(ctx context.Context, name string) (*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories c
		WHERE c.name ILIKE $1 AND c.deleted_at IS NULL`

	cat, err := scanCategory(s.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("finding category by name: %w", err)
	}

	return cat, nil
}

// FindByAlias resolves a former category name to its canonical category.
// The newest alias wins when a name was reused across renames.
func (s *Store) FindByAlias(ctx context.Context, name string) (*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM category_aliases a
		JOIN categories c ON c.id = a.category_id
		WHERE a.name ILIKE $1 AND c.deleted_at IS NULL
		ORDER BY a.created_at DESC
		LIMIT 1`

	cat, err := scanCategory(s.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("finding category by alias: %w", err)
	}

	return cat, nil
}

func (s *Store) ListCategories(ctx context.Context) ([]*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories c
		WHERE c.deleted_at IS NULL
		ORDER BY c.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []*category.Category

	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		cats = append(cats, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return cats, nil
}

// RenameCategory updates the display name and records the old name as an
// alias in the same database transaction.
func (s *Store) RenameCategory(ctx context.Context, id uuid.UUID, newName string) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning rename tx: %w", err)
	}
	defer dbTx.Rollback()

	var oldName string

	err = dbTx.QueryRowContext(ctx,
		`SELECT name FROM categories WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`, id,
	).Scan(&oldName)
	if err != nil {
		if err == sql.ErrNoRows {
			return category.ErrNotFound
		}

		return fmt.Errorf("locking category: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx,
		`UPDATE categories SET name = $1, updated_at = NOW() WHERE id = $2`, newName, id,
	); err != nil {
		return fmt.Errorf("renaming category: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx,
		`INSERT INTO category_aliases (category_id, name, created_at) VALUES ($1, $2, NOW())`, id, oldName,
	); err != nil {
		return fmt.Errorf("recording category alias: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing rename: %w", err)
	}

	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE categories
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	return nil
}
