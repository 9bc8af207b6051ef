package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/bullseye-app/bullseye/internal/alertview"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// UpsertView inserts the viewed mark, keeping the original viewed_at when
// the member marks the same alert again.
func (s *Store) UpsertView(ctx context.Context, view *alertview.View) error {
	query := `
		INSERT INTO alert_views (member_id, alert_id, viewed_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (member_id, alert_id) DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, query, view.MemberID, view.AlertID); err != nil {
		return fmt.Errorf("marking alert viewed: %w", err)
	}

	return nil
}

func (s *Store) ListViews(ctx context.Context, memberID uuid.UUID) ([]*alertview.View, error) {
	query := `
		SELECT member_id, alert_id, viewed_at
		FROM alert_views
		WHERE member_id = $1
		ORDER BY viewed_at
	`

	rows, err := s.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("listing alert views: %w", err)
	}
	defer rows.Close()

	var views []*alertview.View

	for rows.Next() {
		var v alertview.View
		if err := rows.Scan(&v.MemberID, &v.AlertID, &v.ViewedAt); err != nil {
			return nil, fmt.Errorf("scanning alert view: %w", err)
		}

		views = append(views, &v)
	}

	return views, rows.Err()
}
