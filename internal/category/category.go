package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("category not found")

// Category is the canonical, UUID-keyed identity for a spending category.
// Transactions reference categories by id; the name is a display attribute
// with a unique index, so renames never orphan historical data.
type Category struct {
	ID          uuid.UUID
	Name        string
	Color       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

// Alias records a former name of a category after a rename. Legacy data
// keyed by category name (imports, old budget configs) resolves through
// aliases to the canonical category.
type Alias struct {
	CategoryID uuid.UUID
	Name       string
	CreatedAt  time.Time
}
