package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

var ErrNotFound = errors.New("transaction not found")

// Transaction represents a single money movement recorded by a household
// member. Amount is always non-negative; direction is carried by Type.
type Transaction struct {
	ID           uuid.UUID
	Amount       int64 // Amount in cents, >= 0
	Type         Type
	CategoryID   uuid.UUID
	CategoryName string // Resolved via JOIN on categories
	Description  string
	Date         time.Time
	MemberID     *uuid.UUID
	SeriesID     *uuid.UUID // Set when the transaction belongs to an installment series
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}
