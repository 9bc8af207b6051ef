package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/bullseye-app/bullseye/internal/transaction"
)

type transactionResponse struct {
	ID           uuid.UUID        `json:"id"`
	Amount       int64            `json:"amount"`
	Type         transaction.Type `json:"type"`
	CategoryID   uuid.UUID        `json:"category_id"`
	CategoryName string           `json:"category_name,omitempty"`
	Description  string           `json:"description"`
	Date         time.Time        `json:"date"`
	MemberID     *uuid.UUID       `json:"member_id,omitempty"`
	SeriesID     *uuid.UUID       `json:"series_id,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:           tx.ID,
		Amount:       tx.Amount,
		Type:         tx.Type,
		CategoryID:   tx.CategoryID,
		CategoryName: tx.CategoryName,
		Description:  tx.Description,
		Date:         tx.Date,
		MemberID:     tx.MemberID,
		SeriesID:     tx.SeriesID,
		CreatedAt:    tx.CreatedAt,
		UpdatedAt:    tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
