package models

import (
	"time"

	"payzee/internal/backend"
	"payzee/pkg/platform/format"
)

// Row is one line of the transactions table; the detail page shows the same.
type Row struct {
	ID          string    `json:"id"`
	FromID      string    `json:"from_id"`
	ToID        string    `json:"to_id"`
	Amount      float64   `json:"amount"`
	AmountLabel string    `json:"amount_label"`
	TxType      string    `json:"tx_type"`
	SchemeID    *string   `json:"scheme_id"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
}

// FromBackend builds the view of a transaction.
func FromBackend(t backend.Transaction) Row {
	return Row{
		ID:          t.ID,
		FromID:      t.FromID,
		ToID:        t.ToID,
		Amount:      t.Amount,
		AmountLabel: format.Rupees(t.Amount),
		TxType:      t.TxType,
		SchemeID:    t.SchemeID,
		Description: t.Description,
		Date:        format.Date(t.Timestamp.Time),
		Timestamp:   t.Timestamp.Time,
		Status:      t.Status,
	}
}
