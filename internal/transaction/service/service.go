package service

import (
	"context"

	"payzee/internal/backend"
	"payzee/internal/listing"
	"payzee/internal/transaction/models"
	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/requestcontext"
)

// Client is the slice of the backend API the transaction pages use.
type Client interface {
	ListTransactions(ctx context.Context, govtID id.GovernmentID) ([]backend.Transaction, error)
	GetTransaction(ctx context.Context, govtID id.GovernmentID, txID id.TransactionID) (*backend.Transaction, error)
}

// TableConfig filters by status and searches description, type and id.
var TableConfig = listing.Config[models.Row]{
	Category: func(r models.Row) string { return r.Status },
	SearchFields: func(r models.Row) []string {
		return []string{r.Description, r.TxType, r.ID}
	},
	PageSize: listing.DefaultPageSize,
}

type Service struct {
	client Client
}

func New(client Client) *Service {
	return &Service{client: client}
}

func (s *Service) List(ctx context.Context, q listing.Query) (*listing.Result[models.Row], error) {
	govtID, err := requestcontext.GovernmentID(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.client.ListTransactions(ctx, govtID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load transactions")
	}

	rows := make([]models.Row, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, models.FromBackend(t))
	}
	result := listing.Apply(rows, TableConfig, q)
	return &result, nil
}

func (s *Service) Get(ctx context.Context, txID id.TransactionID) (*models.Row, error) {
	govtID, err := requestcontext.GovernmentID(ctx)
	if err != nil {
		return nil, err
	}
	t, err := s.client.GetTransaction(ctx, govtID, txID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load transaction")
	}
	row := models.FromBackend(*t)
	return &row, nil
}
