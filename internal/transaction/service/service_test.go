package service

//go:generate mockgen -source=service.go -destination=mocks/client_mock.go -package=mocks Client

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"payzee/internal/backend"
	"payzee/internal/listing"
	"payzee/internal/transaction/service/mocks"
	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/requestcontext"
)

func sessionContext(govtID id.GovernmentID) context.Context {
	return requestcontext.WithIdentity(context.Background(), requestcontext.Identity{
		GovernmentID: govtID,
		UserType:     requestcontext.UserTypeGovernment,
	})
}

func transactions(n int) []backend.Transaction {
	out := make([]backend.Transaction, 0, n)
	for i := 1; i <= n; i++ {
		status := backend.TxStatusCompleted
		if i%4 == 0 {
			status = backend.TxStatusFailed
		}
		out = append(out, backend.Transaction{
			ID:          fmt.Sprintf("tx-%02d", i),
			Amount:      float64(i * 1000),
			TxType:      backend.TxGovernmentToCitizen,
			Description: fmt.Sprintf("disbursement %d", i),
			Timestamp:   id.Timestamp{Time: time.Date(2023, 6, i, 10, 0, 0, 0, time.UTC)},
			Status:      status,
		})
	}
	return out
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	govtID := id.GovernmentID(uuid.New())
	svc := New(client)

	t.Run("second page of completed transactions", func(t *testing.T) {
		client.EXPECT().ListTransactions(gomock.Any(), govtID).Return(transactions(16), nil)

		result, err := svc.List(sessionContext(govtID), listing.Query{Filter: "completed", Page: 2})
		require.NoError(t, err)
		assert.Equal(t, 12, result.Matched)
		assert.Equal(t, 2, result.TotalPages)
		require.Len(t, result.Items, 2)
		assert.Equal(t, "tx-14", result.Items[0].ID)
		assert.Equal(t, "14 Jun 2023", result.Items[0].Date)
		assert.Equal(t, "₹14,000", result.Items[0].AmountLabel)
	})

	t.Run("search by id", func(t *testing.T) {
		client.EXPECT().ListTransactions(gomock.Any(), govtID).Return(transactions(16), nil)

		result, err := svc.List(sessionContext(govtID), listing.Query{Search: "TX-07", Page: 1})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "tx-07", result.Items[0].ID)
	})

	t.Run("upstream failure", func(t *testing.T) {
		client.EXPECT().ListTransactions(gomock.Any(), govtID).
			Return(nil, dErrors.New(dErrors.CodeUnavailable, "backend unavailable, please try again later"))

		_, err := svc.List(sessionContext(govtID), listing.Query{Page: 1})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
	})
}

func TestGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	govtID := id.GovernmentID(uuid.New())
	txID := id.TransactionID(uuid.New())
	tx := transactions(1)[0]
	client.EXPECT().GetTransaction(gomock.Any(), govtID, txID).Return(&tx, nil)

	row, err := New(client).Get(sessionContext(govtID), txID)
	require.NoError(t, err)
	assert.Equal(t, "1 Jun 2023", row.Date)
	assert.Equal(t, backend.TxStatusCompleted, row.Status)
}
