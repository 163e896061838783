package service

//go:generate mockgen -source=service.go -destination=mocks/client_mock.go -package=mocks Client

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"payzee/internal/backend"
	"payzee/internal/listing"
	"payzee/internal/vendors/service/mocks"
	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/requestcontext"
)

func vendor(name, business, license string) backend.Vendor {
	return backend.Vendor{
		AccountInfo: backend.AccountInfo{
			ID:        uuid.NewString(),
			Name:      name,
			Gender:    "female",
			CreatedAt: id.Timestamp{Time: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		},
		BusinessInfo: backend.BusinessInfo{BusinessName: business, BusinessID: "GST-" + name, LicenseType: license},
		WalletInfo:   backend.Wallet{Balance: 1234.5, Transactions: []string{"t-1", "t-2"}},
	}
}

func sessionContext(govtID id.GovernmentID) context.Context {
	return requestcontext.WithIdentity(context.Background(), requestcontext.Identity{
		GovernmentID: govtID,
		UserType:     requestcontext.UserTypeGovernment,
	})
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	govtID := id.GovernmentID(uuid.New())
	svc := New(client)

	client.EXPECT().ListVendors(gomock.Any(), govtID).Return([]backend.Vendor{
		vendor("lakshmi", "Lakshmi Stores", "retail"),
		vendor("arjun", "Arjun Pharma", "pharmacy"),
		vendor("kiran", "Kiran Grains", "Retail"),
	}, nil)

	result, err := svc.List(sessionContext(govtID), listing.Query{Filter: "retail", Search: "grains", Page: 1})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Kiran Grains", result.Items[0].BusinessName)
	assert.Equal(t, "₹1,234.5", result.Items[0].Balance)
	assert.Equal(t, "5 Jan 2024", result.Items[0].JoinedOn)
}

func TestGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	govtID := id.GovernmentID(uuid.New())
	vendorID := id.VendorID(uuid.New())
	svc := New(client)

	t.Run("maps the profile", func(t *testing.T) {
		v := vendor("lakshmi", "Lakshmi Stores", "retail")
		client.EXPECT().GetVendor(gomock.Any(), govtID, vendorID).Return(&v, nil)

		detail, err := svc.Get(sessionContext(govtID), vendorID)
		require.NoError(t, err)
		assert.Equal(t, "female", detail.Gender)
		assert.Equal(t, 2, detail.Transactions)
	})

	t.Run("not found", func(t *testing.T) {
		client.EXPECT().GetVendor(gomock.Any(), govtID, vendorID).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "vendor not found"))

		_, err := svc.Get(sessionContext(govtID), vendorID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("missing session", func(t *testing.T) {
		_, err := svc.Get(context.Background(), vendorID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthenticated))
	})
}
