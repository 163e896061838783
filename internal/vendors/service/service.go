package service

import (
	"context"

	"payzee/internal/backend"
	"payzee/internal/listing"
	"payzee/internal/vendors/models"
	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/platform/format"
	"payzee/pkg/requestcontext"
)

// Client is the slice of the backend API the vendor pages use.
type Client interface {
	ListVendors(ctx context.Context, govtID id.GovernmentID) ([]backend.Vendor, error)
	GetVendor(ctx context.Context, govtID id.GovernmentID, vendorID id.VendorID) (*backend.Vendor, error)
}

// TableConfig filters by license type and searches name, business name,
// business id and occupation.
var TableConfig = listing.Config[models.Row]{
	Category: func(r models.Row) string { return r.LicenseType },
	SearchFields: func(r models.Row) []string {
		return []string{r.Name, r.BusinessName, r.BusinessID, r.Occupation}
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
	vendors, err := s.client.ListVendors(ctx, govtID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load vendors")
	}

	rows := make([]models.Row, 0, len(vendors))
	for _, v := range vendors {
		rows = append(rows, toRow(v))
	}
	result := listing.Apply(rows, TableConfig, q)
	return &result, nil
}

func (s *Service) Get(ctx context.Context, vendorID id.VendorID) (*models.Detail, error) {
	govtID, err := requestcontext.GovernmentID(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.client.GetVendor(ctx, govtID, vendorID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load vendor")
	}
	return &models.Detail{
		Row:          toRow(*v),
		Gender:       v.AccountInfo.Gender,
		Address:      v.BusinessInfo.Address,
		BalanceValue: v.WalletInfo.Balance,
		Transactions: len(v.WalletInfo.Transactions),
	}, nil
}

func toRow(v backend.Vendor) models.Row {
	return models.Row{
		ID:           v.AccountInfo.ID,
		Name:         v.AccountInfo.Name,
		Email:        v.AccountInfo.Email,
		ImageURL:     v.AccountInfo.ImageURL,
		BusinessName: v.BusinessInfo.BusinessName,
		BusinessID:   v.BusinessInfo.BusinessID,
		LicenseType:  v.BusinessInfo.LicenseType,
		Occupation:   v.BusinessInfo.Occupation,
		Phone:        v.BusinessInfo.Phone,
		Balance:      format.Rupees(v.WalletInfo.Balance),
		JoinedOn:     format.Date(v.AccountInfo.CreatedAt.Time),
	}
}
