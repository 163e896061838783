package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"payzee/internal/backend"
	"payzee/internal/beneficiary/models"
	"payzee/internal/listing"
	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/platform/format"
	"payzee/pkg/requestcontext"
)

// Client is the slice of the backend API the beneficiary pages use.
type Client interface {
	ListCitizens(ctx context.Context, govtID id.GovernmentID) ([]backend.Citizen, error)
	GetCitizen(ctx context.Context, govtID id.GovernmentID, citizenID id.CitizenID) (*backend.Citizen, error)
	ListSchemes(ctx context.Context, govtID id.GovernmentID) ([]backend.Scheme, error)
}

// TableConfig filters by occupation and searches name, email, id number
// and phone.
var TableConfig = listing.Config[models.Row]{
	Category: func(r models.Row) string { return r.Occupation },
	SearchFields: func(r models.Row) []string {
		return []string{r.Name, r.Email, r.IDNumber, r.Phone}
	},
	PageSize: listing.DefaultPageSize,
}

type Service struct {
	client Client
}

func New(client Client) *Service {
	return &Service{client: client}
}

// List returns one page of the beneficiaries table. Citizens without a
// scheme are not beneficiaries and never appear.
func (s *Service) List(ctx context.Context, q listing.Query) (*listing.Result[models.Row], error) {
	govtID, err := requestcontext.GovernmentID(ctx)
	if err != nil {
		return nil, err
	}
	citizens, err := s.client.ListCitizens(ctx, govtID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load beneficiaries")
	}

	rows := make([]models.Row, 0, len(citizens))
	for _, c := range citizens {
		if c.IsBeneficiary() {
			rows = append(rows, toRow(c))
		}
	}
	result := listing.Apply(rows, TableConfig, q)
	return &result, nil
}

// Get returns a beneficiary with the enrolled schemes resolved against the
// government's scheme list. The citizen and the schemes are fetched
// concurrently.
func (s *Service) Get(ctx context.Context, citizenID id.CitizenID) (*models.Detail, error) {
	govtID, err := requestcontext.GovernmentID(ctx)
	if err != nil {
		return nil, err
	}

	var (
		citizen *backend.Citizen
		schemes []backend.Scheme
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		citizen, err = s.client.GetCitizen(gctx, govtID, citizenID)
		return err
	})
	g.Go(func() error {
		var err error
		schemes, err = s.client.ListSchemes(gctx, govtID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load beneficiary")
	}

	// A bare citizen is still shown; the detail page lists zero schemes.
	return toDetail(*citizen, schemes, requestcontext.Now(ctx)), nil
}

func toRow(c backend.Citizen) models.Row {
	return models.Row{
		ID:           c.AccountInfo.ID,
		Name:         c.AccountInfo.Name,
		Email:        c.AccountInfo.Email,
		ImageURL:     c.AccountInfo.ImageURL,
		Phone:        c.PersonalInfo.Phone,
		IDType:       c.PersonalInfo.IDType,
		IDNumber:     c.PersonalInfo.IDNumber,
		Gender:       c.PersonalInfo.Gender,
		Occupation:   c.PersonalInfo.Occupation,
		Caste:        c.PersonalInfo.Caste,
		AnnualIncome: c.PersonalInfo.AnnualIncome,
		SchemeCount:  len(c.SchemeInfo),
		GovtBalance:  format.Rupees(c.WalletInfo.GovtWallet.Balance),
		JoinedOn:     format.Date(c.AccountInfo.CreatedAt.Time),
	}
}
