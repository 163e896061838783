package service

import (
	"context"

	"payzee/internal/backend"
	"payzee/internal/government/models"
	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/platform/format"
	"payzee/pkg/requestcontext"
)

type Client interface {
	GetGovernment(ctx context.Context, govtID id.GovernmentID) (*backend.Government, error)
}

type Service struct {
	client Client
}

func New(client Client) *Service {
	return &Service{client: client}
}

// Profile returns the signed-in government's account.
func (s *Service) Profile(ctx context.Context) (*models.Profile, error) {
	govtID, err := requestcontext.GovernmentID(ctx)
	if err != nil {
		return nil, err
	}
	g, err := s.client.GetGovernment(ctx, govtID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile")
	}

	a := g.AccountInfo
	return &models.Profile{
		ID:               a.ID,
		Name:             a.Name,
		Email:            a.Email,
		Jurisdiction:     a.Jurisdiction,
		GovtID:           a.GovtID,
		ImageURL:         a.ImageURL,
		UserType:         a.UserType,
		Balance:          g.WalletInfo.Balance,
		BalanceLabel:     format.Rupees(g.WalletInfo.Balance),
		SchemeCount:      len(g.WalletInfo.Schemes),
		TransactionCount: len(g.WalletInfo.Transactions),
		MemberSince:      format.Date(a.CreatedAt.Time),
		LastUpdated:      format.Date(a.UpdatedAt.Time),
	}, nil
}
