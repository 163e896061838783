package service

import (
	"time"

	"payzee/internal/backend"
	"payzee/internal/beneficiary/models"
	id "payzee/pkg/domain"
	"payzee/pkg/platform/format"
)

func toDetail(c backend.Citizen, schemes []backend.Scheme, now time.Time) *models.Detail {
	enrolled, unresolved := resolveSchemes(c.SchemeInfo, schemes)
	return &models.Detail{
		Row:                 toRow(c),
		Address:             c.PersonalInfo.Address,
		DOB:                 c.PersonalInfo.DOB,
		Age:                 age(c.PersonalInfo.DOB, now),
		GovtWallet:          toWallet(c.WalletInfo.GovtWallet),
		PersonalWallet:      toWallet(c.WalletInfo.PersonalWallet),
		Schemes:             enrolled,
		UnresolvedSchemeIDs: unresolved,
	}
}

// resolveSchemes looks up each enrolled id, keeping enrolment order.
func resolveSchemes(ids []string, schemes []backend.Scheme) ([]models.EnrolledScheme, []string) {
	byID := make(map[string]backend.Scheme, len(schemes))
	for _, s := range schemes {
		byID[s.ID] = s
	}

	enrolled := make([]models.EnrolledScheme, 0, len(ids))
	unresolved := []string{}
	for _, sid := range ids {
		s, ok := byID[sid]
		if !ok {
			unresolved = append(unresolved, sid)
			continue
		}
		enrolled = append(enrolled, models.EnrolledScheme{
			ID:          s.ID,
			Name:        s.Name,
			Status:      s.Status,
			Amount:      s.Amount,
			AmountLabel: format.Rupees(s.Amount),
		})
	}
	return enrolled, unresolved
}

func toWallet(w backend.Wallet) models.Wallet {
	return models.Wallet{
		Balance:      w.Balance,
		BalanceLabel: format.Rupees(w.Balance),
		Transactions: len(w.Transactions),
	}
}

// age is nil when the date of birth is missing or unparseable.
func age(dob string, now time.Time) *int {
	if dob == "" {
		return nil
	}
	ts, err := id.ParseTimestamp(dob)
	if err != nil {
		return nil
	}
	years := id.AgeAt(ts.Time, now)
	return &years
}
