package service

import (
	"payzee/internal/backend"
	"payzee/internal/scheme/models"
)

// FromBackend converts the API shape. Unknown statuses are kept verbatim so
// the table still shows what the backend holds.
func FromBackend(s backend.Scheme) models.Scheme {
	status, ok := models.ParseStatus(s.Status)
	if !ok {
		status = models.Status(s.Status)
	}
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	beneficiaries := s.Beneficiaries
	if beneficiaries == nil {
		beneficiaries = []string{}
	}
	e := s.EligibilityCriteria
	return models.Scheme{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		GovtID:      s.GovtID,
		Amount:      s.Amount,
		Status:      status,
		Eligibility: models.Eligibility{
			Occupation:   e.Occupation,
			MinAge:       e.MinAge,
			MaxAge:       e.MaxAge,
			Gender:       e.Gender,
			State:        e.State,
			District:     e.District,
			City:         e.City,
			Caste:        e.Caste,
			AnnualIncome: e.AnnualIncome,
		},
		Tags:          tags,
		Beneficiaries: beneficiaries,
		CreatedAt:     s.CreatedAt.Time,
		UpdatedAt:     s.UpdatedAt.Time,
	}
}

// FromBackendList converts every scheme, preserving order.
func FromBackendList(in []backend.Scheme) []models.Scheme {
	out := make([]models.Scheme, 0, len(in))
	for _, s := range in {
		out = append(out, FromBackend(s))
	}
	return out
}

func toPayload(p models.Payload) backend.SchemePayload {
	e := p.Eligibility
	return backend.SchemePayload{
		Name:        p.Name,
		Description: p.Description,
		Amount:      p.Amount,
		Status:      string(p.Status),
		EligibilityCriteria: backend.EligibilityCriteria{
			Occupation:   e.Occupation,
			MinAge:       e.MinAge,
			MaxAge:       e.MaxAge,
			Gender:       e.Gender,
			State:        e.State,
			District:     e.District,
			City:         e.City,
			Caste:        e.Caste,
			AnnualIncome: e.AnnualIncome,
		},
		Tags: p.Tags,
	}
}
