package models

import "payzee/pkg/platform/format"

// RowFromScheme builds the table row for s.
func RowFromScheme(s Scheme) Row {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return Row{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		Amount:        s.Amount,
		LaunchDate:    format.Date(s.CreatedAt),
		TargetGroup:   s.TargetGroup(),
		FundAllocated: format.Rupees(s.Amount),
		Status:        s.Status,
		Tags:          tags,
		Beneficiaries: len(s.Beneficiaries),
		CreatedAt:     s.CreatedAt,
	}
}
