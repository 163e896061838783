package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"slices"
	"strings"

	"payzee/internal/application/models"
	"payzee/internal/listing"
	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/platform/format"
)

// PageSize is smaller than the other tables.
const PageSize = 5

//go:embed sample_applications.json
var sampleApplications []byte

// TableConfig filters by status and searches user name, user id and
// application id.
var TableConfig = listing.Config[models.Row]{
	Category: func(r models.Row) string { return string(r.Status) },
	SearchFields: func(r models.Row) []string {
		return []string{r.UserName, r.UserID, r.ID}
	},
	PageSize: PageSize,
}

type Service struct {
	rows    []models.Row
	schemes []string
}

// New loads the built-in sample applications.
func New() (*Service, error) {
	var apps []models.Application
	if err := json.Unmarshal(sampleApplications, &apps); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load sample applications")
	}
	return NewWithApplications(apps), nil
}

func NewWithApplications(apps []models.Application) *Service {
	rows := make([]models.Row, 0, len(apps))
	schemes := []string{}
	for _, a := range apps {
		row := models.Row{Application: a, Date: a.DateApplied}
		if ts, err := id.ParseTimestamp(a.DateApplied); err == nil {
			row.Date = format.Date(ts.Time)
		}
		rows = append(rows, row)
		if !slices.Contains(schemes, a.Scheme) {
			schemes = append(schemes, a.Scheme)
		}
	}
	return &Service{rows: rows, schemes: schemes}
}

// List returns one page of applications. scheme narrows the table to
// applications whose scheme name contains it, ignoring case; it is ANDed
// with the status filter and search.
func (s *Service) List(_ context.Context, q listing.Query, scheme string) (*listing.Result[models.Row], error) {
	result := listing.Apply(s.rows, TableConfig, q, schemeContains(scheme))
	return &result, nil
}

// Schemes lists the distinct scheme names, for the scheme filter.
func (s *Service) Schemes() []string {
	return slices.Clone(s.schemes)
}

func schemeContains(scheme string) listing.Predicate[models.Row] {
	scheme = strings.ToLower(strings.TrimSpace(scheme))
	if listing.IsAll(scheme) {
		return nil
	}
	return func(r models.Row) bool {
		return strings.Contains(strings.ToLower(r.Scheme), scheme)
	}
}
