package service

//go:generate mockgen -source=service.go -destination=mocks/client_mock.go -package=mocks Client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"payzee/internal/backend"
	"payzee/internal/listing"
	"payzee/internal/scheme/models"
	"payzee/internal/scheme/service/mocks"
	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	client   *mocks.MockClient
	service  *Service
	ctx      context.Context
	govtID   id.GovernmentID
	schemeID id.SchemeID
	now      time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = mocks.NewMockClient(s.ctrl)
	s.service = New(s.client)
	s.govtID = id.GovernmentID(uuid.New())
	s.schemeID = id.SchemeID(uuid.New())
	s.now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithIdentity(context.Background(), requestcontext.Identity{
		GovernmentID: s.govtID,
		UserType:     requestcontext.UserTypeGovernment,
	})
	s.ctx = requestcontext.WithTime(ctx, s.now)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) backendScheme(name, status string, tags ...string) backend.Scheme {
	return backend.Scheme{
		ID:          uuid.NewString(),
		Name:        name,
		Description: name + " description",
		GovtID:      s.govtID.String(),
		Amount:      100000,
		Status:      status,
		Tags:        tags,
		CreatedAt:   id.Timestamp{Time: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)},
	}
}

func validForm() models.Form {
	return models.Form{
		Name:        "Kisan Support",
		Description: "Seed subsidy for small farmers",
		Amount:      5000,
		Status:      models.StatusActive,
		Eligibility: models.FormEligibility{Tags: []string{"agriculture", "rural"}},
	}
}

func (s *ServiceSuite) TestList() {
	s.Run("filters by status and searches target group", func() {
		s.client.EXPECT().ListSchemes(gomock.Any(), s.govtID).Return([]backend.Scheme{
			s.backendScheme("Kisan Support", "active", "agriculture", "rural"),
			s.backendScheme("Mid-day Meals", "pending", "food", "children"),
			s.backendScheme("Skill India", "active", "skills"),
		}, nil)

		result, err := s.service.List(s.ctx, listing.Query{Filter: "Active", Search: "rural", Page: 1})
		s.Require().NoError(err)
		s.Require().Len(result.Items, 1)

		row := result.Items[0]
		s.Equal("Kisan Support", row.Name)
		s.Equal("agriculture, rural", row.TargetGroup)
		s.Equal("₹1,00,000", row.FundAllocated)
		s.Equal("15 Jun 2023", row.LaunchDate)
		s.Equal(1, result.TotalPages)
	})

	s.Run("untagged scheme targets all", func() {
		s.client.EXPECT().ListSchemes(gomock.Any(), s.govtID).Return([]backend.Scheme{
			s.backendScheme("Open Scheme", "active"),
		}, nil)

		result, err := s.service.List(s.ctx, listing.Query{Search: "all", Page: 1})
		s.Require().NoError(err)
		s.Require().Len(result.Items, 1)
		s.Equal("All", result.Items[0].TargetGroup)
	})

	s.Run("missing session is unauthenticated without a backend call", func() {
		_, err := s.service.List(context.Background(), listing.Query{Page: 1})
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthenticated))
	})

	s.Run("backend failure keeps its code", func() {
		s.client.EXPECT().ListSchemes(gomock.Any(), s.govtID).
			Return(nil, dErrors.New(dErrors.CodeUnavailable, "backend unavailable"))

		_, err := s.service.List(s.ctx, listing.Query{Page: 1})
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	})
}

func (s *ServiceSuite) TestGet() {
	raw := s.backendScheme("Kisan Support", "pending", "agriculture")
	s.client.EXPECT().GetScheme(gomock.Any(), s.govtID, s.schemeID).Return(&raw, nil)

	detail, err := s.service.Get(s.ctx, s.schemeID)
	s.Require().NoError(err)
	s.Equal(models.StatusPending, detail.Scheme.Status)
	s.Equal("Kisan Support", detail.Form.Name)
	s.Equal([]string{"agriculture"}, detail.Form.Eligibility.Tags)
}

func (s *ServiceSuite) TestCreate() {
	s.Run("reshapes the form and reconciles from the returned id", func() {
		minAge := 18
		form := validForm()
		form.Eligibility.MinAge = &minAge
		newID := uuid.NewString()

		s.client.EXPECT().CreateScheme(gomock.Any(), s.govtID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ id.GovernmentID, p backend.SchemePayload) (*backend.SchemeResponse, error) {
				s.Equal([]string{"agriculture", "rural"}, p.Tags)
				s.Equal(&minAge, p.EligibilityCriteria.MinAge)
				s.Equal("active", p.Status)
				return &backend.SchemeResponse{Message: "created", SchemeID: newID}, nil
			})

		created, err := s.service.Create(s.ctx, form)
		s.Require().NoError(err)
		s.Equal(newID, created.ID)
		s.Equal("Kisan Support", created.Name)
		s.Equal(s.govtID.String(), created.GovtID)
		s.Equal(s.now, created.CreatedAt)
	})

	s.Run("rejects a form without name before calling the backend", func() {
		form := validForm()
		form.Name = ""

		_, err := s.service.Create(s.ctx, form)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Contains(err.Error(), "name and description are required")
	})

	s.Run("surfaces backend validation message", func() {
		s.client.EXPECT().CreateScheme(gomock.Any(), s.govtID, gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeValidation, "amount must be greater than 0"))

		_, err := s.service.Create(s.ctx, validForm())
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("amount must be greater than 0", err.Error())
	})

	s.Run("other failures become a generic message", func() {
		s.client.EXPECT().CreateScheme(gomock.Any(), s.govtID, gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeUnavailable, "backend unavailable"))

		_, err := s.service.Create(s.ctx, validForm())
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
		s.Equal("failed to save scheme, please try again", err.Error())
	})
}

func (s *ServiceSuite) TestCreateCollapsesDuplicateSubmits() {
	release := make(chan struct{})
	started := make(chan struct{})
	s.client.EXPECT().CreateScheme(gomock.Any(), s.govtID, gomock.Any()).
		DoAndReturn(func(context.Context, id.GovernmentID, backend.SchemePayload) (*backend.SchemeResponse, error) {
			close(started)
			<-release
			return &backend.SchemeResponse{SchemeID: "s-1"}, nil
		}).Times(1)

	var wg sync.WaitGroup
	results := make([]*models.Scheme, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = s.service.Create(s.ctx, validForm())
	}()
	<-started
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = s.service.Create(s.ctx, validForm())
	}()
	// give the second submit time to join the in-flight call
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	s.Require().NotNil(results[0])
	s.Require().NotNil(results[1])
	s.Equal("s-1", results[0].ID)
	s.Equal("s-1", results[1].ID)
}

func (s *ServiceSuite) TestUpdate() {
	current := s.backendScheme("Old Name", "active", "food")
	current.Beneficiaries = []string{"c-1", "c-2"}
	s.client.EXPECT().GetScheme(gomock.Any(), s.govtID, s.schemeID).Return(&current, nil)
	s.client.EXPECT().UpdateScheme(gomock.Any(), s.govtID, s.schemeID, gomock.Any()).
		Return(&backend.SchemeResponse{Message: "updated"}, nil)

	updated, err := s.service.Update(s.ctx, s.schemeID, validForm())
	s.Require().NoError(err)
	s.Equal("Kisan Support", updated.Name)
	s.Equal([]string{"agriculture", "rural"}, updated.Tags)
	s.Equal([]string{"c-1", "c-2"}, updated.Beneficiaries)
	s.Equal(current.ID, updated.ID)
	s.Equal(s.now, updated.UpdatedAt)
}

func (s *ServiceSuite) TestSetStatus() {
	s.Run("resubmits the scheme with only the status replaced", func() {
		current := s.backendScheme("Kisan Support", "active", "agriculture")
		s.client.EXPECT().GetScheme(gomock.Any(), s.govtID, s.schemeID).Return(&current, nil)
		s.client.EXPECT().UpdateScheme(gomock.Any(), s.govtID, s.schemeID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ id.GovernmentID, _ id.SchemeID, p backend.SchemePayload) (*backend.SchemeResponse, error) {
				s.Equal("pending", p.Status)
				s.Equal("Kisan Support", p.Name)
				s.Equal([]string{"agriculture"}, p.Tags)
				return &backend.SchemeResponse{}, nil
			})

		updated, err := s.service.SetStatus(s.ctx, s.schemeID, models.StatusPending)
		s.Require().NoError(err)
		s.Equal(models.StatusPending, updated.Status)
	})

	s.Run("rejects unknown status", func() {
		_, err := s.service.SetStatus(s.ctx, s.schemeID, models.Status("archived"))
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestDelete() {
	s.Run("returns the refetched scheme as inactive", func() {
		after := s.backendScheme("Kisan Support", "inactive")
		s.client.EXPECT().DeleteScheme(gomock.Any(), s.govtID, s.schemeID).
			Return(&backend.SchemeResponse{Message: "deleted"}, nil)
		s.client.EXPECT().GetScheme(gomock.Any(), s.govtID, s.schemeID).Return(&after, nil)

		deleted, err := s.service.Delete(s.ctx, s.schemeID)
		s.Require().NoError(err)
		s.Equal(models.StatusInactive, deleted.Status)
		s.Equal("Kisan Support", deleted.Name)
	})

	s.Run("falls back to id and status when refetch fails", func() {
		s.client.EXPECT().DeleteScheme(gomock.Any(), s.govtID, s.schemeID).
			Return(&backend.SchemeResponse{}, nil)
		s.client.EXPECT().GetScheme(gomock.Any(), s.govtID, s.schemeID).
			Return(nil, dErrors.New(dErrors.CodeUnavailable, "backend unavailable"))

		deleted, err := s.service.Delete(s.ctx, s.schemeID)
		s.Require().NoError(err)
		s.Equal(s.schemeID.String(), deleted.ID)
		s.Equal(models.StatusInactive, deleted.Status)
	})

	s.Run("not found passes through", func() {
		s.client.EXPECT().DeleteScheme(gomock.Any(), s.govtID, s.schemeID).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "scheme not found"))

		_, err := s.service.Delete(s.ctx, s.schemeID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Equal("scheme not found", err.Error())
	})
}

func (s *ServiceSuite) TestTags() {
	tags := s.service.Tags()
	s.Len(tags, 22)
	s.Equal("food", tags[0])
	s.Equal("children", tags[21])
}
