package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"payzee/internal/backend"
	"payzee/internal/listing"
	"payzee/internal/platform/metrics"
	"payzee/internal/platform/tracer"
	"payzee/internal/scheme/models"
	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/requestcontext"
)

// Client is the slice of the backend API the scheme pages use.
type Client interface {
	ListSchemes(ctx context.Context, govtID id.GovernmentID) ([]backend.Scheme, error)
	GetScheme(ctx context.Context, govtID id.GovernmentID, schemeID id.SchemeID) (*backend.Scheme, error)
	CreateScheme(ctx context.Context, govtID id.GovernmentID, payload backend.SchemePayload) (*backend.SchemeResponse, error)
	UpdateScheme(ctx context.Context, govtID id.GovernmentID, schemeID id.SchemeID, payload backend.SchemePayload) (*backend.SchemeResponse, error)
	DeleteScheme(ctx context.Context, govtID id.GovernmentID, schemeID id.SchemeID) (*backend.SchemeResponse, error)
}

// TableConfig filters the schemes table by status and searches name,
// description, target group and tags.
var TableConfig = listing.Config[models.Row]{
	Category: func(r models.Row) string { return string(r.Status) },
	SearchFields: func(r models.Row) []string {
		fields := []string{r.Name, r.Description, r.TargetGroup}
		return append(fields, r.Tags...)
	},
	PageSize: listing.DefaultPageSize,
}

// Service manages the schemes of the signed-in government.
type Service struct {
	client  Client
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  tracer.Tracer
	flight  singleflight.Group
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

func New(client Client, opts ...Option) *Service {
	s := &Service{
		client: client,
		logger: slog.Default(),
		tracer: tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns one page of the schemes table.
func (s *Service) List(ctx context.Context, q listing.Query) (*listing.Result[models.Row], error) {
	govtID, err := requestcontext.GovernmentID(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := s.client.ListSchemes(ctx, govtID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load schemes")
	}
	rows := make([]models.Row, 0, len(raw))
	for _, b := range raw {
		rows = append(rows, models.RowFromScheme(FromBackend(b)))
	}
	result := listing.Apply(rows, TableConfig, q)
	return &result, nil
}

// Get returns a scheme with its edit form filled in.
func (s *Service) Get(ctx context.Context, schemeID id.SchemeID) (*models.Detail, error) {
	govtID, err := requestcontext.GovernmentID(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := s.client.GetScheme(ctx, govtID, schemeID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load scheme")
	}
	scheme := FromBackend(*raw)
	return &models.Detail{Scheme: scheme, Form: models.FormFromScheme(scheme)}, nil
}

// Create submits a new scheme and returns it as the backend will hold it,
// identified by the id the backend assigned.
func (s *Service) Create(ctx context.Context, form models.Form) (*models.Scheme, error) {
	govtID, err := requestcontext.GovernmentID(ctx)
	if err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	payload := form.ToPayload()

	v, err := s.submit(ctx, "create", govtID, "", payload, func(ctx context.Context) (any, error) {
		resp, err := s.client.CreateScheme(ctx, govtID, toPayload(payload))
		if err != nil {
			return nil, err
		}
		now := requestcontext.Now(ctx).UTC()
		created := payload.Apply(models.Scheme{
			ID:            resp.SchemeID,
			GovtID:        govtID.String(),
			Beneficiaries: []string{},
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		return &created, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Scheme), nil
}

// Update submits the edited form and returns the scheme reconciled with
// the submitted values.
func (s *Service) Update(ctx context.Context, schemeID id.SchemeID, form models.Form) (*models.Scheme, error) {
	govtID, err := requestcontext.GovernmentID(ctx)
	if err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	current, err := s.client.GetScheme(ctx, govtID, schemeID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load scheme")
	}
	return s.put(ctx, "update", govtID, schemeID, FromBackend(*current), form.ToPayload())
}

// SetStatus replaces only the status, resubmitting every other field as
// the backend currently holds it.
func (s *Service) SetStatus(ctx context.Context, schemeID id.SchemeID, status models.Status) (*models.Scheme, error) {
	govtID, err := requestcontext.GovernmentID(ctx)
	if err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "status must be one of [active inactive pending]")
	}
	raw, err := s.client.GetScheme(ctx, govtID, schemeID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load scheme")
	}
	current := FromBackend(*raw)
	payload := models.PayloadFromScheme(current)
	payload.Status = status
	return s.put(ctx, "set_status", govtID, schemeID, current, payload)
}

func (s *Service) put(ctx context.Context, op string, govtID id.GovernmentID, schemeID id.SchemeID, current models.Scheme, payload models.Payload) (*models.Scheme, error) {
	v, err := s.submit(ctx, op, govtID, schemeID.String(), payload, func(ctx context.Context) (any, error) {
		if _, err := s.client.UpdateScheme(ctx, govtID, schemeID, toPayload(payload)); err != nil {
			return nil, err
		}
		updated := payload.Apply(current)
		updated.UpdatedAt = requestcontext.Now(ctx).UTC()
		return &updated, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Scheme), nil
}

// Delete soft-deletes a scheme and returns it as now stored, inactive.
func (s *Service) Delete(ctx context.Context, schemeID id.SchemeID) (*models.Scheme, error) {
	govtID, err := requestcontext.GovernmentID(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.submit(ctx, "delete", govtID, schemeID.String(), nil, func(ctx context.Context) (any, error) {
		if _, err := s.client.DeleteScheme(ctx, govtID, schemeID); err != nil {
			return nil, err
		}
		return s.afterDelete(ctx, govtID, schemeID), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Scheme), nil
}

// afterDelete refetches the scheme. The delete already succeeded, so a
// failed refetch only degrades the response to the id and status.
func (s *Service) afterDelete(ctx context.Context, govtID id.GovernmentID, schemeID id.SchemeID) *models.Scheme {
	raw, err := s.client.GetScheme(ctx, govtID, schemeID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to refetch deleted scheme",
			"scheme_id", schemeID.String(),
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return &models.Scheme{
			ID:            schemeID.String(),
			GovtID:        govtID.String(),
			Status:        models.StatusInactive,
			Tags:          []string{},
			Beneficiaries: []string{},
		}
	}
	scheme := FromBackend(*raw)
	scheme.Status = models.StatusInactive
	return &scheme
}

// Tags returns the tag allow-list.
func (s *Service) Tags() []string {
	return models.AllowedTags()
}

// submit runs fn once per identical in-flight write. Callers submitting the
// same payload for the same scheme while a call is running share its result.
func (s *Service) submit(ctx context.Context, op string, govtID id.GovernmentID, schemeID string, payload any, fn func(context.Context) (any, error)) (v any, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanSchemeSubmit,
		tracer.String("scheme.operation", op),
		tracer.String(tracer.AttrGovernmentID, govtID.String()),
	)
	defer func() { span.End(err) }()

	key, err := flightKey(op, govtID, schemeID, payload)
	if err != nil {
		return nil, err
	}
	v, err, shared := s.flight.Do(key, func() (any, error) {
		return fn(context.WithoutCancel(ctx))
	})
	span.SetAttributes(tracer.Bool(tracer.AttrShared, shared))

	if err != nil {
		s.metrics.IncSchemeWrite(op, "failure")
		return nil, submitError(op, err)
	}
	s.metrics.IncSchemeWrite(op, "success")
	return v, nil
}

func flightKey(op string, govtID id.GovernmentID, schemeID string, payload any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode scheme")
	}
	sum := sha256.Sum256(raw)
	return op + ":" + govtID.String() + ":" + schemeID + ":" + hex.EncodeToString(sum[:]), nil
}

// submitError keeps validation messages, which tell the user what to fix,
// and replaces anything else with a generic failure carrying the same code.
func submitError(op string, err error) error {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeValidation, dErrors.CodeUnauthenticated, dErrors.CodeNotFound:
		return err
	}
	msg := "failed to save scheme, please try again"
	if op == "delete" {
		msg = "failed to delete scheme, please try again"
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}
