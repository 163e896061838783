package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"payzee/internal/backend"
	"payzee/internal/dashboard/models"
	"payzee/internal/platform/metrics"
	"payzee/internal/platform/tracer"
	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/requestcontext"
)

// Client is the slice of the backend API the dashboard reads.
type Client interface {
	ListSchemes(ctx context.Context, govtID id.GovernmentID) ([]backend.Scheme, error)
	ListCitizens(ctx context.Context, govtID id.GovernmentID) ([]backend.Citizen, error)
	ListTransactions(ctx context.Context, govtID id.GovernmentID) ([]backend.Transaction, error)
}

type Service struct {
	client  Client
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  tracer.Tracer
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

// Build fetches schemes, citizens and transactions concurrently and
// aggregates them. Any failed fetch fails the dashboard.
func (s *Service) Build(ctx context.Context) (dash *models.Dashboard, err error) {
	govtID, err := requestcontext.GovernmentID(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanDashboardBuild,
		tracer.String(tracer.AttrGovernmentID, govtID.String()),
	)
	defer func() {
		span.End(err)
		s.metrics.ObserveDashboardBuild(time.Since(start).Seconds())
	}()

	var (
		schemes  []backend.Scheme
		citizens []backend.Citizen
		txs      []backend.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		schemes, err = s.client.ListSchemes(gctx, govtID)
		return err
	})
	g.Go(func() error {
		var err error
		citizens, err = s.client.ListCitizens(gctx, govtID)
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = s.client.ListTransactions(gctx, govtID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.WarnContext(ctx, "dashboard fetch failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load dashboard data")
	}

	dash, err = Aggregate(schemes, citizens, txs, requestcontext.Now(ctx))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build dashboard")
	}
	span.SetAttributes(
		tracer.Int("dashboard.schemes", len(schemes)),
		tracer.Int("dashboard.citizens", len(citizens)),
		tracer.Int("dashboard.transactions", len(txs)),
	)
	return dash, nil
}
