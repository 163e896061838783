package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	applicationHandler "payzee/internal/application/handler"
	applicationService "payzee/internal/application/service"
	authHandler "payzee/internal/auth/handler"
	authService "payzee/internal/auth/service"
	"payzee/internal/backend"
	beneficiaryHandler "payzee/internal/beneficiary/handler"
	beneficiaryService "payzee/internal/beneficiary/service"
	dashboardHandler "payzee/internal/dashboard/handler"
	dashboardService "payzee/internal/dashboard/service"
	governmentHandler "payzee/internal/government/handler"
	governmentService "payzee/internal/government/service"
	"payzee/internal/platform/config"
	"payzee/internal/platform/health"
	"payzee/internal/platform/logger"
	"payzee/internal/platform/metrics"
	"payzee/internal/platform/tracer"
	lockoutService "payzee/internal/ratelimit/service"
	lockoutStore "payzee/internal/ratelimit/store"
	schemeHandler "payzee/internal/scheme/handler"
	schemeService "payzee/internal/scheme/service"
	"payzee/internal/session"
	transactionHandler "payzee/internal/transaction/handler"
	transactionService "payzee/internal/transaction/service"
	httptransport "payzee/internal/transport/http"
	vendorHandler "payzee/internal/vendors/handler"
	vendorService "payzee/internal/vendors/service"
	"payzee/pkg/platform/circuit"
	"payzee/pkg/platform/middleware/metadata"
	"payzee/pkg/platform/middleware/request"
)

const shutdownTimeout = 10 * time.Second

// serve runs the HTTP server until ctx is cancelled, then drains it.
func (a *App) serve(ctx context.Context) error {
	cfg := a.config
	log := logger.New(cfg.LogLevel)

	log.Info("initializing payzee dashboard",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"backend", cfg.Backend.BaseURL,
	)

	handler, err := buildHandler(ctx, cfg, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("server stopped")
	return nil
}

// buildHandler wires every service and handler onto the router. Background
// workers it starts stop when ctx ends.
func buildHandler(ctx context.Context, cfg config.Server, log *slog.Logger) (http.Handler, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)
	tr := tracer.NewOTel()

	proxies, err := metadata.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		return nil, err
	}

	sessions, err := session.NewCodec(cfg.Session.Secret, cfg.Session.TTL, cfg.Session.SecureCookie)
	if err != nil {
		return nil, fmt.Errorf("session codec: %w", err)
	}

	client := backend.New(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		Breaker: circuit.New("backend",
			circuit.WithFailureThreshold(cfg.Backend.FailureThreshold),
			circuit.WithSuccessThreshold(cfg.Backend.SuccessThreshold),
			circuit.WithCooldown(cfg.Backend.Cooldown),
		),
		Metrics: m,
		Tracer:  tr,
		Logger:  log,
	})

	lockout, err := lockoutService.New(lockoutStore.NewMemory(),
		lockoutService.WithLogger(log),
		lockoutService.WithConfig(lockoutService.Config{
			MaxAttempts:  cfg.Login.MaxAttempts,
			Window:       cfg.Login.Window,
			LockDuration: cfg.Login.LockDuration,
		}),
	)
	if err != nil {
		return nil, err
	}
	go func() { _ = lockout.StartCleanup(ctx, cfg.Login.CleanupInterval) }()

	applications, err := applicationService.New()
	if err != nil {
		return nil, fmt.Errorf("load applications: %w", err)
	}

	probes := health.New(cfg.Environment)
	probes.RegisterCheck("backend", client.Ping)

	auth := authHandler.New(
		authService.New(client,
			authService.WithLogger(log),
			authService.WithMetrics(m),
			authService.WithTracer(tr),
			authService.WithLockout(lockout),
		),
		sessions, log,
	)

	pages := []httptransport.Registrar{
		dashboardHandler.New(dashboardService.New(client,
			dashboardService.WithLogger(log),
			dashboardService.WithMetrics(m),
			dashboardService.WithTracer(tr),
		), log),
		schemeHandler.New(schemeService.New(client,
			schemeService.WithLogger(log),
			schemeService.WithMetrics(m),
			schemeService.WithTracer(tr),
		), log),
		beneficiaryHandler.New(beneficiaryService.New(client), log),
		vendorHandler.New(vendorService.New(client), log),
		transactionHandler.New(transactionService.New(client), log),
		applicationHandler.New(applications, log),
		governmentHandler.New(governmentService.New(client), log),
	}

	return httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		Sessions:       sessions,
		TrustedProxies: proxies,
		RequestTimeout: cfg.RequestTimeout,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		RequestMetrics: request.NewMetrics(reg),
		Gatherer:       reg,
		Health:         probes,
		Auth:           auth,
		Pages:          pages,
	}), nil
}
