// Package httptransport assembles the dashboard's HTTP surface: the shared
// middleware chain, probes and metrics, and the session-guarded page routes.
package httptransport

import (
	"log/slog"
	"net/http"
	"net/netip"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	authHandler "payzee/internal/auth/handler"
	"payzee/internal/platform/health"
	"payzee/internal/platform/metrics"
	"payzee/pkg/platform/middleware/auth"
	"payzee/pkg/platform/middleware/metadata"
	"payzee/pkg/platform/middleware/request"
	"payzee/pkg/requestcontext"
)

// Registrar mounts a bounded context's routes.
type Registrar interface {
	Register(r chi.Router)
}

// Deps is everything NewRouter wires together.
type Deps struct {
	Logger         *slog.Logger
	Sessions       auth.SessionReader
	TrustedProxies []netip.Prefix
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	RequestMetrics *request.Metrics
	Gatherer       prometheus.Gatherer
	Health         *health.Handler
	Auth           *authHandler.Handler
	// Pages are mounted behind a government session.
	Pages []Registrar
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(d.Logger))
	r.Use(request.RequestID)
	r.Use(request.RequestTime)
	r.Use(metadata.NewMiddleware(&metadata.Config{TrustedProxies: d.TrustedProxies}).Handler)
	r.Use(request.Logger(d.Logger))
	r.Use(request.LatencyMiddleware(d.RequestMetrics))

	d.Health.Register(r)
	r.Method(http.MethodGet, "/metrics", metrics.Handler(d.Gatherer))

	r.Group(func(r chi.Router) {
		if d.RequestTimeout > 0 {
			r.Use(request.Timeout(d.RequestTimeout))
		}
		r.Use(request.BodyLimit(d.MaxBodyBytes))
		r.Use(request.ContentTypeJSON)

		r.Group(func(r chi.Router) {
			r.Use(auth.LoadSession(d.Sessions))
			d.Auth.Register(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireSession(d.Sessions, d.Logger))
			d.Auth.RegisterProtected(r)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireUserType(requestcontext.UserTypeGovernment))
				for _, page := range d.Pages {
					page.Register(r)
				}
			})
		})
	})

	return r
}
