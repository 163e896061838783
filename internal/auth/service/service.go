package service

import (
	"context"
	"log/slog"

	"payzee/internal/auth/models"
	"payzee/internal/backend"
	"payzee/internal/platform/metrics"
	"payzee/internal/platform/tracer"
	"payzee/internal/session"
	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/requestcontext"
)

// Client is the slice of the backend API used to sign users in.
type Client interface {
	Login(ctx context.Context, req backend.LoginRequest) (*backend.LoginResponse, error)
	SignupGovernment(ctx context.Context, req backend.GovernmentSignupRequest) (*backend.SignupResponse, error)
}

// Lockout refuses logins after repeated failures from one id number and IP.
type Lockout interface {
	Check(ctx context.Context, identifier, ip string) error
	RecordFailure(ctx context.Context, identifier, ip string) error
	Clear(ctx context.Context, identifier, ip string) error
}

type Service struct {
	client  Client
	lockout Lockout
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

func WithLockout(l Lockout) Option {
	return func(s *Service) { s.lockout = l }
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

// Login checks the credentials with the backend and returns the identity
// to keep in the session.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (res *models.Result, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanLogin,
		tracer.String(tracer.AttrLoginID, tracer.HashIdentifier(req.IDNumber)),
	)
	defer func() { span.End(err) }()

	ip := requestcontext.ClientIP(ctx)
	if s.lockout != nil {
		if err := s.lockout.Check(ctx, req.IDNumber, ip); err != nil {
			s.metrics.IncLogin("locked", "")
			return nil, err
		}
	}

	resp, err := s.client.Login(ctx, backend.LoginRequest{IDNumber: req.IDNumber, Password: req.Password})
	if err != nil {
		s.metrics.IncLogin("failure", "")
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			s.recordFailure(ctx, req.IDNumber, ip)
		}
		return nil, loginError(err)
	}
	if s.lockout != nil {
		if err := s.lockout.Clear(ctx, req.IDNumber, ip); err != nil {
			s.logger.WarnContext(ctx, "failed to clear login failures", "error", err, "request_id", requestcontext.RequestID(ctx))
		}
	}

	identity, err := identityFrom(resp.UserID, resp.UserType, requestcontext.UserAgent(ctx))
	if err != nil {
		s.metrics.IncLogin("failure", resp.UserType)
		s.logger.WarnContext(ctx, "backend returned an unusable login identity",
			"user_type", resp.UserType,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return nil, err
	}
	identity.TransactionID = resp.TransactionID
	identity.SchemeID = resp.SchemeID

	s.metrics.IncLogin("success", string(identity.UserType))
	return &models.Result{
		Identity: identity,
		Message:  resp.Message,
		Redirect: models.HomeFor(identity.UserType),
	}, nil
}

func (s *Service) recordFailure(ctx context.Context, identifier, ip string) {
	if s.lockout == nil {
		return
	}
	if err := s.lockout.RecordFailure(ctx, identifier, ip); err != nil {
		s.logger.WarnContext(ctx, "failed to record login failure", "error", err, "request_id", requestcontext.RequestID(ctx))
	}
}

// Register creates a government account and signs it in.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.Result, error) {
	resp, err := s.client.SignupGovernment(ctx, backend.GovernmentSignupRequest{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Department:   req.Department,
		Jurisdiction: req.Jurisdiction,
		GovtID:       req.GovtID,
	})
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeValidation) || dErrors.HasCode(err, dErrors.CodeConflict) {
			return nil, err
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "registration failed, please try again")
	}

	userType := resp.UserType
	if userType == "" {
		userType = string(requestcontext.UserTypeGovernment)
	}
	identity, err := identityFrom(resp.UserID, userType, requestcontext.UserAgent(ctx))
	if err != nil {
		return nil, err
	}
	return &models.Result{
		Identity: identity,
		Message:  resp.Message,
		Redirect: models.HomeFor(identity.UserType),
	}, nil
}

func identityFrom(userID, userType, userAgent string) (requestcontext.Identity, error) {
	uid, err := id.ParseGovernmentID(userID)
	if err != nil {
		return requestcontext.Identity{}, &dErrors.Error{Code: dErrors.CodeUnavailable, Message: "backend returned an invalid user id", Err: err}
	}
	ut := requestcontext.UserType(userType)
	switch ut {
	case requestcontext.UserTypeGovernment, requestcontext.UserTypeCitizen, requestcontext.UserTypeVendor:
	default:
		return requestcontext.Identity{}, dErrors.New(dErrors.CodeForbidden, "unsupported account type")
	}
	return requestcontext.Identity{
		GovernmentID: uid,
		UserType:     ut,
		Device:       session.DeviceLabel(userAgent),
	}, nil
}

func loginError(err error) error {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeUnauthorized:
		return dErrors.Wrap(err, dErrors.CodeUnauthorized, "Invalid credentials. Please check your ID number and password.")
	case dErrors.CodeForbidden:
		return dErrors.Wrap(err, dErrors.CodeForbidden, "You do not have permission to access this resource.")
	case dErrors.CodeValidation:
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "An error occurred. Please try again.")
}

// Logout records the sign-out. The session lives only in the cookie, so
// there is nothing to revoke server-side.
func (s *Service) Logout(ctx context.Context) {
	s.metrics.IncLogout()
	if identity, ok := requestcontext.IdentityFrom(ctx); ok {
		s.logger.InfoContext(ctx, "user logged out",
			"user_type", identity.UserType,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}
