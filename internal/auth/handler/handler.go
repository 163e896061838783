package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"payzee/internal/auth/models"
	"payzee/pkg/platform/httputil"
	"payzee/pkg/requestcontext"
)

// Service defines the sign-in operations.
type Service interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.Result, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Result, error)
	Logout(ctx context.Context)
}

// Sessions issues and clears the session cookie.
type Sessions interface {
	Issue(identity requestcontext.Identity, now time.Time) (string, error)
	SetCookie(w http.ResponseWriter, token string)
	ClearCookie(w http.ResponseWriter)
}

type Handler struct {
	service  Service
	sessions Sessions
	logger   *slog.Logger
}

func New(service Service, sessions Sessions, logger *slog.Logger) *Handler {
	return &Handler{service: service, sessions: sessions, logger: logger}
}

// Register mounts the routes that work without a session.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
	r.Post("/auth/register", h.HandleRegister)
	r.Post("/auth/logout", h.HandleLogout)
}

// RegisterProtected mounts the routes that need a session; the parent
// router applies the session middleware.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Get("/auth/me", h.HandleMe)
}

// HandleLogin checks credentials with the backend and sets the session cookie.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.LoginRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.service.Login(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	if !h.startSession(w, r, res) {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, models.NewLoginResponse(res))
}

// HandleRegister creates a government account and signs it in.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.RegisterRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.service.Register(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "register failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	if !h.startSession(w, r, res) {
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, models.NewLoginResponse(res))
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, res *models.Result) bool {
	ctx := r.Context()
	token, err := h.sessions.Issue(res.Identity, requestcontext.Now(ctx))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue session", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return false
	}
	h.sessions.SetCookie(w, token)
	return true
}

// HandleLogout clears the session cookie. It succeeds with or without a
// session.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context())
	h.sessions.ClearCookie(w)
	httputil.WriteJSON(w, http.StatusOK, &models.LogoutResponse{
		Message:  "Logged out",
		Redirect: httputil.LoginPath,
	})
}

// HandleMe returns the identity held in the session.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	identity, err := requestcontext.RequireIdentity(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.NewMeResponse(identity))
}
