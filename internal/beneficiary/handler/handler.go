package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"payzee/internal/beneficiary/models"
	"payzee/internal/listing"
	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/platform/httputil"
	"payzee/pkg/requestcontext"
)

// Service defines the beneficiary read operations.
type Service interface {
	List(ctx context.Context, q listing.Query) (*listing.Result[models.Row], error)
	Get(ctx context.Context, citizenID id.CitizenID) (*models.Detail, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/beneficiaries", h.HandleList)
	r.Get("/beneficiaries/{id}", h.HandleGet)
}

// ListResponse is the table plus the query it was derived from.
type ListResponse struct {
	listing.Result[models.Row]
	Filter string `json:"filter"`
	Search string `json:"search"`
}

// HandleList serves the beneficiaries table, filtered by ?occupation=.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	q := listing.ParseQuery(r.URL.Query(), "occupation")

	res, err := h.service.List(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "list beneficiaries failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &ListResponse{Result: *res, Filter: q.Filter, Search: q.Search})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	citizenID, err := id.ParseCitizenID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid beneficiary id"))
		return
	}

	detail, err := h.service.Get(ctx, citizenID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get beneficiary failed", "error", err, "request_id", requestID, "citizen_id", citizenID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, detail)
}
