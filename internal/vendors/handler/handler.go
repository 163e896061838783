package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"payzee/internal/vendors/models"
	"payzee/internal/listing"
	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/platform/httputil"
	"payzee/pkg/requestcontext"
)

// Service defines the vendor read operations.
type Service interface {
	List(ctx context.Context, q listing.Query) (*listing.Result[models.Row], error)
	Get(ctx context.Context, vendorID id.VendorID) (*models.Detail, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/vendors", h.HandleList)
	r.Get("/vendors/{id}", h.HandleGet)
}

// ListResponse is the table plus the query it was derived from.
type ListResponse struct {
	listing.Result[models.Row]
	Filter string `json:"filter"`
	Search string `json:"search"`
}

// HandleList serves the vendors table, filtered by ?license=.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	q := listing.ParseQuery(r.URL.Query(), "license")

	res, err := h.service.List(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "list vendors failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &ListResponse{Result: *res, Filter: q.Filter, Search: q.Search})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	vendorID, err := id.ParseVendorID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid vendor id"))
		return
	}

	detail, err := h.service.Get(ctx, vendorID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get vendor failed", "error", err, "request_id", requestID, "vendor_id", vendorID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, detail)
}
