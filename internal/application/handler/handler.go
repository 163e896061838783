package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"payzee/internal/application/models"
	"payzee/internal/listing"
	"payzee/pkg/platform/httputil"
	"payzee/pkg/requestcontext"
)

type Service interface {
	List(ctx context.Context, q listing.Query, scheme string) (*listing.Result[models.Row], error)
	Schemes() []string
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/applications", h.HandleList)
}

type ListResponse struct {
	listing.Result[models.Row]
	Filter  string   `json:"filter"`
	Scheme  string   `json:"scheme"`
	Search  string   `json:"search"`
	Schemes []string `json:"schemes"`
}

// HandleList serves the applications table, filtered by ?status= and
// ?scheme=.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	q := listing.ParseQuery(r.URL.Query(), "status")
	scheme := strings.TrimSpace(r.URL.Query().Get("scheme"))
	if scheme == "" {
		scheme = listing.FilterAll
	}

	res, err := h.service.List(ctx, q, scheme)
	if err != nil {
		h.logger.ErrorContext(ctx, "list applications failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &ListResponse{
		Result:  *res,
		Filter:  q.Filter,
		Scheme:  scheme,
		Search:  q.Search,
		Schemes: h.service.Schemes(),
	})
}
