package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"payzee/internal/listing"
	"payzee/internal/scheme/models"
	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/platform/httputil"
	"payzee/pkg/requestcontext"
)

// Service defines the scheme operations the pages need.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	List(ctx context.Context, q listing.Query) (*listing.Result[models.Row], error)
	Get(ctx context.Context, schemeID id.SchemeID) (*models.Detail, error)
	Create(ctx context.Context, form models.Form) (*models.Scheme, error)
	Update(ctx context.Context, schemeID id.SchemeID, form models.Form) (*models.Scheme, error)
	SetStatus(ctx context.Context, schemeID id.SchemeID, status models.Status) (*models.Scheme, error)
	Delete(ctx context.Context, schemeID id.SchemeID) (*models.Scheme, error)
	Tags() []string
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/schemes", h.HandleList)
	r.Post("/schemes", h.HandleCreate)
	r.Get("/schemes/tags", h.HandleTags)
	r.Get("/schemes/form", h.HandleNewForm)
	r.Post("/schemes/form/toggle-tag", h.HandleToggleTag)
	r.Get("/schemes/{id}", h.HandleGet)
	r.Put("/schemes/{id}", h.HandleUpdate)
	r.Put("/schemes/{id}/status", h.HandleSetStatus)
	r.Delete("/schemes/{id}", h.HandleDelete)
}

// HandleList serves the schemes table, filtered by ?status=.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	q := listing.ParseQuery(r.URL.Query(), "status")

	res, err := h.service.List(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "list schemes failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &ListResponse{Result: *res, Filter: q.Filter, Search: q.Search})
}

func (h *Handler) HandleTags(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, &TagsResponse{Tags: h.service.Tags()})
}

// HandleNewForm returns the blank create form.
func (h *Handler) HandleNewForm(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, models.NewForm())
}

// HandleToggleTag adds or removes one tag from the submitted tag list.
func (h *Handler) HandleToggleTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ToggleTagRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	tags, err := models.ToggleTag(req.Tags, req.Tag)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &TagsResponse{Tags: tags})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	schemeID, ok := parseSchemeID(w, r)
	if !ok {
		return
	}

	detail, err := h.service.Get(ctx, schemeID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get scheme failed", "error", err, "request_id", requestID, "scheme_id", schemeID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SchemeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	scheme, err := h.service.Create(ctx, req.Form)
	if err != nil {
		h.logger.ErrorContext(ctx, "create scheme failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, &WriteResponse{Message: "Scheme created successfully", Scheme: scheme})
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	schemeID, ok := parseSchemeID(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[SchemeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	scheme, err := h.service.Update(ctx, schemeID, req.Form)
	if err != nil {
		h.logger.ErrorContext(ctx, "update scheme failed", "error", err, "request_id", requestID, "scheme_id", schemeID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &WriteResponse{Message: "Scheme updated successfully", Scheme: scheme})
}

// HandleSetStatus is the detail page's status selector.
func (h *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	schemeID, ok := parseSchemeID(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[StatusRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	scheme, err := h.service.SetStatus(ctx, schemeID, models.Status(req.Status))
	if err != nil {
		h.logger.ErrorContext(ctx, "set scheme status failed", "error", err, "request_id", requestID, "scheme_id", schemeID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &WriteResponse{Message: "Scheme status updated", Scheme: scheme})
}

// HandleDelete soft-deletes: the scheme comes back inactive.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	schemeID, ok := parseSchemeID(w, r)
	if !ok {
		return
	}

	scheme, err := h.service.Delete(ctx, schemeID)
	if err != nil {
		h.logger.ErrorContext(ctx, "delete scheme failed", "error", err, "request_id", requestID, "scheme_id", schemeID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &WriteResponse{Message: "Scheme deleted successfully", Scheme: scheme})
}

func parseSchemeID(w http.ResponseWriter, r *http.Request) (id.SchemeID, bool) {
	schemeID, err := id.ParseSchemeID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid scheme id"))
		return id.SchemeID{}, false
	}
	return schemeID, true
}
