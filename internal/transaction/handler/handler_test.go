package handler

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"payzee/internal/listing"
	"payzee/internal/transaction/handler/mocks"
	"payzee/internal/transaction/models"
	id "payzee/pkg/domain"
)

func newRouter(t *testing.T) (http.Handler, *mocks.MockService) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))).Register(r)
	return r, svc
}

func TestHandleList(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().
		List(gomock.Any(), listing.Query{Filter: "all", Search: "", Page: 3}).
		Return(&listing.Result[models.Row]{
			Items: []models.Row{},
			Pages: []listing.PageItem{listing.Page(1), listing.Ellipsis, listing.Page(3)},
			Page:  3,
		}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/transactions?page=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pages":[1,"...",3]`)
}

func TestHandleGet(t *testing.T) {
	router, svc := newRouter(t)
	txID := uuid.New()
	svc.EXPECT().Get(gomock.Any(), id.TransactionID(txID)).
		Return(&models.Row{ID: txID.String(), Date: "15 Jun 2023", Status: "completed"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/transactions/"+txID.String(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date":"15 Jun 2023"`)
}
