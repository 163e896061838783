package auth

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/requestcontext"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	identity requestcontext.Identity
	err      error
}

func (s stubReader) Read(*http.Request) (requestcontext.Identity, error) {
	return s.identity, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequireSession(t *testing.T) {
	govtID := id.GovernmentID(uuid.New())

	t.Run("stores identity in context", func(t *testing.T) {
		var got requestcontext.Identity
		handler := RequireSession(stubReader{identity: requestcontext.Identity{
			GovernmentID: govtID,
			UserType:     requestcontext.UserTypeGovernment,
		}}, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = requestcontext.IdentityFrom(r.Context())
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schemes", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, govtID, got.GovernmentID)
	})

	for _, readErr := range []error{
		dErrors.New(dErrors.CodeUnauthenticated, "session expired, please log in again"),
		errors.New("cookie decode failed"),
	} {
		t.Run("rejects with login redirect: "+readErr.Error(), func(t *testing.T) {
			called := false
			handler := RequireSession(stubReader{err: readErr}, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

			assert.False(t, called)
			require.Equal(t, http.StatusUnauthorized, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "unauthenticated", body["error"])
			assert.Equal(t, "/auth/login", body["redirect"])
		})
	}
}

func TestRequireUserType(t *testing.T) {
	serve := func(identity *requestcontext.Identity) int {
		handler := RequireUserType(requestcontext.UserTypeGovernment)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		req := httptest.NewRequest(http.MethodGet, "/schemes", nil)
		if identity != nil {
			req = req.WithContext(requestcontext.WithIdentity(req.Context(), *identity))
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	govtID := id.GovernmentID(uuid.New())
	assert.Equal(t, http.StatusOK, serve(&requestcontext.Identity{GovernmentID: govtID, UserType: requestcontext.UserTypeGovernment}))
	assert.Equal(t, http.StatusForbidden, serve(&requestcontext.Identity{GovernmentID: govtID, UserType: requestcontext.UserTypeCitizen}))
	assert.Equal(t, http.StatusUnauthorized, serve(nil))
}

func TestLoadSession(t *testing.T) {
	govtID := id.GovernmentID(uuid.New())

	t.Run("attaches a valid identity", func(t *testing.T) {
		var ok bool
		handler := LoadSession(stubReader{identity: requestcontext.Identity{
			GovernmentID: govtID,
			UserType:     requestcontext.UserTypeGovernment,
		}})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok = requestcontext.IdentityFrom(r.Context())
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
		assert.True(t, ok)
	})

	t.Run("passes through without a session", func(t *testing.T) {
		called := false
		handler := LoadSession(stubReader{err: errors.New("no cookie")})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			_, ok := requestcontext.IdentityFrom(r.Context())
			assert.False(t, ok)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
