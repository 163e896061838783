package auth

import (
	"log/slog"
	"net/http"

	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/platform/httputil"
	"payzee/pkg/requestcontext"
)

// SessionReader reads the session identity carried by a request.
type SessionReader interface {
	Read(r *http.Request) (requestcontext.Identity, error)
}

// RequireSession returns middleware that resolves the session identity and
// stores it in the context. Requests without one get a 401 carrying a
// redirect to the login route.
func RequireSession(reader SessionReader, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			identity, err := reader.Read(r)
			if err != nil {
				logger.WarnContext(ctx, "unauthenticated access",
					"path", r.URL.Path,
					"reason", err.Error(),
					"request_id", requestcontext.RequestID(ctx),
				)
				if !dErrors.HasCode(err, dErrors.CodeUnauthenticated) {
					err = dErrors.Wrap(err, dErrors.CodeUnauthenticated, "user id not found in session, please log in again")
				}
				httputil.WriteError(w, err)
				return
			}

			ctx = requestcontext.WithIdentity(ctx, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoadSession stores the session identity when the request carries a valid
// one and lets every request through.
func LoadSession(reader SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if identity, err := reader.Read(r); err == nil {
				r = r.WithContext(requestcontext.WithIdentity(r.Context(), identity))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUserType rejects sessions of other account kinds with 403.
// It must run after RequireSession.
func RequireUserType(userType requestcontext.UserType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := requestcontext.RequireIdentity(r.Context())
			if err != nil {
				httputil.WriteError(w, err)
				return
			}
			if identity.UserType != userType {
				httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "this area is restricted to "+string(userType)+" accounts"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
