// Package requestcontext carries request-scoped values (request ID, client
// metadata, session identity, request time) through context.Context.
package requestcontext

import (
	"context"
	"time"

	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
)

type (
	requestIDKey   struct{}
	clientIPKey    struct{}
	userAgentKey   struct{}
	identityKey    struct{}
	requestTimeKey struct{}
)

// UserType distinguishes the account kinds the backend issues sessions for.
type UserType string

const (
	UserTypeGovernment UserType = "government"
	UserTypeCitizen    UserType = "citizen"
	UserTypeVendor     UserType = "vendor"
)

// Identity is the session identity established at login. GovernmentID doubles
// as the user id the backend returned; every backend call is scoped by it.
type Identity struct {
	GovernmentID  id.GovernmentID
	UserType      UserType
	TransactionID string
	SchemeID      string
	Device        string
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request ID or an empty string.
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey{}).(string)
	return v
}

func WithClientMetadata(ctx context.Context, ip, userAgent string) context.Context {
	ctx = context.WithValue(ctx, clientIPKey{}, ip)
	return context.WithValue(ctx, userAgentKey{}, userAgent)
}

func ClientIP(ctx context.Context) string {
	v, _ := ctx.Value(clientIPKey{}).(string)
	return v
}

func UserAgent(ctx context.Context) string {
	v, _ := ctx.Value(userAgentKey{}).(string)
	return v
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFrom returns the session identity if the session middleware set one.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	v, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || v.GovernmentID.IsNil() {
		return Identity{}, false
	}
	return v, true
}

// RequireIdentity returns the session identity or an unauthenticated error
// that the HTTP layer answers with a redirect to login.
func RequireIdentity(ctx context.Context) (Identity, error) {
	identity, ok := IdentityFrom(ctx)
	if !ok {
		return Identity{}, dErrors.New(dErrors.CodeUnauthenticated, "user id not found in session, please log in again")
	}
	return identity, nil
}

// GovernmentID is a shorthand for RequireIdentity when only the id matters.
func GovernmentID(ctx context.Context) (id.GovernmentID, error) {
	identity, err := RequireIdentity(ctx)
	if err != nil {
		return id.GovernmentID{}, err
	}
	return identity.GovernmentID, nil
}

// WithTime pins "now" for the request so every timestamp derived while
// serving it agrees.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}

// Now returns the request-scoped time, falling back to time.Now().
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}
