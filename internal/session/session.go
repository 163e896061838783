// Package session issues and reads the signed session cookie that carries the
// identity established at login (user id, user type, and the optional
// transaction and scheme references the backend returns).
package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"time"

	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/requestcontext"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

const (
	// CookieName is the cookie holding the signed session token.
	CookieName = "payzee_session"

	issuer = "payzee-dashboard"
)

// Claims is the token payload.
type Claims struct {
	UserID        string `json:"user_id"`
	UserType      string `json:"user_type"`
	TransactionID string `json:"transaction_id,omitempty"`
	SchemeID      string `json:"scheme_id,omitempty"`
	Device        string `json:"device,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens and manages the cookie.
type Codec struct {
	signingKey []byte
	ttl        time.Duration
	secure     bool
}

// NewCodec derives the HS256 key from secret with HKDF-SHA256 so the raw
// configured secret is never used as key material directly.
func NewCodec(secret string, ttl time.Duration, secure bool) (*Codec, error) {
	if secret == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "session secret is required")
	}
	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, []byte(secret), []byte(issuer), []byte("session-cookie-v1"))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "derive session key")
	}
	return &Codec{signingKey: key, ttl: ttl, secure: secure}, nil
}

// TTL is the lifetime of issued sessions.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for identity, valid from now for the codec TTL.
func (c *Codec) Issue(identity requestcontext.Identity, now time.Time) (string, error) {
	if identity.GovernmentID.IsNil() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "user id is required")
	}
	if identity.UserType == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "user type is required")
	}

	jti := make([]byte, 16)
	if _, err := rand.Read(jti); err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:        identity.GovernmentID.String(),
		UserType:      string(identity.UserType),
		TransactionID: identity.TransactionID,
		SchemeID:      identity.SchemeID,
		Device:        identity.Device,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identity.GovernmentID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			ID:        hex.EncodeToString(jti),
		},
	})
	return token.SignedString(c.signingKey)
}

// Parse verifies a token and returns the identity it carries.
// Every failure maps to CodeUnauthenticated so the caller is sent to log in.
func (c *Codec) Parse(tokenString string, now time.Time) (requestcontext.Identity, error) {
	if tokenString == "" {
		return requestcontext.Identity{}, dErrors.New(dErrors.CodeUnauthenticated, "user id not found in session, please log in again")
	}

	claims := new(Claims)
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return c.signingKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return requestcontext.Identity{}, dErrors.New(dErrors.CodeUnauthenticated, "session expired, please log in again")
		}
		return requestcontext.Identity{}, dErrors.New(dErrors.CodeUnauthenticated, "invalid session, please log in again")
	}
	if !parsed.Valid {
		return requestcontext.Identity{}, dErrors.New(dErrors.CodeUnauthenticated, "invalid session, please log in again")
	}

	govtID, err := id.ParseGovernmentID(claims.UserID)
	if err != nil {
		return requestcontext.Identity{}, dErrors.New(dErrors.CodeUnauthenticated, "user id not found in session, please log in again")
	}
	if claims.UserType == "" {
		return requestcontext.Identity{}, dErrors.New(dErrors.CodeUnauthenticated, "user type not found in session, please log in again")
	}

	return requestcontext.Identity{
		GovernmentID:  govtID,
		UserType:      requestcontext.UserType(claims.UserType),
		TransactionID: claims.TransactionID,
		SchemeID:      claims.SchemeID,
		Device:        claims.Device,
	}, nil
}

// Read extracts and verifies the session cookie of r.
func (c *Codec) Read(r *http.Request) (requestcontext.Identity, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return requestcontext.Identity{}, dErrors.New(dErrors.CodeUnauthenticated, "user id not found in session, please log in again")
	}
	return c.Parse(cookie.Value, requestcontext.Now(r.Context()))
}

// SetCookie writes the session cookie.
func (c *Codec) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func (c *Codec) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
