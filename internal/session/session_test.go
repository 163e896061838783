package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	id "payzee/pkg/domain"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/requestcontext"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type SessionSuite struct {
	suite.Suite
	codec    *Codec
	now      time.Time
	identity requestcontext.Identity
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	codec, err := NewCodec("test-secret-at-least-16", time.Hour, true)
	s.Require().NoError(err)
	s.codec = codec
	s.now = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	s.identity = requestcontext.Identity{
		GovernmentID:  id.GovernmentID(uuid.New()),
		UserType:      requestcontext.UserTypeGovernment,
		TransactionID: "tx-1",
		Device:        "Chrome on Linux",
	}
}

func (s *SessionSuite) TestRoundTrip() {
	token, err := s.codec.Issue(s.identity, s.now)
	s.Require().NoError(err)

	got, err := s.codec.Parse(token, s.now.Add(30*time.Minute))
	s.Require().NoError(err)
	s.Equal(s.identity, got)
}

func (s *SessionSuite) TestIssueRequiresIdentity() {
	_, err := s.codec.Issue(requestcontext.Identity{UserType: requestcontext.UserTypeGovernment}, s.now)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))

	_, err = s.codec.Issue(requestcontext.Identity{GovernmentID: s.identity.GovernmentID}, s.now)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *SessionSuite) TestParseRejections() {
	token, err := s.codec.Issue(s.identity, s.now)
	s.Require().NoError(err)

	s.Run("expired", func() {
		_, err := s.codec.Parse(token, s.now.Add(2*time.Hour))
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthenticated))
		s.Contains(err.Error(), "expired")
	})

	s.Run("empty", func() {
		_, err := s.codec.Parse("", s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthenticated))
	})

	s.Run("signed with another secret", func() {
		other, err := NewCodec("another-secret-of-16+", time.Hour, false)
		s.Require().NoError(err)
		_, err = other.Parse(token, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthenticated))
	})

	s.Run("none algorithm", func() {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			UserID:   s.identity.GovernmentID.String(),
			UserType: "government",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				ExpiresAt: jwt.NewNumericDate(s.now.Add(time.Hour)),
			},
		})
		raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		s.Require().NoError(err)

		_, err = s.codec.Parse(raw, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthenticated))
	})

	s.Run("non uuid user id", func() {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			UserID:   "not-a-uuid",
			UserType: "government",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				ExpiresAt: jwt.NewNumericDate(s.now.Add(time.Hour)),
			},
		})
		raw, err := forged.SignedString(s.codec.signingKey)
		s.Require().NoError(err)

		_, err = s.codec.Parse(raw, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthenticated))
	})
}

func (s *SessionSuite) TestCookieLifecycle() {
	token, err := s.codec.Issue(s.identity, time.Now())
	s.Require().NoError(err)

	w := httptest.NewRecorder()
	s.codec.SetCookie(w, token)
	cookies := w.Result().Cookies()
	s.Require().Len(cookies, 1)
	s.Equal(CookieName, cookies[0].Name)
	s.True(cookies[0].HttpOnly)
	s.True(cookies[0].Secure)
	s.Equal(3600, cookies[0].MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookies[0])
	got, err := s.codec.Read(req)
	s.Require().NoError(err)
	s.Equal(s.identity.GovernmentID, got.GovernmentID)

	w = httptest.NewRecorder()
	s.codec.ClearCookie(w)
	cleared := w.Result().Cookies()
	s.Require().Len(cleared, 1)
	s.Equal(-1, cleared[0].MaxAge)
	s.Empty(cleared[0].Value)
}

func (s *SessionSuite) TestReadWithoutCookie() {
	_, err := s.codec.Read(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthenticated))
}

func (s *SessionSuite) TestNewCodecRequiresSecret() {
	_, err := NewCodec("", time.Hour, false)
	s.Error(err)
}

func (s *SessionSuite) TestDeviceLabel() {
	s.Equal("Unknown device", DeviceLabel(""))

	chrome := DeviceLabel("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	s.Contains(chrome, "Chrome")
	s.NotContains(chrome, "(mobile)")

	iphone := DeviceLabel("Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1")
	s.Contains(iphone, "Safari")
	s.Contains(iphone, "(mobile)")
}
