package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the domain error primitives every layer relies on
// to carry a stable code from the backend client up to the HTTP response.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeNotFound, Message: "scheme not found"}
		s.Equal("scheme not found", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeUnavailable}
		s.Equal("upstream_unavailable", err.Error())
	})
}

func (s *DomainErrorsSuite) TestUnwrap() {
	inner := errors.New("connection refused")
	err := &Error{Code: CodeUnavailable, Message: "backend unreachable", Err: inner}
	s.Equal(inner, errors.Unwrap(err))
	s.Nil((&Error{Code: CodeNotFound}).Unwrap())
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := &Error{Code: CodeNotFound, Message: "scheme not found"}
		err2 := &Error{Code: CodeNotFound, Message: "vendor not found"}
		s.True(err1.Is(err2))
	})

	s.Run("does not match different codes", func() {
		s.False((&Error{Code: CodeUnauthorized}).Is(&Error{Code: CodeForbidden}))
	})

	s.Run("does not match non-domain errors", func() {
		s.False((&Error{Code: CodeNotFound}).Is(errors.New("not found")))
	})

	s.Run("works with errors.Is through chain", func() {
		inner := &Error{Code: CodeValidation, Message: "amount must be positive"}
		wrapped := fmt.Errorf("update scheme: %w", inner)
		s.True(errors.Is(wrapped, &Error{Code: CodeValidation}))
	})
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("preserves original domain code when wrapping domain error", func() {
		original := New(CodeValidation, "name is required")
		wrapped := Wrap(original, CodeInternal, "create scheme failed")

		var domainErr *Error
		s.Require().True(errors.As(wrapped, &domainErr))
		s.Equal(CodeValidation, domainErr.Code)
		s.Equal("create scheme failed", domainErr.Message)
	})

	s.Run("uses provided code when wrapping non-domain error", func() {
		wrapped := Wrap(errors.New("dial tcp: timeout"), CodeUnavailable, "backend unreachable")
		s.True(HasCode(wrapped, CodeUnavailable))
	})

	s.Run("wrapped error is accessible via Unwrap", func() {
		original := errors.New("root cause")
		s.True(errors.Is(Wrap(original, CodeInternal, "service error"), original))
	})
}

func (s *DomainErrorsSuite) TestHasCodeAndCodeOf() {
	err := New(CodeUnauthenticated, "not authenticated")
	s.True(HasCode(err, CodeUnauthenticated))
	s.False(HasCode(err, CodeUnauthorized))
	s.False(HasCode(nil, CodeNotFound))
	s.False(HasCode(errors.New("plain"), CodeNotFound))

	s.Equal(CodeUnauthenticated, CodeOf(fmt.Errorf("list schemes: %w", err)))
	s.Equal(CodeInternal, CodeOf(errors.New("plain")))
}
