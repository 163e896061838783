package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// AgeSuite covers the birthday boundaries used when showing a beneficiary's age.
type AgeSuite struct {
	suite.Suite
}

func TestAgeSuite(t *testing.T) {
	suite.Run(t, new(AgeSuite))
}

func (s *AgeSuite) TestAgeAt_BirthdayBoundaries() {
	birth := time.Date(2000, 1, 15, 0, 0, 0, 0, time.UTC)

	s.Run("exactly on birthday counts the new year", func() {
		s.Equal(18, AgeAt(birth, time.Date(2018, 1, 15, 0, 0, 0, 0, time.UTC)))
	})

	s.Run("day before birthday", func() {
		s.Equal(17, AgeAt(birth, time.Date(2018, 1, 14, 23, 59, 59, 0, time.UTC)))
	})

	s.Run("future birth date and zero value", func() {
		s.Equal(0, AgeAt(birth, time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)))
		s.Equal(0, AgeAt(time.Time{}, time.Now()))
	})
}
