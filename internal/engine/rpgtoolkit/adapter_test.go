package rpgtoolkit_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/phnks/webfg-app-sub004/internal/engine/rpgtoolkit"
	"github.com/phnks/webfg-app-sub004/internal/errors"
)

// stubDiceRoller returns a fixed face
type stubDiceRoller struct {
	face  int
	err   error
	sizes []int
}

// Minimal implementation to satisfy dice.Roller interface
func (s *stubDiceRoller) Roll(size int) (int, error) {
	s.sizes = append(s.sizes, size)
	return s.face, s.err
}

func (s *stubDiceRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = s.face
	}
	return out, s.err
}

type AdapterTestSuite struct {
	suite.Suite
}

func (s *AdapterTestSuite) TestNewAdapter() {
	s.Run("nil config", func() {
		_, err := rpgtoolkit.NewAdapter(nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("default roller stays on the die", func() {
		adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{})
		s.Require().NoError(err)

		for i := 0; i < 50; i++ {
			face, err := adapter.RollDie(12)
			s.Require().NoError(err)
			s.GreaterOrEqual(face, 1)
			s.LessOrEqual(face, 12)
		}
	})
}

func (s *AdapterTestSuite) TestRollDie() {
	testCases := []struct {
		name    string
		roller  *stubDiceRoller
		size    int
		face    int
		errFunc func(error) bool
	}{
		{name: "rolls through the toolkit", roller: &stubDiceRoller{face: 14}, size: 20, face: 14},
		{name: "die too small", roller: &stubDiceRoller{face: 1}, size: 1, errFunc: errors.IsInvalidArgument},
		{name: "roller failure", roller: &stubDiceRoller{err: fmt.Errorf("entropy exhausted")}, size: 20, errFunc: errors.IsInternal},
		{name: "face off the die", roller: &stubDiceRoller{face: 21}, size: 20, errFunc: errors.IsInternal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: tc.roller})
			s.Require().NoError(err)

			face, err := adapter.RollDie(tc.size)
			if tc.errFunc != nil {
				s.Require().Error(err)
				s.True(tc.errFunc(err))
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.face, face)
			s.Equal([]int{tc.size}, tc.roller.sizes)
		})
	}
}

func TestAdapterTestSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}
