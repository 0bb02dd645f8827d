package modifier_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/phnks/webfg-app-sub004/internal/engine/modifier"
	"github.com/phnks/webfg-app-sub004/internal/entities"
	"github.com/phnks/webfg-app-sub004/internal/rules"
)

type ResolverTestSuite struct {
	suite.Suite
	resolver *modifier.Resolver
	legacy   *modifier.Resolver
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	rs := rules.Default()

	r, err := modifier.NewResolver(&modifier.Config{Rules: rs})
	s.Require().NoError(err)
	s.resolver = r

	legacy, err := modifier.NewResolver(&modifier.Config{Rules: rs.WithFatigueRule(rules.FatigueRuleSubtract)})
	s.Require().NoError(err)
	s.legacy = legacy
}

func (s *ResolverTestSuite) TestNewResolver() {
	r, err := modifier.NewResolver(nil)
	s.Error(err)
	s.Nil(r)
	s.Contains(err.Error(), "config cannot be nil")

	r, err = modifier.NewResolver(&modifier.Config{})
	s.Error(err)
	s.Nil(r)
	s.Contains(err.Error(), "rule set is required")
}

func (s *ResolverTestSuite) TestRound() {
	testCases := []struct {
		in       float64
		expected int
	}{
		{in: 10.5, expected: 11},
		{in: 10.4, expected: 10},
		{in: 10.49999, expected: 10},
		{in: 13.75, expected: 14},
		{in: -2.5, expected: -2},
		{in: -2.6, expected: -3},
		{in: 0, expected: 0},
		{in: math.NaN(), expected: 0},
		{in: math.Inf(1), expected: 0},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, modifier.Round(tc.in), "round(%v)", tc.in)
	}
}

func (s *ResolverTestSuite) TestEffectiveValue() {
	testCases := []struct {
		name      string
		resolver  func() *modifier.Resolver
		base      float64
		fatigue   float64
		attribute string
		expected  int
	}{
		{
			name:      "static attribute rounds half up",
			resolver:  func() *modifier.Resolver { return s.resolver },
			base:      10.5,
			attribute: "ARMOUR",
			expected:  11,
		},
		{
			name:      "dice attribute ignores fatigue under current rules",
			resolver:  func() *modifier.Resolver { return s.resolver },
			base:      10.4,
			fatigue:   3,
			attribute: "STRENGTH",
			expected:  10,
		},
		{
			name:      "legacy rules subtract fatigue from dice attributes",
			resolver:  func() *modifier.Resolver { return s.legacy },
			base:      10,
			fatigue:   3,
			attribute: "strength",
			expected:  7,
		},
		{
			name:      "legacy rules leave static attributes alone",
			resolver:  func() *modifier.Resolver { return s.legacy },
			base:      10,
			fatigue:   3,
			attribute: "ARMOUR",
			expected:  10,
		},
		{
			name:      "missing base resolves to zero",
			resolver:  func() *modifier.Resolver { return s.legacy },
			base:      math.NaN(),
			fatigue:   math.NaN(),
			attribute: "STRENGTH",
			expected:  0,
		},
		{
			name:      "negative base survives",
			resolver:  func() *modifier.Resolver { return s.resolver },
			base:      -4,
			attribute: "AGILITY",
			expected:  -4,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.resolver().EffectiveValue(tc.base, tc.fatigue, tc.attribute))
		})
	}
}

func (s *ResolverTestSuite) TestResolveAppliesMatchingConditions() {
	conditions := []entities.Condition{
		{ID: "c1", Name: "Inspired", TargetAttribute: "strength", Polarity: entities.PolarityHelp, Amount: 2.5},
		{ID: "c2", Name: "Wounded", TargetAttribute: "STRENGTH", Polarity: entities.PolarityHinder, Amount: 4},
		{ID: "c3", Name: "Blinded", TargetAttribute: "SEEING", Polarity: entities.PolarityHinder, Amount: 10},
		{ID: "c4", Name: "Odd", TargetAttribute: "STRENGTH", Polarity: "SIDEWAYS", Amount: 100},
	}

	res := s.resolver.Resolve("Strength", 10, 0, conditions)

	s.Equal(10.0, res.Base)
	s.InDelta(8.5, res.Value, 1e-9)
	s.Equal(9, res.Rounded())
	s.Require().Len(res.Applied, 2)
	s.Equal("Inspired", res.Applied[0].Name)
	s.Equal(2.5, res.Applied[0].Amount)
	s.Equal("Wounded", res.Applied[1].Name)
	s.Equal(-4.0, res.Applied[1].Amount)
}

func (s *ResolverTestSuite) TestResolveWithoutConditions() {
	res := s.resolver.Resolve("AGILITY", -4, 0, nil)
	s.Equal(-4.0, res.Value)
	s.Empty(res.Applied)
}

func (s *ResolverTestSuite) TestFormatRoll() {
	s.Equal("1d20+5", s.resolver.FormatRoll("STRENGTH", 5))
	s.Equal("1d20+0", s.resolver.FormatRoll("dexterity", 0))
	s.Equal("1d12-3", s.resolver.FormatRoll("RESOLVE", -3))
	s.Equal("Static: 7", s.resolver.FormatRoll("ARMOUR", 7))
	s.Equal("Static: 7", s.resolver.FormatRoll("NOT_A_THING", 7))
}

func (s *ResolverTestSuite) TestRange() {
	s.Equal(rules.Range{Min: 6, Max: 25}, s.resolver.Range("STRENGTH", 5))
	s.Equal(rules.Range{Min: -1, Max: 6}, s.resolver.Range("PERCEPTION", -2))
	s.Equal(rules.Range{Min: 4, Max: 4}, s.resolver.Range("ARMOUR", 4))
	s.Equal(rules.Range{Min: 4, Max: 4}, s.resolver.Range("UNKNOWN", 4))
}
