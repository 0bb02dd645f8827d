package action_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/phnks/webfg-app-sub004/internal/engine/action"
	"github.com/phnks/webfg-app-sub004/internal/entities"
	"github.com/phnks/webfg-app-sub004/internal/errors"
	"github.com/phnks/webfg-app-sub004/internal/rules"
)

type stubEntity struct {
	id     string
	kind   string
	values map[string]int
}

func (e *stubEntity) GetID() string   { return e.id }
func (e *stubEntity) GetType() string { return e.kind }

func (e *stubEntity) EffectiveValue(attribute string) int {
	return e.values[entities.CanonicalAttribute(attribute)]
}

func character(id string, values map[string]int) *stubEntity {
	return &stubEntity{id: id, kind: string(entities.TargetTypeCharacter), values: values}
}

type ResolverTestSuite struct {
	suite.Suite
	resolver *action.Resolver
	hit      *entities.Action
}

func (s *ResolverTestSuite) SetupTest() {
	var err error
	s.resolver, err = action.NewResolver(&action.Config{Rules: rules.Default()})
	s.Require().NoError(err)

	s.hit = &entities.Action{
		ID:              "act-hit",
		Name:            "Hit",
		SourceAttribute: "DEXTERITY",
		TargetAttribute: "AGILITY",
		TargetType:      entities.TargetTypeCharacter,
		EffectType:      entities.EffectTypeHinder,
	}
}

func (s *ResolverTestSuite) TestNewResolverRequiresRules() {
	_, err := action.NewResolver(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = action.NewResolver(&action.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ResolverTestSuite) TestDifficulty() {
	source := character("char-a", map[string]int{"DEXTERITY": 10})

	testCases := []struct {
		name     string
		agility  int
		expected int
		band     string
	}{
		{name: "nimble attacker", agility: 1, expected: -9, band: "Easy"},
		{name: "even match", agility: 10, expected: 0, band: "Moderate"},
		{name: "untouchable target", agility: 100, expected: 90, band: "Extremely Hard"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			target := character("char-b", map[string]int{"AGILITY": tc.agility})

			difficulty, err := s.resolver.Difficulty(s.hit, source, target)
			s.Require().NoError(err)
			s.Equal(tc.expected, difficulty)
			s.Equal(tc.band, s.resolver.Band(difficulty))
		})
	}
}

func (s *ResolverTestSuite) TestDifficultyMissingAttributesCountAsZero() {
	source := character("char-a", nil)
	target := character("char-b", map[string]int{"AGILITY": 4})

	difficulty, err := s.resolver.Difficulty(s.hit, source, target)
	s.Require().NoError(err)
	s.Equal(4, difficulty)
}

func (s *ResolverTestSuite) TestDifficultyRejectsMalformedInput() {
	source := character("char-a", nil)
	target := character("char-b", nil)

	_, err := s.resolver.Difficulty(nil, source, target)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.resolver.Difficulty(&entities.Action{ID: "act-empty"}, source, target)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "act-empty")

	_, err = s.resolver.Difficulty(s.hit, nil, target)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.resolver.Difficulty(s.hit, source, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ResolverTestSuite) TestRollNeeded() {
	testCases := []struct {
		name       string
		difficulty int
		face       int
		automatic  bool
		impossible bool
		chance     float64
		label      string
	}{
		{name: "far below the die", difficulty: -9, face: 1, automatic: true, chance: 1, label: "Automatic success"},
		{name: "lowest face", difficulty: 1, face: 1, automatic: true, chance: 1, label: "Automatic success"},
		{name: "needs a fifteen", difficulty: 15, face: 15, chance: 0.3, label: "15+ on 1d20"},
		{name: "needs a natural twenty", difficulty: 20, face: 20, chance: 0.05, label: "20+ on 1d20"},
		{name: "beyond the die", difficulty: 21, impossible: true, label: "Impossible"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			roll := s.resolver.RollNeeded(s.hit, tc.difficulty)
			s.Equal("DEXTERITY", roll.Attribute)
			s.Equal(20, roll.Die)
			s.Equal(tc.face, roll.Face)
			s.Equal(tc.automatic, roll.Automatic)
			s.Equal(tc.impossible, roll.Impossible)
			s.InDelta(tc.chance, roll.Chance, 1e-9)
			s.Equal(tc.label, roll.Label)
		})
	}
}

func (s *ResolverTestSuite) TestRollNeededStaticSource() {
	shove := &entities.Action{
		ID:              "act-shove",
		SourceAttribute: "weight",
		TargetAttribute: "WEIGHT",
		EffectType:      entities.EffectTypeHinder,
	}

	easy := s.resolver.RollNeeded(shove, 0)
	s.Equal(0, easy.Die)
	s.True(easy.Automatic)
	s.Equal(1.0, easy.Chance)

	hard := s.resolver.RollNeeded(shove, 3)
	s.True(hard.Impossible)
	s.Zero(hard.Chance)
	s.Equal("Impossible (static)", hard.Label)
}

func (s *ResolverTestSuite) TestEvaluate() {
	source := character("char-a", map[string]int{"DEXTERITY": 6})
	target := character("char-b", map[string]int{"AGILITY": 18})

	eval, err := s.resolver.Evaluate(s.hit, source, target)
	s.Require().NoError(err)
	s.Equal("act-hit", eval.ActionID)
	s.Equal("Hit", eval.ActionName)
	s.Equal(12, eval.Difficulty)
	s.Equal("Very Hard", eval.Band)
	s.Equal(12, eval.RollNeeded.Face)
	s.InDelta(0.45, eval.RollNeeded.Chance, 1e-9)
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}
