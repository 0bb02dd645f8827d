package grouping_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/phnks/webfg-app-sub004/internal/engine/grouping"
	"github.com/phnks/webfg-app-sub004/internal/entities"
)

type GroupingTestSuite struct {
	suite.Suite
}

func TestGroupingSuite(t *testing.T) {
	suite.Run(t, new(GroupingTestSuite))
}

func character(value float64, grouped bool) grouping.Source {
	return grouping.Source{EntityID: "char-1", EntityName: "Brakka", Kind: entities.EntityKindCharacter, Value: value, IsGrouped: grouped}
}

func equipped(id string, value float64, grouped bool) grouping.Source {
	return grouping.Source{EntityID: id, EntityName: id, Kind: entities.EntityKindEquippedItem, Value: value, IsGrouped: grouped}
}

func (s *GroupingTestSuite) TestTwoSourcesFoldLargestFirst() {
	res := grouping.Fold("armour", []grouping.Source{
		character(10, true),
		equipped("plate", 20, true),
	})

	s.Equal("ARMOUR", res.Attribute)
	s.InDelta(13.75, res.Precise, 1e-9)
	s.Equal(14, res.Value)
	s.Require().Len(res.Breakdown, 2)

	first := res.Breakdown[0]
	s.Equal(1, first.Step)
	s.Equal("plate", first.EntityName)
	s.Equal(entities.EntityKindEquippedItem, first.EntityKind)
	s.Equal(20.0, first.RunningTotal)
	s.Equal(grouping.FormulaBase, first.Formula)

	second := res.Breakdown[1]
	s.Equal(2, second.Step)
	s.Equal(entities.EntityKindCharacter, second.EntityKind)
	s.Equal(10.0, second.Value)
	s.InDelta(13.75, second.RunningTotal, 1e-9)
	s.Equal(14, second.DisplayTotal())
	s.Equal("(20 + 10 * (0.25 + 10 / 20)) / 2", second.Formula)
}

func (s *GroupingTestSuite) TestSingleSourceIsItsOwnValue() {
	res := grouping.Fold("STRENGTH", []grouping.Source{character(12.5, true)})
	s.Equal(13, res.Value)
	s.Equal(12.5, res.Precise)
	s.Len(res.Breakdown, 1)
	s.Empty(res.Skipped)
}

func (s *GroupingTestSuite) TestSkippedSourcesDoNotMoveTheTotal() {
	withSkips := grouping.Fold("ARMOUR", []grouping.Source{
		character(10, true),
		equipped("cloak", 5, false),
		equipped("plate", 20, true),
		equipped("ring", 0, true),
	})
	without := grouping.Fold("ARMOUR", []grouping.Source{
		character(10, true),
		equipped("plate", 20, true),
	})

	s.Equal(without.Precise, withSkips.Precise)
	s.Equal(without.Breakdown, withSkips.Breakdown)
	s.Require().Len(withSkips.Skipped, 2)
	s.Equal("cloak", withSkips.Skipped[0].EntityName)
	s.Equal(grouping.SkipNotGrouped, withSkips.Skipped[0].Formula)
	s.Equal("ring", withSkips.Skipped[1].EntityName)
	s.Equal(grouping.SkipZeroValue, withSkips.Skipped[1].Formula)
}

func (s *GroupingTestSuite) TestNoParticipants() {
	res := grouping.Fold("ARMOUR", []grouping.Source{character(10, false)})
	s.False(res.HasParticipants())
	s.Equal(0, res.Value)
	s.Len(res.Skipped, 1)

	empty := grouping.Fold("ARMOUR", nil)
	s.Equal(0, empty.Value)
	s.Empty(empty.Breakdown)
}

func (s *GroupingTestSuite) TestThreeSourcesFoldIteratively() {
	res := grouping.Fold("ARMOUR", []grouping.Source{
		character(10, true),
		equipped("helm", 5, true),
		equipped("plate", 20, true),
	})

	// 20 then 10 -> 13.75, then 5 -> (13.75 + 5*(0.25 + 5/13.75)) / 2
	step2 := 13.75
	step3 := (step2 + 5*(0.25+5/step2)) / 2

	s.Require().Len(res.Breakdown, 3)
	s.Equal([]string{"plate", "Brakka", "helm"}, []string{
		res.Breakdown[0].EntityName, res.Breakdown[1].EntityName, res.Breakdown[2].EntityName,
	})
	s.InDelta(step3, res.Precise, 1e-9)
	s.Equal(int(math.Floor(step3+0.5)), res.Value)
	s.Equal(res.Value, res.Breakdown[2].DisplayTotal())
}

func (s *GroupingTestSuite) TestFullPrecisionCarriesThroughFolds() {
	res := grouping.Fold("X", []grouping.Source{
		equipped("a", 7, true),
		equipped("b", 3, true),
		equipped("c", 3, true),
	})

	a := (7 + 3*(0.25+3.0/7)) / 2
	b := (a + 3*(0.25+3/a)) / 2
	s.InDelta(b, res.Precise, 1e-12)
}

func (s *GroupingTestSuite) TestTiesKeepInputOrder() {
	res := grouping.Fold("X", []grouping.Source{
		equipped("first", 8, true),
		equipped("second", 8, true),
	})
	s.Equal("first", res.Breakdown[0].EntityName)
	s.Equal("second", res.Breakdown[1].EntityName)
	s.InDelta(9.0, res.Precise, 1e-9)
}

func (s *GroupingTestSuite) TestNegativeValuesFoldWithoutSpecialCases() {
	res := grouping.Fold("AGILITY", []grouping.Source{
		character(-4, true),
		equipped("tower-shield", -8, true),
	})

	// -4 is the larger operand: (-4 + -8*(0.25 + 2)) / 2 = -11
	s.InDelta(-11.0, res.Precise, 1e-9)
	s.Equal(-11, res.Value)
}

func (s *GroupingTestSuite) TestMixedSignsSwapOperands() {
	res := grouping.Fold("AGILITY", []grouping.Source{
		character(10, true),
		equipped("heavy-shield", -4, true),
	})

	// (10 + -4*(0.25 - 0.4)) / 2 = 5.3
	s.InDelta(5.3, res.Precise, 1e-9)
	s.Equal(5, res.Value)
}

func (s *GroupingTestSuite) TestCombine() {
	v, formula := grouping.Combine(10, 20)
	s.InDelta(13.75, v, 1e-9)
	s.Equal("(20 + 10 * (0.25 + 10 / 20)) / 2", formula)

	v, formula = grouping.Combine(0, 6)
	s.Equal(6.0, v)
	s.Equal(grouping.FormulaReplaceZero, formula)

	v, formula = grouping.Combine(-3, 0)
	s.Equal(-3.0, v)
	s.Equal(grouping.FormulaReplaceZero, formula)
}

func (s *GroupingTestSuite) TestFinalRunningTotalMatchesValue() {
	sources := []grouping.Source{
		character(11, true),
		equipped("a", 4, true),
		equipped("b", 17, true),
		equipped("c", 2, true),
	}
	res := grouping.Fold("X", sources)
	last := res.Breakdown[len(res.Breakdown)-1]
	s.Equal(res.Precise, last.RunningTotal)
	s.Equal(res.Value, last.DisplayTotal())
}
