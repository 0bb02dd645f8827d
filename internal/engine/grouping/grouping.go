// Package grouping combines a character's attribute with the same attribute on
// the items it carries.
//
// Sources are folded pairwise from the largest value down. With a running value
// a and the next value b (a >= b):
//
//	combined = (a + b*(0.25 + b/a)) / 2
//
// so a second source never simply adds. Full precision is kept through the
// fold; only the reported value is rounded.
package grouping

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/phnks/webfg-app-sub004/internal/engine/modifier"
	"github.com/phnks/webfg-app-sub004/internal/entities"
)

// Formula labels recorded in a breakdown
const (
	FormulaBase        = "base"
	FormulaReplaceZero = "replaces zero total"
	SkipNotGrouped     = "skipped: not grouped"
	SkipZeroValue      = "skipped: zero value"
)

// Source is one entity's raw value offered to a fold
type Source struct {
	EntityID   string
	EntityName string
	Kind       entities.EntityKind
	Value      float64
	IsGrouped  bool
}

// Participates reports whether the source takes part in the fold
func (s Source) Participates() bool {
	return s.IsGrouped && modifier.Num(s.Value) != 0
}

// Contribution is one line of a grouping breakdown
type Contribution struct {
	Step         int                 `json:"step"`
	EntityID     string              `json:"entityId,omitempty"`
	EntityName   string              `json:"entityName"`
	EntityKind   entities.EntityKind `json:"entityKind"`
	Value        float64             `json:"value"`
	IsGrouped    bool                `json:"isGrouped"`
	RunningTotal float64             `json:"runningTotal"`
	Formula      string              `json:"formula"`
}

// DisplayTotal is the running total rounded for display
func (c Contribution) DisplayTotal() int {
	return modifier.Round(c.RunningTotal)
}

// Result is the outcome of a fold
type Result struct {
	Attribute string  `json:"attribute"`
	Value     int     `json:"value"`
	Precise   float64 `json:"precise"`
	// Breakdown lists participating sources in fold order
	Breakdown []Contribution `json:"breakdown"`
	// Skipped lists sources that were offered but did not take part
	Skipped []Contribution `json:"skipped,omitempty"`
}

// HasParticipants reports whether anything was folded
func (r Result) HasParticipants() bool {
	return len(r.Breakdown) > 0
}

// Fold groups the sources for one attribute. Sources that are ungrouped or
// zero are skipped without touching the running total. With no participants
// the value is 0.
func Fold(attribute string, sources []Source) Result {
	res := Result{Attribute: entities.CanonicalAttribute(attribute)}

	participants := make([]Source, 0, len(sources))
	for _, src := range sources {
		if src.Participates() {
			participants = append(participants, src)
			continue
		}
		reason := SkipNotGrouped
		if src.IsGrouped {
			reason = SkipZeroValue
		}
		res.Skipped = append(res.Skipped, Contribution{
			EntityID:   src.EntityID,
			EntityName: src.EntityName,
			EntityKind: src.Kind,
			Value:      modifier.Num(src.Value),
			IsGrouped:  src.IsGrouped,
			Formula:    reason,
		})
	}

	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].Value > participants[j].Value
	})

	var running float64
	for i, src := range participants {
		formula := FormulaBase
		if i == 0 {
			running = src.Value
		} else {
			running, formula = Combine(running, src.Value)
		}
		res.Breakdown = append(res.Breakdown, Contribution{
			Step:         i + 1,
			EntityID:     src.EntityID,
			EntityName:   src.EntityName,
			EntityKind:   src.Kind,
			Value:        src.Value,
			IsGrouped:    src.IsGrouped,
			RunningTotal: running,
			Formula:      formula,
		})
	}

	res.Precise = running
	res.Value = modifier.Round(running)
	return res
}

// Combine folds b into the running value a and returns the formula used.
// The larger operand always plays a. A zero running value carries nothing
// forward, so b replaces it.
func Combine(a, b float64) (float64, string) {
	if a == 0 {
		return b, FormulaReplaceZero
	}
	if b > a {
		a, b = b, a
	}
	if a == 0 {
		// the incoming value was zero and the total stays as it was
		return b, FormulaReplaceZero
	}
	combined := (a + b*(0.25+b/a)) / 2
	return combined, fmt.Sprintf("(%s + %s * (0.25 + %s / %s)) / 2", num(a), num(b), num(b), num(a))
}

func num(x float64) string {
	return strconv.FormatFloat(math.Round(x*1e4)/1e4, 'f', -1, 64)
}
