// Package modifier resolves a single entity's attribute: base value, active
// condition modifiers, fatigue rule and rounding.
package modifier

import (
	"fmt"
	"math"

	"github.com/phnks/webfg-app-sub004/internal/entities"
	"github.com/phnks/webfg-app-sub004/internal/errors"
	"github.com/phnks/webfg-app-sub004/internal/rules"
)

// Round rounds to the nearest integer with halves going up (10.5 -> 11,
// -2.5 -> -2). Non-finite input rounds to 0.
func Round(x float64) int {
	return int(math.Floor(Num(x) + 0.5))
}

// Num coerces NaN and infinities to 0
func Num(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// Config holds the dependencies for a Resolver
type Config struct {
	Rules *rules.RuleSet
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Rules == nil {
		return errors.InvalidArgument("rule set is required")
	}
	return c.Rules.Validate()
}

// Resolver combines an entity's base value with its modifiers
type Resolver struct {
	catalog     *rules.Catalog
	fatigueRule rules.FatigueRule
}

// NewResolver creates a resolver bound to one rule set
func NewResolver(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Resolver{
		catalog:     cfg.Rules.Catalog,
		fatigueRule: cfg.Rules.FatigueRule,
	}, nil
}

// AppliedCondition records one condition folded into a value
type AppliedCondition struct {
	ConditionID string            `json:"conditionId"`
	Name        string            `json:"name"`
	Polarity    entities.Polarity `json:"polarity"`
	Amount      float64           `json:"amount"`
}

// Result is an attribute value before rounding together with what adjusted it
type Result struct {
	Base    float64            `json:"base"`
	Value   float64            `json:"value"`
	Applied []AppliedCondition `json:"applied,omitempty"`
}

// Rounded is the displayable value
func (r Result) Rounded() int {
	return Round(r.Value)
}

// Adjusted applies the fatigue rule to base without rounding
func (r *Resolver) Adjusted(base, fatigue float64, attribute string) float64 {
	base = Num(base)
	if r.fatigueRule == rules.FatigueRuleSubtract && r.catalog.UsesDice(attribute) {
		base -= Num(fatigue)
	}
	return base
}

// EffectiveValue is the rounded value of base under the active fatigue rule
func (r *Resolver) EffectiveValue(base, fatigue float64, attribute string) int {
	return Round(r.Adjusted(base, fatigue, attribute))
}

// Resolve adds every condition targeting attribute to the fatigue-adjusted
// base. Conditions for other attributes are ignored.
func (r *Resolver) Resolve(attribute string, base, fatigue float64, conditions []entities.Condition) Result {
	res := Result{Base: Num(base)}
	res.Value = r.Adjusted(base, fatigue, attribute)

	for i := range conditions {
		cond := &conditions[i]
		if !cond.Affects(attribute) {
			continue
		}
		amount := Num(cond.SignedAmount())
		if amount == 0 {
			continue
		}
		res.Value += amount
		res.Applied = append(res.Applied, AppliedCondition{
			ConditionID: cond.ID,
			Name:        cond.Name,
			Polarity:    cond.Polarity,
			Amount:      amount,
		})
	}

	return res
}

// FormatRoll renders what a player rolls for the attribute: "1d20+3" for dice
// attributes and "Static: 3" otherwise.
func (r *Resolver) FormatRoll(attribute string, modifier int) string {
	d := r.catalog.Classify(attribute)
	if !d.Valid() {
		return fmt.Sprintf("Static: %d", modifier)
	}
	if modifier < 0 {
		return fmt.Sprintf("1d%d%d", int(d), modifier)
	}
	return fmt.Sprintf("1d%d+%d", int(d), modifier)
}

// Range is the span of outcomes for the attribute at a given modifier
func (r *Resolver) Range(attribute string, modifier int) rules.Range {
	d := r.catalog.Classify(attribute)
	if !d.Valid() {
		return rules.Range{Min: modifier, Max: modifier}
	}
	return rules.DieRange(d).Shift(modifier)
}

// Die is the attribute's die under this resolver's catalog
func (r *Resolver) Die(attribute string) rules.DieSize {
	return r.catalog.Classify(attribute)
}
