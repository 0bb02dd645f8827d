// Package action measures how hard an action is for one entity against another
// and follows the actions it triggers.
package action

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/phnks/webfg-app-sub004/internal/entities"
	"github.com/phnks/webfg-app-sub004/internal/errors"
	"github.com/phnks/webfg-app-sub004/internal/rules"
)

// Entity is anything an action can be attempted by or against
type Entity interface {
	core.Entity
	// EffectiveValue is the rounded value the entity brings for attribute
	EffectiveValue(attribute string) int
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

// Resolver computes difficulty, band and needed roll for actions
type Resolver struct {
	catalog *rules.Catalog
	bands   *rules.BandTable
}

// NewResolver creates a resolver bound to one rule set
func NewResolver(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Resolver{
		catalog: cfg.Rules.Catalog,
		bands:   cfg.Rules.Bands,
	}, nil
}

// ValidateAction checks the fields difficulty depends on
func ValidateAction(act *entities.Action) error {
	if act == nil {
		return errors.InvalidArgument("action cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sourceAttribute", act.SourceAttribute, vb)
	errors.ValidateRequired("targetAttribute", act.TargetAttribute, vb)
	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "action %s is malformed", act.ID)
	}
	return nil
}

// Difficulty is the target's value for the action's target attribute minus the
// source's value for its source attribute. It has no bounds.
func (r *Resolver) Difficulty(act *entities.Action, source, target Entity) (int, error) {
	if err := ValidateAction(act); err != nil {
		return 0, err
	}
	if source == nil {
		return 0, errors.InvalidArgument("source entity cannot be nil")
	}
	if target == nil {
		return 0, errors.InvalidArgument("target entity cannot be nil")
	}

	return target.EffectiveValue(act.TargetAttribute) - source.EffectiveValue(act.SourceAttribute), nil
}

// Band names a difficulty
func (r *Resolver) Band(difficulty int) string {
	return r.bands.Label(difficulty)
}

// RollNeeded describes what the acting entity must roll
type RollNeeded struct {
	Attribute string `json:"attribute"`
	// Die is 0 for a static source attribute
	Die        int     `json:"die"`
	Face       int     `json:"face"`
	Automatic  bool    `json:"automatic"`
	Impossible bool    `json:"impossible"`
	Chance     float64 `json:"chance"`
	Label      string  `json:"label"`
}

// RollNeeded reports the lowest face of the source attribute's die that meets
// the difficulty. A static source attribute cannot roll, so it succeeds only
// when the difficulty is not positive.
func (r *Resolver) RollNeeded(act *entities.Action, difficulty int) RollNeeded {
	attribute := ""
	if act != nil {
		attribute = entities.CanonicalAttribute(act.SourceAttribute)
	}
	d := r.catalog.Classify(attribute)
	out := RollNeeded{Attribute: attribute, Die: int(d)}

	if !d.Valid() {
		if difficulty <= 0 {
			out.Automatic = true
			out.Chance = 1
			out.Label = "Automatic success (static)"
		} else {
			out.Impossible = true
			out.Label = "Impossible (static)"
		}
		return out
	}

	faces := rules.DieRange(d)
	switch {
	case difficulty <= faces.Min:
		out.Face = faces.Min
		out.Automatic = true
		out.Chance = 1
		out.Label = "Automatic success"
	case difficulty > faces.Max:
		out.Impossible = true
		out.Label = "Impossible"
	default:
		out.Face = difficulty
		out.Chance = float64(faces.Max-difficulty+1) / float64(d)
		out.Label = fmt.Sprintf("%d+ on 1d%d", difficulty, int(d))
	}
	return out
}

// Evaluation is a single action measured against a target
type Evaluation struct {
	ActionID   string     `json:"actionId"`
	ActionName string     `json:"actionName"`
	Difficulty int        `json:"difficulty"`
	Band       string     `json:"band"`
	RollNeeded RollNeeded `json:"rollNeeded"`
}

// Evaluate computes difficulty, band and needed roll in one pass
func (r *Resolver) Evaluate(act *entities.Action, source, target Entity) (*Evaluation, error) {
	difficulty, err := r.Difficulty(act, source, target)
	if err != nil {
		return nil, err
	}

	return &Evaluation{
		ActionID:   act.ID,
		ActionName: act.Name,
		Difficulty: difficulty,
		Band:       r.Band(difficulty),
		RollNeeded: r.RollNeeded(act, difficulty),
	}, nil
}
