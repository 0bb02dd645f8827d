package engine

import (
	"fmt"
	"sort"

	"github.com/phnks/webfg-app-sub004/internal/engine/action"
	"github.com/phnks/webfg-app-sub004/internal/engine/grouping"
	"github.com/phnks/webfg-app-sub004/internal/engine/modifier"
	"github.com/phnks/webfg-app-sub004/internal/engine/rpgtoolkit"
	"github.com/phnks/webfg-app-sub004/internal/entities"
	"github.com/phnks/webfg-app-sub004/internal/errors"
	"github.com/phnks/webfg-app-sub004/internal/rules"
)

type engine struct {
	modifiers *modifier.Resolver
	actions   *action.Resolver
	chains    *action.Expander
	roller    Roller
}

// Config holds the dependencies for the engine
type Config struct {
	Rules *rules.RuleSet
	// Roller defaults to the rpg-toolkit dice roller
	Roller Roller
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Rules == nil {
		return errors.InvalidArgument("rule set is required")
	}
	return cfg.Rules.Validate()
}

// New creates an engine bound to one rule set
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	modifiers, err := modifier.NewResolver(&modifier.Config{Rules: cfg.Rules})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create modifier resolver")
	}

	actions, err := action.NewResolver(&action.Config{Rules: cfg.Rules})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create action resolver")
	}

	chains, err := action.NewExpander(&action.ExpanderConfig{
		Resolver:  actions,
		MaxLength: cfg.Rules.MaxChainLength,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chain expander")
	}

	roller := cfg.Roller
	if roller == nil {
		adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create dice adapter")
		}
		roller = adapter
	}

	return &engine{
		modifiers: modifiers,
		actions:   actions,
		chains:    chains,
		roller:    roller,
	}, nil
}

func (e *engine) ResolveAttribute(input *ResolveAttributeInput) (*ResolveAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateLoadout("loadout", input.Loadout); err != nil {
		return nil, err
	}
	if entities.CanonicalAttribute(input.Attribute) == "" {
		return nil, errors.InvalidArgument("attribute is required")
	}
	mode, err := parseMode(input.Mode)
	if err != nil {
		return nil, err
	}

	idx := indexLoadout(input.Loadout)
	return &ResolveAttributeOutput{
		Resolution: e.resolve(idx, input.Attribute, mode, input.Precomputed),
	}, nil
}

func (e *engine) ResolveCharacter(input *ResolveCharacterInput) (*ResolveCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateLoadout("loadout", input.Loadout); err != nil {
		return nil, err
	}

	idx := indexLoadout(input.Loadout)
	sheet := &CharacterSheet{
		CharacterID: idx.character.ID,
		Name:        idx.character.Name,
	}
	for _, attribute := range idx.mentionedAttributes() {
		sheet.Attributes = append(sheet.Attributes, SheetEntry{
			Attribute: attribute,
			Equipment: e.resolve(idx, attribute, entities.ModeEquipment, nil),
			Ready:     e.resolve(idx, attribute, entities.ModeReady, nil),
		})
	}

	return &ResolveCharacterOutput{Sheet: sheet}, nil
}

func (e *engine) TestAction(input *TestActionInput) (*TestActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := action.ValidateAction(input.Action); err != nil {
		return nil, err
	}
	if input.Action.ID == "" {
		return nil, errors.InvalidArgument("action id is required")
	}
	if err := validateLoadout("source", input.Source); err != nil {
		return nil, err
	}
	if err := validateTarget(input.Target); err != nil {
		return nil, err
	}
	mode, err := parseMode(input.Mode)
	if err != nil {
		return nil, err
	}

	source := e.participant(input.Source, mode)
	target := e.target(input.Target, mode)

	eval, err := e.actions.Evaluate(input.Action, source, target)
	if err != nil {
		return nil, err
	}

	arena := action.NewArena(input.Actions)
	arena[input.Action.ID] = input.Action

	chain, err := e.chains.Expand(input.Action.ID, arena, source, target)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to expand chain for action %s", input.Action.ID)
	}

	return &TestActionOutput{
		Evaluation:  eval,
		SourceValue: source.EffectiveValue(input.Action.SourceAttribute),
		TargetValue: target.EffectiveValue(input.Action.TargetAttribute),
		Chain:       chain,
	}, nil
}

func (e *engine) AttemptAction(input *AttemptActionInput) (*AttemptActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	test, err := e.TestAction(&input.TestActionInput)
	if err != nil {
		return nil, err
	}

	needed := test.Evaluation.RollNeeded
	attempt := &Attempt{
		Automatic:  needed.Automatic,
		Impossible: needed.Impossible,
	}

	if needed.Die == 0 {
		attempt.Success = needed.Automatic
		attempt.Description = fmt.Sprintf("static %s against difficulty %d",
			needed.Attribute, test.Evaluation.Difficulty)
		return &AttemptActionOutput{Test: test, Attempt: attempt}, nil
	}

	face, err := e.roller.RollDie(needed.Die)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll d%d", needed.Die)
	}

	attempt.Rolled = true
	attempt.Face = face
	attempt.Success = !needed.Impossible && face >= needed.Face
	attempt.Description = fmt.Sprintf("1d%d[%d] against difficulty %d",
		needed.Die, face, test.Evaluation.Difficulty)

	return &AttemptActionOutput{Test: test, Attempt: attempt}, nil
}

// resolve runs the modifier and grouping stages for one attribute
func (e *engine) resolve(
	idx *loadoutIndex,
	attribute string,
	mode entities.Mode,
	precomputed *float64,
) *AttributeResolution {
	attribute = entities.CanonicalAttribute(attribute)
	char := idx.character

	own, _ := char.Attribute(attribute)
	mods := e.modifiers.Resolve(attribute, own.BaseValue, char.Fatigue, idx.conditions)

	sources := []grouping.Source{{
		EntityID:   char.ID,
		EntityName: char.Name,
		Kind:       entities.EntityKindCharacter,
		Value:      mods.Value,
		IsGrouped:  own.IsGrouped,
	}}
	sources = append(sources, idx.itemSources(attribute, mode)...)

	local := grouping.Fold(attribute, sources)
	if !local.HasParticipants() {
		local.Value = mods.Rounded()
		local.Precise = modifier.Num(mods.Value)
	}
	reconciled := grouping.Reconcile(local, precomputed)

	applied, unapplied := mods.Applied, []modifier.AppliedCondition(nil)
	if local.HasParticipants() && !characterFolded(local.Breakdown, char.ID) {
		applied, unapplied = nil, mods.Applied
	}

	return &AttributeResolution{
		Attribute:  attribute,
		Mode:       mode,
		Value:      reconciled.Value,
		Precise:    reconciled.Precise,
		Die:        int(e.modifiers.Die(attribute)),
		Roll:       e.modifiers.FormatRoll(attribute, reconciled.Value),
		Range:      e.modifiers.Range(attribute, reconciled.Value),
		Grouped:    reconciled.HasParticipants(),
		Source:     reconciled.Source,
		Corrected:  reconciled.Corrected,
		Breakdown:  reconciled.Breakdown,
		Skipped:    reconciled.Skipped,
		Conditions: applied,

		UnappliedConditions: unapplied,
	}
}

// characterFolded reports whether the character's own source took part in the fold
func characterFolded(breakdown []grouping.Contribution, characterID string) bool {
	for _, c := range breakdown {
		if c.EntityKind == entities.EntityKindCharacter && c.EntityID == characterID {
			return true
		}
	}
	return false
}

// participant exposes a character to the action resolver. Values are resolved
// on first use.
func (e *engine) participant(loadout *Loadout, mode entities.Mode) *rpgtoolkit.CharacterEntity {
	idx := indexLoadout(loadout)
	return rpgtoolkit.NewCharacterEntity(idx.character.ID, func(attribute string) int {
		return e.resolve(idx, attribute, mode, nil).Value
	})
}

func (e *engine) target(target *Target, mode entities.Mode) action.Entity {
	if target.Object != nil {
		return rpgtoolkit.NewObjectEntity(target.Object)
	}
	return e.participant(target.Character, mode)
}

func parseMode(raw entities.Mode) (entities.Mode, error) {
	mode, ok := entities.ParseMode(string(raw))
	if !ok {
		return "", errors.InvalidArgumentf("unknown mode %q", raw)
	}
	return mode, nil
}

func validateLoadout(field string, l *Loadout) error {
	if l == nil || l.Character == nil {
		return errors.InvalidArgumentf("%s character is required", field)
	}
	return nil
}

func validateTarget(t *Target) error {
	if t == nil {
		return errors.InvalidArgument("target is required")
	}
	switch {
	case t.Object != nil && t.Character != nil:
		return errors.InvalidArgument("target must be a character or an object, not both")
	case t.Object != nil:
		return nil
	default:
		return validateLoadout("target", t.Character)
	}
}

// loadoutIndex is a loadout with its records keyed for lookup
type loadoutIndex struct {
	character  *entities.Character
	items      map[string]*entities.Item
	conditions []entities.Condition
}

func indexLoadout(l *Loadout) *loadoutIndex {
	idx := &loadoutIndex{
		character: l.Character,
		items:     make(map[string]*entities.Item, len(l.Items)),
	}
	for _, item := range l.Items {
		if item == nil || item.ID == "" {
			continue
		}
		idx.items[item.ID] = item
	}

	seen := make(map[string]struct{}, len(l.Conditions))
	for _, cond := range l.Conditions {
		if cond == nil {
			continue
		}
		if cond.ID != "" {
			if _, dup := seen[cond.ID]; dup {
				continue
			}
			seen[cond.ID] = struct{}{}
		}
		idx.conditions = append(idx.conditions, *cond)
	}
	return idx
}

// itemSources lists carried items offering attribute. Equipped items come
// first; ready mode appends readied items not already counted.
func (idx *loadoutIndex) itemSources(attribute string, mode entities.Mode) []grouping.Source {
	var sources []grouping.Source
	seen := make(map[string]struct{})

	add := func(ids []string, kind entities.EntityKind) {
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			item, ok := idx.items[id]
			if !ok {
				continue
			}
			seen[id] = struct{}{}

			attr, ok := item.Attribute(attribute)
			if !ok {
				continue
			}
			sources = append(sources, grouping.Source{
				EntityID:   item.ID,
				EntityName: item.Name,
				Kind:       kind,
				Value:      attr.Value,
				IsGrouped:  attr.IsGrouped,
			})
		}
	}

	add(idx.character.EquippedItemIDs, entities.EntityKindEquippedItem)
	if mode == entities.ModeReady {
		add(idx.character.ReadyItemIDs, entities.EntityKindReadyItem)
	}
	return sources
}

// mentionedAttributes is every attribute named by the character, its
// conditions or its carried items
func (idx *loadoutIndex) mentionedAttributes() []string {
	set := make(map[string]struct{})
	add := func(name string) {
		if name = entities.CanonicalAttribute(name); name != "" {
			set[name] = struct{}{}
		}
	}

	for name := range idx.character.Attributes {
		add(name)
	}
	for i := range idx.conditions {
		add(idx.conditions[i].TargetAttribute)
	}
	for _, id := range idx.character.CarriedItemIDs() {
		if item, ok := idx.items[id]; ok {
			for name := range item.Attributes {
				add(name)
			}
		}
	}

	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
