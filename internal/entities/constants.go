package entities

import "strings"

// TargetType says what kind of record an action is aimed at
type TargetType string

// Target types
const (
	TargetTypeCharacter TargetType = "CHARACTER"
	TargetTypeObject    TargetType = "OBJECT"
)

// EffectType is what an action does once it lands
type EffectType string

// Effect types
const (
	EffectTypeDestroy       EffectType = "DESTROY"
	EffectTypeHelp          EffectType = "HELP"
	EffectTypeHinder        EffectType = "HINDER"
	EffectTypeTriggerAction EffectType = "TRIGGER_ACTION"
)

// Polarity is the direction a condition pushes an attribute
type Polarity string

// Condition polarities
const (
	PolarityHelp   Polarity = "HELP"
	PolarityHinder Polarity = "HINDER"
)

// EntityKind identifies who supplied a grouping contribution
type EntityKind string

// Contribution sources
const (
	EntityKindCharacter    EntityKind = "CHARACTER"
	EntityKindEquippedItem EntityKind = "EQUIPPED_ITEM"
	EntityKindReadyItem    EntityKind = "READY_ITEM"
)

// Mode selects which carried items take part in a resolution
type Mode string

// Resolution modes
const (
	// ModeEquipment groups the character with its equipped items
	ModeEquipment Mode = "equipment"
	// ModeReady additionally groups readied items
	ModeReady Mode = "ready"
)

// ParseMode normalizes a mode string, defaulting an empty value to ModeReady.
// The second return is false for anything unrecognized.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return ModeReady, true
	case ModeEquipment:
		return ModeEquipment, true
	case ModeReady:
		return ModeReady, true
	default:
		return "", false
	}
}

// CanonicalAttribute is the form attribute names are compared in
func CanonicalAttribute(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
