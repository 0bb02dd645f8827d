package engine

import (
	"github.com/phnks/webfg-app-sub004/internal/engine/action"
	"github.com/phnks/webfg-app-sub004/internal/engine/grouping"
	"github.com/phnks/webfg-app-sub004/internal/engine/modifier"
	"github.com/phnks/webfg-app-sub004/internal/entities"
	"github.com/phnks/webfg-app-sub004/internal/rules"
)

// Loadout is a character together with the records its references point at.
// Items and Conditions may be in any order and may omit records that do not
// exist; the character's own reference lists decide what is used.
type Loadout struct {
	Character *entities.Character `json:"character"`
	Items     []*entities.Item    `json:"items,omitempty"`
	// Conditions are the character's active conditions
	Conditions []*entities.Condition `json:"conditions,omitempty"`
}

// Target is what an action is aimed at. Exactly one field is set.
type Target struct {
	Character *Loadout       `json:"character,omitempty"`
	Object    *entities.Item `json:"object,omitempty"`
}

// ResolveAttributeInput asks for one grouped attribute
type ResolveAttributeInput struct {
	Loadout   *Loadout
	Attribute string
	// Mode defaults to ready
	Mode entities.Mode
	// Precomputed is a grouped value supplied by another layer, shown only
	// when it agrees with the local fold
	Precomputed *float64
}

// AttributeResolution is an effective attribute with its audit trail
type AttributeResolution struct {
	Attribute string        `json:"attribute"`
	Mode      entities.Mode `json:"mode"`
	Value     int           `json:"value"`
	Precise   float64       `json:"precise"`
	Die       int           `json:"die"`
	Roll      string        `json:"roll"`
	Range     rules.Range   `json:"range"`
	// Grouped is false when nothing participated and the character's own
	// value is reported
	Grouped    bool                        `json:"grouped"`
	Source     grouping.ValueSource        `json:"source"`
	Corrected  bool                        `json:"corrected"`
	Breakdown  []grouping.Contribution     `json:"breakdown"`
	Skipped    []grouping.Contribution     `json:"skipped,omitempty"`
	Conditions []modifier.AppliedCondition `json:"conditions,omitempty"`

	// UnappliedConditions target the attribute but adjust only the character's
	// own value, which did not take part in the fold
	UnappliedConditions []modifier.AppliedCondition `json:"unappliedConditions,omitempty"`
}

// ResolveAttributeOutput holds the resolved attribute
type ResolveAttributeOutput struct {
	Resolution *AttributeResolution
}

// ResolveCharacterInput asks for a full character sheet
type ResolveCharacterInput struct {
	Loadout *Loadout
}

// SheetEntry is one attribute in both modes
type SheetEntry struct {
	Attribute string               `json:"attribute"`
	Equipment *AttributeResolution `json:"equipment"`
	Ready     *AttributeResolution `json:"ready"`
}

// CharacterSheet lists every attribute a character, its conditions or its
// carried items mention, sorted by name
type CharacterSheet struct {
	CharacterID string       `json:"characterId"`
	Name        string       `json:"name"`
	Attributes  []SheetEntry `json:"attributes"`
}

// ResolveCharacterOutput holds the sheet
type ResolveCharacterOutput struct {
	Sheet *CharacterSheet
}

// TestActionInput describes an action attempt without rolling
type TestActionInput struct {
	Action *entities.Action
	// Actions is the arena linked actions are looked up in. The root action
	// does not need to be repeated here.
	Actions []*entities.Action
	Source  *Loadout
	Target  *Target
	// Mode selects which carried items count for characters, default ready
	Mode entities.Mode
}

// TestActionOutput is the measured action and its chain
type TestActionOutput struct {
	Evaluation  *action.Evaluation `json:"evaluation"`
	SourceValue int                `json:"sourceValue"`
	TargetValue int                `json:"targetValue"`
	Chain       *action.Chain      `json:"chain"`
}

// AttemptActionInput is a test that also rolls
type AttemptActionInput struct {
	TestActionInput
}

// Attempt is the rolled outcome of an action
type Attempt struct {
	// Rolled is false for static source attributes
	Rolled      bool   `json:"rolled"`
	Face        int    `json:"face"`
	Success     bool   `json:"success"`
	Automatic   bool   `json:"automatic"`
	Impossible  bool   `json:"impossible"`
	Description string `json:"description"`
}

// AttemptActionOutput holds the test and its roll
type AttemptActionOutput struct {
	Test    *TestActionOutput
	Attempt *Attempt
}
