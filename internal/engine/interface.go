// Package engine resolves effective attributes and action difficulty from
// character, item, condition and action records
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/phnks/webfg-app-sub004/internal/engine Engine

// Engine is the stat resolution and action difficulty engine. Every call is a
// pure function of its input.
type Engine interface {
	// ResolveAttribute groups one attribute for a character in the given mode
	ResolveAttribute(input *ResolveAttributeInput) (*ResolveAttributeOutput, error)

	// ResolveCharacter resolves every attribute a character touches in both modes
	ResolveCharacter(input *ResolveCharacterInput) (*ResolveCharacterOutput, error)

	// TestAction measures an action and the chain it triggers
	TestAction(input *TestActionInput) (*TestActionOutput, error)

	// AttemptAction tests an action and rolls the source attribute's die
	AttemptAction(input *AttemptActionInput) (*AttemptActionOutput, error)
}

// Roller rolls one die of the given size
type Roller interface {
	RollDie(size int) (int, error)
}
