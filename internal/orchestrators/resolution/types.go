package resolution

import (
	"time"

	"github.com/phnks/webfg-app-sub004/internal/engine"
	"github.com/phnks/webfg-app-sub004/internal/repositories/attempts"
)

// ResolveAttributeInput identifies a character attribute to resolve
type ResolveAttributeInput struct {
	CharacterID string
	Attribute   string
	// Mode is "equipment" or "ready", default ready
	Mode string
	// Precomputed is a grouped value another layer already holds
	Precomputed *float64
}

// ResolveAttributeOutput contains the resolved attribute
type ResolveAttributeOutput struct {
	Resolution *engine.AttributeResolution
}

// ResolveCharacterInput identifies a character to build a sheet for
type ResolveCharacterInput struct {
	CharacterID string
}

// ResolveCharacterOutput contains the sheet
type ResolveCharacterOutput struct {
	Sheet *engine.CharacterSheet
}

// TestActionInput identifies an action, its source and one target
type TestActionInput struct {
	ActionID          string
	SourceCharacterID string
	// Exactly one of TargetCharacterID and TargetObjectID is set
	TargetCharacterID string
	TargetObjectID    string
	Mode              string
}

// TestActionOutput contains difficulty, band, needed roll and chain
type TestActionOutput struct {
	Result *engine.TestActionOutput
}

// AttemptActionInput identifies an action to roll for
type AttemptActionInput struct {
	ActionID          string
	SourceCharacterID string
	TargetCharacterID string
	TargetObjectID    string
	Mode              string
}

// AttemptActionOutput contains the rolled attempt
type AttemptActionOutput struct {
	AttemptID   string
	AttemptedAt time.Time
	Result      *engine.TestActionOutput
	Attempt     *engine.Attempt
}

// ListAttemptsInput selects a character's recent attempts
type ListAttemptsInput struct {
	CharacterID string
	// Limit of zero returns the whole retained history
	Limit int
}

// ListAttemptsOutput contains attempts, newest first
type ListAttemptsOutput struct {
	Attempts []*attempts.Record
}
