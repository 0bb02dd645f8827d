package v1alpha1

import (
	"time"

	"github.com/phnks/webfg-app-sub004/internal/engine"
	"github.com/phnks/webfg-app-sub004/internal/repositories/attempts"
)

// ResolveAttributeRequest asks for one effective attribute of a character
type ResolveAttributeRequest struct {
	CharacterID string `json:"characterId"`
	Attribute   string `json:"attribute"`
	// Mode is "ready" or "equipment", ready when empty
	Mode string `json:"mode,omitempty"`
	// Precomputed is a grouped value stored elsewhere. It is shown only when
	// the engine agrees with it.
	Precomputed *float64 `json:"precomputed,omitempty"`
}

// ResolveAttributeResponse holds the value with its breakdown
type ResolveAttributeResponse struct {
	Resolution *engine.AttributeResolution `json:"resolution"`
}

// ResolveCharacterRequest asks for a whole character sheet
type ResolveCharacterRequest struct {
	CharacterID string `json:"characterId"`
}

// ResolveCharacterResponse holds the sheet in both modes
type ResolveCharacterResponse struct {
	Sheet *engine.CharacterSheet `json:"sheet"`
}

// TestActionRequest measures an action against exactly one target
type TestActionRequest struct {
	ActionID          string `json:"actionId"`
	SourceCharacterID string `json:"sourceCharacterId"`
	TargetCharacterID string `json:"targetCharacterId,omitempty"`
	TargetObjectID    string `json:"targetObjectId,omitempty"`
	Mode              string `json:"mode,omitempty"`
}

// TestActionResponse is the difficulty, roll needed and chain of an action
type TestActionResponse struct {
	Result *engine.TestActionOutput `json:"result"`
}

// AttemptActionRequest is a test that also rolls
type AttemptActionRequest struct {
	TestActionRequest
}

// AttemptActionResponse is the test plus its rolled outcome
type AttemptActionResponse struct {
	AttemptID   string                   `json:"attemptId"`
	AttemptedAt time.Time                `json:"attemptedAt"`
	Result      *engine.TestActionOutput `json:"result"`
	Attempt     *engine.Attempt          `json:"attempt"`
}

// ListAttemptsRequest asks for a character's recent attempts
type ListAttemptsRequest struct {
	CharacterID string `json:"characterId"`
	Limit       int    `json:"limit,omitempty"`
}

// ListAttemptsResponse holds attempts, newest first
type ListAttemptsResponse struct {
	Attempts []*attempts.Record `json:"attempts"`
}
