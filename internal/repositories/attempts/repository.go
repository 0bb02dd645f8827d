// Package attempts keeps a short, expiring history of rolled action attempts
// per source character
package attempts

//go:generate mockgen -destination=mock/mock_repository.go -package=attemptsmock github.com/phnks/webfg-app-sub004/internal/repositories/attempts Repository

import (
	"context"
	"time"

	"github.com/phnks/webfg-app-sub004/internal/errors"
)

const (
	// DefaultTTL is how long a character's history lives after its last attempt
	DefaultTTL = 24 * time.Hour
	// MaxPerCharacter caps the history length; older attempts are dropped
	MaxPerCharacter = 50
)

// Record is one rolled attempt as it was reported to the caller
type Record struct {
	AttemptID         string    `json:"attemptId"`
	AttemptedAt       time.Time `json:"attemptedAt"`
	ActionID          string    `json:"actionId"`
	ActionName        string    `json:"actionName"`
	SourceCharacterID string    `json:"sourceCharacterId"`
	TargetCharacterID string    `json:"targetCharacterId,omitempty"`
	TargetObjectID    string    `json:"targetObjectId,omitempty"`
	Difficulty        int       `json:"difficulty"`
	Band              string    `json:"band"`
	Rolled            bool      `json:"rolled"`
	Face              int       `json:"face"`
	Success           bool      `json:"success"`
	Description       string    `json:"description"`
}

// AppendInput contains the attempt to record
type AppendInput struct {
	Record *Record
	// TTL defaults to DefaultTTL
	TTL time.Duration
}

// AppendOutput contains the stored attempt
type AppendOutput struct {
	Record *Record
}

// ListInput selects a character's history
type ListInput struct {
	CharacterID string
	// Limit defaults to MaxPerCharacter
	Limit int
}

// ListOutput contains attempts, newest first
type ListOutput struct {
	Records []*Record
}

// Repository stores attempt history
type Repository interface {
	// Append records an attempt under its source character and refreshes
	// the history's expiry
	// Returns errors.InvalidArgument for a nil record or missing IDs
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns the newest attempts first. An unknown or expired
	// character has an empty history.
	// Returns errors.InvalidArgument for an empty character ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

func validateRecord(r *Record) error {
	switch {
	case r == nil:
		return errors.InvalidArgument("record is required")
	case r.AttemptID == "":
		return errors.InvalidArgument("attempt ID cannot be empty")
	case r.SourceCharacterID == "":
		return errors.InvalidArgument("source character ID cannot be empty")
	}
	return nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > MaxPerCharacter {
		return MaxPerCharacter
	}
	return limit
}

func normalizeTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultTTL
	}
	return ttl
}
