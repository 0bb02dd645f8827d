// Package rpgtoolkit adapts rpg-toolkit dice and entities to the engine.
package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/phnks/webfg-app-sub004/internal/errors"
)

// Adapter rolls single dice through an rpg-toolkit roller
type Adapter struct {
	diceRoller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	// DiceRoller defaults to dice.DefaultRoller
	DiceRoller dice.Roller
}

// NewAdapter creates a new rpg-toolkit dice adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &Adapter{diceRoller: roller}, nil
}

// RollDie rolls one die and checks the face is on it
func (a *Adapter) RollDie(size int) (int, error) {
	if size < 2 {
		return 0, errors.InvalidArgumentf("die size must be at least 2, got %d", size)
	}

	face, err := a.diceRoller.Roll(size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", size)
	}
	if face < 1 || face > size {
		return 0, errors.Internalf("roller returned %d for d%d", face, size)
	}

	return face, nil
}
