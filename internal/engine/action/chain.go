package action

import (
	"github.com/phnks/webfg-app-sub004/internal/entities"
	"github.com/phnks/webfg-app-sub004/internal/errors"
	"github.com/phnks/webfg-app-sub004/internal/rules"
)

// NodeState is where a node sits in a trigger chain
type NodeState string

// Node states
const (
	NodeStateRoot   NodeState = "ROOT"
	NodeStateLinked NodeState = "LINKED"
)

// Termination says why a chain stopped growing
type Termination string

// Termination reasons
const (
	TerminationTerminalEffect Termination = "TERMINAL_EFFECT"
	TerminationNoNextAction   Termination = "NO_NEXT_ACTION"
	TerminationMissingAction  Termination = "MISSING_ACTION"
	TerminationCycleDetected  Termination = "CYCLE_DETECTED"
	TerminationMaxLength      Termination = "MAX_LENGTH"
)

// ChainNode is one action in a cascade with its own difficulty
type ChainNode struct {
	Position   int       `json:"position"`
	ActionID   string    `json:"actionId"`
	ActionName string    `json:"actionName"`
	State      NodeState `json:"state"`
	Difficulty int       `json:"difficulty"`
	Band       string    `json:"band"`
}

// Chain is the ordered cascade set off by an action
type Chain struct {
	Nodes       []ChainNode `json:"nodes"`
	Termination Termination `json:"termination"`
}

// Arena indexes actions by ID
type Arena map[string]*entities.Action

// NewArena indexes actions, skipping those without an ID
func NewArena(actions []*entities.Action) Arena {
	arena := make(Arena, len(actions))
	for _, act := range actions {
		if act == nil || act.ID == "" {
			continue
		}
		arena[act.ID] = act
	}
	return arena
}

// Next returns the first referenced action present in the arena
func (a Arena) Next(act *entities.Action) (*entities.Action, bool) {
	for _, id := range act.NextActionIDs {
		if next, ok := a[id]; ok {
			return next, true
		}
	}
	return nil, false
}

// ExpanderConfig holds the dependencies for an Expander
type ExpanderConfig struct {
	Resolver  *Resolver
	MaxLength int
}

// Validate ensures all required dependencies are provided
func (c *ExpanderConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Resolver == nil {
		return errors.InvalidArgument("resolver is required")
	}
	return nil
}

// Expander walks trigger links
type Expander struct {
	resolver  *Resolver
	maxLength int
}

// NewExpander creates an expander. A non-positive MaxLength falls back to the
// rules default.
func NewExpander(cfg *ExpanderConfig) (*Expander, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	maxLength := cfg.MaxLength
	if maxLength < 1 {
		maxLength = rules.DefaultMaxChainLength
	}

	return &Expander{
		resolver:  cfg.Resolver,
		maxLength: maxLength,
	}, nil
}

// Expand starts at rootID and follows TRIGGER_ACTION links through the arena,
// measuring each action against the same source and target. An action already
// in the chain ends it instead of repeating.
func (e *Expander) Expand(rootID string, arena Arena, source, target Entity) (*Chain, error) {
	current, ok := arena[rootID]
	if !ok {
		return nil, errors.NotFoundf("action %s not found", rootID)
	}

	chain := &Chain{}
	visited := make(map[string]struct{}, len(arena))
	state := NodeStateRoot

	for {
		difficulty, err := e.resolver.Difficulty(current, source, target)
		if err != nil {
			return nil, err
		}

		chain.Nodes = append(chain.Nodes, ChainNode{
			Position:   len(chain.Nodes),
			ActionID:   current.ID,
			ActionName: current.Name,
			State:      state,
			Difficulty: difficulty,
			Band:       e.resolver.Band(difficulty),
		})
		visited[current.ID] = struct{}{}

		if current.EffectType != entities.EffectTypeTriggerAction {
			chain.Termination = TerminationTerminalEffect
			return chain, nil
		}
		if len(current.NextActionIDs) == 0 {
			chain.Termination = TerminationNoNextAction
			return chain, nil
		}
		if len(chain.Nodes) >= e.maxLength {
			chain.Termination = TerminationMaxLength
			return chain, nil
		}

		next, found := arena.Next(current)
		if !found {
			chain.Termination = TerminationMissingAction
			return chain, nil
		}
		if _, seen := visited[next.ID]; seen {
			chain.Termination = TerminationCycleDetected
			return chain, nil
		}

		current = next
		state = NodeStateLinked
	}
}
