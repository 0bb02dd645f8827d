// Package records provides the interface for character, item, condition and
// action persistence
package records

//go:generate mockgen -destination=mock/mock_repository.go -package=recordsmock github.com/phnks/webfg-app-sub004/internal/repositories/records Repository

import (
	"context"

	"github.com/phnks/webfg-app-sub004/internal/entities"
)

// Repository defines the interface for record persistence.
// Batch gets may return records in any order and silently omit IDs that do
// not exist; callers restore order themselves.
type Repository interface {
	// GetCharacter retrieves a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	GetCharacter(ctx context.Context, input GetCharacterInput) (*GetCharacterOutput, error)

	// PutCharacter creates or replaces a character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	PutCharacter(ctx context.Context, input PutCharacterInput) (*PutCharacterOutput, error)

	// BatchGetItems retrieves the items that exist among the IDs
	// Returns errors.Internal for storage failures
	BatchGetItems(ctx context.Context, input BatchGetItemsInput) (*BatchGetItemsOutput, error)

	// PutItem creates or replaces an item
	PutItem(ctx context.Context, input PutItemInput) (*PutItemOutput, error)

	// BatchGetConditions retrieves the conditions that exist among the IDs
	// Returns errors.Internal for storage failures
	BatchGetConditions(ctx context.Context, input BatchGetConditionsInput) (*BatchGetConditionsOutput, error)

	// PutCondition creates or replaces a condition
	PutCondition(ctx context.Context, input PutConditionInput) (*PutConditionOutput, error)

	// GetAction retrieves an action by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the action doesn't exist
	// Returns errors.Internal for storage failures
	GetAction(ctx context.Context, input GetActionInput) (*GetActionOutput, error)

	// BatchGetActions retrieves the actions that exist among the IDs
	// Returns errors.Internal for storage failures
	BatchGetActions(ctx context.Context, input BatchGetActionsInput) (*BatchGetActionsOutput, error)

	// PutAction creates or replaces an action
	PutAction(ctx context.Context, input PutActionInput) (*PutActionOutput, error)
}

// GetCharacterInput defines the input for getting a character
type GetCharacterInput struct {
	ID string
}

// GetCharacterOutput defines the output for getting a character
type GetCharacterOutput struct {
	Character *entities.Character
}

// PutCharacterInput defines the input for storing a character
type PutCharacterInput struct {
	Character *entities.Character
}

// PutCharacterOutput defines the output for storing a character
type PutCharacterOutput struct {
	Character *entities.Character
}

// BatchGetItemsInput defines the input for getting items
type BatchGetItemsInput struct {
	IDs []string
}

// BatchGetItemsOutput defines the output for getting items
type BatchGetItemsOutput struct {
	Items []*entities.Item
}

// PutItemInput defines the input for storing an item
type PutItemInput struct {
	Item *entities.Item
}

// PutItemOutput defines the output for storing an item
type PutItemOutput struct {
	Item *entities.Item
}

// BatchGetConditionsInput defines the input for getting conditions
type BatchGetConditionsInput struct {
	IDs []string
}

// BatchGetConditionsOutput defines the output for getting conditions
type BatchGetConditionsOutput struct {
	Conditions []*entities.Condition
}

// PutConditionInput defines the input for storing a condition
type PutConditionInput struct {
	Condition *entities.Condition
}

// PutConditionOutput defines the output for storing a condition
type PutConditionOutput struct {
	Condition *entities.Condition
}

// GetActionInput defines the input for getting an action
type GetActionInput struct {
	ID string
}

// GetActionOutput defines the output for getting an action
type GetActionOutput struct {
	Action *entities.Action
}

// BatchGetActionsInput defines the input for getting actions
type BatchGetActionsInput struct {
	IDs []string
}

// BatchGetActionsOutput defines the output for getting actions
type BatchGetActionsOutput struct {
	Actions []*entities.Action
}

// PutActionInput defines the input for storing an action
type PutActionInput struct {
	Action *entities.Action
}

// PutActionOutput defines the output for storing an action
type PutActionOutput struct {
	Action *entities.Action
}

// Record kinds, used in keys and error messages
const (
	kindCharacter = "character"
	kindItem      = "item"
	kindCondition = "condition"
	kindAction    = "action"
)

// uniqueIDs drops empty and repeated IDs, keeping first occurrence order
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
