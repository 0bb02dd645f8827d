package records

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/phnks/webfg-app-sub004/internal/entities"
	"github.com/phnks/webfg-app-sub004/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage. Records are
// kept as JSON so callers never share memory with the store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]map[string][]byte
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: map[string]map[string][]byte{
			kindCharacter: {},
			kindItem:      {},
			kindCondition: {},
			kindAction:    {},
		},
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// GetCharacter retrieves a character by ID
func (r *InMemoryRepository) GetCharacter(_ context.Context, input GetCharacterInput) (*GetCharacterOutput, error) {
	char, err := memGet[entities.Character](r, kindCharacter, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetCharacterOutput{Character: char}, nil
}

// PutCharacter stores a character
func (r *InMemoryRepository) PutCharacter(_ context.Context, input PutCharacterInput) (*PutCharacterOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if err := r.put(kindCharacter, input.Character.ID, input.Character); err != nil {
		return nil, err
	}
	return &PutCharacterOutput{Character: input.Character}, nil
}

// BatchGetItems retrieves the items that exist among the IDs
func (r *InMemoryRepository) BatchGetItems(_ context.Context, input BatchGetItemsInput) (*BatchGetItemsOutput, error) {
	items, err := memBatchGet[entities.Item](r, kindItem, input.IDs)
	if err != nil {
		return nil, err
	}
	return &BatchGetItemsOutput{Items: items}, nil
}

// PutItem stores an item
func (r *InMemoryRepository) PutItem(_ context.Context, input PutItemInput) (*PutItemOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument("item is required")
	}
	if err := r.put(kindItem, input.Item.ID, input.Item); err != nil {
		return nil, err
	}
	return &PutItemOutput{Item: input.Item}, nil
}

// BatchGetConditions retrieves the conditions that exist among the IDs
func (r *InMemoryRepository) BatchGetConditions(
	_ context.Context,
	input BatchGetConditionsInput,
) (*BatchGetConditionsOutput, error) {
	conditions, err := memBatchGet[entities.Condition](r, kindCondition, input.IDs)
	if err != nil {
		return nil, err
	}
	return &BatchGetConditionsOutput{Conditions: conditions}, nil
}

// PutCondition stores a condition
func (r *InMemoryRepository) PutCondition(_ context.Context, input PutConditionInput) (*PutConditionOutput, error) {
	if input.Condition == nil {
		return nil, errors.InvalidArgument("condition is required")
	}
	if err := r.put(kindCondition, input.Condition.ID, input.Condition); err != nil {
		return nil, err
	}
	return &PutConditionOutput{Condition: input.Condition}, nil
}

// GetAction retrieves an action by ID
func (r *InMemoryRepository) GetAction(_ context.Context, input GetActionInput) (*GetActionOutput, error) {
	act, err := memGet[entities.Action](r, kindAction, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetActionOutput{Action: act}, nil
}

// BatchGetActions retrieves the actions that exist among the IDs
func (r *InMemoryRepository) BatchGetActions(
	_ context.Context,
	input BatchGetActionsInput,
) (*BatchGetActionsOutput, error) {
	actions, err := memBatchGet[entities.Action](r, kindAction, input.IDs)
	if err != nil {
		return nil, err
	}
	return &BatchGetActionsOutput{Actions: actions}, nil
}

// PutAction stores an action
func (r *InMemoryRepository) PutAction(_ context.Context, input PutActionInput) (*PutActionOutput, error) {
	if input.Action == nil {
		return nil, errors.InvalidArgument("action is required")
	}
	if err := r.put(kindAction, input.Action.ID, input.Action); err != nil {
		return nil, err
	}
	return &PutActionOutput{Action: input.Action}, nil
}

func (r *InMemoryRepository) put(kind, id string, record any) error {
	if id == "" {
		return errors.InvalidArgumentf("%s ID cannot be empty", kind)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s %s", kind, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[kind][id] = data
	return nil
}

func memGet[T any](r *InMemoryRepository, kind, id string) (*T, error) {
	if id == "" {
		return nil, errors.InvalidArgumentf("%s ID cannot be empty", kind)
	}

	r.mu.RLock()
	data, ok := r.store[kind][id]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("%s %s not found", kind, id).WithMeta(kind+"_id", id)
	}

	var record T
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal %s %s", kind, id)
	}
	return &record, nil
}

// memBatchGet walks a set built from the IDs, so results come back in map order
func memBatchGet[T any](r *InMemoryRepository, kind string, ids []string) ([]*T, error) {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range uniqueIDs(ids) {
		wanted[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*T, 0, len(wanted))
	for id := range wanted {
		data, ok := r.store[kind][id]
		if !ok {
			continue
		}

		var record T
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal %s %s", kind, id)
		}
		out = append(out, &record)
	}
	return out, nil
}
