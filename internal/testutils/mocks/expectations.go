// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"slices"

	"go.uber.org/mock/gomock"

	"github.com/phnks/webfg-app-sub004/internal/entities"
	"github.com/phnks/webfg-app-sub004/internal/repositories/records"
	recordsmock "github.com/phnks/webfg-app-sub004/internal/repositories/records/mock"
)

// ExpectLoadout sets up the reads that load one character with its carried
// items and active conditions. Only records the character references are
// returned, in reverse order, the way an unordered store would.
func ExpectLoadout(
	repo *recordsmock.MockRepository,
	char *entities.Character,
	items []*entities.Item,
	conditions []*entities.Condition,
) {
	repo.EXPECT().
		GetCharacter(gomock.Any(), records.GetCharacterInput{ID: char.ID}).
		Return(&records.GetCharacterOutput{Character: char}, nil)

	itemIDs := char.CarriedItemIDs()
	repo.EXPECT().
		BatchGetItems(gomock.Any(), records.BatchGetItemsInput{IDs: itemIDs}).
		Return(&records.BatchGetItemsOutput{
			Items: reversed(referenced(items, itemIDs, func(i *entities.Item) string { return i.ID })),
		}, nil)

	repo.EXPECT().
		BatchGetConditions(gomock.Any(), records.BatchGetConditionsInput{IDs: char.ActiveConditionIDs}).
		Return(&records.BatchGetConditionsOutput{
			Conditions: reversed(referenced(conditions, char.ActiveConditionIDs,
				func(c *entities.Condition) string { return c.ID })),
		}, nil)
}

// ExpectActions sets up a single batch read of linked actions
func ExpectActions(repo *recordsmock.MockRepository, ids []string, found ...*entities.Action) {
	repo.EXPECT().
		BatchGetActions(gomock.Any(), records.BatchGetActionsInput{IDs: ids}).
		Return(&records.BatchGetActionsOutput{Actions: found}, nil)
}

func referenced[T any](all []*T, ids []string, idOf func(*T) string) []*T {
	var out []*T
	for _, rec := range all {
		if slices.Contains(ids, idOf(rec)) {
			out = append(out, rec)
		}
	}
	return out
}

func reversed[T any](in []*T) []*T {
	out := slices.Clone(in)
	slices.Reverse(out)
	return out
}
