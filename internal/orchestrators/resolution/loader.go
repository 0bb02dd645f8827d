package resolution

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/phnks/webfg-app-sub004/internal/engine"
	"github.com/phnks/webfg-app-sub004/internal/entities"
	"github.com/phnks/webfg-app-sub004/internal/errors"
	"github.com/phnks/webfg-app-sub004/internal/repositories/records"
)

// maxArenaSize caps how many actions one test may load
const maxArenaSize = 1024

// inOrder lays found records out in the order of ids, dropping IDs with no
// record and repeated IDs
func inOrder[T any](ids []string, found []*T, idOf func(*T) string) []*T {
	byID := make(map[string]*T, len(found))
	for _, rec := range found {
		if rec == nil {
			continue
		}
		byID[idOf(rec)] = rec
	}

	out := make([]*T, 0, len(found))
	used := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := used[id]; dup {
			continue
		}
		rec, ok := byID[id]
		if !ok {
			continue
		}
		used[id] = struct{}{}
		out = append(out, rec)
	}
	return out
}

func itemID(i *entities.Item) string           { return i.ID }
func conditionID(c *entities.Condition) string { return c.ID }

// loadLoadout fetches a character with its carried items and active conditions
func (o *orchestrator) loadLoadout(ctx context.Context, characterID string) (*engine.Loadout, error) {
	charOut, err := o.repo.GetCharacter(ctx, records.GetCharacterInput{ID: characterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", characterID)
	}
	char := charOut.Character

	var (
		items      []*entities.Item
		conditions []*entities.Condition
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ids := char.CarriedItemIDs()
		out, err := o.repo.BatchGetItems(gctx, records.BatchGetItemsInput{IDs: ids})
		if err != nil {
			return errors.Wrapf(err, "failed to get items for character %s", characterID)
		}
		items = inOrder(ids, out.Items, itemID)
		o.logDropped(gctx, "item", characterID, len(ids), len(items))
		return nil
	})
	g.Go(func() error {
		ids := char.ActiveConditionIDs
		out, err := o.repo.BatchGetConditions(gctx, records.BatchGetConditionsInput{IDs: ids})
		if err != nil {
			return errors.Wrapf(err, "failed to get conditions for character %s", characterID)
		}
		conditions = inOrder(ids, out.Conditions, conditionID)
		o.logDropped(gctx, "condition", characterID, len(ids), len(conditions))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &engine.Loadout{
		Character:  char,
		Items:      items,
		Conditions: conditions,
	}, nil
}

func (o *orchestrator) logDropped(ctx context.Context, kind, characterID string, requested, found int) {
	if requested == found {
		return
	}
	slog.DebugContext(ctx, "Dropped missing records",
		"kind", kind,
		"character_id", characterID,
		"requested", requested,
		"found", found)
}

// loadObject fetches a single item used as an action target
func (o *orchestrator) loadObject(ctx context.Context, objectID string) (*entities.Item, error) {
	out, err := o.repo.BatchGetItems(ctx, records.BatchGetItemsInput{IDs: []string{objectID}})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get object %s", objectID)
	}
	for _, item := range out.Items {
		if item != nil && item.ID == objectID {
			return item, nil
		}
	}
	return nil, errors.NotFoundf("object %s not found", objectID).WithMeta("object_id", objectID)
}

// loadArena fetches every action reachable through trigger links from root,
// one batch per level. Missing actions are left out for the chain to report.
func (o *orchestrator) loadArena(ctx context.Context, root *entities.Action) ([]*entities.Action, error) {
	seen := map[string]struct{}{root.ID: {}}
	var arena []*entities.Action

	frontier := pendingLinks(root, seen)
	for len(frontier) > 0 && len(arena) < maxArenaSize {
		out, err := o.repo.BatchGetActions(ctx, records.BatchGetActionsInput{IDs: frontier})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get linked actions of %s", root.ID)
		}

		var next []string
		for _, act := range out.Actions {
			if act == nil {
				continue
			}
			arena = append(arena, act)
			next = append(next, pendingLinks(act, seen)...)
		}
		frontier = next
	}

	return arena, nil
}

// pendingLinks returns the unseen next-action IDs of a trigger action and
// marks them seen
func pendingLinks(act *entities.Action, seen map[string]struct{}) []string {
	if act.EffectType != entities.EffectTypeTriggerAction {
		return nil
	}

	var ids []string
	for _, id := range act.NextActionIDs {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
