// Package entities provides the record types the engine reads from the record store.
package entities

// CharacterAttribute is a character's own value for one attribute
type CharacterAttribute struct {
	BaseValue float64 `json:"baseValue" yaml:"baseValue"`
	IsGrouped bool    `json:"isGrouped" yaml:"isGrouped"`
}

// Character is a player or non-player character record
type Character struct {
	ID                 string                        `json:"id" yaml:"id"`
	Name               string                        `json:"name" yaml:"name"`
	Attributes         map[string]CharacterAttribute `json:"attributes" yaml:"attributes"`
	EquippedItemIDs    []string                      `json:"equippedItemIds" yaml:"equippedItemIds"`
	ReadyItemIDs       []string                      `json:"readyItemIds" yaml:"readyItemIds"`
	ActiveConditionIDs []string                      `json:"activeConditionIds" yaml:"activeConditionIds"`
	// Fatigue only matters under the legacy fatigue rule
	Fatigue float64 `json:"fatigue" yaml:"fatigue"`
}

// Attribute looks up an attribute case-insensitively
func (c *Character) Attribute(name string) (CharacterAttribute, bool) {
	if c == nil {
		return CharacterAttribute{}, false
	}
	return lookupAttribute(c.Attributes, name)
}

// CarriedItemIDs returns equipped then readied item IDs without repeats
func (c *Character) CarriedItemIDs() []string {
	seen := make(map[string]struct{}, len(c.EquippedItemIDs)+len(c.ReadyItemIDs))
	ids := make([]string, 0, len(c.EquippedItemIDs)+len(c.ReadyItemIDs))
	for _, list := range [][]string{c.EquippedItemIDs, c.ReadyItemIDs} {
		for _, id := range list {
			if _, ok := seen[id]; ok || id == "" {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

func lookupAttribute[V any](attrs map[string]V, name string) (V, bool) {
	if v, ok := attrs[name]; ok {
		return v, true
	}
	// Keys differing only in case resolve to the lexically smallest
	want := CanonicalAttribute(name)
	var (
		found V
		match string
		ok    bool
	)
	for k, v := range attrs {
		if CanonicalAttribute(k) != want {
			continue
		}
		if !ok || k < match {
			found, match, ok = v, k, true
		}
	}
	return found, ok
}
