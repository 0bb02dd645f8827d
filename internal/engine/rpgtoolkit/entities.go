package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/phnks/webfg-app-sub004/internal/engine/modifier"
	"github.com/phnks/webfg-app-sub004/internal/entities"
)

// Entity types reported through core.Entity
const (
	EntityTypeCharacter = "character"
	EntityTypeObject    = "object"
)

var (
	_ core.Entity = (*CharacterEntity)(nil)
	_ core.Entity = (*ObjectEntity)(nil)
)

// CharacterEntity exposes a character's effective values to rpg-toolkit style
// consumers. Values are computed on first request and remembered.
type CharacterEntity struct {
	id      string
	resolve func(attribute string) int
	values  map[string]int
}

// NewCharacterEntity wraps a resolver for one character
func NewCharacterEntity(id string, resolve func(attribute string) int) *CharacterEntity {
	return &CharacterEntity{
		id:      id,
		resolve: resolve,
		values:  make(map[string]int),
	}
}

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.id
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return EntityTypeCharacter
}

// EffectiveValue returns the character's resolved value for attribute
func (c *CharacterEntity) EffectiveValue(attribute string) int {
	key := entities.CanonicalAttribute(attribute)
	if v, ok := c.values[key]; ok {
		return v
	}
	v := c.resolve(key)
	c.values[key] = v
	return v
}

// ObjectEntity wraps an item targeted directly by an action
type ObjectEntity struct {
	*entities.Item
}

// NewObjectEntity wraps an item
func NewObjectEntity(item *entities.Item) *ObjectEntity {
	return &ObjectEntity{Item: item}
}

// GetID returns the item's ID
func (o *ObjectEntity) GetID() string {
	return o.ID
}

// GetType returns the entity type for rpg-toolkit
func (o *ObjectEntity) GetType() string {
	return EntityTypeObject
}

// EffectiveValue is the item's own rounded value. Items carry no conditions.
func (o *ObjectEntity) EffectiveValue(attribute string) int {
	attr, _ := o.Attribute(attribute)
	return modifier.Round(attr.Value)
}
