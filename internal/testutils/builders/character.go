// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/phnks/webfg-app-sub004/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder creates a new builder with minimal defaults
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: &entities.Character{
			ID:         "char-test-123",
			Name:       "Test Character",
			Attributes: map[string]entities.CharacterAttribute{},
		},
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithAttribute sets an attribute that does not take part in grouping
func (b *CharacterBuilder) WithAttribute(name string, base float64) *CharacterBuilder {
	b.character.Attributes[name] = entities.CharacterAttribute{BaseValue: base}
	return b
}

// WithGroupedAttribute sets an attribute that groups with carried items
func (b *CharacterBuilder) WithGroupedAttribute(name string, base float64) *CharacterBuilder {
	b.character.Attributes[name] = entities.CharacterAttribute{BaseValue: base, IsGrouped: true}
	return b
}

// WithEquipped appends equipped item IDs
func (b *CharacterBuilder) WithEquipped(itemIDs ...string) *CharacterBuilder {
	b.character.EquippedItemIDs = append(b.character.EquippedItemIDs, itemIDs...)
	return b
}

// WithReady appends readied item IDs
func (b *CharacterBuilder) WithReady(itemIDs ...string) *CharacterBuilder {
	b.character.ReadyItemIDs = append(b.character.ReadyItemIDs, itemIDs...)
	return b
}

// WithConditions appends active condition IDs
func (b *CharacterBuilder) WithConditions(conditionIDs ...string) *CharacterBuilder {
	b.character.ActiveConditionIDs = append(b.character.ActiveConditionIDs, conditionIDs...)
	return b
}

// WithFatigue sets the legacy fatigue penalty
func (b *CharacterBuilder) WithFatigue(fatigue float64) *CharacterBuilder {
	b.character.Fatigue = fatigue
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character
}
