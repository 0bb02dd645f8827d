package rpgtoolkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phnks/webfg-app-sub004/internal/engine/rpgtoolkit"
	"github.com/phnks/webfg-app-sub004/internal/entities"
)

func TestCharacterEntity(t *testing.T) {
	calls := 0
	entity := rpgtoolkit.NewCharacterEntity("char-1", func(attribute string) int {
		calls++
		if attribute == "STRENGTH" {
			return 12
		}
		return 0
	})

	assert.Equal(t, "char-1", entity.GetID())
	assert.Equal(t, rpgtoolkit.EntityTypeCharacter, entity.GetType())
	assert.Equal(t, 12, entity.EffectiveValue("strength"))
	assert.Equal(t, 12, entity.EffectiveValue("STRENGTH"))
	assert.Equal(t, 0, entity.EffectiveValue("SPEED"))
	assert.Equal(t, 2, calls)
}

func TestObjectEntity(t *testing.T) {
	door := rpgtoolkit.NewObjectEntity(&entities.Item{
		ID:   "item-door",
		Name: "Oak Door",
		Attributes: map[string]entities.ItemAttribute{
			"DURABILITY": {Value: 14.5},
			"weight":     {Value: -2.5},
		},
	})

	assert.Equal(t, "item-door", door.GetID())
	assert.Equal(t, rpgtoolkit.EntityTypeObject, door.GetType())
	assert.Equal(t, 15, door.EffectiveValue("durability"))
	assert.Equal(t, -2, door.EffectiveValue("WEIGHT"))
	assert.Equal(t, 0, door.EffectiveValue("SPEED"))
}
