package testutils

import (
	"github.com/phnks/webfg-app-sub004/internal/entities"
	"github.com/phnks/webfg-app-sub004/internal/repositories/records"
	"github.com/phnks/webfg-app-sub004/internal/testutils/builders"
)

// Fixture record IDs
const (
	CharacterBrakkaID = "char-brakka"
	CharacterGoblinID = "char-goblin"
	ItemPlateID       = "item-plate"
	ItemShieldID      = "item-shield"
	ItemCloakID       = "item-cloak"
	ItemDoorID        = "item-door"
	ConditionBlessID  = "cond-blessed"
	ConditionWindedID = "cond-winded"
	ActionHitID       = "act-hit"
	ActionBreakID     = "act-break"
	ActionKillID      = "act-kill"
)

// CreateTestBrakka is a fighter with plate equipped and a shield readied.
// Armour groups to 14 in equipment mode and 10 in ready mode.
func CreateTestBrakka() *entities.Character {
	return builders.NewCharacterBuilder().
		WithID(CharacterBrakkaID).
		WithName("Brakka").
		WithGroupedAttribute("ARMOUR", 10).
		WithGroupedAttribute("STRENGTH", 10).
		WithGroupedAttribute("DEXTERITY", 10).
		WithAttribute("AGILITY", 5).
		WithAttribute("SPEED", 6).
		WithEquipped(ItemPlateID, ItemCloakID).
		WithReady(ItemShieldID).
		WithConditions(ConditionBlessID, ConditionWindedID).
		Build()
}

// CreateTestGoblin is an unarmoured target with agility 1
func CreateTestGoblin() *entities.Character {
	return builders.NewCharacterBuilder().
		WithID(CharacterGoblinID).
		WithName("Goblin").
		WithGroupedAttribute("AGILITY", 1).
		WithAttribute("DURABILITY", 12).
		WithAttribute("ENDURANCE", 8).
		WithAttribute("SPEED", 4).
		Build()
}

// CreateTestItems returns plate, shield, cloak and a door
func CreateTestItems() []*entities.Item {
	return []*entities.Item{
		{
			ID:   ItemPlateID,
			Name: "Plate Armour",
			Attributes: map[string]entities.ItemAttribute{
				"ARMOUR": {Value: 20, IsGrouped: true},
				"WEIGHT": {Value: 30},
			},
		},
		{
			ID:   ItemShieldID,
			Name: "Kite Shield",
			Attributes: map[string]entities.ItemAttribute{
				"ARMOUR": {Value: 8, IsGrouped: true},
			},
		},
		{
			ID:   ItemCloakID,
			Name: "Cloak",
			Attributes: map[string]entities.ItemAttribute{
				"AGILITY": {Value: 7},
			},
		},
		{
			ID:   ItemDoorID,
			Name: "Oak Door",
			Attributes: map[string]entities.ItemAttribute{
				"DURABILITY": {Value: 14},
			},
		},
	}
}

// CreateTestConditions returns a +3 and a -1 strength condition
func CreateTestConditions() []*entities.Condition {
	return []*entities.Condition{
		{
			ID:              ConditionBlessID,
			Name:            "Blessed",
			TargetAttribute: "STRENGTH",
			Polarity:        entities.PolarityHelp,
			Amount:          3,
		},
		{
			ID:              ConditionWindedID,
			Name:            "Winded",
			TargetAttribute: "STRENGTH",
			Polarity:        entities.PolarityHinder,
			Amount:          1,
		},
	}
}

// CreateTestActions returns the Hit → Break → Kill chain
func CreateTestActions() []*entities.Action {
	return []*entities.Action{
		{
			ID:              ActionHitID,
			Name:            "Hit",
			Category:        "Attack",
			SourceAttribute: "DEXTERITY",
			TargetAttribute: "AGILITY",
			TargetType:      entities.TargetTypeCharacter,
			EffectType:      entities.EffectTypeTriggerAction,
			NextActionIDs:   []string{ActionBreakID},
		},
		{
			ID:              ActionBreakID,
			Name:            "Break",
			Category:        "Attack",
			SourceAttribute: "STRENGTH",
			TargetAttribute: "DURABILITY",
			TargetType:      entities.TargetTypeCharacter,
			EffectType:      entities.EffectTypeTriggerAction,
			NextActionIDs:   []string{ActionKillID},
		},
		{
			ID:              ActionKillID,
			Name:            "Kill",
			Category:        "Attack",
			SourceAttribute: "STRENGTH",
			TargetAttribute: "ENDURANCE",
			TargetType:      entities.TargetTypeCharacter,
			EffectType:      entities.EffectTypeDestroy,
		},
	}
}

// CreateTestBundle gathers every fixture record
func CreateTestBundle() *records.Bundle {
	return &records.Bundle{
		Characters: []*entities.Character{CreateTestBrakka(), CreateTestGoblin()},
		Items:      CreateTestItems(),
		Conditions: CreateTestConditions(),
		Actions:    CreateTestActions(),
	}
}
