// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package block_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashforge/dnd5e-engine/block"
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/refs"
	"github.com/ashforge/dnd5e-engine/value"
)

func newShield(sourceEntityID string) *block.Item {
	return &block.Item{
		ID:         "shield-1",
		Name:       "Shield",
		ValidSlots: []refs.EquipmentSlot{refs.OffHand},
		ACBonus:    value.NewModifiableValue("shield_ac", sourceEntityID, true),
	}
}

func newGreatsword(sourceEntityID string) *block.Item {
	return &block.Item{
		ID:          "greatsword-1",
		Name:        "Greatsword",
		ValidSlots:  []refs.EquipmentSlot{refs.MainHand},
		TwoHanded:   true,
		DamageBonus: value.NewModifiableValue("greatsword_damage", sourceEntityID, true),
	}
}

func TestEquipmentEquipRejectsWrongSlot(t *testing.T) {
	e := block.NewEquipment("entity-1")
	shield := newShield("entity-1")
	err := e.Equip(refs.MainHand, shield, false, block.Context{})
	require.Error(t, err)
}

func TestEquipmentEquipRejectsOccupiedSlotWithoutReplace(t *testing.T) {
	e := block.NewEquipment("entity-1")
	shield := newShield("entity-1")
	require.NoError(t, e.Equip(refs.OffHand, shield, false, block.Context{}))
	err := e.Equip(refs.OffHand, newShield("entity-1"), false, block.Context{})
	require.Error(t, err)
}

func TestEquipmentTwoHandedVacatesOffHand(t *testing.T) {
	e := block.NewEquipment("entity-1")
	shield := newShield("entity-1")
	require.NoError(t, e.Equip(refs.OffHand, shield, false, block.Context{}))

	sword := newGreatsword("entity-1")
	require.NoError(t, e.Equip(refs.MainHand, sword, false, block.Context{}))

	require.Nil(t, e.Get(refs.OffHand))
}

func TestEquipmentOffHandRejectedWhileTwoHandedEquipped(t *testing.T) {
	e := block.NewEquipment("entity-1")
	require.NoError(t, e.Equip(refs.MainHand, newGreatsword("entity-1"), false, block.Context{}))
	err := e.Equip(refs.OffHand, newShield("entity-1"), false, block.Context{})
	require.Error(t, err)
}

func TestEquipmentUnequipEmptySlotFails(t *testing.T) {
	e := block.NewEquipment("entity-1")
	_, err := e.Unequip(refs.Head)
	require.Error(t, err)
}

func TestEquipmentUnequipReturnsItem(t *testing.T) {
	e := block.NewEquipment("entity-1")
	shield := newShield("entity-1")
	require.NoError(t, e.Equip(refs.OffHand, shield, false, block.Context{}))
	got, err := e.Unequip(refs.OffHand)
	require.NoError(t, err)
	require.Equal(t, shield, got)
}

func TestArmorClassIncludesEquippedBonusAndReversesOnUnequip(t *testing.T) {
	e := block.NewEquipment("entity-1")
	base, err := e.ArmorClass.Score(block.Context{})
	require.NoError(t, err)
	require.Equal(t, block.UnarmoredArmorClass, base)

	shield := newShield("entity-1")
	require.NoError(t, shield.ACBonus.SelfStatic.AddValueModifier(
		modifier.NewNumerical("shield_bonus", "entity-1", "entity-1", 2)))

	require.NoError(t, e.Equip(refs.OffHand, shield, false, block.Context{}))
	withShield, err := e.ArmorClass.Score(block.Context{})
	require.NoError(t, err)
	require.Equal(t, block.UnarmoredArmorClass+2, withShield)

	_, err = e.Unequip(refs.OffHand)
	require.NoError(t, err)
	after, err := e.ArmorClass.Score(block.Context{})
	require.NoError(t, err)
	require.Equal(t, base, after)
}
