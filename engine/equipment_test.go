// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashforge/dnd5e-engine/block"
	"github.com/ashforge/dnd5e-engine/dice"
	"github.com/ashforge/dnd5e-engine/engine"
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/refs"
	"github.com/ashforge/dnd5e-engine/value"
)

func newShield(entityID string) *block.Item {
	item := &block.Item{ID: "shield", Name: "Shield", ValidSlots: []refs.EquipmentSlot{refs.OffHand}}
	item.ACBonus = value.NewModifiableValue("shield_ac", entityID, false)
	m := modifier.NewNumerical("shield_bonus", entityID, entityID, 2)
	_ = item.ACBonus.SelfStatic.AddValueModifier(m)
	return item
}

func TestEquipRaisesArmorClass(t *testing.T) {
	e := newCombatant(t, "defender")
	r := engine.NewResolver(dice.NewMockRoller(10))

	before, err := r.GetEntity(string(e.ID), nil)
	require.NoError(t, err)

	after, err := r.Equip(string(e.ID), refs.OffHand, newShield(string(e.ID)), false, nil)
	require.NoError(t, err)
	require.Equal(t, before.ArmorClass+2, after.ArmorClass)
}

func TestUnequipRemovesTheItemsBonus(t *testing.T) {
	e := newCombatant(t, "defender")
	r := engine.NewResolver(dice.NewMockRoller(10))

	_, err := r.Equip(string(e.ID), refs.OffHand, newShield(string(e.ID)), false, nil)
	require.NoError(t, err)

	item, after, err := r.Unequip(string(e.ID), refs.OffHand, nil)
	require.NoError(t, err)
	require.Equal(t, "shield", item.ID)

	before, err := r.GetEntity(string(e.ID), nil)
	require.NoError(t, err)
	require.Equal(t, before.ArmorClass, after.ArmorClass)
}
