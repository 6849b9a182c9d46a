// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package refs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashforge/dnd5e-engine/refs"
)

func TestGoverningAbilityCoversEverySkill(t *testing.T) {
	for _, s := range refs.Skills {
		_, ok := refs.GoverningAbility[s]
		require.True(t, ok, "skill %s has no governing ability", s)
	}
}

func TestAthleticsGovernedByStrength(t *testing.T) {
	require.Equal(t, refs.Strength, refs.GoverningAbility[refs.Athletics])
}

func TestEquipmentSlotCount(t *testing.T) {
	require.Len(t, refs.EquipmentSlots, 11)
}
