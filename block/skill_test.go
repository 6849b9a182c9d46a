// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package block_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashforge/dnd5e-engine/block"
	"github.com/ashforge/dnd5e-engine/refs"
)

func TestSkillSetGovernedByCorrectAbility(t *testing.T) {
	ss := block.NewSkillSet("entity-1")
	require.Equal(t, refs.Strength, ss.Get(refs.Athletics).Ability)
	require.Equal(t, refs.Dexterity, ss.Get(refs.Stealth).Ability)
}

func TestSkillBonusAccumulates(t *testing.T) {
	ss := block.NewSkillSet("entity-1")
	athletics := ss.Get(refs.Athletics)
	require.NoError(t, athletics.Bonus.SelfStatic.AddValueModifier(newNumerical("expertise_die", "entity-1", 3)))
	score, err := athletics.Bonus.Score(nil)
	require.NoError(t, err)
	require.Equal(t, 3, score)
}

func TestSavingThrowSetCoversAllAbilities(t *testing.T) {
	sts := block.NewSavingThrowSet("entity-1")
	for _, a := range refs.Abilities {
		require.NotNil(t, sts.Get(a))
		require.Equal(t, a, sts.Get(a).Ability)
	}
}
