// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashforge/dnd5e-engine/block"
	"github.com/ashforge/dnd5e-engine/entity"
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/refs"
)

func newFighter(t *testing.T) *entity.Entity {
	t.Helper()
	return entity.New(entity.Config{
		Name:             "fighter",
		AbilityScores:    map[refs.Ability]int{refs.Strength: 16, refs.Constitution: 14},
		HitDice:          []block.HitDice{{Face: 10, Count: 3, Mode: block.Average}},
		SpeedFeet:        30,
		ProficiencyBonus: 2,
	})
}

func TestNewEntityWiresEveryBlockUnderOneSource(t *testing.T) {
	e := newFighter(t)
	require.Equal(t, string(e.ID), e.AbilityScores.SourceEntityID)
	require.Equal(t, string(e.ID), e.Health.SourceEntityID)
	require.Equal(t, string(e.ID), e.Equipment.SourceEntityID)
	require.Equal(t, string(e.ID), e.ActionEconomy.SourceEntityID)
}

func TestSetTargetPropagatesToEveryBlock(t *testing.T) {
	attacker := newFighter(t)
	defender := newFighter(t)

	attacker.SetTarget(string(defender.ID))
	require.Equal(t, string(defender.ID), attacker.TargetEntityID)
	require.Equal(t, string(defender.ID), attacker.AbilityScores.TargetEntityID)
	require.Equal(t, string(defender.ID), attacker.Health.TargetEntityID)

	attacker.ClearTarget()
	require.Empty(t, attacker.TargetEntityID)
	require.Empty(t, attacker.AbilityScores.TargetEntityID)
}

func TestEntitySatisfiesImmunityChecker(t *testing.T) {
	e := newFighter(t)
	e.Conditions.SetImmune(refs.Poisoned, true)
	require.True(t, e.IsImmuneTo(refs.Poisoned))
	require.False(t, e.IsImmuneTo(refs.Restrained))
}

func TestAbilityModifierReflectsScoreAndRegistry(t *testing.T) {
	e := newFighter(t)
	mod, err := e.AbilityScores.Get(refs.Strength).Modifier(modifier.Context{})
	require.NoError(t, err)
	require.Equal(t, 3, mod)
}

func TestHasSense(t *testing.T) {
	e := newFighter(t)
	e.Senses = []entity.Sense{{Type: refs.Darkvision, RangeFeet: 60}}
	rangeFeet, ok := entity.HasSense(e.Senses, refs.Darkvision)
	require.True(t, ok)
	require.Equal(t, 60, rangeFeet)
	_, ok = entity.HasSense(e.Senses, refs.Blindsight)
	require.False(t, ok)
}
