// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/value"
)

func TestModifiableValueScoreSumsSelfLayer(t *testing.T) {
	mv := value.NewModifiableValue("strength", "entity-1", false)
	require.NoError(t, mv.SelfStatic.AddValueModifier(modifier.NewNumerical("base", "entity-1", "entity-1", 15)))

	score, err := mv.Score(modifier.Context{})
	require.NoError(t, err)
	require.Equal(t, 15, score)
}

func TestModifiableValueToTargetExcludedFromOwnScore(t *testing.T) {
	mv := value.NewModifiableValue("attack_damage", "entity-1", true)
	require.NoError(t, mv.SelfStatic.AddValueModifier(modifier.NewNumerical("weapon", "entity-1", "entity-1", 8)))
	mv.SetTargetEntity("entity-2")
	require.NoError(t, mv.ToTargetStatic.AddValueModifier(modifier.NewNumerical("rage", "entity-1", "entity-2", 2)))

	score, err := mv.Score(modifier.Context{})
	require.NoError(t, err)
	require.Equal(t, 8, score, "to_target modifiers must not contribute to the source's own score")
}

func TestModifiableValueSetFromTargetSnapshotsToTargetLayer(t *testing.T) {
	attacker := value.NewModifiableValue("attack_damage", "entity-1", true)
	attacker.SetTargetEntity("entity-2")
	require.NoError(t, attacker.ToTargetStatic.AddValueModifier(modifier.NewNumerical("rage", "entity-1", "entity-2", 2)))

	defender := value.NewModifiableValue("incoming_damage", "entity-2", false)
	require.NoError(t, defender.SetFromTarget(attacker))

	score, err := defender.Score(modifier.Context{})
	require.NoError(t, err)
	require.Equal(t, 2, score)
}

func TestModifiableValueSetFromTargetIsSnapshotNotLive(t *testing.T) {
	attacker := value.NewModifiableValue("attack_damage", "entity-1", true)
	attacker.SetTargetEntity("entity-2")
	require.NoError(t, attacker.ToTargetStatic.AddValueModifier(modifier.NewNumerical("rage", "entity-1", "entity-2", 2)))

	defender := value.NewModifiableValue("incoming_damage", "entity-2", false)
	require.NoError(t, defender.SetFromTarget(attacker))

	require.NoError(t, attacker.ToTargetStatic.AddValueModifier(modifier.NewNumerical("bless", "entity-1", "entity-2", 5)))

	score, err := defender.Score(modifier.Context{})
	require.NoError(t, err)
	require.Equal(t, 2, score, "defender's snapshot must not see modifiers added to the source after the snapshot")
}

func TestModifiableValueSetFromTargetRejectsWrongTarget(t *testing.T) {
	attacker := value.NewModifiableValue("attack_damage", "entity-1", true)
	attacker.SetTargetEntity("entity-3")

	defender := value.NewModifiableValue("incoming_damage", "entity-2", false)
	err := defender.SetFromTarget(attacker)
	require.Error(t, err)
}

func TestModifiableValueClearTargetEntityDropsSnapshot(t *testing.T) {
	attacker := value.NewModifiableValue("attack_damage", "entity-1", true)
	attacker.SetTargetEntity("entity-2")
	require.NoError(t, attacker.ToTargetStatic.AddValueModifier(modifier.NewNumerical("rage", "entity-1", "entity-2", 2)))

	defender := value.NewModifiableValue("incoming_damage", "entity-2", false)
	require.NoError(t, defender.SetFromTarget(attacker))
	defender.ClearTargetEntity()

	score, err := defender.Score(modifier.Context{})
	require.NoError(t, err)
	require.Equal(t, 0, score)
}

func TestModifiableValueMinWinsOverInvertedMaxAcrossLayers(t *testing.T) {
	mv := value.NewModifiableValue("constrained", "entity-1", false)
	require.NoError(t, mv.SelfStatic.AddValueModifier(modifier.NewNumerical("base", "entity-1", "entity-1", 5)))
	require.NoError(t, mv.SelfStatic.AddMinConstraint(modifier.NewNumerical("floor", "entity-1", "entity-1", 10)))
	require.NoError(t, mv.SelfStatic.AddMaxConstraint(modifier.NewNumerical("ceiling", "entity-1", "entity-1", 3)))

	score, err := mv.Score(modifier.Context{})
	require.NoError(t, err)
	require.Equal(t, 10, score)
}

func TestModifiableValueCriticalAggregatesAcrossLayers(t *testing.T) {
	mv := value.NewModifiableValue("attack_roll", "entity-1", false)
	require.NoError(t, mv.SelfStatic.AddCriticalModifier(modifier.NewCritical("hunters_mark", "entity-1", "entity-1", modifier.CriticalAuto)))

	crit, err := mv.Critical(modifier.Context{})
	require.NoError(t, err)
	require.Equal(t, modifier.CriticalAuto, crit)
}
