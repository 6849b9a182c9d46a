// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashforge/dnd5e-engine/dice"
	"github.com/ashforge/dnd5e-engine/engine"
)

func TestDeathSaveThreeSuccessesStabilizes(t *testing.T) {
	e := newCombatant(t, "downed")
	r := engine.NewResolver(dice.NewMockRoller(15, 15, 15))

	for i := 0; i < 2; i++ {
		res, err := r.DeathSave(string(e.ID))
		require.NoError(t, err)
		require.False(t, res.State.Stable)
	}
	res, err := r.DeathSave(string(e.ID))
	require.NoError(t, err)
	require.True(t, res.State.Stable)
	require.Equal(t, 3, res.State.Successes)

	_, err = r.DeathSave(string(e.ID))
	require.Error(t, err, "a stabilized entity has nothing left to roll for")
}

func TestDeathSaveThreeFailuresKills(t *testing.T) {
	e := newCombatant(t, "downed")
	r := engine.NewResolver(dice.NewMockRoller(3, 3, 3))

	for i := 0; i < 2; i++ {
		res, err := r.DeathSave(string(e.ID))
		require.NoError(t, err)
		require.False(t, res.State.Dead)
	}
	res, err := r.DeathSave(string(e.ID))
	require.NoError(t, err)
	require.True(t, res.State.Dead)
}

func TestDeathSaveNatural1CountsAsTwoFailures(t *testing.T) {
	e := newCombatant(t, "downed")
	r := engine.NewResolver(dice.NewMockRoller(1))

	res, err := r.DeathSave(string(e.ID))
	require.NoError(t, err)
	require.Equal(t, 2, res.State.Failures)
}

func TestDeathSaveNatural20HealsAndClearsState(t *testing.T) {
	e := newCombatant(t, "downed")
	r := engine.NewResolver(dice.NewMockRoller(3, 20))

	_, err := r.DeathSave(string(e.ID))
	require.NoError(t, err)
	res, err := r.DeathSave(string(e.ID))
	require.NoError(t, err)
	require.Equal(t, 0, res.State.Failures)
	require.Equal(t, 0, res.State.Successes)
}

func TestReviveClearsInProgressDeathSaves(t *testing.T) {
	e := newCombatant(t, "downed")
	r := engine.NewResolver(dice.NewMockRoller(3))

	_, err := r.DeathSave(string(e.ID))
	require.NoError(t, err)

	engine.Revive(string(e.ID))

	res, err := r.DeathSave(string(e.ID))
	require.NoError(t, err)
	require.Equal(t, 1, res.State.Failures, "revive resets the cumulative count")
}
