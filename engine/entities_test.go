// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashforge/dnd5e-engine/condition"
	"github.com/ashforge/dnd5e-engine/dice"
	"github.com/ashforge/dnd5e-engine/engine"
	"github.com/ashforge/dnd5e-engine/refs"
)

func TestGetEntitySummarizesCoreStats(t *testing.T) {
	e := newCombatant(t, "summarized")
	r := engine.NewResolver(dice.NewMockRoller(10))

	summary, err := r.GetEntity(string(e.ID), nil)
	require.NoError(t, err)
	require.Equal(t, "summarized", summary.Name)
	require.Equal(t, 10, summary.ArmorClass, "base AC with no Dex bonus or armor")
	require.Equal(t, 1, summary.Actions)
	require.Equal(t, 1, summary.BonusActions)
	require.Equal(t, 1, summary.Reactions)
	require.Equal(t, 30, summary.Movement)
	require.Empty(t, summary.ActiveConditions)
}

func TestListEntitiesIncludesEveryRegisteredEntity(t *testing.T) {
	a := newCombatant(t, "list-a")
	b := newCombatant(t, "list-b")
	r := engine.NewResolver(dice.NewMockRoller(10))

	summaries, err := r.ListEntities(nil)
	require.NoError(t, err)

	ids := make(map[string]bool, len(summaries))
	for _, s := range summaries {
		ids[s.ID] = true
	}
	require.True(t, ids[string(a.ID)])
	require.True(t, ids[string(b.ID)])
}

func TestGetEntityUnknownIDErrors(t *testing.T) {
	r := engine.NewResolver(dice.NewMockRoller(10))
	_, err := r.GetEntity("does-not-exist", nil)
	require.Error(t, err)
}

func TestGetEntityReflectsActiveConditions(t *testing.T) {
	e := newCombatant(t, "conditioned")
	r := engine.NewResolver(dice.NewMockRoller(10))

	c := engine.Blinded(string(e.ID), condition.NewPermanentDuration())
	_, err := r.AddCondition(string(e.ID), c)
	require.NoError(t, err)

	summary, err := r.GetEntity(string(e.ID), nil)
	require.NoError(t, err)
	require.Contains(t, summary.ActiveConditions, refs.Blinded)
}
