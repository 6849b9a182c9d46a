// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package condition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashforge/dnd5e-engine/condition"
	"github.com/ashforge/dnd5e-engine/refs"
	"github.com/ashforge/dnd5e-engine/value"
)

func noEffectCondition(name refs.ConditionName) *condition.Condition {
	return condition.New(name, condition.NewRoundsDuration(1), func() ([]condition.Installed, error) {
		return nil, nil
	}, nil)
}

func TestManagerApplyRecordsActiveInInsertionOrder(t *testing.T) {
	m := condition.NewManager("entity-1")

	mv := value.NewModifiableValue("attack_roll", "entity-1", false)
	poisoned := condition.New(refs.Poisoned, condition.NewRoundsDuration(2), restrainedInstaller(mv), nil)
	restrained := condition.New(refs.Restrained, condition.NewRoundsDuration(2), restrainedInstaller(value.NewModifiableValue("ac", "entity-1", false)), nil)

	_, err := m.Apply(poisoned, fakeRoller{})
	require.NoError(t, err)
	_, err = m.Apply(restrained, fakeRoller{})
	require.NoError(t, err)

	active := m.Active()
	require.Len(t, active, 2)
	require.Equal(t, refs.Poisoned, active[0].Name)
	require.Equal(t, refs.Restrained, active[1].Name)
}

func TestManagerApplyBlockedByStaticImmunity(t *testing.T) {
	m := condition.NewManager("entity-1")
	m.SetImmune(refs.Poisoned, true)

	c := noEffectCondition(refs.Poisoned)
	result, err := m.Apply(c, fakeRoller{})
	require.NoError(t, err)
	require.False(t, result.Applied)
	require.Equal(t, condition.ReasonImmune, result.Reason)
	require.Nil(t, m.Get(refs.Poisoned))
}

func TestManagerApplyBlockedByContextualImmunity(t *testing.T) {
	m := condition.NewManager("entity-1")
	m.SetContextualImmunity(func(name refs.ConditionName) bool { return name == refs.Frightened })

	c := noEffectCondition(refs.Frightened)
	result, err := m.Apply(c, fakeRoller{})
	require.NoError(t, err)
	require.False(t, result.Applied)
	require.Equal(t, condition.ReasonImmune, result.Reason)
}

func TestManagerProgressRoundRemovesExpiredSafely(t *testing.T) {
	m := condition.NewManager("entity-1")
	mv1 := value.NewModifiableValue("v1", "entity-1", false)
	mv2 := value.NewModifiableValue("v2", "entity-1", false)
	short := condition.New(refs.Poisoned, condition.NewRoundsDuration(0), restrainedInstaller(mv1), nil)
	long := condition.New(refs.Restrained, condition.NewRoundsDuration(5), restrainedInstaller(mv2), nil)

	_, err := m.Apply(short, fakeRoller{})
	require.NoError(t, err)
	_, err = m.Apply(long, fakeRoller{})
	require.NoError(t, err)
	require.Len(t, m.Active(), 2)

	require.NoError(t, m.ProgressRound(fakeRoller{}))

	active := m.Active()
	require.Len(t, active, 1)
	require.Equal(t, refs.Restrained, active[0].Name)
	require.Nil(t, m.Get(refs.Poisoned))
}

func TestManagerLongRestPropagatesToActiveConditions(t *testing.T) {
	m := condition.NewManager("entity-1")
	mv := value.NewModifiableValue("v1", "entity-1", false)
	c := condition.New(refs.Charmed, condition.NewUntilLongRestDuration(), restrainedInstaller(mv), nil)

	_, err := m.Apply(c, fakeRoller{})
	require.NoError(t, err)
	require.Len(t, m.Active(), 1)

	m.LongRest()
	require.NoError(t, m.ProgressRound(fakeRoller{}))
	require.Empty(t, m.Active())
}

func TestManagerApplyIsIdempotentAtManagerLevel(t *testing.T) {
	m := condition.NewManager("entity-1")
	mv := value.NewModifiableValue("v1", "entity-1", false)
	c := condition.New(refs.Poisoned, condition.NewRoundsDuration(3), restrainedInstaller(mv), nil)

	first, err := m.Apply(c, fakeRoller{})
	require.NoError(t, err)
	require.True(t, first.Applied)

	second, err := m.Apply(c, fakeRoller{})
	require.NoError(t, err)
	require.Equal(t, condition.ReasonAlreadyApplied, second.Reason)
	require.Len(t, m.Active(), 1)
}
