// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashforge/dnd5e-engine/dice"
)

func TestCryptoRollerRollStaysInRange(t *testing.T) {
	roller := &dice.CryptoRoller{}
	for i := 0; i < 200; i++ {
		n, err := roller.Roll(20)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 20)
	}
}

func TestCryptoRollerRollRejectsNonPositiveSize(t *testing.T) {
	roller := &dice.CryptoRoller{}
	_, err := roller.Roll(0)
	require.Error(t, err)
}

func TestCryptoRollerRollNReturnsExactCount(t *testing.T) {
	roller := &dice.CryptoRoller{}
	results, err := roller.RollN(5, 6)
	require.NoError(t, err)
	require.Len(t, results, 5)
}

func TestMockRollerCyclesResults(t *testing.T) {
	m := dice.NewMockRoller(3, 7)
	a, err := m.Roll(20)
	require.NoError(t, err)
	require.Equal(t, 3, a)
	b, err := m.Roll(20)
	require.NoError(t, err)
	require.Equal(t, 7, b)
	c, err := m.Roll(20)
	require.NoError(t, err)
	require.Equal(t, 3, c)
}

func TestMockRollerRejectsResultOutOfRange(t *testing.T) {
	m := dice.NewMockRoller(25)
	_, err := m.Roll(20)
	require.Error(t, err)
}

func TestMockRollerReset(t *testing.T) {
	m := dice.NewMockRoller(1, 2, 3)
	_, _ = m.Roll(20)
	_, _ = m.Roll(20)
	m.Reset()
	n, err := m.Roll(20)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
