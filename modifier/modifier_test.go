// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package modifier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashforge/dnd5e-engine/modifier"
)

func TestAdvantageStatusNumericalValue(t *testing.T) {
	require.Equal(t, 1, modifier.AdvantageAdvantage.NumericalValue())
	require.Equal(t, -1, modifier.AdvantageDisadvantage.NumericalValue())
	require.Equal(t, 0, modifier.AdvantageNone.NumericalValue())
}

func TestResistanceStatusNumericalValue(t *testing.T) {
	require.Equal(t, 2, modifier.Immunity.NumericalValue())
	require.Equal(t, 1, modifier.Resistance.NumericalValue())
	require.Equal(t, -1, modifier.Vulnerability.NumericalValue())
	require.Equal(t, 0, modifier.ResistanceNone.NumericalValue())
}
