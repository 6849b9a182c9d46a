// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package block_test

import "github.com/ashforge/dnd5e-engine/modifier"

func newNumerical(name, sourceEntityID string, value int) modifier.Numerical {
	return modifier.NewNumerical(name, sourceEntityID, sourceEntityID, value)
}
