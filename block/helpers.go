// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package block

import "github.com/ashforge/dnd5e-engine/modifier"

// scoreBaseModifier builds the one modifier every fresh score layer
// starts with: its base value, attributed to the owning entity.
func scoreBaseModifier(sourceEntityID, name string, base int) modifier.Numerical {
	return modifier.NewNumerical(name+"_base", sourceEntityID, sourceEntityID, base)
}
