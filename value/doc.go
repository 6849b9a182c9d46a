// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package value implements the engine's compositional numerical
// attribute: StaticValue and ContextualValue as modifier containers, and
// ModifiableValue as the five/six-layer composite that is the unit of
// attack bonuses, ability scores, DCs, and everything else the
// resolution engine reads a score, an advantage state, a critical
// state, or an auto-hit state from.
//
// Grounded on dnd/values.py (StaticValue, ContextualValue, BaseValue)
// and dnd/modifiable_values.py (ModifiableValue, the from_target/
// to_target cross-entity channel).
package value
