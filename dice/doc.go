// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dice implements random number generation for d20 and damage
// rolls, advantage-aware roll selection, attack-outcome classification,
// and the roll-record registry. Grounded on dnd/dice.py and
// dnd/core.py's roll-resolution rules.
package dice
