// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package engine wires value, block, dice, condition, and entity
// together into the resolution pipelines and the public operation
// surface a host application drives: attacks, saving throws, skill
// checks, damage intake, condition application, equipment changes,
// movement, and round refresh. Grounded on dnd/core.py's action
// resolution methods (roll_saving_throw, perform_attack_roll,
// apply_damage) and the rulebooks/dnd5e/combat package shape (a
// resolver type composing a dice.Roller with the data model).
package engine
