// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package block implements the semantic groupings that sit between raw
// ModifiableValues and an Entity: ability scores, skills, saving
// throws, equipment, health, and action economy. Every block owns one
// or more values and/or sub-blocks and propagates its owning entity's
// id and target to all of them in lockstep.
//
// Grounded on dnd/blocks.py (BaseBlock, AbilityScores, SkillSet,
// SavingThrowSet) and dnd/health.py / dnd/equipment.py / dnd/action_economy.py.
package block
