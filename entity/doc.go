// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package entity implements the aggregate root of a creature: the
// blocks it owns, its process-wide registry, its condition manager, and
// its position on the battle grid. Grounded on dnd/core.py's Entity and
// dnd/statsblock.py.
package entity
