// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package condition implements time/trigger-bounded effects that
// install modifier sets into a target entity's ModifiableValues and
// roll back cleanly on removal or expiry: Duration, Condition, and the
// per-entity ConditionManager. Grounded on dnd/core/base_conditions.py
// and dnd/conditions.py.
package condition
