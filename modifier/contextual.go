// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package modifier

// Context carries situational data a contextual modifier function may
// read — the attack range, the terrain, whether a prerequisite feature
// is active, and so on. Mirrors dnd/modifiers.py's
// Optional[Dict[str, Any]] context parameter.
type Context map[string]any

// The five contextual function shapes, one per tagged variant that
// supports a dynamic form. Every contextual modifier's function takes
// the same (source, target, context) triple per the design notes'
// "keep the function's required inputs to (source_id, target_id,
// context); look up additional state through the registry" guidance —
// closures must not capture live entity references.
type (
	NumericalFunc  func(sourceID, targetID string, ctx Context) Numerical
	AdvantageFunc  func(sourceID, targetID string, ctx Context) Advantage
	CriticalFunc   func(sourceID, targetID string, ctx Context) Critical
	AutoHitFunc    func(sourceID, targetID string, ctx Context) AutoHitMod
	ResistanceFunc func(sourceID, targetID string, ctx Context) Res
)
