// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package value

import "github.com/ashforge/dnd5e-engine/registry"

// ID identifies a StaticValue, ContextualValue, or ModifiableValue in
// the process-wide Value registry.
type ID string

// Registry is the process-wide lookup for every value instance (Static,
// Contextual, and Modifiable alike), mirroring dnd/values.py's BaseValue
// class-level registry shared across all three subclasses.
var Registry = registry.New[any]("value")

// Normalizer post-processes a raw aggregate score — e.g. the ability
// score to ability modifier conversion floor((x-10)/2). Identity by
// default. Named type (rather than a bare func literal inlined at every
// call site) so a block can expose a named, introspectable strategy
// the way dnd/blocks.py's module-level ability_score_normalizer does.
type Normalizer func(score int) int

// Identity is the identity normalizer: f(x) = x.
func Identity(score int) int { return score }
