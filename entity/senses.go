// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package entity

import "github.com/ashforge/dnd5e-engine/refs"

// Sense is one special sense a creature has, with its range in feet.
// Grounded on dnd/core.py's Sense/Sensory, stripped of the
// battlemap/FOV/distance-matrix plumbing that belongs to the
// battle-map collaborator.
type Sense struct {
	Type      refs.SenseType
	RangeFeet int
}

// HasSense reports whether senses includes t, returning its range.
func HasSense(senses []Sense, t refs.SenseType) (int, bool) {
	for _, s := range senses {
		if s.Type == t {
			return s.RangeFeet, true
		}
	}
	return 0, false
}
