// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package block

import "github.com/ashforge/dnd5e-engine/refs"

// AbilityScores groups the six core abilities. Grounded on
// dnd/blocks.py's AbilityScores.
type AbilityScores struct {
	Base
	scores map[refs.Ability]*Ability
}

// NewAbilityScores builds all six abilities with the given base scores.
// Any ability absent from base defaults to 10.
func NewAbilityScores(sourceEntityID string, base map[refs.Ability]int) *AbilityScores {
	as := &AbilityScores{
		Base:   NewBase("ability_scores", sourceEntityID),
		scores: make(map[refs.Ability]*Ability, len(refs.Abilities)),
	}
	for _, a := range refs.Abilities {
		score := 10
		if v, ok := base[a]; ok {
			score = v
		}
		as.scores[a] = NewAbility(string(a), sourceEntityID, score)
	}
	Registry.Register(string(as.ID), as)
	return as
}

// Get returns the named ability.
func (as *AbilityScores) Get(a refs.Ability) *Ability {
	return as.scores[a]
}

func (as *AbilityScores) propagators() []Propagator {
	out := make([]Propagator, 0, len(as.scores))
	for _, a := range refs.Abilities {
		out = append(out, as.scores[a])
	}
	return out
}

func (as *AbilityScores) SetTargetEntity(targetEntityID string) {
	as.TargetEntityID = targetEntityID
	Propagate(targetEntityID, nil, as.propagators())
}

func (as *AbilityScores) ClearTargetEntity() {
	as.TargetEntityID = ""
	ClearPropagate(nil, as.propagators())
}
