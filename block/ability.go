// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package block

import (
	"github.com/ashforge/dnd5e-engine/value"
)

// AbilityNormalizer converts a raw ability score into its modifier:
// floor((score-10)/2). Grounded on dnd/blocks.py's ability_score_normalizer.
func AbilityNormalizer(score int) int {
	mod := score - 10
	if mod < 0 && mod%2 != 0 {
		return mod/2 - 1
	}
	return mod / 2
}

// Ability is a single ability score plus a flat modifier bonus layered
// on top of the normalized score. Grounded on dnd/blocks.py's Ability.
type Ability struct {
	Base
	Score         *value.ModifiableValue
	ModifierBonus *value.ModifiableValue
}

// NewAbility creates an Ability owned by sourceEntityID with the given
// base score (e.g. 10 before racial/item bonuses are layered in).
func NewAbility(name, sourceEntityID string, baseScore int) *Ability {
	a := &Ability{
		Base:          NewBase(name, sourceEntityID),
		Score:         value.NewModifiableValue(name+"_score", sourceEntityID, false),
		ModifierBonus: value.NewModifiableValue(name+"_modifier_bonus", sourceEntityID, false),
	}
	baseMod := scoreBaseModifier(sourceEntityID, name, baseScore)
	_ = a.Score.SelfStatic.AddValueModifier(baseMod)
	Registry.Register(string(a.ID), a)
	return a
}

// Modifier is the ability modifier plus any flat modifier bonus:
// normalized(score) + modifier_bonus.score.
func (a *Ability) Modifier(ctx Context) (int, error) {
	raw, err := a.Score.Score(ctx)
	if err != nil {
		return 0, err
	}
	bonus, err := a.ModifierBonus.Score(ctx)
	if err != nil {
		return 0, err
	}
	return AbilityNormalizer(raw) + bonus, nil
}

// RawScore returns the un-normalized ability score (e.g. 15, not +2).
func (a *Ability) RawScore(ctx Context) (int, error) {
	return a.Score.Score(ctx)
}

func (a *Ability) SetTargetEntity(targetEntityID string) {
	a.TargetEntityID = targetEntityID
	Propagate(targetEntityID, []Propagator{Value(a.Score), Value(a.ModifierBonus)}, nil)
}

func (a *Ability) ClearTargetEntity() {
	a.TargetEntityID = ""
	ClearPropagate([]Propagator{Value(a.Score), Value(a.ModifierBonus)}, nil)
}
