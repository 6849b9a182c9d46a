// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package block

import (
	"github.com/ashforge/dnd5e-engine/refs"
	"github.com/ashforge/dnd5e-engine/value"
)

// SavingThrow couples a governing ability with its own bonus layer and
// proficiency level, mirroring Skill's shape.
type SavingThrow struct {
	Base
	Ability     refs.Ability
	Proficiency ProficiencyLevel
	Bonus       *value.ModifiableValue
}

// NewSavingThrow creates a SavingThrow for the given ability.
func NewSavingThrow(ability refs.Ability, sourceEntityID string) *SavingThrow {
	name := string(ability) + "_saving_throw"
	st := &SavingThrow{
		Base:    NewBase(name, sourceEntityID),
		Ability: ability,
		Bonus:   value.NewModifiableValue(name+"_bonus", sourceEntityID, false),
	}
	Registry.Register(string(st.ID), st)
	return st
}

func (st *SavingThrow) SetTargetEntity(targetEntityID string) {
	st.TargetEntityID = targetEntityID
	Propagate(targetEntityID, []Propagator{Value(st.Bonus)}, nil)
}

func (st *SavingThrow) ClearTargetEntity() {
	st.TargetEntityID = ""
	ClearPropagate([]Propagator{Value(st.Bonus)}, nil)
}

// SavingThrowSet groups all six saving throws, one per ability.
type SavingThrowSet struct {
	Base
	throws map[refs.Ability]*SavingThrow
}

// NewSavingThrowSet creates one saving throw per ability.
func NewSavingThrowSet(sourceEntityID string) *SavingThrowSet {
	sts := &SavingThrowSet{
		Base:   NewBase("saving_throw_set", sourceEntityID),
		throws: make(map[refs.Ability]*SavingThrow, len(refs.Abilities)),
	}
	for _, a := range refs.Abilities {
		sts.throws[a] = NewSavingThrow(a, sourceEntityID)
	}
	Registry.Register(string(sts.ID), sts)
	return sts
}

// Get returns the saving throw for the given ability.
func (sts *SavingThrowSet) Get(a refs.Ability) *SavingThrow {
	return sts.throws[a]
}

func (sts *SavingThrowSet) propagators() []Propagator {
	out := make([]Propagator, 0, len(sts.throws))
	for _, a := range refs.Abilities {
		out = append(out, sts.throws[a])
	}
	return out
}

func (sts *SavingThrowSet) SetTargetEntity(targetEntityID string) {
	sts.TargetEntityID = targetEntityID
	Propagate(targetEntityID, nil, sts.propagators())
}

func (sts *SavingThrowSet) ClearTargetEntity() {
	sts.TargetEntityID = ""
	ClearPropagate(nil, sts.propagators())
}
