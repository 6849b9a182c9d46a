// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package block

import (
	"github.com/ashforge/dnd5e-engine/refs"
	"github.com/ashforge/dnd5e-engine/value"
)

// ProficiencyLevel is how strongly an entity is trained in a skill or
// saving throw.
type ProficiencyLevel int

const (
	NotProficient ProficiencyLevel = 0
	Proficient    ProficiencyLevel = 1
	Expertise     ProficiencyLevel = 2
)

// Skill couples a governing ability with its own bonus layer and
// proficiency level. Grounded on dnd/blocks.py's per-skill shape and
// its skill/saving-throw bonus composition.
type Skill struct {
	Base
	Ability      refs.Ability
	Proficiency  ProficiencyLevel
	Bonus        *value.ModifiableValue
}

// NewSkill creates a Skill for the given governing ability.
func NewSkill(name string, ability refs.Ability, sourceEntityID string) *Skill {
	s := &Skill{
		Base:    NewBase(name, sourceEntityID),
		Ability: ability,
		Bonus:   value.NewModifiableValue(name+"_bonus", sourceEntityID, false),
	}
	Registry.Register(string(s.ID), s)
	return s
}

func (s *Skill) SetTargetEntity(targetEntityID string) {
	s.TargetEntityID = targetEntityID
	Propagate(targetEntityID, []Propagator{Value(s.Bonus)}, nil)
}

func (s *Skill) ClearTargetEntity() {
	s.TargetEntityID = ""
	ClearPropagate([]Propagator{Value(s.Bonus)}, nil)
}

// SkillSet groups all eighteen skills.
type SkillSet struct {
	Base
	skills map[refs.Skill]*Skill
}

// NewSkillSet creates every skill mapped to its governing ability.
func NewSkillSet(sourceEntityID string) *SkillSet {
	ss := &SkillSet{
		Base:   NewBase("skill_set", sourceEntityID),
		skills: make(map[refs.Skill]*Skill, len(refs.Skills)),
	}
	for _, sk := range refs.Skills {
		ss.skills[sk] = NewSkill(string(sk), refs.GoverningAbility[sk], sourceEntityID)
	}
	Registry.Register(string(ss.ID), ss)
	return ss
}

// Get returns the named skill.
func (ss *SkillSet) Get(s refs.Skill) *Skill {
	return ss.skills[s]
}

func (ss *SkillSet) propagators() []Propagator {
	out := make([]Propagator, 0, len(ss.skills))
	for _, sk := range refs.Skills {
		out = append(out, ss.skills[sk])
	}
	return out
}

func (ss *SkillSet) SetTargetEntity(targetEntityID string) {
	ss.TargetEntityID = targetEntityID
	Propagate(targetEntityID, nil, ss.propagators())
}

func (ss *SkillSet) ClearTargetEntity() {
	ss.TargetEntityID = ""
	ClearPropagate(nil, ss.propagators())
}
