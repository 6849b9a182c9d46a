// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"github.com/ashforge/dnd5e-engine/dice"
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/refs"
)

// SkillCheck rolls a skill check for entityID against dc, using the
// skill's own Advantage state. Grounded on dnd/core.py's
// perform_skill_check.
func (r *Resolver) SkillCheck(entityID string, skill refs.Skill, dc int, ctx modifier.Context) (*dice.Record, error) {
	e, err := lookupEntity(entityID)
	if err != nil {
		return nil, err
	}
	sk := e.SkillSet.Get(skill)
	bonus, err := skillBonus(e, skill, ctx)
	if err != nil {
		return nil, err
	}
	adv, err := sk.Bonus.Advantage(ctx)
	if err != nil {
		return nil, err
	}
	return dice.ResolveD20Check(r.Roller, dice.Check, dice.AdvantageFromStatus(adv), bonus, dc)
}

// SavingThrow rolls a saving throw for entityID against dc.
func (r *Resolver) SavingThrow(entityID string, ability refs.Ability, dc int, ctx modifier.Context) (*dice.Record, error) {
	e, err := lookupEntity(entityID)
	if err != nil {
		return nil, err
	}
	st := e.SavingThrowSet.Get(ability)
	bonus, err := savingThrowBonus(e, ability, ctx)
	if err != nil {
		return nil, err
	}
	adv, err := st.Bonus.Advantage(ctx)
	if err != nil {
		return nil, err
	}
	return dice.ResolveD20Check(r.Roller, dice.Save, dice.AdvantageFromStatus(adv), bonus, dc)
}
