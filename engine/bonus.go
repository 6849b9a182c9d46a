// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"github.com/ashforge/dnd5e-engine/entity"
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/refs"
)

// AttackType selects which ability governs an attack's hit and damage
// bonus: STR for melee, DEX for ranged, the greater of STR/DEX for
// finesse, and the caster's spellcasting ability for spells.
type AttackType string

const (
	Melee   AttackType = "melee"
	Ranged  AttackType = "ranged"
	Finesse AttackType = "finesse"
	Spell   AttackType = "spell"
)

func abilityModifier(e *entity.Entity, ability refs.Ability, ctx modifier.Context) (int, error) {
	return e.AbilityScores.Get(ability).Modifier(ctx)
}

// attackAbilityModifier picks the ability modifier an attack's hit and
// damage bonus draws from, per AttackType. spellAbility is only
// consulted for AttackType Spell.
func attackAbilityModifier(e *entity.Entity, t AttackType, spellAbility refs.Ability, ctx modifier.Context) (int, error) {
	switch t {
	case Ranged:
		return abilityModifier(e, refs.Dexterity, ctx)
	case Finesse:
		str, err := abilityModifier(e, refs.Strength, ctx)
		if err != nil {
			return 0, err
		}
		dex, err := abilityModifier(e, refs.Dexterity, ctx)
		if err != nil {
			return 0, err
		}
		if dex > str {
			return dex, nil
		}
		return str, nil
	case Spell:
		return abilityModifier(e, spellAbility, ctx)
	default:
		return abilityModifier(e, refs.Strength, ctx)
	}
}

// skillBonus composes a skill check's total bonus: P·multiplier + A + B,
// where B is the skill's own ModifiableValue (which already folds in
// any from_target_* snapshot a prior SetFromTarget call installed).
func skillBonus(e *entity.Entity, skill refs.Skill, ctx modifier.Context) (int, error) {
	sk := e.SkillSet.Get(skill)
	abilityMod, err := abilityModifier(e, sk.Ability, ctx)
	if err != nil {
		return 0, err
	}
	b, err := sk.Bonus.Score(ctx)
	if err != nil {
		return 0, err
	}
	return e.ProficiencyBonus*int(sk.Proficiency) + abilityMod + b, nil
}

// savingThrowBonus mirrors skillBonus for a saving throw.
func savingThrowBonus(e *entity.Entity, ability refs.Ability, ctx modifier.Context) (int, error) {
	st := e.SavingThrowSet.Get(ability)
	abilityMod, err := abilityModifier(e, ability, ctx)
	if err != nil {
		return 0, err
	}
	b, err := st.Bonus.Score(ctx)
	if err != nil {
		return 0, err
	}
	return e.ProficiencyBonus*int(st.Proficiency) + abilityMod + b, nil
}

// ArmorClass computes e's armor class: Dexterity modifier plus the
// Equipment block's combined ArmorClass ModifiableValue (unarmored base
// + every equipped item's AC bonus + any from_target_* snapshot a prior
// attack pulled in).
func ArmorClass(e *entity.Entity, ctx modifier.Context) (int, error) {
	dexMod, err := abilityModifier(e, refs.Dexterity, ctx)
	if err != nil {
		return 0, err
	}
	acScore, err := e.Equipment.ArmorClass.Score(ctx)
	if err != nil {
		return 0, err
	}
	return acScore + dexMod, nil
}
