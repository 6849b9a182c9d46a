// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"github.com/ashforge/dnd5e-engine/block"
	"github.com/ashforge/dnd5e-engine/dice"
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/refs"
	"github.com/ashforge/dnd5e-engine/rpgerr"
	"github.com/ashforge/dnd5e-engine/value"
)

// scoreOrZero reads v's score, treating a nil ModifiableValue (an item
// slot the weapon doesn't use, e.g. a shield's attack bonus) as zero.
func scoreOrZero(v *value.ModifiableValue, ctx modifier.Context) (int, error) {
	if v == nil {
		return 0, nil
	}
	return v.Score(ctx)
}

// AttackInput describes one attack: which entities, which equipped slot
// swings, the ability the attack draws from, and the weapon's damage
// expression (count/face of its damage dice plus its type), since Item
// deliberately carries no flavor fields of its own.
type AttackInput struct {
	AttackerID      string
	DefenderID      string
	Slot            refs.EquipmentSlot
	Type            AttackType
	SpellAbility    refs.Ability // consulted only when Type == Spell
	DamageDiceCount int
	DamageDiceFace  int
	DamageType      modifier.DamageType
	Context         modifier.Context
}

// AttackResult carries the attack roll, the damage roll (nil on a
// miss), and the damage-intake breakdown the defender's Health applied.
type AttackResult struct {
	Attack  *dice.Record
	Damage  *dice.Record
	Applied []block.DamageApplication
	HPLoss  int
}

// Attack resolves one weapon attack end to end: snapshot the defender's
// AC broadcast channel into the attacker's attack-roll channel, roll
// to hit, and on a hit roll and apply damage. Grounded on dnd/core.py's
// perform_attack_roll/apply_damage pairing.
func (r *Resolver) Attack(in AttackInput) (*AttackResult, error) {
	attacker, err := lookupEntity(in.AttackerID)
	if err != nil {
		return nil, err
	}
	defender, err := lookupEntity(in.DefenderID)
	if err != nil {
		return nil, err
	}
	weapon := attacker.Equipment.Get(in.Slot)
	if weapon == nil {
		return nil, rpgerr.Invalid("attacker has nothing equipped in the given slot",
			rpgerr.WithMeta("attacker", in.AttackerID), rpgerr.WithMeta("slot", string(in.Slot)))
	}

	defender.Equipment.ArmorClass.SetTargetEntity(in.AttackerID)
	if err := attacker.ActionEconomy.AttackRoll.SetFromTarget(defender.Equipment.ArmorClass); err != nil {
		return nil, err
	}

	abilityMod, err := attackAbilityModifier(attacker, in.Type, in.SpellAbility, in.Context)
	if err != nil {
		return nil, err
	}
	weaponBonus, err := scoreOrZero(weapon.AttackBonus, in.Context)
	if err != nil {
		return nil, err
	}
	rollBonus, err := attacker.ActionEconomy.AttackRoll.Score(in.Context)
	if err != nil {
		return nil, err
	}
	bonus := attacker.ProficiencyBonus + weaponBonus + abilityMod + rollBonus

	advantage, err := attacker.ActionEconomy.AttackRoll.Advantage(in.Context)
	if err != nil {
		return nil, err
	}
	critical, err := attacker.ActionEconomy.AttackRoll.Critical(in.Context)
	if err != nil {
		return nil, err
	}
	autoHit, err := attacker.ActionEconomy.AttackRoll.AutoHit(in.Context)
	if err != nil {
		return nil, err
	}
	targetAC, err := ArmorClass(defender, in.Context)
	if err != nil {
		return nil, err
	}

	rec, err := dice.ResolveAttack(r.Roller, dice.AttackParams{
		BonusScore: bonus,
		Advantage:  dice.AdvantageFromStatus(advantage),
		NoCrit:     critical == modifier.CriticalNoCrit,
		AutoCrit:   critical == modifier.CriticalAuto,
		AutoHit:    autoHit == modifier.AutoHit,
		AutoMiss:   autoHit == modifier.AutoMiss,
		TargetAC:   targetAC,
	})
	if err != nil {
		return nil, err
	}

	result := &AttackResult{Attack: rec}
	if rec.Outcome != dice.OutcomeHit {
		return result, nil
	}

	damageBonus, err := scoreOrZero(weapon.DamageBonus, in.Context)
	if err != nil {
		return nil, err
	}
	dmgRec, err := dice.RollDamage(r.Roller, in.DamageDiceCount, in.DamageDiceFace, abilityMod+damageBonus, 0, rec.Critical)
	if err != nil {
		return nil, err
	}
	result.Damage = dmgRec

	apps, hpLoss, err := defender.Health.ApplyDamage([]block.IncomingDamage{{DamageType: in.DamageType, Amount: dmgRec.Total}}, in.Context)
	if err != nil {
		return nil, err
	}
	result.Applied = apps
	result.HPLoss = hpLoss
	return result, nil
}
