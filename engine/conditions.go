// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"github.com/ashforge/dnd5e-engine/block"
	"github.com/ashforge/dnd5e-engine/condition"
	"github.com/ashforge/dnd5e-engine/entity"
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/refs"
)

// broadcastTarget is the placeholder target id a condition installs
// into an entity's to_target_* channel with: any id other than the
// installing entity's own satisfies StaticValue's outgoing-modifier
// check, and the real attacker's id is substituted in at snapshot time
// by SetFromTarget, so the placeholder itself is never read back.
const broadcastTarget = "*broadcast*"

func disadvantageSelfAttack(e *entity.Entity, name string) (condition.Installed, error) {
	layer := e.ActionEconomy.AttackRoll.SelfStatic
	m := modifier.NewAdvantage(name, string(e.ID), string(e.ID), modifier.AdvantageDisadvantage)
	if err := layer.AddAdvantageModifier(m); err != nil {
		return condition.Installed{}, err
	}
	return condition.Installed{Layer: layer, ModifierID: m.ID}, nil
}

func advantageSelfAttack(e *entity.Entity, name string) (condition.Installed, error) {
	layer := e.ActionEconomy.AttackRoll.SelfStatic
	m := modifier.NewAdvantage(name, string(e.ID), string(e.ID), modifier.AdvantageAdvantage)
	if err := layer.AddAdvantageModifier(m); err != nil {
		return condition.Installed{}, err
	}
	return condition.Installed{Layer: layer, ModifierID: m.ID}, nil
}

// advantageBroadcast installs status into e's AC to_target_* channel, so
// it is pulled into whoever next attacks e via
// AttackRoll.SetFromTarget(e.Equipment.ArmorClass).
func advantageBroadcast(e *entity.Entity, name string, status modifier.AdvantageStatus) (condition.Installed, error) {
	layer := e.Equipment.ArmorClass.ToTargetStatic
	m := modifier.NewAdvantage(name, string(e.ID), broadcastTarget, status)
	if err := layer.AddAdvantageModifier(m); err != nil {
		return condition.Installed{}, err
	}
	return condition.Installed{Layer: layer, ModifierID: m.ID}, nil
}

func autoCritBroadcast(e *entity.Entity, name string) (condition.Installed, error) {
	layer := e.Equipment.ArmorClass.ToTargetStatic
	m := modifier.NewCritical(name, string(e.ID), broadcastTarget, modifier.CriticalAuto)
	if err := layer.AddCriticalModifier(m); err != nil {
		return condition.Installed{}, err
	}
	return condition.Installed{Layer: layer, ModifierID: m.ID}, nil
}

func disadvantageSavingThrow(e *entity.Entity, ability refs.Ability, name string) (condition.Installed, error) {
	layer := e.SavingThrowSet.Get(ability).Bonus.SelfStatic
	m := modifier.NewAdvantage(name, string(e.ID), string(e.ID), modifier.AdvantageDisadvantage)
	if err := layer.AddAdvantageModifier(m); err != nil {
		return condition.Installed{}, err
	}
	return condition.Installed{Layer: layer, ModifierID: m.ID}, nil
}

func advantageSavingThrow(e *entity.Entity, ability refs.Ability, name string) (condition.Installed, error) {
	layer := e.SavingThrowSet.Get(ability).Bonus.SelfStatic
	m := modifier.NewAdvantage(name, string(e.ID), string(e.ID), modifier.AdvantageAdvantage)
	if err := layer.AddAdvantageModifier(m); err != nil {
		return condition.Installed{}, err
	}
	return condition.Installed{Layer: layer, ModifierID: m.ID}, nil
}

// failSavingThrow approximates the 5e "automatically fails Strength and
// Dexterity saving throws" rule with a steep numeric penalty, since the
// saving-throw resolution pipeline has no auto-fail primitive (only
// attacks carry an AutoHit/AutoMiss channel).
func failSavingThrow(e *entity.Entity, ability refs.Ability, name string) (condition.Installed, error) {
	layer := e.SavingThrowSet.Get(ability).Bonus.SelfStatic
	m := modifier.NewNumerical(name, string(e.ID), string(e.ID), -1000)
	if err := layer.AddValueModifier(m); err != nil {
		return condition.Installed{}, err
	}
	return condition.Installed{Layer: layer, ModifierID: m.ID}, nil
}

// lockActionEconomy zeroes out the named per-round budgets via a max
// constraint, so Spend always fails against a zero ceiling regardless of
// what the base budget holds.
func lockActionEconomy(e *entity.Entity, name string, budgets ...*block.Budget) ([]condition.Installed, error) {
	out := make([]condition.Installed, 0, len(budgets))
	for _, b := range budgets {
		layer := b.Value.SelfStatic
		m := modifier.NewNumerical(name, string(e.ID), string(e.ID), 0)
		if err := layer.AddMaxConstraint(m); err != nil {
			return nil, err
		}
		out = append(out, condition.Installed{Layer: layer, ModifierID: m.ID})
	}
	return out, nil
}

func newCondition(name refs.ConditionName, entityID string, duration condition.Duration, install func(e *entity.Entity) ([]condition.Installed, error)) *condition.Condition {
	return condition.New(name, duration, func() ([]condition.Installed, error) {
		e, err := lookupEntity(entityID)
		if err != nil {
			return nil, err
		}
		return install(e)
	}, nil)
}

// Blinded: disadvantage on the blinded entity's own attack rolls;
// advantage on attacks made against it.
func Blinded(entityID string, duration condition.Duration) *condition.Condition {
	return newCondition(refs.Blinded, entityID, duration, func(e *entity.Entity) ([]condition.Installed, error) {
		self, err := disadvantageSelfAttack(e, "blinded_attack")
		if err != nil {
			return nil, err
		}
		against, err := advantageBroadcast(e, "blinded_against", modifier.AdvantageAdvantage)
		if err != nil {
			return nil, err
		}
		return []condition.Installed{self, against}, nil
	})
}

// Charmed carries no numeric penalty in this engine's scope (it governs
// who the charmed creature may target and is the caller's
// responsibility to enforce); a zero-value marker keeps the condition
// applied and addressable for lifecycle purposes.
func Charmed(entityID string, duration condition.Duration) *condition.Condition {
	return newCondition(refs.Charmed, entityID, duration, func(e *entity.Entity) ([]condition.Installed, error) {
		layer := e.ActionEconomy.AttackRoll.SelfStatic
		m := modifier.NewNumerical("charmed_marker", string(e.ID), string(e.ID), 0)
		if err := layer.AddValueModifier(m); err != nil {
			return nil, err
		}
		return []condition.Installed{{Layer: layer, ModifierID: m.ID}}, nil
	})
}

// Dashing grants bonus movement equal to speedFeet for the round.
func Dashing(entityID string, duration condition.Duration, speedFeet int) *condition.Condition {
	return newCondition(refs.Dashing, entityID, duration, func(e *entity.Entity) ([]condition.Installed, error) {
		layer := e.ActionEconomy.Movement.Value.SelfStatic
		m := modifier.NewNumerical("dash_bonus", string(e.ID), string(e.ID), speedFeet)
		if err := layer.AddValueModifier(m); err != nil {
			return nil, err
		}
		return []condition.Installed{{Layer: layer, ModifierID: m.ID}}, nil
	})
}

// Deafened carries no numeric penalty this engine models (it governs
// hearing-based checks the caller adjudicates); see Charmed.
func Deafened(entityID string, duration condition.Duration) *condition.Condition {
	return newCondition(refs.Deafened, entityID, duration, func(e *entity.Entity) ([]condition.Installed, error) {
		layer := e.SkillSet.Get(refs.Perception).Bonus.SelfStatic
		m := modifier.NewNumerical("deafened_marker", string(e.ID), string(e.ID), 0)
		if err := layer.AddValueModifier(m); err != nil {
			return nil, err
		}
		return []condition.Installed{{Layer: layer, ModifierID: m.ID}}, nil
	})
}

// Dodging: disadvantage on attacks made against the dodging entity;
// advantage on its own Dexterity saving throws.
func Dodging(entityID string, duration condition.Duration) *condition.Condition {
	return newCondition(refs.Dodging, entityID, duration, func(e *entity.Entity) ([]condition.Installed, error) {
		against, err := advantageBroadcast(e, "dodging_against", modifier.AdvantageDisadvantage)
		if err != nil {
			return nil, err
		}
		dexSave, err := advantageSavingThrow(e, refs.Dexterity, "dodging_dex_save")
		if err != nil {
			return nil, err
		}
		return []condition.Installed{against, dexSave}, nil
	})
}

// Frightened: disadvantage on the frightened entity's own attack rolls
// while the source of its fear is in view. The engine does not model
// line-of-sight, so the penalty applies unconditionally for the
// condition's duration.
func Frightened(entityID string, duration condition.Duration) *condition.Condition {
	return newCondition(refs.Frightened, entityID, duration, func(e *entity.Entity) ([]condition.Installed, error) {
		self, err := disadvantageSelfAttack(e, "frightened_attack")
		if err != nil {
			return nil, err
		}
		return []condition.Installed{self}, nil
	})
}

// Grappled: speed drops to zero for the duration.
func Grappled(entityID string, duration condition.Duration) *condition.Condition {
	return newCondition(refs.Grappled, entityID, duration, func(e *entity.Entity) ([]condition.Installed, error) {
		return lockActionEconomy(e, "grappled_speed", e.ActionEconomy.Movement)
	})
}

// Incapacitated: the entity can neither act nor react.
func Incapacitated(entityID string, duration condition.Duration) *condition.Condition {
	return newCondition(refs.Incapacitated, entityID, duration, func(e *entity.Entity) ([]condition.Installed, error) {
		return lockActionEconomy(e, "incapacitated_lock", e.ActionEconomy.Actions, e.ActionEconomy.BonusActions, e.ActionEconomy.Reactions)
	})
}

// Invisible: advantage on the invisible entity's own attack rolls;
// disadvantage on attacks made against it.
func Invisible(entityID string, duration condition.Duration) *condition.Condition {
	return newCondition(refs.Invisible, entityID, duration, func(e *entity.Entity) ([]condition.Installed, error) {
		self, err := advantageSelfAttack(e, "invisible_attack")
		if err != nil {
			return nil, err
		}
		against, err := advantageBroadcast(e, "invisible_against", modifier.AdvantageDisadvantage)
		if err != nil {
			return nil, err
		}
		return []condition.Installed{self, against}, nil
	})
}

// Paralyzed: auto-fails Strength and Dexterity saves; attacks against
// the paralyzed entity have advantage, and any hit that lands is an
// automatic critical (melee range is the caller's concern, not
// modeled here). The entity also cannot act.
func Paralyzed(entityID string, duration condition.Duration) *condition.Condition {
	return newCondition(refs.Paralyzed, entityID, duration, func(e *entity.Entity) ([]condition.Installed, error) {
		str, err := failSavingThrow(e, refs.Strength, "paralyzed_str_save")
		if err != nil {
			return nil, err
		}
		dex, err := failSavingThrow(e, refs.Dexterity, "paralyzed_dex_save")
		if err != nil {
			return nil, err
		}
		against, err := advantageBroadcast(e, "paralyzed_against", modifier.AdvantageAdvantage)
		if err != nil {
			return nil, err
		}
		crit, err := autoCritBroadcast(e, "paralyzed_crit")
		if err != nil {
			return nil, err
		}
		locked, err := lockActionEconomy(e, "paralyzed_lock", e.ActionEconomy.Actions, e.ActionEconomy.BonusActions, e.ActionEconomy.Reactions)
		if err != nil {
			return nil, err
		}
		return append([]condition.Installed{str, dex, against, crit}, locked...), nil
	})
}

// Poisoned: disadvantage on the poisoned entity's own attack rolls.
func Poisoned(entityID string, duration condition.Duration) *condition.Condition {
	return newCondition(refs.Poisoned, entityID, duration, func(e *entity.Entity) ([]condition.Installed, error) {
		self, err := disadvantageSelfAttack(e, "poisoned_attack")
		if err != nil {
			return nil, err
		}
		return []condition.Installed{self}, nil
	})
}

// Prone: disadvantage on the prone entity's own attack rolls; advantage
// on attacks made against it (the engine does not distinguish the
// attacker's melee/ranged range for this broadcast, so the melee case —
// advantage — is applied uniformly).
func Prone(entityID string, duration condition.Duration) *condition.Condition {
	return newCondition(refs.Prone, entityID, duration, func(e *entity.Entity) ([]condition.Installed, error) {
		self, err := disadvantageSelfAttack(e, "prone_attack")
		if err != nil {
			return nil, err
		}
		against, err := advantageBroadcast(e, "prone_against", modifier.AdvantageAdvantage)
		if err != nil {
			return nil, err
		}
		return []condition.Installed{self, against}, nil
	})
}

// Restrained: disadvantage on the restrained entity's own attack rolls;
// advantage on attacks made against it; disadvantage on its own
// Dexterity saving throws.
func Restrained(entityID string, duration condition.Duration) *condition.Condition {
	return newCondition(refs.Restrained, entityID, duration, func(e *entity.Entity) ([]condition.Installed, error) {
		self, err := disadvantageSelfAttack(e, "restrained_attack")
		if err != nil {
			return nil, err
		}
		against, err := advantageBroadcast(e, "restrained_against", modifier.AdvantageAdvantage)
		if err != nil {
			return nil, err
		}
		dexSave, err := disadvantageSavingThrow(e, refs.Dexterity, "restrained_dex_save")
		if err != nil {
			return nil, err
		}
		return []condition.Installed{self, against, dexSave}, nil
	})
}

// Stunned: auto-fails Strength and Dexterity saves; attacks against the
// stunned entity have advantage; the entity cannot act.
func Stunned(entityID string, duration condition.Duration) *condition.Condition {
	return newCondition(refs.Stunned, entityID, duration, func(e *entity.Entity) ([]condition.Installed, error) {
		str, err := failSavingThrow(e, refs.Strength, "stunned_str_save")
		if err != nil {
			return nil, err
		}
		dex, err := failSavingThrow(e, refs.Dexterity, "stunned_dex_save")
		if err != nil {
			return nil, err
		}
		against, err := advantageBroadcast(e, "stunned_against", modifier.AdvantageAdvantage)
		if err != nil {
			return nil, err
		}
		locked, err := lockActionEconomy(e, "stunned_lock", e.ActionEconomy.Actions, e.ActionEconomy.BonusActions, e.ActionEconomy.Reactions)
		if err != nil {
			return nil, err
		}
		return append([]condition.Installed{str, dex, against}, locked...), nil
	})
}

// Unconscious: Paralyzed's effects plus the entity drops anything it
// was holding and cannot move — modeled here as the union of
// Paralyzed's installs plus a zeroed movement budget.
func Unconscious(entityID string, duration condition.Duration) *condition.Condition {
	return newCondition(refs.Unconscious, entityID, duration, func(e *entity.Entity) ([]condition.Installed, error) {
		str, err := failSavingThrow(e, refs.Strength, "unconscious_str_save")
		if err != nil {
			return nil, err
		}
		dex, err := failSavingThrow(e, refs.Dexterity, "unconscious_dex_save")
		if err != nil {
			return nil, err
		}
		against, err := advantageBroadcast(e, "unconscious_against", modifier.AdvantageAdvantage)
		if err != nil {
			return nil, err
		}
		crit, err := autoCritBroadcast(e, "unconscious_crit")
		if err != nil {
			return nil, err
		}
		locked, err := lockActionEconomy(e, "unconscious_lock", e.ActionEconomy.Actions, e.ActionEconomy.BonusActions, e.ActionEconomy.Reactions, e.ActionEconomy.Movement)
		if err != nil {
			return nil, err
		}
		return append([]condition.Installed{str, dex, against, crit}, locked...), nil
	})
}
