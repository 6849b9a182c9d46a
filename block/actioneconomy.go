// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package block

import (
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/rpgerr"
	"github.com/ashforge/dnd5e-engine/value"
)

// Budget is one resource track (actions, bonus actions, reactions, or
// movement) for the current round: a ModifiableValue with a base
// amount, against which costs are installed as negative modifiers and
// later swept away by Refresh. Grounded on
// app/models/action_economy.py.
type Budget struct {
	Value    *value.ModifiableValue
	base     int
	costIDs  []modifier.ID
}

func newBudget(name, sourceEntityID string, base int) *Budget {
	b := &Budget{Value: value.NewModifiableValue(name, sourceEntityID, false), base: base}
	b.installBase()
	return b
}

func (b *Budget) installBase() {
	m := modifier.NewNumerical(b.Value.Name+"_base", b.Value.SourceEntityID, b.Value.SourceEntityID, b.base)
	_ = b.Value.SelfStatic.AddValueModifier(m)
}

// Remaining returns the budget's current score.
func (b *Budget) Remaining(ctx Context) (int, error) {
	return b.Value.Score(ctx)
}

// Spend installs a negative cost modifier for amount, failing if doing
// so would take the budget below zero.
func (b *Budget) Spend(amount int, ctx Context) error {
	if amount <= 0 {
		return rpgerr.Invalid("spend amount must be positive")
	}
	remaining, err := b.Remaining(ctx)
	if err != nil {
		return err
	}
	if remaining < amount {
		return rpgerr.Conflict("insufficient budget",
			rpgerr.WithMeta("budget", b.Value.Name), rpgerr.WithMeta("remaining", remaining), rpgerr.WithMeta("requested", amount))
	}
	m := modifier.NewNumerical(b.Value.Name+"_cost", b.Value.SourceEntityID, b.Value.SourceEntityID, -amount)
	if err := b.Value.SelfStatic.AddValueModifier(m); err != nil {
		return err
	}
	b.costIDs = append(b.costIDs, m.ID)
	return nil
}

// Refresh removes every cost modifier installed this round and leaves
// the base untouched, resetting the budget to its full value.
func (b *Budget) Refresh() {
	for _, id := range b.costIDs {
		b.Value.SelfStatic.RemoveModifier(id)
	}
	b.costIDs = nil
}

// SetTargetEntity/ClearTargetEntity satisfy Propagator.
func (b *Budget) SetTargetEntity(targetEntityID string) { b.Value.SetTargetEntity(targetEntityID) }
func (b *Budget) ClearTargetEntity()                    { b.Value.ClearTargetEntity() }

// ActionEconomy tracks the four per-round resource budgets plus the
// entity's own attack-roll modifier channel: self-imposed
// advantage/disadvantage (from conditions like Restrained or Prone) and
// the from_target_* snapshot an attack pulls in from the defender's
// broadcast channel at roll time.
type ActionEconomy struct {
	Base
	Actions      *Budget
	BonusActions *Budget
	Reactions    *Budget
	Movement     *Budget
	AttackRoll   *value.ModifiableValue
}

// NewActionEconomy creates an ActionEconomy with the standard base
// budgets (1 action, 1 bonus action, 1 reaction, speedFeet of movement).
func NewActionEconomy(sourceEntityID string, speedFeet int) *ActionEconomy {
	ae := &ActionEconomy{
		Base:         NewBase("action_economy", sourceEntityID),
		Actions:      newBudget("actions", sourceEntityID, 1),
		BonusActions: newBudget("bonus_actions", sourceEntityID, 1),
		Reactions:    newBudget("reactions", sourceEntityID, 1),
		Movement:     newBudget("movement", sourceEntityID, speedFeet),
		AttackRoll:   value.NewModifiableValue("attack_roll", sourceEntityID, false),
	}
	Registry.Register(string(ae.ID), ae)
	return ae
}

// RefreshRound resets every budget for a new round.
func (ae *ActionEconomy) RefreshRound() {
	ae.Actions.Refresh()
	ae.BonusActions.Refresh()
	ae.Reactions.Refresh()
	ae.Movement.Refresh()
}

func (ae *ActionEconomy) propagators() []Propagator {
	return []Propagator{ae.Actions, ae.BonusActions, ae.Reactions, ae.Movement, Value(ae.AttackRoll)}
}

func (ae *ActionEconomy) SetTargetEntity(targetEntityID string) {
	ae.TargetEntityID = targetEntityID
	Propagate(targetEntityID, ae.propagators(), nil)
}

func (ae *ActionEconomy) ClearTargetEntity() {
	ae.TargetEntityID = ""
	ClearPropagate(ae.propagators(), nil)
}
