// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"github.com/ashforge/dnd5e-engine/condition"
	"github.com/ashforge/dnd5e-engine/refs"
)

// AddCondition applies c to entityID's condition manager, respecting
// immunity and any application saving throw c carries.
func (r *Resolver) AddCondition(entityID string, c *condition.Condition) (condition.ApplyResult, error) {
	e, err := lookupEntity(entityID)
	if err != nil {
		return condition.ApplyResult{}, err
	}
	return e.Conditions.Apply(c, r)
}

// RemoveCondition removes the named condition from entityID if active.
func (r *Resolver) RemoveCondition(entityID string, name refs.ConditionName) error {
	e, err := lookupEntity(entityID)
	if err != nil {
		return err
	}
	return e.Conditions.Remove(name)
}

// ProgressRound advances entityID's active conditions by one round
// tick, rolling any configured removal saving throws and sweeping away
// whatever expires.
func (r *Resolver) ProgressRound(entityID string) error {
	e, err := lookupEntity(entityID)
	if err != nil {
		return err
	}
	return e.Conditions.ProgressRound(r)
}

// LongRest signals a long rest to entityID: its until-long-rest
// conditions clear and its action economy budgets refresh.
func (r *Resolver) LongRest(entityID string) error {
	e, err := lookupEntity(entityID)
	if err != nil {
		return err
	}
	e.Conditions.LongRest()
	for _, c := range e.Conditions.Active() {
		if c.Duration.Type == condition.UntilLongRest && c.Duration.IsExpired() {
			if err := e.Conditions.Remove(c.Name); err != nil {
				return err
			}
		}
	}
	e.ActionEconomy.RefreshRound()
	return nil
}

// RefreshActionEconomy resets entityID's per-round action/bonus
// action/reaction/movement budgets to full, without touching
// conditions.
func (r *Resolver) RefreshActionEconomy(entityID string) error {
	e, err := lookupEntity(entityID)
	if err != nil {
		return err
	}
	e.ActionEconomy.RefreshRound()
	return nil
}
