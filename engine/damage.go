// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"github.com/ashforge/dnd5e-engine/block"
	"github.com/ashforge/dnd5e-engine/modifier"
)

// TakeDamage runs the damage-intake pipeline directly against an
// entity's Health, for sources other than a weapon attack (spells,
// hazards, ongoing effects). Grounded on dnd/core.py's apply_damage.
func (r *Resolver) TakeDamage(entityID string, rolls []block.IncomingDamage, ctx modifier.Context) ([]block.DamageApplication, int, error) {
	e, err := lookupEntity(entityID)
	if err != nil {
		return nil, 0, err
	}
	return e.Health.ApplyDamage(rolls, ctx)
}

// Heal reduces entityID's accumulated damage taken.
func (r *Resolver) Heal(entityID string, amount int) error {
	e, err := lookupEntity(entityID)
	if err != nil {
		return err
	}
	return e.Health.Heal(amount)
}
