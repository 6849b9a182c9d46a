// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"github.com/ashforge/dnd5e-engine/condition"
	"github.com/ashforge/dnd5e-engine/dice"
	"github.com/ashforge/dnd5e-engine/entity"
	"github.com/ashforge/dnd5e-engine/modifier"
)

var _ condition.SavingThrowRoller = (*Resolver)(nil)

// Resolver is the engine's entry point: a dice.Roller plus the
// resolution methods that read/write entities through the process-wide
// registries. A host creates one Resolver per independent simulation so
// concurrent simulations never share roller state.
type Resolver struct {
	Roller dice.Roller
}

// NewResolver creates a Resolver backed by roller. Pass nil to use
// dice.DefaultRoller.
func NewResolver(roller dice.Roller) *Resolver {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Resolver{Roller: roller}
}

// RollSavingThrow satisfies condition.SavingThrowRoller, letting a
// Condition request an application or removal saving throw without the
// condition package importing entity.
func (r *Resolver) RollSavingThrow(targetEntityID string, req condition.SavingThrowRequest) (bool, error) {
	rec, err := r.SavingThrow(targetEntityID, req.Ability, req.DC, modifier.Context{})
	if err != nil {
		return false, err
	}
	return rec.Outcome == dice.OutcomeHit, nil
}

func lookupEntity(id string) (*entity.Entity, error) {
	return entity.Registry.MustGet(id)
}
