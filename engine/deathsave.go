// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"github.com/ashforge/dnd5e-engine/dice"
	"github.com/ashforge/dnd5e-engine/registry"
	"github.com/ashforge/dnd5e-engine/rpgerr"
)

// DeathSaveState tracks one entity's cumulative death-save successes
// and failures while at 0 HP. Grounded on the saving-throw table in
// dnd/modifiers.py, extended with the death-save-specific DC 10 roll
// and the natural-1/natural-20 special cases from dnd/core.py's
// combat rules.
type DeathSaveState struct {
	Successes int
	Failures  int
	Stable    bool
	Dead      bool
}

// deathSaves is the process-wide store of in-progress death saves, keyed
// by entity id. An entity's entry appears on its first DeathSave and
// stays while it is dying, stable or dead; Revive clears it.
var deathSaves = registry.New[*DeathSaveState]("death_save")

// DeathSaveResult is the outcome of one death-saving-throw roll.
type DeathSaveResult struct {
	Roll  *dice.Record
	State DeathSaveState
}

// DeathSave rolls one death saving throw for entityID: 3 cumulative
// successes stabilize, 3 cumulative failures kill, a natural 20 heals 1
// HP and clears the count entirely, and a natural 1 counts as two
// failures. A stabilized or dead entity keeps its tracked state, so a
// further DeathSave call for it fails until Revive clears the state.
func (r *Resolver) DeathSave(entityID string) (*DeathSaveResult, error) {
	e, err := lookupEntity(entityID)
	if err != nil {
		return nil, err
	}

	state, ok := deathSaves.Get(entityID)
	if !ok {
		state = &DeathSaveState{}
		deathSaves.Register(entityID, state)
	}
	if state.Stable || state.Dead {
		return nil, rpgerr.Invalid("entity is not currently making death saves",
			rpgerr.WithMeta("entity", entityID), rpgerr.WithMeta("stable", state.Stable), rpgerr.WithMeta("dead", state.Dead))
	}

	rec, err := dice.ResolveD20Check(r.Roller, dice.Check, 0, 0, 10)
	if err != nil {
		return nil, err
	}
	natural := rec.Dice[0]

	switch {
	case natural == 20:
		if err := e.Health.Heal(1); err != nil {
			return nil, err
		}
		deathSaves.Unregister(entityID)
		state = &DeathSaveState{}
	case natural == 1:
		state.Failures += 2
	case rec.Outcome == dice.OutcomeHit:
		state.Successes++
	default:
		state.Failures++
	}

	switch {
	case state.Successes >= 3:
		state.Stable = true
	case state.Failures >= 3:
		state.Dead = true
	}

	return &DeathSaveResult{Roll: rec, State: *state}, nil
}

// Revive clears any in-progress death save tracking for entityID,
// for a host that heals a dying entity back above 0 HP by other means.
func Revive(entityID string) {
	deathSaves.Unregister(entityID)
}
