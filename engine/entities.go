// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"github.com/ashforge/dnd5e-engine/entity"
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/refs"
)

// EntitySummary is a read-only snapshot of an entity's computed state,
// the shape a host's API layer would serialize back to a client.
// Grounded on dnd/statsblock.py's to_dict-style summary surface.
type EntitySummary struct {
	ID               string
	Name             string
	AbilityScores    map[refs.Ability]int
	ArmorClass       int
	CurrentHP        int
	MaxHP            int
	Actions          int
	BonusActions     int
	Reactions        int
	Movement         int
	Position         entity.Position
	ActiveConditions []refs.ConditionName
}

// Summarize computes a full EntitySummary for e under ctx.
func Summarize(e *entity.Entity, ctx modifier.Context) (*EntitySummary, error) {
	abilities := make(map[refs.Ability]int, len(refs.Abilities))
	for _, a := range refs.Abilities {
		mod, err := e.AbilityScores.Get(a).Modifier(ctx)
		if err != nil {
			return nil, err
		}
		abilities[a] = mod
	}

	ac, err := ArmorClass(e, ctx)
	if err != nil {
		return nil, err
	}
	conMod, err := e.AbilityScores.Get(refs.Constitution).Modifier(ctx)
	if err != nil {
		return nil, err
	}
	current, err := e.Health.CurrentHP(conMod, ctx)
	if err != nil {
		return nil, err
	}
	max, err := e.Health.MaxHP(conMod, ctx)
	if err != nil {
		return nil, err
	}
	actions, err := e.ActionEconomy.Actions.Remaining(ctx)
	if err != nil {
		return nil, err
	}
	bonusActions, err := e.ActionEconomy.BonusActions.Remaining(ctx)
	if err != nil {
		return nil, err
	}
	reactions, err := e.ActionEconomy.Reactions.Remaining(ctx)
	if err != nil {
		return nil, err
	}
	movement, err := e.ActionEconomy.Movement.Remaining(ctx)
	if err != nil {
		return nil, err
	}

	active := e.Conditions.Active()
	names := make([]refs.ConditionName, 0, len(active))
	for _, c := range active {
		names = append(names, c.Name)
	}

	return &EntitySummary{
		ID:               string(e.ID),
		Name:             e.Name,
		AbilityScores:    abilities,
		ArmorClass:       ac,
		CurrentHP:        current,
		MaxHP:            max,
		Actions:          actions,
		BonusActions:     bonusActions,
		Reactions:        reactions,
		Movement:         movement,
		Position:         e.Position,
		ActiveConditions: names,
	}, nil
}

// GetEntity returns entityID's computed summary.
func (r *Resolver) GetEntity(entityID string, ctx modifier.Context) (*EntitySummary, error) {
	e, err := lookupEntity(entityID)
	if err != nil {
		return nil, err
	}
	return Summarize(e, ctx)
}

// ListEntities returns a summary of every registered entity. Order is
// unspecified, matching registry.Store.All.
func (r *Resolver) ListEntities(ctx modifier.Context) ([]*EntitySummary, error) {
	out := make([]*EntitySummary, 0, entity.Registry.Len())
	for _, e := range entity.Registry.All() {
		summary, err := Summarize(e, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, nil
}
