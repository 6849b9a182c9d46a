// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package entity

import (
	"github.com/ashforge/dnd5e-engine/block"
	"github.com/ashforge/dnd5e-engine/condition"
	"github.com/ashforge/dnd5e-engine/refs"
	"github.com/ashforge/dnd5e-engine/registry"
)

// ID identifies an entity in the process-wide Registry.
type ID string

// Registry is the process-wide lookup for every entity.
var Registry = registry.New[*Entity]("entity")

// Entity is the aggregate root for one creature: every block it owns,
// its proficiency bonus, its senses, its grid position, an optional
// target entity, and its active-condition manager. Grounded on
// dnd/core.py's Entity / dnd/statsblock.py.
type Entity struct {
	ID               ID
	Name             string
	AbilityScores    *block.AbilityScores
	SkillSet         *block.SkillSet
	SavingThrowSet   *block.SavingThrowSet
	Equipment        *block.Equipment
	Health           *block.Health
	ActionEconomy    *block.ActionEconomy
	ProficiencyBonus int
	Senses           []Sense
	Position         Position
	TargetEntityID   string
	Conditions       *condition.Manager
}

// Config seeds a new Entity's blocks.
type Config struct {
	Name             string
	AbilityScores    map[refs.Ability]int
	HitDice          []block.HitDice
	SpeedFeet        int
	ProficiencyBonus int
	Senses           []Sense
}

// New builds an Entity and every block it owns, all under one source
// entity id, and registers it in Registry.
func New(cfg Config) *Entity {
	id := ID(registry.NewID())
	source := string(id)
	e := &Entity{
		ID:               id,
		Name:             cfg.Name,
		AbilityScores:    block.NewAbilityScores(source, cfg.AbilityScores),
		SkillSet:         block.NewSkillSet(source),
		SavingThrowSet:   block.NewSavingThrowSet(source),
		Equipment:        block.NewEquipment(source),
		Health:           block.NewHealth(source, cfg.HitDice),
		ActionEconomy:    block.NewActionEconomy(source, cfg.SpeedFeet),
		ProficiencyBonus: cfg.ProficiencyBonus,
		Senses:           cfg.Senses,
		Conditions:       condition.NewManager(source),
	}
	Registry.Register(source, e)
	return e
}

// propagators lists every block a target change must reach.
func (e *Entity) propagators() []block.Propagator {
	return []block.Propagator{e.AbilityScores, e.SkillSet, e.SavingThrowSet, e.Equipment, e.Health, e.ActionEconomy}
}

// SetTarget points every owned block's ModifiableValues at
// targetEntityID, so their to_target_* layers can be snapshotted into
// the target's from_target_* slots at roll time.
func (e *Entity) SetTarget(targetEntityID string) {
	e.TargetEntityID = targetEntityID
	for _, p := range e.propagators() {
		p.SetTargetEntity(targetEntityID)
	}
}

// ClearTarget drops the current target and the from_target_* snapshots
// it carried.
func (e *Entity) ClearTarget() {
	e.TargetEntityID = ""
	for _, p := range e.propagators() {
		p.ClearTargetEntity()
	}
}

// IsImmuneTo satisfies condition.ImmunityChecker by delegating to the
// entity's condition manager.
func (e *Entity) IsImmuneTo(name refs.ConditionName) bool {
	return e.Conditions.IsImmuneTo(name)
}
