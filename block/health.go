// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package block

import (
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/registry"
	"github.com/ashforge/dnd5e-engine/rpgerr"
	"github.com/ashforge/dnd5e-engine/value"
)

// HitDiceMode is how a hit die's expected value is computed for max-HP
// purposes.
type HitDiceMode string

const (
	Average  HitDiceMode = "average"
	Maximums HitDiceMode = "maximums"
	Roll     HitDiceMode = "roll"
)

// HitDice is one class level's worth of hit die: face size, how many,
// and how to compute its expected contribution to max HP.
type HitDice struct {
	Face  int
	Count int
	Mode  HitDiceMode
}

// Expected returns this HitDice's contribution to max HP before the
// constitution modifier is added, per its Mode.
func (hd HitDice) Expected() int {
	switch hd.Mode {
	case Maximums:
		return hd.Face * hd.Count
	case Average:
		return (hd.Face/2 + 1) * hd.Count
	default: // Roll: not pre-computable without a roller; treat as average.
		return (hd.Face/2 + 1) * hd.Count
	}
}

// DamageApplication is the per-type outcome recorded when a damage roll
// is applied to Health, useful for the result the resolution engine
// returns to callers.
type DamageApplication struct {
	DamageType       modifier.DamageType
	RawAmount        int
	PostResistance   int
	ResistanceStatus modifier.ResistanceStatus
}

// Health tracks hit dice, max-HP modifiers, temporary HP, flat damage
// reduction, and cumulative damage taken. Grounded on
// app/models/health.py.
type Health struct {
	Base
	HitDices           []HitDice
	MaxHitPointsBonus  *value.ModifiableValue
	TemporaryHitPoints *value.ModifiableValue
	DamageReduction    *value.ModifiableValue
	DamageTaken        int
}

// NewHealth creates a Health block with the given hit dice.
func NewHealth(sourceEntityID string, hitDices []HitDice) *Health {
	h := &Health{
		Base:               NewBase("health", sourceEntityID),
		HitDices:           hitDices,
		MaxHitPointsBonus:  value.NewModifiableValue("max_hit_points_bonus", sourceEntityID, false),
		TemporaryHitPoints: value.NewModifiableValue("temporary_hit_points", sourceEntityID, false),
		DamageReduction:    value.NewModifiableValue("damage_reduction", sourceEntityID, false),
	}
	Registry.Register(string(h.ID), h)
	return h
}

// TotalHitDiceCount sums the dice count across every HitDice entry.
func (h *Health) TotalHitDiceCount() int {
	total := 0
	for _, hd := range h.HitDices {
		total += hd.Count
	}
	return total
}

// MaxHP computes the entity's maximum hit points given its constitution
// modifier: Σ hit-die expectations + con·total_dice +
// max_hit_points_bonus.score.
func (h *Health) MaxHP(conModifier int, ctx Context) (int, error) {
	sum := 0
	for _, hd := range h.HitDices {
		sum += hd.Expected()
	}
	bonus, err := h.MaxHitPointsBonus.Score(ctx)
	if err != nil {
		return 0, err
	}
	return sum + conModifier*h.TotalHitDiceCount() + bonus, nil
}

// CurrentHP is max(0, MaxHP - DamageTaken).
func (h *Health) CurrentHP(conModifier int, ctx Context) (int, error) {
	max, err := h.MaxHP(conModifier, ctx)
	if err != nil {
		return 0, err
	}
	current := max - h.DamageTaken
	if current < 0 {
		return 0, nil
	}
	return current, nil
}

// resistanceFor returns the status stored for dt in this Health's
// resistance side table (set with SetResistance), or ResistanceNone if
// none is stored. DamageReduction carries no per-type resistance state;
// it only supplies the flat reduction score.
func (h *Health) resistanceFor(dt modifier.DamageType) modifier.ResistanceStatus {
	if status, ok := h.resistances()[dt]; ok {
		return status
	}
	return modifier.ResistanceNone
}

// resistanceTable lets a caller install per-damage-type resistance
// state directly, since StaticValue has no typed resistance collection
// of its own — resistance modifiers are kept in a side table keyed by
// damage type, mirroring dnd's get_resistance/Health._damage_type_resistances.
type resistanceTable map[modifier.DamageType]modifier.ResistanceStatus

var healthResistances = registry.New[resistanceTable]("health_resistance_table")

func (h *Health) resistances() resistanceTable {
	t, ok := healthResistances.Get(string(h.ID))
	if !ok {
		t = resistanceTable{}
		healthResistances.Register(string(h.ID), t)
	}
	return t
}

// SetResistance installs the resistance/immunity/vulnerability state for
// a damage type.
func (h *Health) SetResistance(dt modifier.DamageType, status modifier.ResistanceStatus) {
	h.resistances()[dt] = status
}

// damageMultiplier converts a resistance status into the incoming
// damage multiplier a resistance status applies to incoming damage.
func damageMultiplier(status modifier.ResistanceStatus) float64 {
	switch status {
	case modifier.Immunity:
		return 0
	case modifier.Resistance:
		return 0.5
	case modifier.Vulnerability:
		return 2
	default:
		return 1
	}
}

// IncomingDamage is one damage roll's type and raw amount, prior to
// resistance and reduction.
type IncomingDamage struct {
	DamageType modifier.DamageType
	Amount     int
}

// ApplyDamage runs the full damage-intake pipeline: per-type resistance
// multiplier, flat damage reduction, temp-HP absorption, then HP.
// Returns the per-roll post-resistance amounts and the total HP lost
// (after temp HP absorption).
func (h *Health) ApplyDamage(rolls []IncomingDamage, ctx Context) ([]DamageApplication, int, error) {
	apps := make([]DamageApplication, 0, len(rolls))
	postResistanceTotal := 0
	for _, r := range rolls {
		status := h.resistanceFor(r.DamageType)
		post := int(float64(r.Amount) * damageMultiplier(status))
		apps = append(apps, DamageApplication{DamageType: r.DamageType, RawAmount: r.Amount, PostResistance: post, ResistanceStatus: status})
		postResistanceTotal += post
	}

	reduction, err := h.DamageReduction.Score(ctx)
	if err != nil {
		return nil, 0, err
	}
	if reduction < 0 {
		reduction = 0
	}
	afterReduction := postResistanceTotal - reduction
	if afterReduction < 0 {
		afterReduction = 0
	}

	tempHP, err := h.TemporaryHitPoints.Score(ctx)
	if err != nil {
		return nil, 0, err
	}
	hpLoss := afterReduction
	if tempHP > 0 {
		absorbed := afterReduction
		if absorbed > tempHP {
			absorbed = tempHP
		}
		newTemp := tempHP - absorbed
		hpLoss = afterReduction - absorbed
		h.setTempHP(newTemp)
	}

	h.DamageTaken += hpLoss
	return apps, hpLoss, nil
}

// setTempHP removes every temporary-hit-points pool modifier and adds a
// new one only when newValue > 0; otherwise the pool is left empty and
// scores 0.
func (h *Health) setTempHP(newValue int) {
	for id := range h.TemporaryHitPoints.SelfStatic.ValueModifiers {
		h.TemporaryHitPoints.SelfStatic.RemoveModifier(id)
	}
	if newValue > 0 {
		_ = h.TemporaryHitPoints.SelfStatic.AddValueModifier(
			modifier.NewNumerical("temp_hp_pool", h.SourceEntityID, h.SourceEntityID, newValue))
	}
}

// AddTemporaryHP replaces the pool only if amount exceeds the current
// value (5e temp HP does not stack).
func (h *Health) AddTemporaryHP(amount int, ctx Context) error {
	current, err := h.TemporaryHitPoints.Score(ctx)
	if err != nil {
		return err
	}
	if amount > current {
		h.setTempHP(amount)
	}
	return nil
}

// Heal reduces DamageTaken, never below zero. It applies at any current
// HP, zero included: Health has no dead or revived state, so it does not
// skip healing for a dead entity.
func (h *Health) Heal(amount int) error {
	if amount < 0 {
		return rpgerr.Invalid("heal amount must be non-negative")
	}
	h.DamageTaken -= amount
	if h.DamageTaken < 0 {
		h.DamageTaken = 0
	}
	return nil
}

func (h *Health) SetTargetEntity(targetEntityID string) {
	h.TargetEntityID = targetEntityID
	Propagate(targetEntityID, []Propagator{Value(h.MaxHitPointsBonus), Value(h.TemporaryHitPoints), Value(h.DamageReduction)}, nil)
}

func (h *Health) ClearTargetEntity() {
	h.TargetEntityID = ""
	ClearPropagate([]Propagator{Value(h.MaxHitPointsBonus), Value(h.TemporaryHitPoints), Value(h.DamageReduction)}, nil)
}
