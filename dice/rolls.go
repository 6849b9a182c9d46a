// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

import (
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/registry"
	"github.com/ashforge/dnd5e-engine/rpgerr"
)

// RollType distinguishes d20 resolution rolls from damage expansion.
type RollType string

const (
	Attack RollType = "attack"
	Save   RollType = "save"
	Check  RollType = "check"
	Damage RollType = "damage"
)

// Outcome is the classification of a d20 roll against its target.
type Outcome string

const (
	OutcomeHit  Outcome = "hit"
	OutcomeMiss Outcome = "miss"
)

// HitReason records why an attack resolved the way it did.
type HitReason string

const (
	ReasonNormal    HitReason = "normal"
	ReasonCritical  HitReason = "critical"
	ReasonAutoHit   HitReason = "auto_hit"
	ReasonAutoMiss  HitReason = "auto_miss"
)

// Record is an immutable roll result, addressable by ID once created.
// Grounded on dnd/dice.py's DiceRoll.
type Record struct {
	ID         string
	RollType   RollType
	Dice       []int
	Bonus      int
	Total      int
	Outcome    Outcome
	Reason     HitReason
	Critical   bool
}

// Registry is the process-wide lookup for roll records.
var Registry = registry.New[*Record]("roll")

func registerRecord(r *Record) *Record {
	r.ID = registry.NewID()
	Registry.Register(r.ID, r)
	return r
}

// RollD20 rolls a single d20 check with advantage-aware die selection.
// advantage > 0 rolls two and keeps the max, < 0 keeps the min, 0 rolls
// once.
func RollD20(roller Roller, advantage int) (int, error) {
	if advantage == 0 {
		return roller.Roll(20)
	}
	a, err := roller.Roll(20)
	if err != nil {
		return 0, err
	}
	b, err := roller.Roll(20)
	if err != nil {
		return 0, err
	}
	if advantage > 0 {
		if a > b {
			return a, nil
		}
		return b, nil
	}
	if a < b {
		return a, nil
	}
	return b, nil
}

// AttackParams bundles the inputs ResolveAttack needs: the bonus score,
// aggregate advantage sum, critical/auto-hit states, and the target AC.
type AttackParams struct {
	BonusScore int
	Advantage  int // positive: advantage, negative: disadvantage, zero: neither
	NoCrit     bool
	AutoCrit   bool
	AutoHit    bool
	AutoMiss   bool
	TargetAC   int
}

// ResolveAttack rolls a d20 attack and classifies hit/miss/crit per a
// fixed precedence: AutoMiss tops everything; then AutoHit forces a hit
// (critical only if also AutoCrit or a natural 20, unless NoCrit is
// set) even on a natural 1; then nat1 forces a miss; then nat20 on an
// otherwise-ordinary hit becomes a crit unless NoCrit is set; otherwise
// compare the total to the target AC.
func ResolveAttack(roller Roller, p AttackParams) (*Record, error) {
	natural, err := RollD20(roller, p.Advantage)
	if err != nil {
		return nil, err
	}
	total := natural + p.BonusScore

	rec := &Record{RollType: Attack, Dice: []int{natural}, Bonus: p.BonusScore, Total: total}

	switch {
	case p.AutoMiss:
		rec.Outcome, rec.Reason = OutcomeMiss, ReasonAutoMiss
	case p.AutoHit:
		rec.Outcome, rec.Reason = OutcomeHit, ReasonAutoHit
		if (p.AutoCrit || natural == 20) && !p.NoCrit {
			rec.Critical, rec.Reason = true, ReasonCritical
		}
	case natural == 1:
		rec.Outcome, rec.Reason = OutcomeMiss, ReasonAutoMiss
	case natural == 20:
		rec.Outcome = OutcomeHit
		if p.NoCrit {
			rec.Reason = ReasonNormal
		} else {
			rec.Critical, rec.Reason = true, ReasonCritical
		}
	case total >= p.TargetAC:
		rec.Outcome, rec.Reason = OutcomeHit, ReasonNormal
	default:
		rec.Outcome, rec.Reason = OutcomeMiss, ReasonNormal
	}

	return registerRecord(rec), nil
}

// ResolveD20Check rolls a save or skill check: success = total >= dc, no
// natural-20/1 special casing.
func ResolveD20Check(roller Roller, rollType RollType, advantage, bonusScore, dc int) (*Record, error) {
	if rollType != Save && rollType != Check {
		return nil, rpgerr.RuleViolation("ResolveD20Check requires Save or Check", rpgerr.WithMeta("roll_type", string(rollType)))
	}
	natural, err := RollD20(roller, advantage)
	if err != nil {
		return nil, err
	}
	total := natural + bonusScore
	rec := &Record{RollType: rollType, Dice: []int{natural}, Bonus: bonusScore, Total: total, Reason: ReasonNormal}
	if total >= dc {
		rec.Outcome = OutcomeHit
	} else {
		rec.Outcome = OutcomeMiss
	}
	return registerRecord(rec), nil
}

// RollDamage rolls a damage expression: count dice of faceValue, doubled
// if the preceding attack was a crit, plus a flat bonus. advantage
// applies per-die max/min selection for the rare damage source that
// rolls its dice with advantage.
func RollDamage(roller Roller, count, faceValue, bonusScore int, advantage int, wasCrit bool) (*Record, error) {
	if count <= 0 || faceValue <= 0 {
		return nil, rpgerr.RuleViolation("damage roll requires positive count and face value",
			rpgerr.WithMeta("count", count), rpgerr.WithMeta("face_value", faceValue))
	}
	effectiveCount := count
	if wasCrit {
		effectiveCount *= 2
	}

	dice := make([]int, effectiveCount)
	total := 0
	for i := 0; i < effectiveCount; i++ {
		roll, err := rollDamageDie(roller, faceValue, advantage)
		if err != nil {
			return nil, err
		}
		dice[i] = roll
		total += roll
	}
	total += bonusScore

	rec := &Record{RollType: Damage, Dice: dice, Bonus: bonusScore, Total: total, Outcome: OutcomeHit, Reason: ReasonNormal, Critical: wasCrit}
	return registerRecord(rec), nil
}

func rollDamageDie(roller Roller, faceValue, advantage int) (int, error) {
	if advantage == 0 {
		return roller.Roll(faceValue)
	}
	a, err := roller.Roll(faceValue)
	if err != nil {
		return 0, err
	}
	b, err := roller.Roll(faceValue)
	if err != nil {
		return 0, err
	}
	if advantage > 0 {
		if a > b {
			return a, nil
		}
		return b, nil
	}
	if a < b {
		return a, nil
	}
	return b, nil
}

// AdvantageFromStatus converts a modifier.AdvantageStatus into the
// signed int RollD20/rollDamageDie expect.
func AdvantageFromStatus(s modifier.AdvantageStatus) int {
	return s.NumericalValue()
}
