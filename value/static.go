// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package value

import (
	"strings"

	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/registry"
	"github.com/ashforge/dnd5e-engine/rpgerr"
)

// StaticValue holds six modifier collections indexed by modifier id and
// computes an aggregate score, advantage/critical/auto-hit status, and
// min/max bounds. Grounded on dnd/values.py's StaticValue.
type StaticValue struct {
	ID                 ID
	Name               string
	SourceEntityID     string
	TargetEntityID     string
	IsOutgoingModifier bool
	ScoreNormalizer    Normalizer

	ValueModifiers     map[modifier.ID]modifier.Numerical
	MinConstraints     map[modifier.ID]modifier.Numerical
	MaxConstraints     map[modifier.ID]modifier.Numerical
	AdvantageModifiers map[modifier.ID]modifier.Advantage
	CriticalModifiers  map[modifier.ID]modifier.Critical
	AutoHitModifiers   map[modifier.ID]modifier.AutoHitMod

	GeneratedFrom []ID
}

// NewStaticValue creates an empty StaticValue owned by sourceEntityID and
// registers it in Registry.
func NewStaticValue(name, sourceEntityID string, isOutgoing bool) *StaticValue {
	sv := &StaticValue{
		ID:                 ID(registry.NewID()),
		Name:               name,
		SourceEntityID:     sourceEntityID,
		IsOutgoingModifier: isOutgoing,
		ScoreNormalizer:    Identity,
		ValueModifiers:     map[modifier.ID]modifier.Numerical{},
		MinConstraints:     map[modifier.ID]modifier.Numerical{},
		MaxConstraints:     map[modifier.ID]modifier.Numerical{},
		AdvantageModifiers: map[modifier.ID]modifier.Advantage{},
		CriticalModifiers:  map[modifier.ID]modifier.Critical{},
		AutoHitModifiers:   map[modifier.ID]modifier.AutoHitMod{},
	}
	Registry.Register(string(sv.ID), sv)
	return sv
}

// validateTarget enforces that a contained modifier's target must equal
// the value's source unless IsOutgoingModifier, in which case it must
// differ.
func (s *StaticValue) validateTarget(targetEntityID string) error {
	if s.IsOutgoingModifier {
		if targetEntityID == s.SourceEntityID {
			return rpgerr.Invalid("outgoing modifier target must differ from the value's source entity",
				rpgerr.WithMeta("value_id", string(s.ID)))
		}
		return nil
	}
	if targetEntityID != s.SourceEntityID {
		return rpgerr.Invalid("non-outgoing modifier target must equal the value's source entity",
			rpgerr.WithMeta("value_id", string(s.ID)))
	}
	return nil
}

// AddValueModifier inserts a numerical modifier into the score sum.
func (s *StaticValue) AddValueModifier(m modifier.Numerical) error {
	if err := s.validateTarget(m.TargetEntityID); err != nil {
		return err
	}
	s.ValueModifiers[m.ID] = m
	return nil
}

// AddMinConstraint inserts a floor constraint.
func (s *StaticValue) AddMinConstraint(m modifier.Numerical) error {
	if err := s.validateTarget(m.TargetEntityID); err != nil {
		return err
	}
	s.MinConstraints[m.ID] = m
	return nil
}

// AddMaxConstraint inserts a ceiling constraint.
func (s *StaticValue) AddMaxConstraint(m modifier.Numerical) error {
	if err := s.validateTarget(m.TargetEntityID); err != nil {
		return err
	}
	s.MaxConstraints[m.ID] = m
	return nil
}

// AddAdvantageModifier inserts an advantage/disadvantage source.
func (s *StaticValue) AddAdvantageModifier(m modifier.Advantage) error {
	if err := s.validateTarget(m.TargetEntityID); err != nil {
		return err
	}
	s.AdvantageModifiers[m.ID] = m
	return nil
}

// AddCriticalModifier inserts a critical-forcing/forbidding source.
func (s *StaticValue) AddCriticalModifier(m modifier.Critical) error {
	if err := s.validateTarget(m.TargetEntityID); err != nil {
		return err
	}
	s.CriticalModifiers[m.ID] = m
	return nil
}

// AddAutoHitModifier inserts an auto-hit/auto-miss source.
func (s *StaticValue) AddAutoHitModifier(m modifier.AutoHitMod) error {
	if err := s.validateTarget(m.TargetEntityID); err != nil {
		return err
	}
	s.AutoHitModifiers[m.ID] = m
	return nil
}

// RemoveModifier removes id from every collection it might be in. A
// modifier id is unique across all six collections in practice, so at
// most one delete is ever observable; trying all six keeps the caller
// from needing to know which collection it landed in.
func (s *StaticValue) RemoveModifier(id modifier.ID) {
	delete(s.ValueModifiers, id)
	delete(s.MinConstraints, id)
	delete(s.MaxConstraints, id)
	delete(s.AdvantageModifiers, id)
	delete(s.CriticalModifiers, id)
	delete(s.AutoHitModifiers, id)
}

// Min returns the floor constraint, or nil if none is set.
func (s *StaticValue) Min() *int {
	if len(s.MinConstraints) == 0 {
		return nil
	}
	min := 0
	first := true
	for _, m := range s.MinConstraints {
		if first || m.Value < min {
			min = m.Value
			first = false
		}
	}
	return &min
}

// Max returns the ceiling constraint, or nil if none is set.
func (s *StaticValue) Max() *int {
	if len(s.MaxConstraints) == 0 {
		return nil
	}
	max := 0
	first := true
	for _, m := range s.MaxConstraints {
		if first || m.Value > max {
			max = m.Value
			first = false
		}
	}
	return &max
}

// Score sums the value modifiers and clamps to [Min, Max], with the min
// floor winning if the bounds are inverted.
func (s *StaticValue) Score() int {
	sum := 0
	for _, m := range s.ValueModifiers {
		sum += m.Value
	}
	return clamp(sum, s.Min(), s.Max())
}

// clamp applies the engine-wide "min wins over max" floor rule shared by
// StaticValue and ModifiableValue.
func clamp(sum int, min, max *int) int {
	switch {
	case min != nil && max != nil:
		if *min > *max {
			return *min
		}
		if sum < *min {
			return *min
		}
		if sum > *max {
			return *max
		}
		return sum
	case max != nil:
		if sum > *max {
			return *max
		}
		return sum
	case min != nil:
		if sum < *min {
			return *min
		}
		return sum
	default:
		return sum
	}
}

// NormalizedScore applies ScoreNormalizer to Score.
func (s *StaticValue) NormalizedScore() int {
	return s.ScoreNormalizer(s.Score())
}

// AdvantageSum is the signed sum of every advantage modifier's numerical value.
func (s *StaticValue) AdvantageSum() int {
	sum := 0
	for _, m := range s.AdvantageModifiers {
		sum += m.Status.NumericalValue()
	}
	return sum
}

// Advantage resolves the aggregate advantage state from AdvantageSum.
func (s *StaticValue) Advantage() modifier.AdvantageStatus {
	switch {
	case s.AdvantageSum() > 0:
		return modifier.AdvantageAdvantage
	case s.AdvantageSum() < 0:
		return modifier.AdvantageDisadvantage
	default:
		return modifier.AdvantageNone
	}
}

// Critical resolves the aggregate critical state: NoCrit beats AutoCrit
// beats None.
func (s *StaticValue) Critical() modifier.CriticalStatus {
	sawAuto := false
	for _, m := range s.CriticalModifiers {
		if m.Status == modifier.CriticalNoCrit {
			return modifier.CriticalNoCrit
		}
		if m.Status == modifier.CriticalAuto {
			sawAuto = true
		}
	}
	if sawAuto {
		return modifier.CriticalAuto
	}
	return modifier.CriticalNone
}

// AutoHit resolves the aggregate auto-hit state: AutoMiss beats AutoHit
// beats None.
func (s *StaticValue) AutoHit() modifier.AutoHitStatus {
	sawAutoHit := false
	for _, m := range s.AutoHitModifiers {
		if m.Status == modifier.AutoMiss {
			return modifier.AutoMiss
		}
		if m.Status == modifier.AutoHit {
			sawAutoHit = true
		}
	}
	if sawAutoHit {
		return modifier.AutoHit
	}
	return modifier.AutoHitNone
}

// SetTargetEntity rewrites the target entity recorded on this value.
// Does not touch already-inserted modifiers' own target ids — those were
// validated at insertion time.
func (s *StaticValue) SetTargetEntity(targetEntityID string) {
	s.TargetEntityID = targetEntityID
}

// ClearTargetEntity clears the target entity.
func (s *StaticValue) ClearTargetEntity() {
	s.TargetEntityID = ""
}

// Combine merges this StaticValue with others sharing the same source
// entity into a new StaticValue, unioning every modifier collection.
// Grounded on dnd/values.py's StaticValue.combine_values.
func (s *StaticValue) Combine(others []*StaticValue) (*StaticValue, error) {
	names := []string{s.Name}
	out := NewStaticValue(s.Name, s.SourceEntityID, s.IsOutgoingModifier)
	out.ScoreNormalizer = s.ScoreNormalizer
	out.GeneratedFrom = append(out.GeneratedFrom, s.ID)
	for k, v := range s.ValueModifiers {
		out.ValueModifiers[k] = v
	}
	for k, v := range s.MinConstraints {
		out.MinConstraints[k] = v
	}
	for k, v := range s.MaxConstraints {
		out.MaxConstraints[k] = v
	}
	for k, v := range s.AdvantageModifiers {
		out.AdvantageModifiers[k] = v
	}
	for k, v := range s.CriticalModifiers {
		out.CriticalModifiers[k] = v
	}
	for k, v := range s.AutoHitModifiers {
		out.AutoHitModifiers[k] = v
	}
	for _, other := range others {
		if other.SourceEntityID != s.SourceEntityID {
			return nil, rpgerr.Invalid("cannot combine static values with different source entities",
				rpgerr.WithMeta("expected", s.SourceEntityID), rpgerr.WithMeta("got", other.SourceEntityID))
		}
		names = append(names, other.Name)
		out.GeneratedFrom = append(out.GeneratedFrom, other.ID)
		for k, v := range other.ValueModifiers {
			out.ValueModifiers[k] = v
		}
		for k, v := range other.MinConstraints {
			out.MinConstraints[k] = v
		}
		for k, v := range other.MaxConstraints {
			out.MaxConstraints[k] = v
		}
		for k, v := range other.AdvantageModifiers {
			out.AdvantageModifiers[k] = v
		}
		for k, v := range other.CriticalModifiers {
			out.CriticalModifiers[k] = v
		}
		for k, v := range other.AutoHitModifiers {
			out.AutoHitModifiers[k] = v
		}
	}
	out.Name = strings.Join(names, "_")
	return out, nil
}
