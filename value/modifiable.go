// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package value

import (
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/registry"
	"github.com/ashforge/dnd5e-engine/rpgerr"
)

// ModifiableValue is the composite unit the rest of the engine reads a
// score, an advantage state, a critical state, or an auto-hit state
// from. It owns six layers, three StaticValue and three ContextualValue:
//
//   - SelfStatic / SelfContextual: modifiers the owning entity applies
//     to itself (ability scores, proficiency, equipment bonuses).
//   - ToTargetStatic / ToTargetContextual: outgoing modifiers this
//     entity is about to project onto whatever it next targets (e.g. a
//     rage bonus to damage). These never contribute to this value's own
//     Score, Advantage, Critical, or AutoHit — only to the snapshot
//     copied into a target's From* layers.
//   - FromTargetStatic / FromTargetContextual: a frozen copy of another
//     entity's ToTarget layers, taken when SetFromTarget is called with
//     that entity's value. Snapshot semantics, not a live reference:
//     mutating the source entity afterward does not change what was
//     copied here.
//
// Grounded on dnd/modifiable_values.py's ModifiableValue.
type ModifiableValue struct {
	ID                 ID
	Name               string
	SourceEntityID     string
	TargetEntityID     string
	IsOutgoingModifier bool
	ScoreNormalizer    Normalizer

	SelfStatic     *StaticValue
	SelfContextual *ContextualValue

	ToTargetStatic     *StaticValue
	ToTargetContextual *ContextualValue

	FromTargetStatic     *StaticValue
	FromTargetContextual *ContextualValue

	GeneratedFrom []ID
}

// NewModifiableValue creates a ModifiableValue with all six layers
// freshly allocated and owned by sourceEntityID.
func NewModifiableValue(name, sourceEntityID string, isOutgoing bool) *ModifiableValue {
	mv := &ModifiableValue{
		ID:                   ID(registry.NewID()),
		Name:                 name,
		SourceEntityID:       sourceEntityID,
		IsOutgoingModifier:   isOutgoing,
		ScoreNormalizer:      Identity,
		SelfStatic:           NewStaticValue(name+"_self_static", sourceEntityID, false),
		SelfContextual:       NewContextualValue(name+"_self_contextual", sourceEntityID, false),
		ToTargetStatic:       NewStaticValue(name+"_to_target_static", sourceEntityID, true),
		ToTargetContextual:   NewContextualValue(name+"_to_target_contextual", sourceEntityID, true),
		FromTargetStatic:     NewStaticValue(name+"_from_target_static", sourceEntityID, false),
		FromTargetContextual: NewContextualValue(name+"_from_target_contextual", sourceEntityID, false),
	}
	Registry.Register(string(mv.ID), mv)
	return mv
}

// selfLayers evaluates SelfContextual against ctx and returns the layers
// that contribute to this value's own Score/Advantage/Critical/AutoHit:
// SelfStatic, the evaluated SelfContextual, FromTargetStatic, and the
// evaluated FromTargetContextual. ToTarget* is deliberately excluded —
// outgoing bonuses do not self-apply.
func (m *ModifiableValue) selfLayers(ctx modifier.Context) ([]*StaticValue, error) {
	layers := []*StaticValue{m.SelfStatic, m.FromTargetStatic}

	selfCtx, err := m.SelfContextual.Evaluate(m.SourceEntityID, ctx)
	if err != nil {
		return nil, err
	}
	layers = append(layers, selfCtx)

	fromCtx, err := m.FromTargetContextual.Evaluate(m.SourceEntityID, ctx)
	if err != nil {
		return nil, err
	}
	layers = append(layers, fromCtx)

	return layers, nil
}

// Score sums the contributing layers (self + from-target, both static
// and contextual) and clamps to their combined min/max, with the min
// floor winning on an inverted bound.
func (m *ModifiableValue) Score(ctx modifier.Context) (int, error) {
	layers, err := m.selfLayers(ctx)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, l := range layers {
		sum += scoreSumOnly(l)
	}
	min, max := combinedBounds(layers)
	return m.ScoreNormalizer(clamp(sum, min, max)), nil
}

// scoreSumOnly sums a StaticValue's ValueModifiers without re-clamping,
// since ModifiableValue.Score clamps once across all combined layers.
func scoreSumOnly(s *StaticValue) int {
	sum := 0
	for _, v := range s.ValueModifiers {
		sum += v.Value
	}
	return sum
}

// combinedBounds merges Min/Max across layers the same way StaticValue
// merges its own constraint maps, per dnd/values.py: min takes the
// smallest floor seen and max takes the largest ceiling seen, so the
// widest bounds across layers win.
func combinedBounds(layers []*StaticValue) (*int, *int) {
	var min, max *int
	for _, l := range layers {
		if lm := l.Min(); lm != nil {
			if min == nil || *lm < *min {
				min = lm
			}
		}
		if lx := l.Max(); lx != nil {
			if max == nil || *lx > *max {
				max = lx
			}
		}
	}
	return min, max
}

// Advantage aggregates AdvantageSum across the contributing layers.
func (m *ModifiableValue) Advantage(ctx modifier.Context) (modifier.AdvantageStatus, error) {
	layers, err := m.selfLayers(ctx)
	if err != nil {
		return modifier.AdvantageNone, err
	}
	sum := 0
	for _, l := range layers {
		sum += l.AdvantageSum()
	}
	switch {
	case sum > 0:
		return modifier.AdvantageAdvantage, nil
	case sum < 0:
		return modifier.AdvantageDisadvantage, nil
	default:
		return modifier.AdvantageNone, nil
	}
}

// Critical aggregates critical state across the contributing layers:
// NoCrit beats AutoCrit beats None.
func (m *ModifiableValue) Critical(ctx modifier.Context) (modifier.CriticalStatus, error) {
	layers, err := m.selfLayers(ctx)
	if err != nil {
		return modifier.CriticalNone, err
	}
	sawAuto := false
	for _, l := range layers {
		switch l.Critical() {
		case modifier.CriticalNoCrit:
			return modifier.CriticalNoCrit, nil
		case modifier.CriticalAuto:
			sawAuto = true
		}
	}
	if sawAuto {
		return modifier.CriticalAuto, nil
	}
	return modifier.CriticalNone, nil
}

// AutoHit aggregates auto-hit state across the contributing layers:
// AutoMiss beats AutoHit beats None.
func (m *ModifiableValue) AutoHit(ctx modifier.Context) (modifier.AutoHitStatus, error) {
	layers, err := m.selfLayers(ctx)
	if err != nil {
		return modifier.AutoHitNone, err
	}
	sawHit := false
	for _, l := range layers {
		switch l.AutoHit() {
		case modifier.AutoMiss:
			return modifier.AutoMiss, nil
		case modifier.AutoHit:
			sawHit = true
		}
	}
	if sawHit {
		return modifier.AutoHit, nil
	}
	return modifier.AutoHitNone, nil
}

// SetTargetEntity points this value at targetEntityID and sets the
// target of the three static layers so later modifier insertions
// validate against the right relationship: ToTargetStatic targets
// targetEntityID, SelfStatic and FromTargetStatic target the owner. The
// contextual layers are not changed; they are given their target when
// evaluated.
func (m *ModifiableValue) SetTargetEntity(targetEntityID string) {
	m.TargetEntityID = targetEntityID
	m.SelfStatic.SetTargetEntity(m.SourceEntityID)
	m.ToTargetStatic.SetTargetEntity(targetEntityID)
	m.FromTargetStatic.SetTargetEntity(m.SourceEntityID)
}

// ClearTargetEntity releases the target and clears the from-target
// snapshot layers, since a snapshot taken against the old target is no
// longer meaningful once the relationship ends.
func (m *ModifiableValue) ClearTargetEntity() {
	m.TargetEntityID = ""
	m.FromTargetStatic = NewStaticValue(m.Name+"_from_target_static", m.SourceEntityID, false)
	m.FromTargetContextual = NewContextualValue(m.Name+"_from_target_contextual", m.SourceEntityID, false)
}

// SetFromTarget copies source's ToTarget layers into this value's
// FromTarget layers as a point-in-time snapshot. source must currently
// be targeting this value's owning entity. Grounded on
// dnd/modifiable_values.py's ModifiableValue.set_from_target, a
// cross-entity channel that is snapshot, not live-reference.
func (m *ModifiableValue) SetFromTarget(source *ModifiableValue) error {
	if source.TargetEntityID != m.SourceEntityID {
		return rpgerr.Invalid("source value is not targeting this value's owning entity",
			rpgerr.WithMeta("source_value_id", string(source.ID)),
			rpgerr.WithMeta("expected_target", m.SourceEntityID),
			rpgerr.WithMeta("actual_target", source.TargetEntityID))
	}

	snapshotStatic := NewStaticValue(m.Name+"_from_target_static", m.SourceEntityID, false)
	for k, v := range source.ToTargetStatic.ValueModifiers {
		v.TargetEntityID = m.SourceEntityID
		snapshotStatic.ValueModifiers[k] = v
	}
	for k, v := range source.ToTargetStatic.MinConstraints {
		v.TargetEntityID = m.SourceEntityID
		snapshotStatic.MinConstraints[k] = v
	}
	for k, v := range source.ToTargetStatic.MaxConstraints {
		v.TargetEntityID = m.SourceEntityID
		snapshotStatic.MaxConstraints[k] = v
	}
	for k, v := range source.ToTargetStatic.AdvantageModifiers {
		v.TargetEntityID = m.SourceEntityID
		snapshotStatic.AdvantageModifiers[k] = v
	}
	for k, v := range source.ToTargetStatic.CriticalModifiers {
		v.TargetEntityID = m.SourceEntityID
		snapshotStatic.CriticalModifiers[k] = v
	}
	for k, v := range source.ToTargetStatic.AutoHitModifiers {
		v.TargetEntityID = m.SourceEntityID
		snapshotStatic.AutoHitModifiers[k] = v
	}
	snapshotStatic.GeneratedFrom = append(snapshotStatic.GeneratedFrom, source.ToTargetStatic.ID)
	m.FromTargetStatic = snapshotStatic

	snapshotContextual := NewContextualValue(m.Name+"_from_target_contextual", m.SourceEntityID, false)
	for k, fn := range source.ToTargetContextual.ValueModifiers {
		snapshotContextual.ValueModifiers[k] = fn
	}
	for k, fn := range source.ToTargetContextual.MinConstraints {
		snapshotContextual.MinConstraints[k] = fn
	}
	for k, fn := range source.ToTargetContextual.MaxConstraints {
		snapshotContextual.MaxConstraints[k] = fn
	}
	for k, fn := range source.ToTargetContextual.AdvantageModifiers {
		snapshotContextual.AdvantageModifiers[k] = fn
	}
	for k, fn := range source.ToTargetContextual.CriticalModifiers {
		snapshotContextual.CriticalModifiers[k] = fn
	}
	for k, fn := range source.ToTargetContextual.AutoHitModifiers {
		snapshotContextual.AutoHitModifiers[k] = fn
	}
	m.FromTargetContextual = snapshotContextual

	m.GeneratedFrom = append(m.GeneratedFrom, source.ID)
	return nil
}
