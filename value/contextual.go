// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package value

import (
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/registry"
	"github.com/ashforge/dnd5e-engine/rpgerr"
)

// ContextualValue holds functions that produce modifiers on demand from a
// source id, a target id, and an arbitrary context map, rather than
// fixed modifier values. Evaluating it snapshots every function into a
// StaticValue. Grounded on dnd/values.py's ContextualValue.
type ContextualValue struct {
	ID                 ID
	Name               string
	SourceEntityID     string
	TargetEntityID     string
	IsOutgoingModifier bool
	ScoreNormalizer    Normalizer

	ValueModifiers     map[modifier.ID]modifier.NumericalFunc
	MinConstraints     map[modifier.ID]modifier.NumericalFunc
	MaxConstraints     map[modifier.ID]modifier.NumericalFunc
	AdvantageModifiers map[modifier.ID]modifier.AdvantageFunc
	CriticalModifiers  map[modifier.ID]modifier.CriticalFunc
	AutoHitModifiers   map[modifier.ID]modifier.AutoHitFunc
}

// NewContextualValue creates an empty ContextualValue and registers it.
func NewContextualValue(name, sourceEntityID string, isOutgoing bool) *ContextualValue {
	cv := &ContextualValue{
		ID:                 ID(registry.NewID()),
		Name:               name,
		SourceEntityID:     sourceEntityID,
		IsOutgoingModifier: isOutgoing,
		ScoreNormalizer:    Identity,
		ValueModifiers:     map[modifier.ID]modifier.NumericalFunc{},
		MinConstraints:     map[modifier.ID]modifier.NumericalFunc{},
		MaxConstraints:     map[modifier.ID]modifier.NumericalFunc{},
		AdvantageModifiers: map[modifier.ID]modifier.AdvantageFunc{},
		CriticalModifiers:  map[modifier.ID]modifier.CriticalFunc{},
		AutoHitModifiers:   map[modifier.ID]modifier.AutoHitFunc{},
	}
	Registry.Register(string(cv.ID), cv)
	return cv
}

// RemoveModifier removes id from every function collection it might be in.
func (c *ContextualValue) RemoveModifier(id modifier.ID) {
	delete(c.ValueModifiers, id)
	delete(c.MinConstraints, id)
	delete(c.MaxConstraints, id)
	delete(c.AdvantageModifiers, id)
	delete(c.CriticalModifiers, id)
	delete(c.AutoHitModifiers, id)
}

// Evaluate calls every stored function with (sourceEntityID, targetEntityID, ctx)
// and folds the results into a fresh StaticValue carrying the same identity.
// Grounded on dnd/values.py's ContextualValue.evaluate.
func (c *ContextualValue) Evaluate(targetEntityID string, ctx modifier.Context) (*StaticValue, error) {
	if err := c.validateOutgoing(targetEntityID); err != nil {
		return nil, err
	}
	out := NewStaticValue(c.Name, c.SourceEntityID, c.IsOutgoingModifier)
	out.ScoreNormalizer = c.ScoreNormalizer
	out.TargetEntityID = targetEntityID
	out.GeneratedFrom = []ID{c.ID}

	// effectiveTarget is the target id every produced modifier must carry
	// for StaticValue's own insertion checks to accept it: the real
	// target for an outgoing value, the owning entity itself otherwise.
	effectiveTarget := c.SourceEntityID
	if c.IsOutgoingModifier {
		effectiveTarget = targetEntityID
	}

	for id, fn := range c.ValueModifiers {
		m := fn(c.SourceEntityID, targetEntityID, ctx)
		m.ID, m.TargetEntityID = id, effectiveTarget
		if err := out.AddValueModifier(m); err != nil {
			return nil, err
		}
	}
	for id, fn := range c.MinConstraints {
		m := fn(c.SourceEntityID, targetEntityID, ctx)
		m.ID, m.TargetEntityID = id, effectiveTarget
		if err := out.AddMinConstraint(m); err != nil {
			return nil, err
		}
	}
	for id, fn := range c.MaxConstraints {
		m := fn(c.SourceEntityID, targetEntityID, ctx)
		m.ID, m.TargetEntityID = id, effectiveTarget
		if err := out.AddMaxConstraint(m); err != nil {
			return nil, err
		}
	}
	for id, fn := range c.AdvantageModifiers {
		m := fn(c.SourceEntityID, targetEntityID, ctx)
		m.ID, m.TargetEntityID = id, effectiveTarget
		if err := out.AddAdvantageModifier(m); err != nil {
			return nil, err
		}
	}
	for id, fn := range c.CriticalModifiers {
		m := fn(c.SourceEntityID, targetEntityID, ctx)
		m.ID, m.TargetEntityID = id, effectiveTarget
		if err := out.AddCriticalModifier(m); err != nil {
			return nil, err
		}
	}
	for id, fn := range c.AutoHitModifiers {
		m := fn(c.SourceEntityID, targetEntityID, ctx)
		m.ID, m.TargetEntityID = id, effectiveTarget
		if err := out.AddAutoHitModifier(m); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// validateOutgoing enforces the same source/target relationship rule as
// StaticValue, checked once a concrete target is known.
func (c *ContextualValue) validateOutgoing(targetEntityID string) error {
	if c.IsOutgoingModifier && targetEntityID == c.SourceEntityID {
		return rpgerr.Invalid("outgoing contextual value target must differ from its source entity",
			rpgerr.WithMeta("value_id", string(c.ID)))
	}
	if !c.IsOutgoingModifier && targetEntityID != "" && targetEntityID != c.SourceEntityID {
		return rpgerr.Invalid("non-outgoing contextual value target must equal its source entity",
			rpgerr.WithMeta("value_id", string(c.ID)))
	}
	return nil
}
