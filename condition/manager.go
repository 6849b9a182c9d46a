// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package condition

import "github.com/ashforge/dnd5e-engine/refs"

// Manager owns one entity's active conditions, keyed by name, and
// iterates them in insertion order during round progression, so
// round-tick effects apply deterministically per entity.
type Manager struct {
	entityID           string
	active             map[refs.ConditionName]*Condition
	order              []refs.ConditionName
	staticImmunities   map[refs.ConditionName]bool
	contextualImmunity func(refs.ConditionName) bool
}

// NewManager creates an empty Manager for entityID.
func NewManager(entityID string) *Manager {
	return &Manager{
		entityID:         entityID,
		active:           make(map[refs.ConditionName]*Condition),
		staticImmunities: make(map[refs.ConditionName]bool),
	}
}

// SetImmune marks name as statically immune (or not).
func (m *Manager) SetImmune(name refs.ConditionName, immune bool) {
	m.staticImmunities[name] = immune
}

// SetContextualImmunity installs a predicate consulted in addition to
// the static immunity table.
func (m *Manager) SetContextualImmunity(pred func(refs.ConditionName) bool) {
	m.contextualImmunity = pred
}

// IsImmuneTo satisfies ImmunityChecker.
func (m *Manager) IsImmuneTo(name refs.ConditionName) bool {
	if m.staticImmunities[name] {
		return true
	}
	if m.contextualImmunity != nil {
		return m.contextualImmunity(name)
	}
	return false
}

// Apply applies c to this manager's entity and records it under its
// name on success.
func (m *Manager) Apply(c *Condition, roller SavingThrowRoller) (ApplyResult, error) {
	if existing, ok := m.active[c.Name]; ok && existing.Applied {
		return ApplyResult{Applied: true, Reason: ReasonAlreadyApplied}, nil
	}
	result, err := c.Apply(m.entityID, m, roller)
	if err != nil {
		return ApplyResult{}, err
	}
	if result.Applied {
		if _, exists := m.active[c.Name]; !exists {
			m.order = append(m.order, c.Name)
		}
		m.active[c.Name] = c
	}
	return result, nil
}

// Remove removes the named condition if present and applied.
func (m *Manager) Remove(name refs.ConditionName) error {
	c, ok := m.active[name]
	if !ok {
		return nil
	}
	if err := c.Remove(); err != nil {
		return err
	}
	delete(m.active, name)
	m.removeFromOrder(name)
	return nil
}

func (m *Manager) removeFromOrder(name refs.ConditionName) {
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}

// Get returns the named active condition, or nil.
func (m *Manager) Get(name refs.ConditionName) *Condition {
	return m.active[name]
}

// Active lists every active condition in insertion order.
func (m *Manager) Active() []*Condition {
	out := make([]*Condition, 0, len(m.order))
	for _, n := range m.order {
		out = append(out, m.active[n])
	}
	return out
}

// ProgressRound ticks every active condition's duration by one round
// in a fixed iteration order, removing any that expire.
func (m *Manager) ProgressRound(roller SavingThrowRoller) error {
	for _, name := range append([]refs.ConditionName(nil), m.order...) {
		c := m.active[name]
		removed, err := c.Progress(m.entityID, roller)
		if err != nil {
			return err
		}
		if removed {
			delete(m.active, name)
			m.removeFromOrder(name)
		}
	}
	return nil
}

// LongRest signals a long rest to every active condition.
func (m *Manager) LongRest() {
	for _, c := range m.active {
		c.LongRest()
	}
}
