// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package modifier

import "github.com/ashforge/dnd5e-engine/registry"

// Registry is the process-wide lookup for every modifier instance,
// mirroring dnd/modifiers.py's BaseObject._registry shared across all
// modifier subclasses. Stored as `any` since the registry holds every
// tagged variant under one id space, exactly as the Python source's
// single class-level dict does across all BaseObject subclasses.
var Registry = registry.New[any]("modifier")

func newIdentity(name, sourceEntityID, targetEntityID string) Identity {
	return Identity{ID: ID(registry.NewID()), Name: name, SourceEntityID: sourceEntityID, TargetEntityID: targetEntityID}
}

// NewNumerical creates and registers a Numerical modifier.
func NewNumerical(name, sourceEntityID, targetEntityID string, value int) Numerical {
	m := Numerical{Identity: newIdentity(name, sourceEntityID, targetEntityID), Value: value}
	Registry.Register(string(m.ID), m)
	return m
}

// NewAdvantage creates and registers an Advantage modifier.
func NewAdvantage(name, sourceEntityID, targetEntityID string, status AdvantageStatus) Advantage {
	m := Advantage{Identity: newIdentity(name, sourceEntityID, targetEntityID), Status: status}
	Registry.Register(string(m.ID), m)
	return m
}

// NewCritical creates and registers a Critical modifier.
func NewCritical(name, sourceEntityID, targetEntityID string, status CriticalStatus) Critical {
	m := Critical{Identity: newIdentity(name, sourceEntityID, targetEntityID), Status: status}
	Registry.Register(string(m.ID), m)
	return m
}

// NewAutoHit creates and registers an AutoHit modifier.
func NewAutoHit(name, sourceEntityID, targetEntityID string, status AutoHitStatus) AutoHitMod {
	m := AutoHitMod{Identity: newIdentity(name, sourceEntityID, targetEntityID), Status: status}
	Registry.Register(string(m.ID), m)
	return m
}

// NewSize creates and registers a Size modifier.
func NewSize(name, sourceEntityID, targetEntityID string, value SizeCategory) Size {
	m := Size{Identity: newIdentity(name, sourceEntityID, targetEntityID), Value: value}
	Registry.Register(string(m.ID), m)
	return m
}

// NewDamageType creates and registers a DamageType modifier.
func NewDamageType(name, sourceEntityID, targetEntityID string, value DamageType) DamageTypeMod {
	m := DamageTypeMod{Identity: newIdentity(name, sourceEntityID, targetEntityID), Value: value}
	Registry.Register(string(m.ID), m)
	return m
}

// NewResistance creates and registers a Resistance modifier.
func NewResistance(name, sourceEntityID, targetEntityID string, damageType DamageType, status ResistanceStatus) Res {
	m := Res{Identity: newIdentity(name, sourceEntityID, targetEntityID), DamageType: damageType, Status: status}
	Registry.Register(string(m.ID), m)
	return m
}
