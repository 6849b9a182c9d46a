// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package condition

import (
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/refs"
	"github.com/ashforge/dnd5e-engine/registry"
	"github.com/ashforge/dnd5e-engine/value"
)

// Installed records one modifier a Condition installed into a target
// ModifiableValue's static layer, so it can be removed by id later.
// Grounded on dnd/core/base_conditions.py's modifers_uuids bookkeeping.
type Installed struct {
	Layer      *value.StaticValue
	ModifierID modifier.ID
}

// SavingThrowRequest asks the target to roll a saving throw against dc
// for the given ability before a condition applies or to shake it off.
type SavingThrowRequest struct {
	Ability refs.Ability
	DC      int
}

// SavingThrowRoller is implemented by whatever owns entity resolution
// (the engine package) so condition can request a saving throw without
// importing entity/engine and creating an import cycle.
type SavingThrowRoller interface {
	RollSavingThrow(targetEntityID string, req SavingThrowRequest) (success bool, err error)
}

// ImmunityChecker is implemented by the target's condition manager
// owner to answer whether a given condition name is currently immune.
type ImmunityChecker interface {
	IsImmuneTo(name refs.ConditionName) bool
}

// Installer builds the modifier set a Condition installs on apply. It
// is supplied by the caller (engine/content) already bound to the
// specific target ModifiableValues it touches, modeled as a closure
// rather than a method taking a generic target, since Go has no
// dynamic target type shared across every condition.
type Installer func() ([]Installed, error)

// Uninstaller runs any extra teardown beyond removing installed
// modifiers.
type Uninstaller func() error

// Condition is one status effect instance. Grounded on
// dnd/core/base_conditions.py's BaseCondition.
type Condition struct {
	ID                     string
	Name                   refs.ConditionName
	Duration               Duration
	ApplicationSavingThrow *SavingThrowRequest
	RemovalSavingThrow     *SavingThrowRequest
	Applied                bool
	InstalledModifiers     []Installed

	install   Installer
	uninstall Uninstaller
}

// Registry is the process-wide lookup for condition instances.
var Registry = registry.New[*Condition]("condition")

// New creates an unapplied Condition.
func New(name refs.ConditionName, duration Duration, install Installer, uninstall Uninstaller) *Condition {
	c := &Condition{
		ID:       registry.NewID(),
		Name:     name,
		Duration: duration,
		install:  install,
		uninstall: uninstall,
	}
	Registry.Register(c.ID, c)
	return c
}

// ApplyResult is the outcome of an apply attempt.
type ApplyResult struct {
	Applied bool
	Reason  string
}

const (
	ReasonImmune       = "immune"
	ReasonSavedThrow   = "saved_throw"
	ReasonAlreadyApplied = "already_applied"
	ReasonNoEffect     = "no_effect"
)

// Apply runs the application protocol: immunity check, then the
// application saving throw if one is requested, then install.
// Idempotent — applying an already-applied condition returns its
// existing record unchanged.
func (c *Condition) Apply(targetEntityID string, immunity ImmunityChecker, roller SavingThrowRoller) (ApplyResult, error) {
	if c.Applied {
		return ApplyResult{Applied: true, Reason: ReasonAlreadyApplied}, nil
	}
	if immunity != nil && immunity.IsImmuneTo(c.Name) {
		return ApplyResult{Applied: false, Reason: ReasonImmune}, nil
	}
	if c.ApplicationSavingThrow != nil {
		success, err := roller.RollSavingThrow(targetEntityID, *c.ApplicationSavingThrow)
		if err != nil {
			return ApplyResult{}, err
		}
		if success {
			return ApplyResult{Applied: false, Reason: ReasonSavedThrow}, nil
		}
	}

	installed, err := c.install()
	if err != nil {
		return ApplyResult{}, err
	}
	if len(installed) == 0 {
		return ApplyResult{Applied: false, Reason: ReasonNoEffect}, nil
	}
	c.InstalledModifiers = installed
	c.Applied = true
	return ApplyResult{Applied: true}, nil
}

// Remove walks InstalledModifiers and removes each by id from its
// owning layer, then runs the uninstall hook if any. Idempotent —
// removing an already-removed condition is a no-op.
func (c *Condition) Remove() error {
	if !c.Applied {
		return nil
	}
	for _, im := range c.InstalledModifiers {
		im.Layer.RemoveModifier(im.ModifierID)
	}
	if c.uninstall != nil {
		if err := c.uninstall(); err != nil {
			return err
		}
	}
	c.InstalledModifiers = nil
	c.Applied = false
	return nil
}

// Progress advances this condition's duration by one round tick,
// removing it if expiry is reached, and rolls the removal saving throw
// if one is configured. Returns true if the condition was removed.
func (c *Condition) Progress(targetEntityID string, roller SavingThrowRoller) (bool, error) {
	if !c.Applied {
		return false, nil
	}
	if c.Duration.Progress() {
		return true, c.Remove()
	}
	if c.RemovalSavingThrow != nil && roller != nil {
		success, err := roller.RollSavingThrow(targetEntityID, *c.RemovalSavingThrow)
		if err != nil {
			return false, err
		}
		if success {
			return true, c.Remove()
		}
	}
	return false, nil
}

// LongRest signals a long rest to this condition's duration.
func (c *Condition) LongRest() {
	c.Duration.LongRest()
}
