// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package block

import (
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/registry"
	"github.com/ashforge/dnd5e-engine/value"
)

// ID identifies a block in the process-wide Registry.
type ID string

// Registry is the process-wide lookup for every block instance.
var Registry = registry.New[Propagator]("block")

// Propagator is anything a block can own and must keep in sync: a
// ModifiableValue directly, or a nested block. Go has no runtime
// attribute introspection to lean on the way dnd/blocks.py's
// get_values()/get_blocks() do, so each block explicitly lists its
// owned values and sub-blocks through this interface instead.
type Propagator interface {
	SetTargetEntity(targetEntityID string)
	ClearTargetEntity()
}

// valuePropagator adapts *value.ModifiableValue to Propagator.
type valuePropagator struct{ v *value.ModifiableValue }

func (p valuePropagator) SetTargetEntity(targetEntityID string) { p.v.SetTargetEntity(targetEntityID) }
func (p valuePropagator) ClearTargetEntity()                    { p.v.ClearTargetEntity() }

// Value wraps a ModifiableValue as a Propagator for use in the value
// list a block passes to Propagate/ClearPropagate.
func Value(v *value.ModifiableValue) Propagator { return valuePropagator{v} }

// Base holds the identity and target-propagation state shared by every
// block kind. Concrete blocks embed Base and, in their own
// SetTargetEntity/ClearTargetEntity, list their owned values and
// sub-blocks and pass them to Propagate/ClearPropagate.
// Grounded on dnd/blocks.py's BaseBlock.
type Base struct {
	ID             ID
	Name           string
	SourceEntityID string
	TargetEntityID string
}

// NewBase creates a Base under name/sourceEntityID with a fresh id; it
// does not register anything.
func NewBase(name, sourceEntityID string) Base {
	return Base{ID: ID(registry.NewID()), Name: name, SourceEntityID: sourceEntityID}
}

// Propagate pushes this block's current target onto every value and
// sub-block a concrete block reports through ownVal/ownBlocks. Concrete
// blocks call this from their own SetTargetEntity after updating
// b.TargetEntityID, since Go's embedding does not let Base reach a
// subtype's extra fields on its own.
func Propagate(targetEntityID string, ownVal []Propagator, ownBlocks []Propagator) {
	for _, v := range ownVal {
		v.SetTargetEntity(targetEntityID)
	}
	for _, bl := range ownBlocks {
		bl.SetTargetEntity(targetEntityID)
	}
}

// ClearPropagate clears the target on every owned value and sub-block.
func ClearPropagate(ownVal []Propagator, ownBlocks []Propagator) {
	for _, v := range ownVal {
		v.ClearTargetEntity()
	}
	for _, bl := range ownBlocks {
		bl.ClearTargetEntity()
	}
}

// Context is the free-form bag a ContextualValue evaluates
// against; re-exported here so block callers don't need to import
// modifier directly just to build one.
type Context = modifier.Context
