// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"github.com/ashforge/dnd5e-engine/block"
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/refs"
)

// Equip installs item into entityID's equipment slot and returns the
// entity's refreshed snapshot.
func (r *Resolver) Equip(entityID string, slot refs.EquipmentSlot, item *block.Item, replace bool, ctx modifier.Context) (*EntitySummary, error) {
	e, err := lookupEntity(entityID)
	if err != nil {
		return nil, err
	}
	if err := e.Equipment.Equip(slot, item, replace, ctx); err != nil {
		return nil, err
	}
	return Summarize(e, ctx)
}

// Unequip removes whatever occupies entityID's slot and returns the
// entity's refreshed snapshot alongside the removed item.
func (r *Resolver) Unequip(entityID string, slot refs.EquipmentSlot, ctx modifier.Context) (*block.Item, *EntitySummary, error) {
	e, err := lookupEntity(entityID)
	if err != nil {
		return nil, nil, err
	}
	item, err := e.Equipment.Unequip(slot)
	if err != nil {
		return nil, nil, err
	}
	summary, err := Summarize(e, ctx)
	if err != nil {
		return nil, nil, err
	}
	return item, summary, nil
}
