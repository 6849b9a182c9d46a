// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package block

import (
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/refs"
	"github.com/ashforge/dnd5e-engine/rpgerr"
	"github.com/ashforge/dnd5e-engine/value"
)

// UnarmoredArmorClass is the flat base every entity's armor class starts
// from before Dexterity and equipped items are added.
const UnarmoredArmorClass = 10

// Item is a piece of gear whose bonuses are installed into the
// wearer's blocks once equipped. Grounded on dnd/equipment.py's Armor
// and Weapon shapes, flattened into one struct since the engine core
// only cares about which bonus layer an item contributes to, not its
// flavor fields (damage dice, armor class table, etc. belong to a
// content library, out of scope here).
type Item struct {
	ID           string
	Name         string
	ValidSlots   []refs.EquipmentSlot
	TwoHanded    bool // occupies MainHand and vacates OffHand
	ACBonus      *value.ModifiableValue
	AttackBonus  *value.ModifiableValue
	DamageBonus  *value.ModifiableValue
}

func (i *Item) allowsSlot(slot refs.EquipmentSlot) bool {
	for _, s := range i.ValidSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// ownedLayers returns every ModifiableValue this item contributes,
// skipping nils so partial items (e.g. a ring with no AC bonus) work.
func (i *Item) ownedLayers() []*value.ModifiableValue {
	var out []*value.ModifiableValue
	for _, v := range []*value.ModifiableValue{i.ACBonus, i.AttackBonus, i.DamageBonus} {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}

// Equipment holds the eleven fixed slots and the wearer's combined
// armor class.
type Equipment struct {
	Base
	slots       map[refs.EquipmentSlot]*Item
	ArmorClass  *value.ModifiableValue
	acBonusIDs  map[refs.EquipmentSlot]modifier.ID
}

// NewEquipment creates an empty Equipment block. ArmorClass starts
// seeded with UnarmoredArmorClass; the caller's Dexterity modifier is
// added on top at read time, since Equipment has no ability scores of
// its own to read.
func NewEquipment(sourceEntityID string) *Equipment {
	e := &Equipment{
		Base:       NewBase("equipment", sourceEntityID),
		slots:      make(map[refs.EquipmentSlot]*Item),
		ArmorClass: value.NewModifiableValue("armor_class", sourceEntityID, false),
		acBonusIDs: make(map[refs.EquipmentSlot]modifier.ID),
	}
	base := modifier.NewNumerical("armor_class_base", sourceEntityID, sourceEntityID, UnarmoredArmorClass)
	_ = e.ArmorClass.SelfStatic.AddValueModifier(base)
	Registry.Register(string(e.ID), e)
	return e
}

// Get returns the item in slot, or nil if empty.
func (e *Equipment) Get(slot refs.EquipmentSlot) *Item {
	return e.slots[slot]
}

// Equip installs item into slot, rewiring its ModifiableValue layers to
// the wearer (this Equipment's owning entity). If the slot is occupied
// and replace is false, fails with a Precondition error. A two-handed
// weapon in MainHand also vacates OffHand.
func (e *Equipment) Equip(slot refs.EquipmentSlot, item *Item, replace bool, ctx Context) error {
	if !item.allowsSlot(slot) {
		return rpgerr.Invalid("item cannot be equipped to this slot",
			rpgerr.WithMeta("item", item.Name), rpgerr.WithMeta("slot", string(slot)))
	}
	if existing := e.slots[slot]; existing != nil && !replace {
		return rpgerr.Conflict("slot is already occupied",
			rpgerr.WithMeta("slot", string(slot)), rpgerr.WithMeta("occupant", existing.Name))
	}
	if existing := e.slots[slot]; existing != nil {
		e.unwire(slot, existing)
	}

	if slot == refs.MainHand && item.TwoHanded {
		if off := e.slots[refs.OffHand]; off != nil {
			e.unwire(refs.OffHand, off)
			delete(e.slots, refs.OffHand)
		}
	}
	if slot == refs.OffHand {
		if main := e.slots[refs.MainHand]; main != nil && main.TwoHanded {
			return rpgerr.Conflict("off-hand is vacated by the two-handed weapon in main-hand",
				rpgerr.WithMeta("main_hand_item", main.Name))
		}
	}

	if err := e.wire(slot, item, ctx); err != nil {
		return err
	}
	e.slots[slot] = item
	return nil
}

// Unequip removes whatever is in slot and unwires its bonuses. A no-op
// error if the slot is already empty.
func (e *Equipment) Unequip(slot refs.EquipmentSlot) (*Item, error) {
	item := e.slots[slot]
	if item == nil {
		return nil, rpgerr.Conflict("slot is already empty", rpgerr.WithMeta("slot", string(slot)))
	}
	e.unwire(slot, item)
	delete(e.slots, slot)
	return item, nil
}

// wire rewires item's own bonus layers to the wearer and folds its flat
// AC bonus into ArmorClass as a removable modifier, since AC is one
// combined value rather than a per-item sum recomputed on every read.
func (e *Equipment) wire(slot refs.EquipmentSlot, item *Item, ctx Context) error {
	for _, v := range item.ownedLayers() {
		v.SourceEntityID = e.SourceEntityID
		v.SelfStatic.SourceEntityID = e.SourceEntityID
		if e.TargetEntityID != "" {
			v.SetTargetEntity(e.TargetEntityID)
		}
	}
	if item.ACBonus != nil {
		bonus, err := item.ACBonus.Score(ctx)
		if err != nil {
			return err
		}
		m := modifier.NewNumerical("armor_class_"+string(slot), e.SourceEntityID, e.SourceEntityID, bonus)
		if err := e.ArmorClass.SelfStatic.AddValueModifier(m); err != nil {
			return err
		}
		e.acBonusIDs[slot] = m.ID
	}
	return nil
}

func (e *Equipment) unwire(slot refs.EquipmentSlot, item *Item) {
	for _, v := range item.ownedLayers() {
		v.ClearTargetEntity()
	}
	if id, ok := e.acBonusIDs[slot]; ok {
		e.ArmorClass.SelfStatic.RemoveModifier(id)
		delete(e.acBonusIDs, slot)
	}
}

func (e *Equipment) propagators() []Propagator {
	out := make([]Propagator, 0, len(e.slots)+1)
	out = append(out, Value(e.ArmorClass))
	for _, slot := range refs.EquipmentSlots {
		if item := e.slots[slot]; item != nil {
			for _, v := range item.ownedLayers() {
				out = append(out, Value(v))
			}
		}
	}
	return out
}

func (e *Equipment) SetTargetEntity(targetEntityID string) {
	e.TargetEntityID = targetEntityID
	Propagate(targetEntityID, e.propagators(), nil)
}

func (e *Equipment) ClearTargetEntity() {
	e.TargetEntityID = ""
	ClearPropagate(e.propagators(), nil)
}
