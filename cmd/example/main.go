// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Command example walks through a short combat round against the
// engine package's public Resolver surface: equip weapons, swing an
// attack, apply a condition and watch it change the math, then sweep
// it off again.
package main

import (
	"fmt"
	"log"

	"github.com/ashforge/dnd5e-engine/block"
	"github.com/ashforge/dnd5e-engine/condition"
	"github.com/ashforge/dnd5e-engine/dice"
	"github.com/ashforge/dnd5e-engine/engine"
	"github.com/ashforge/dnd5e-engine/entity"
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/refs"
	"github.com/ashforge/dnd5e-engine/value"
)

func longsword(entityID string) *block.Item {
	item := &block.Item{
		ID:         "longsword",
		Name:       "Longsword",
		ValidSlots: []refs.EquipmentSlot{refs.MainHand},
	}
	item.AttackBonus = value.NewModifiableValue("longsword_attack", entityID, false)
	item.DamageBonus = value.NewModifiableValue("longsword_damage", entityID, false)
	return item
}

func chainMail(entityID string) *block.Item {
	item := &block.Item{
		ID:         "chain_mail",
		Name:       "Chain Mail",
		ValidSlots: []refs.EquipmentSlot{refs.Body},
	}
	item.ACBonus = value.NewModifiableValue("chain_mail_ac", entityID, false)
	bonus := modifier.NewNumerical("chain_mail_bonus", entityID, entityID, 6)
	if err := item.ACBonus.SelfStatic.AddValueModifier(bonus); err != nil {
		log.Fatalf("install chain mail bonus: %v", err)
	}
	return item
}

func main() {
	fighter := entity.New(entity.Config{
		Name:             "Ragnar",
		AbilityScores:    map[refs.Ability]int{refs.Strength: 16, refs.Dexterity: 12, refs.Constitution: 14},
		HitDice:          []block.HitDice{{Face: 10, Count: 3, Mode: block.Average}},
		SpeedFeet:        30,
		ProficiencyBonus: 2,
	})
	goblin := entity.New(entity.Config{
		Name:             "Sneaky Goblin",
		AbilityScores:    map[refs.Ability]int{refs.Strength: 8, refs.Dexterity: 14, refs.Constitution: 10},
		HitDice:          []block.HitDice{{Face: 6, Count: 2, Mode: block.Average}},
		SpeedFeet:        30,
		ProficiencyBonus: 2,
	})

	if err := fighter.Equipment.Equip(refs.MainHand, longsword(string(fighter.ID)), false, nil); err != nil {
		log.Fatalf("equip longsword: %v", err)
	}
	if err := goblin.Equipment.Equip(refs.Body, chainMail(string(goblin.ID)), false, nil); err != nil {
		log.Fatalf("equip chain mail: %v", err)
	}

	r := engine.NewResolver(&dice.CryptoRoller{})

	fmt.Printf("=== %s attacks %s ===\n", fighter.Name, goblin.Name)
	before, err := r.GetEntity(string(goblin.ID), nil)
	if err != nil {
		log.Fatalf("get entity: %v", err)
	}
	fmt.Printf("%s: AC %d, HP %d/%d\n", before.Name, before.ArmorClass, before.CurrentHP, before.MaxHP)

	result, err := r.Attack(engine.AttackInput{
		AttackerID:      string(fighter.ID),
		DefenderID:      string(goblin.ID),
		Slot:            refs.MainHand,
		Type:            engine.Melee,
		DamageDiceCount: 1,
		DamageDiceFace:  8,
		DamageType:      modifier.Slashing,
	})
	if err != nil {
		log.Fatalf("attack: %v", err)
	}
	fmt.Printf("Attack roll: %d vs AC %d -> %s\n", result.Attack.Total, before.ArmorClass, result.Attack.Outcome)
	if result.Damage != nil {
		fmt.Printf("Damage: %d (%s)\n", result.Damage.Total, result.Damage.RollType)
	}

	fmt.Println()
	fmt.Printf("=== %s is restrained ===\n", goblin.Name)
	restrained := engine.Restrained(string(goblin.ID), condition.NewRoundsDuration(3))
	applyResult, err := r.AddCondition(string(goblin.ID), restrained)
	if err != nil {
		log.Fatalf("apply condition: %v", err)
	}
	fmt.Printf("Restrained applied: %v\n", applyResult.Applied)

	goblin.Equipment.ArmorClass.SetTargetEntity(string(fighter.ID))
	if err := fighter.ActionEconomy.AttackRoll.SetFromTarget(goblin.Equipment.ArmorClass); err != nil {
		log.Fatalf("snapshot target broadcast: %v", err)
	}
	adv, err := fighter.ActionEconomy.AttackRoll.Advantage(nil)
	if err != nil {
		log.Fatalf("read advantage: %v", err)
	}
	fmt.Printf("Fighter's attack now rolls with: %s\n", adv)

	fmt.Println()
	fmt.Println("=== round progresses, restraint wears off ===")
	for i := 0; i < 3; i++ {
		if err := r.ProgressRound(string(goblin.ID)); err != nil {
			log.Fatalf("progress round: %v", err)
		}
	}
	after, err := r.GetEntity(string(goblin.ID), nil)
	if err != nil {
		log.Fatalf("get entity: %v", err)
	}
	fmt.Printf("%s active conditions: %v\n", after.Name, after.ActiveConditions)
}
