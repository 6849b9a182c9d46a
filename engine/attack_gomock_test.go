// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	mock_dice "github.com/ashforge/dnd5e-engine/dice/mock"
	"github.com/ashforge/dnd5e-engine/engine"
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/refs"
)

type AttackMockSuite struct {
	suite.Suite
	ctrl *gomock.Controller
}

func TestAttackMockSuite(t *testing.T) {
	suite.Run(t, new(AttackMockSuite))
}

func (s *AttackMockSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
}

func (s *AttackMockSuite) TestExactRollSequenceDrivesTheDamageTotal() {
	attacker := newCombatant(s.T(), "attacker")
	defender := newCombatant(s.T(), "defender")
	equipSword(s.T(), attacker)

	roller := mock_dice.NewMockRoller(s.ctrl)
	roller.EXPECT().Roll(20).Return(15, nil)
	roller.EXPECT().Roll(8).Return(5, nil)

	r := engine.NewResolver(roller)
	result, err := r.Attack(engine.AttackInput{
		AttackerID: string(attacker.ID), DefenderID: string(defender.ID),
		Slot: refs.MainHand, Type: engine.Melee,
		DamageDiceCount: 1, DamageDiceFace: 8, DamageType: modifier.Slashing,
	})

	s.Require().NoError(err)
	s.Require().NotNil(result.Damage)
	s.Equal(15, result.Attack.Total, "natural 15 plus STR mod 0 plus proficiency 0")
	s.Equal(5, result.Damage.Total, "rolled 5 plus STR mod 0")
}

func (s *AttackMockSuite) TestUnexpectedCallFailsTheMock() {
	attacker := newCombatant(s.T(), "attacker")
	defender := newCombatant(s.T(), "defender")
	equipSword(s.T(), attacker)

	roller := mock_dice.NewMockRoller(s.ctrl)
	roller.EXPECT().Roll(20).Return(1, nil)

	r := engine.NewResolver(roller)
	result, err := r.Attack(engine.AttackInput{
		AttackerID: string(attacker.ID), DefenderID: string(defender.ID),
		Slot: refs.MainHand, Type: engine.Melee,
		DamageDiceCount: 1, DamageDiceFace: 8, DamageType: modifier.Slashing,
	})

	s.Require().NoError(err)
	s.Nil(result.Damage, "a natural 1 always misses, so damage is never rolled")
}
