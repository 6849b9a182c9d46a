package block_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashforge/dnd5e-engine/block"
	"github.com/ashforge/dnd5e-engine/modifier"
)

func TestHealthMaxHPComputation(t *testing.T) {
	h := block.NewHealth("entity-1", []block.HitDice{{Face: 10, Count: 3, Mode: block.Average}})
	// (10/2+1)*3 = 18, plus con modifier 2 * 3 dice = 6
	maxHP, err := h.MaxHP(2, nil)
	require.NoError(t, err)
	require.Equal(t, 24, maxHP)
}

func TestHealthApplyDamageResistanceHalvesAndFloors(t *testing.T) {
	h := block.NewHealth("entity-1", []block.HitDice{{Face: 10, Count: 2, Mode: block.Average}})
	h.SetResistance(modifier.Fire, modifier.Resistance)

	require.NoError(t, h.AddTemporaryHP(5, nil))
	apps, hpLoss, err := h.ApplyDamage([]block.IncomingDamage{{DamageType: modifier.Fire, Amount: 12}}, nil)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.Equal(t, 6, apps[0].PostResistance)
	// 6 post-resistance damage; 5 absorbed by temp HP, 1 spills into HP.
	require.Equal(t, 1, hpLoss)
	require.Equal(t, 1, h.DamageTaken)

	tempRemaining, err := h.TemporaryHitPoints.Score(nil)
	require.NoError(t, err)
	require.Equal(t, 0, tempRemaining)
}

func TestHealthApplyDamageImmunityZeroesDamage(t *testing.T) {
	h := block.NewHealth("entity-1", nil)
	h.SetResistance(modifier.Poison, modifier.Immunity)
	apps, hpLoss, err := h.ApplyDamage([]block.IncomingDamage{{DamageType: modifier.Poison, Amount: 20}}, nil)
	require.NoError(t, err)
	require.Equal(t, 0, apps[0].PostResistance)
	require.Equal(t, 0, hpLoss)
}

func TestHealthFlatDamageReduction(t *testing.T) {
	h := block.NewHealth("entity-1", nil)
	require.NoError(t, h.DamageReduction.SelfStatic.AddValueModifier(newNumerical("heavy_armor", "entity-1", 3)))
	_, hpLoss, err := h.ApplyDamage([]block.IncomingDamage{{DamageType: modifier.Slashing, Amount: 10}}, nil)
	require.NoError(t, err)
	require.Equal(t, 7, hpLoss)
}

func TestHealthHealNeverNegative(t *testing.T) {
	h := block.NewHealth("entity-1", nil)
	require.NoError(t, h.Heal(100))
	require.Equal(t, 0, h.DamageTaken)
}

func TestHealthAddTemporaryHPDoesNotStack(t *testing.T) {
	h := block.NewHealth("entity-1", nil)
	require.NoError(t, h.AddTemporaryHP(10, nil))
	require.NoError(t, h.AddTemporaryHP(5, nil))
	current, err := h.TemporaryHitPoints.Score(nil)
	require.NoError(t, err)
	require.Equal(t, 10, current, "a smaller new amount must not replace a larger existing pool")
}
