package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashforge/dnd5e-engine/condition"
	"github.com/ashforge/dnd5e-engine/dice"
	"github.com/ashforge/dnd5e-engine/engine"
	"github.com/ashforge/dnd5e-engine/modifier"
	"github.com/ashforge/dnd5e-engine/refs"
)

func TestRefreshActionEconomyResetsAllFourBudgets(t *testing.T) {
	e := newCombatant(t, "fighter")
	r := engine.NewResolver(dice.NewMockRoller(10))

	require.NoError(t, e.ActionEconomy.Actions.Spend(1, nil))
	require.NoError(t, e.ActionEconomy.Movement.Spend(20, nil))

	require.NoError(t, r.RefreshActionEconomy(string(e.ID)))

	actions, err := e.ActionEconomy.Actions.Remaining(nil)
	require.NoError(t, err)
	require.Equal(t, 1, actions)
	bonus, err := e.ActionEconomy.BonusActions.Remaining(nil)
	require.NoError(t, err)
	require.Equal(t, 1, bonus)
	reactions, err := e.ActionEconomy.Reactions.Remaining(nil)
	require.NoError(t, err)
	require.Equal(t, 1, reactions)
	movement, err := e.ActionEconomy.Movement.Remaining(nil)
	require.NoError(t, err)
	require.Equal(t, 30, movement)
}

func TestRemoveConditionRestoresEveryInstalledModifier(t *testing.T) {
	e := newCombatant(t, "fighter")
	r := engine.NewResolver(dice.NewMockRoller(10))

	preMovement, err := e.ActionEconomy.Movement.Remaining(nil)
	require.NoError(t, err)

	c := engine.Grappled(string(e.ID), condition.NewPermanentDuration())
	applied, err := r.AddCondition(string(e.ID), c)
	require.NoError(t, err)
	require.True(t, applied.Applied)

	locked, err := e.ActionEconomy.Movement.Remaining(nil)
	require.NoError(t, err)
	require.Equal(t, 0, locked, "grappled zeroes movement")

	require.NoError(t, r.RemoveCondition(string(e.ID), refs.Grappled))

	restored, err := e.ActionEconomy.Movement.Remaining(nil)
	require.NoError(t, err)
	require.Equal(t, preMovement, restored)
}

func TestLongRestClearsUntilLongRestConditionsAndRefreshesBudgets(t *testing.T) {
	e := newCombatant(t, "fighter")
	r := engine.NewResolver(dice.NewMockRoller(10))
	require.NoError(t, e.ActionEconomy.Actions.Spend(1, nil))

	c := engine.Poisoned(string(e.ID), condition.NewUntilLongRestDuration())
	_, err := r.AddCondition(string(e.ID), c)
	require.NoError(t, err)

	require.NoError(t, r.LongRest(string(e.ID)))

	adv, err := e.ActionEconomy.AttackRoll.Advantage(nil)
	require.NoError(t, err)
	require.Equal(t, modifier.AdvantageNone, adv, "long rest clears until-long-rest conditions")

	actions, err := e.ActionEconomy.Actions.Remaining(nil)
	require.NoError(t, err)
	require.Equal(t, 1, actions)
}
