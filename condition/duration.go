// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package condition

// DurationType is how a condition's lifespan is bounded.
type DurationType string

const (
	Rounds        DurationType = "rounds"
	Permanent     DurationType = "permanent"
	UntilLongRest DurationType = "until_long_rest"
	OnCondition   DurationType = "on_condition"
)

// Predicate evaluates an OnCondition duration; true means expired.
type Predicate func() bool

// Duration tracks when a condition should be removed. Grounded on
// dnd/core/base_conditions.py's Duration.
//
// IsExpired deliberately corrects the Python source's ROUNDS check
// (`duration >= 0`, which reports expiry before the countdown has even
// reached zero): here a Rounds duration expires once it has been
// decremented to zero, so a condition applied for N rounds is swept by
// the Nth call to Progress.
type Duration struct {
	Type       DurationType
	Rounds     int
	LongRested bool
	OnCond     Predicate
}

// NewRoundsDuration creates a Rounds duration lasting n rounds.
func NewRoundsDuration(n int) Duration {
	return Duration{Type: Rounds, Rounds: n}
}

// NewPermanentDuration never expires on its own.
func NewPermanentDuration() Duration {
	return Duration{Type: Permanent}
}

// NewUntilLongRestDuration expires the next time LongRest is signaled.
func NewUntilLongRestDuration() Duration {
	return Duration{Type: UntilLongRest}
}

// NewOnConditionDuration expires the round a predicate first returns true.
func NewOnConditionDuration(pred Predicate) Duration {
	return Duration{Type: OnCondition, OnCond: pred}
}

// IsExpired reports whether this duration has run out.
func (d *Duration) IsExpired() bool {
	switch d.Type {
	case Rounds:
		return d.Rounds <= 0
	case OnCondition:
		if d.OnCond == nil {
			return false
		}
		return d.OnCond()
	case UntilLongRest:
		return d.LongRested
	default:
		return false
	}
}

// Progress advances a Rounds duration by one tick and then reports
// whether this duration has expired. Only Rounds durations are
// decremented; UntilLongRest and OnCondition durations expire by their
// own signal (LongRest, or the predicate going true) and are picked up
// here on the next round tick that checks them.
func (d *Duration) Progress() bool {
	if d.Type == Rounds {
		d.Rounds--
	}
	return d.IsExpired()
}

// LongRest signals a long rest, expiring any UntilLongRest duration.
func (d *Duration) LongRest() {
	d.LongRested = true
}
