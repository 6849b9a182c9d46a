// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"github.com/ashforge/dnd5e-engine/entity"
	"github.com/ashforge/dnd5e-engine/modifier"
)

// feetPerSquare is the standard 5e grid scale.
const feetPerSquare = 5

// gridDistanceFeet computes the 5e diagonal-counts-as-1-square movement
// distance between two grid coordinates: the Chebyshev distance in
// squares, scaled to feet.
func gridDistanceFeet(from, to entity.Position) int {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	dy := from.Y - to.Y
	if dy < 0 {
		dy = -dy
	}
	squares := dx
	if dy > squares {
		squares = dy
	}
	return squares * feetPerSquare
}

// MoveResult is the movement event returned after a successful move.
type MoveResult struct {
	From          entity.Position
	To            entity.Position
	FeetSpent     int
	FeetRemaining int
}

// Move spends entityID's movement budget for the distance from its
// current position to dest and, on success, updates its position.
func (r *Resolver) Move(entityID string, dest entity.Position, ctx modifier.Context) (*MoveResult, error) {
	e, err := lookupEntity(entityID)
	if err != nil {
		return nil, err
	}
	distance := gridDistanceFeet(e.Position, dest)
	if distance > 0 {
		if err := e.ActionEconomy.Movement.Spend(distance, ctx); err != nil {
			return nil, err
		}
	}
	from := e.Position
	e.Position = dest
	remaining, err := e.ActionEconomy.Movement.Remaining(ctx)
	if err != nil {
		return nil, err
	}
	return &MoveResult{From: from, To: dest, FeetSpent: distance, FeetRemaining: remaining}, nil
}
