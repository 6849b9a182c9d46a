// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Roller is the interface for random number generation. Implementations
// must be safe for concurrent use.
//
//go:generate mockgen -destination=mock/mock_roller.go -package=mock_dice github.com/ashforge/dnd5e-engine/dice Roller
type Roller interface {
	// Roll returns a random value in [1, size].
	Roll(size int) (int, error)
	// RollN rolls count dice of the given size.
	RollN(count, size int) ([]int, error)
}

// CryptoRoller implements Roller using crypto/rand.
type CryptoRoller struct{}

// Roll returns a cryptographically secure random number from 1 to size.
func (c *CryptoRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("dice: invalid die size %d", size)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(size)))
	if err != nil {
		return 0, fmt.Errorf("dice: crypto/rand error: %w", err)
	}
	return int(n.Int64()) + 1, nil
}

// RollN rolls multiple dice using crypto/rand.
func (c *CryptoRoller) RollN(count, size int) ([]int, error) {
	if size <= 0 {
		return nil, fmt.Errorf("dice: invalid die size %d", size)
	}
	if count < 0 {
		return nil, fmt.Errorf("dice: invalid die count %d", count)
	}
	results := make([]int, count)
	for i := 0; i < count; i++ {
		roll, err := c.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = roll
	}
	return results, nil
}

// DefaultRoller is the package-level roller used when no Roller is
// threaded explicitly.
var DefaultRoller Roller = &CryptoRoller{}
