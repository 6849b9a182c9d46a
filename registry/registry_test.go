// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashforge/dnd5e-engine/registry"
	"github.com/ashforge/dnd5e-engine/rpgerr"
)

func TestStoreRegisterGet(t *testing.T) {
	s := registry.New[int]("widget")
	s.Register("a", 1)
	v, ok := s.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestStoreMustGetNotFound(t *testing.T) {
	s := registry.New[int]("widget")
	_, err := s.MustGet("missing")
	require.Error(t, err)
	require.True(t, rpgerr.IsNotFound(err))
}

func TestStoreUnregister(t *testing.T) {
	s := registry.New[string]("widget")
	s.Register("a", "x")
	s.Unregister("a")
	_, ok := s.Get("a")
	require.False(t, ok)
}

func TestStoreAll(t *testing.T) {
	s := registry.New[int]("widget")
	s.Register("a", 1)
	s.Register("b", 2)
	require.Len(t, s.All(), 2)
}

func TestNewIDUnique(t *testing.T) {
	a := registry.NewID()
	b := registry.NewID()
	require.NotEqual(t, a, b)
}
