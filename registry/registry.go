// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package registry provides the process-wide, identifier-keyed lookup
// that every long-lived engine object (modifier, value, block,
// condition, entity, roll record) is addressable through.
//
// This generalizes dnd/core.py's per-class `_registry: ClassVar[Dict[UUID,
// T]]` pattern (one map per Python model class) into a single generic
// type, guarded the way events.Bus guards its subscriber map: a
// sync.RWMutex held only for the duration of the map operation,
// never across a caller's resolution step. The resolution engine itself
// is single-threaded per call; the guard exists so that a host running
// several independent resolvers concurrently, each over a disjoint set
// of entities, cannot corrupt the shared id space.
package registry

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ashforge/dnd5e-engine/rpgerr"
)

// NewID generates a new version-4 UUID string for any of the engine's
// identifier kinds.
func NewID() string {
	return uuid.NewString()
}

// Store is a process-wide registry of objects of type T, keyed by a
// stable string identifier.
type Store[T any] struct {
	mu   sync.RWMutex
	kind string
	objs map[string]T
}

// New creates an empty Store. kind is used only to annotate NotFound
// errors (e.g. "modifier", "entity").
func New[T any](kind string) *Store[T] {
	return &Store[T]{kind: kind, objs: make(map[string]T)}
}

// Register stores obj under id, overwriting any previous value.
func (s *Store[T]) Register(id string, obj T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objs[id] = obj
}

// Unregister removes id from the store. Removing an absent id is a no-op.
func (s *Store[T]) Unregister(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objs, id)
}

// Get retrieves the object registered under id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objs[id]
	return obj, ok
}

// MustGet retrieves the object registered under id, returning a NotFound
// rpgerr.Error if absent.
func (s *Store[T]) MustGet(id string) (T, error) {
	obj, ok := s.Get(id)
	if !ok {
		var zero T
		return zero, rpgerr.NotFound(s.kind, id)
	}
	return obj, nil
}

// Len returns the number of registered objects.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objs)
}

// All returns a snapshot slice of every registered object. The order is
// unspecified; callers needing a deterministic order must sort it.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.objs))
	for _, obj := range s.objs {
		out = append(out, obj)
	}
	return out
}
