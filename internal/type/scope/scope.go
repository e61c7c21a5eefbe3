// Released under an MIT license. See LICENSE.

// Package scope provides one binding frame: a name-to-value mapping. A
// Context (see internal/type/context) is an ordered chain of Scopes.
package scope

import (
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cloner"
)

// T (scope) is a single frame of name-to-value bindings.
//
// The interpreter is single-threaded and synchronous (spec §5): the
// collector never runs mid-evaluation, so unlike the teacher's own hash type
// (internal/type/hash, which guards every access with a sync.RWMutex because
// oh's scopes are shared across concurrently running shell jobs) a scope
// here needs no locking at all.
type T struct {
	names map[string]cell.T
}

// New creates an empty scope and registers it with h.
func New(h *heap.Heap) *T {
	s := &T{names: map[string]cell.T{}}
	h.Track(s)

	return s
}

// Contains reports whether name is bound in this scope.
func (s *T) Contains(name string) bool {
	_, ok := s.names[name]

	return ok
}

// Get returns the value bound to name, or nil if this scope does not bind
// it.
func (s *T) Get(name string) cell.T {
	return s.names[name]
}

// Define clones value and binds name to the clone (spec §4.3, §4.4: define
// always clones so a later mutation of the caller's original does not alter
// the binding).
func (s *T) Define(name string, value cell.T, h *heap.Heap) {
	s.names[name] = cloner.Clone(value, h)
}

// Change replaces the value bound to name with a clone of value. The caller
// must already know name is bound; Change on an absent name is a silent
// no-op (spec §4.4 — Context.Change relies on this and checks Contains
// itself before calling).
func (s *T) Change(name string, value cell.T, h *heap.Heap) {
	if !s.Contains(name) {
		return
	}

	s.names[name] = cloner.Clone(value, h)
}

// Trace reports every value this scope binds, for the collector.
func (s *T) Trace() []heap.Traceable {
	edges := make([]heap.Traceable, 0, len(s.names))

	for _, v := range s.names {
		if t, ok := v.(heap.Traceable); ok {
			edges = append(edges, t)
		}
	}

	return edges
}
