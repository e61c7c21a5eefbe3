// Released under an MIT license. See LICENSE.

// Package heap provides the interpreter's sole allocator and its
// mark-and-sweep collector.
//
// Every runtime value — pairs, symbols, procedures, scopes, the context
// itself — is registered with a Heap at construction time and lives until a
// Collect finds it unreachable from the current root. Built-in procedures
// and the shared empty list are the exceptions: they are never registered.
// There is no reference
// counting and no generational structure; Collect always does a full trace.
package heap

// Traceable is anything the collector can allocate and trace. Atoms (numbers,
// booleans) have no outgoing edges and return nil from Trace. Compound values
// report the other Traceable values they hold so Collect can follow them.
type Traceable interface {
	Trace() []Traceable
}

// Heap tracks every live allocation and the current root. It is not a
// process-wide singleton: each Interpreter owns one, so tests (and multiple
// interpreters in the same process) never share collector state.
type Heap struct {
	live map[Traceable]struct{}
	root Traceable
}

// New creates an empty heap with no root. SetRoot must be called before the
// first Collect.
func New() *Heap {
	return &Heap{live: map[Traceable]struct{}{}}
}

// Track registers t as a live allocation and returns it, so constructors can
// write `return h.Track(&T{...})`.
func (h *Heap) Track(t Traceable) Traceable {
	h.live[t] = struct{}{}

	return t
}

// SetRoot designates the single object the collector traces from. Passing a
// new root before the next Collect is how a caller re-roots the heap between
// runs (spec: "the top-level context must be re-rooted before any allocation
// of the next run" — in practice the root context is reused, not replaced,
// but SetRoot supports both).
func (h *Heap) SetRoot(root Traceable) {
	h.root = root
}

// Live reports how many allocations are currently tracked. Exposed for
// tests that assert on collector soundness/completeness.
func (h *Heap) Live() int {
	return len(h.live)
}

// Collect runs one mark-and-sweep cycle: everything transitively reachable
// from the root survives, everything else is dropped from the live set.
// Collect must only be called at a quiescent point — never while an
// evaluation holds a reference to something not yet reachable from the root
// (e.g. mid-Apply, before a new binding has been Defined).
func (h *Heap) Collect() {
	marked := make(map[Traceable]struct{}, len(h.live))

	if h.root != nil {
		mark(h.root, marked)
	}

	survivors := make(map[Traceable]struct{}, len(marked))
	for t := range h.live {
		if _, ok := marked[t]; ok {
			survivors[t] = struct{}{}
		}
	}

	h.live = survivors
}

func mark(t Traceable, marked map[Traceable]struct{}) {
	if t == nil {
		return
	}

	if _, ok := marked[t]; ok {
		return
	}

	marked[t] = struct{}{}

	for _, edge := range t.Trace() {
		mark(edge, marked)
	}
}
