package ui

import (
	"github.com/hubastard/bloom/engine/layout"
	"github.com/hubastard/bloom/engine/render"
	"github.com/hubastard/bloom/engine/unit"
)

// Tree owns a root view and the engine its nodes live in.
type Tree struct {
	Root   View
	Engine *layout.Engine

	node      layout.NodeID
	available unit.Size
	laidOut   bool
}

func NewTree(root View, density unit.Density) *Tree {
	return &Tree{Root: root, Engine: layout.New(density), node: layout.NoNode}
}

// Measure re-measures the whole tree into the engine, reusing the node
// handles from the previous pass. It reports whether a relayout is needed.
func (t *Tree) Measure() bool {
	t.node = t.Root.Measure(t.Engine, t.node)
	return !t.laidOut || t.Engine.Dirty(t.node)
}

// Layout resolves geometry for the last measured tree.
func (t *Tree) Layout(available unit.Size) {
	if t.node == layout.NoNode {
		t.Measure()
	}
	t.Engine.ComputeLayout(t.node, available)
	t.available = available
	t.laidOut = true
}

// Update measures and, if anything changed or available differs from the
// last layout, lays out again. It reports whether layout ran.
func (t *Tree) Update(available unit.Size) bool {
	dirty := t.Measure()
	if !dirty && available == t.available {
		return false
	}
	t.Layout(available)
	return true
}

// Node returns the root handle, or layout.NoNode before the first Measure.
func (t *Tree) Node() layout.NodeID { return t.node }

// Context is a fresh root context from the current layout.
func (t *Tree) Context() RenderContext { return ContextFor(t.Engine, t.node) }

func (t *Tree) Render(s render.Surface) { t.Root.Render(s, t.Context()) }

// Dispatch delivers ev against the current layout.
func (t *Tree) Dispatch(ev Event) { t.Root.Event(ev, t.Context()) }
