// Package ui is the declarative view tree: leaves (text, canvas), stacks,
// buttons and the modifiers that decorate them.
//
// Every node implements View. A frame runs in three steps:
//
//  1. Measure turns the tree into layout-engine nodes. The first call
//     creates nodes; later calls receive the previous handle and update it
//     in place, so the engine can tell whether anything changed.
//  2. The engine computes absolute rectangles.
//  3. Render and Event walk the tree again. A composite always derives a
//     child's RenderContext from the engine (RenderContext.Child), never by
//     computing geometry itself.
//
// Events are broadcast: every child and every matching handler sees every
// event, and nothing stops propagation. StackZ forwards to all children
// regardless of which one is painted on top.
package ui

import (
	"github.com/hubastard/bloom/engine/layout"
	"github.com/hubastard/bloom/engine/render"
	"github.com/hubastard/bloom/engine/unit"
)

type View interface {
	// Style reports how the node participates in layout. It is computed
	// from the current field values on every call.
	Style() layout.Style
	// Measure creates the node for this subtree when existing is
	// layout.NoNode, or updates existing in place, and returns the handle.
	Measure(e *layout.Engine, existing layout.NodeID) layout.NodeID
	Render(s render.Surface, ctx RenderContext)
	Event(ev Event, ctx RenderContext)
}

// RenderContext is one node's resolved layout plus the engine it came from.
type RenderContext struct {
	Layout  layout.Layout
	Engine  *layout.Engine
	Node    layout.NodeID
	Density unit.Density
}

// ContextFor builds the context of node id from the engine's last layout.
func ContextFor(e *layout.Engine, id layout.NodeID) RenderContext {
	return RenderContext{Layout: e.Layout(id), Engine: e, Node: id, Density: e.Density()}
}

func (c RenderContext) Rect() unit.Rect { return c.Layout.Rect }

func (c RenderContext) ChildCount() int { return c.Engine.ChildCount(c.Node) }

// Child looks up the i-th child node and its layout.
func (c RenderContext) Child(i int) RenderContext {
	return ContextFor(c.Engine, c.Engine.Child(c.Node, i))
}

type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseOther
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	}
	return "other"
}

// Event is Click or CursorMove.
type Event interface{ isEvent() }

type Click struct {
	Point  unit.Point
	Button MouseButton
}

type CursorMove struct {
	Point unit.Point
}

func (Click) isEvent()      {}
func (CursorMove) isEvent() {}

// measureLeaf is Measure for views without children.
func measureLeaf(v View, e *layout.Engine, existing layout.NodeID) layout.NodeID {
	s := v.Style()
	if existing == layout.NoNode {
		return e.NewLeaf(s)
	}
	e.SetStyle(existing, s)
	return existing
}

// measureChildren is Measure for composites. Children keep their position
// in the engine's child list; the i-th child is re-measured against the
// node that was i-th last time.
func measureChildren(s layout.Style, children []View, e *layout.Engine, existing layout.NodeID) layout.NodeID {
	ids := make([]layout.NodeID, len(children))
	if existing == layout.NoNode {
		for i, c := range children {
			ids[i] = c.Measure(e, layout.NoNode)
		}
		return e.NewWithChildren(s, ids)
	}

	e.SetStyle(existing, s)
	have := e.ChildCount(existing)
	for i, c := range children {
		prev := layout.NoNode
		if i < have {
			prev = e.Child(existing, i)
		}
		ids[i] = c.Measure(e, prev)
	}
	e.SetChildren(existing, ids)
	return existing
}

func renderChildren(children []View, s render.Surface, ctx RenderContext) {
	for i, c := range children {
		c.Render(s, ctx.Child(i))
	}
}

func broadcast(children []View, ev Event, ctx RenderContext) {
	for i, c := range children {
		c.Event(ev, ctx.Child(i))
	}
}
