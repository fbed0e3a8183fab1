// Package layout is a small flexbox-style engine. Nodes live in an arena
// owned by the Engine and are addressed by NodeID handles that stay valid
// for the Engine's lifetime.
//
// Usage:
//
//	e := layout.New(1)
//	a := e.NewLeaf(layout.Style{ContentSize: unit.Sz(50, 20)})
//	b := e.NewLeaf(layout.Style{ContentSize: unit.Sz(60, 20)})
//	row := e.NewWithChildren(layout.Style{Gap: 10}, []layout.NodeID{a, b})
//	e.ComputeLayout(row, unit.Sz(200, 100))
//	e.Layout(b).Rect // (60,0 60x20)
//
// Misuse of a handle (unknown id, child index out of range) panics with an
// error wrapping ErrInvalidNode.
package layout

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hubastard/bloom/engine/unit"
)

var ErrInvalidNode = errors.New("layout: invalid node")

// NodeID is a handle into an Engine.
type NodeID uint32

// NoNode stands for "no node yet". It is never a valid handle.
const NoNode = ^NodeID(0)

// Layout is the resolved geometry of a node in absolute pixels.
type Layout struct {
	// Rect is the border box.
	Rect unit.Rect
	// ContentRect is Rect inset by padding.
	ContentRect unit.Rect
}

type node struct {
	style    Style
	children []NodeID
	layout   Layout

	// state at the last ComputeLayout, for Dirty
	laidOut         Style
	computed        bool
	childrenChanged bool
}

type Engine struct {
	nodes   []node
	density unit.Density
}

func New(density unit.Density) *Engine {
	if density <= 0 {
		density = unit.DefaultDensity
	}
	return &Engine{density: density}
}

func (e *Engine) Density() unit.Density { return e.density }

// SetDensity changes the Dp scale. Every node becomes dirty.
func (e *Engine) SetDensity(d unit.Density) {
	if d <= 0 || d == e.density {
		return
	}
	e.density = d
	for i := range e.nodes {
		e.nodes[i].computed = false
	}
}

// Created is the number of nodes ever created.
func (e *Engine) Created() int { return len(e.nodes) }

func (e *Engine) NewLeaf(s Style) NodeID {
	e.nodes = append(e.nodes, node{style: s})
	return NodeID(len(e.nodes) - 1)
}

func (e *Engine) NewWithChildren(s Style, children []NodeID) NodeID {
	for _, c := range children {
		e.node(c, "NewWithChildren")
	}
	e.nodes = append(e.nodes, node{style: s, children: slices.Clone(children)})
	return NodeID(len(e.nodes) - 1)
}

func (e *Engine) Style(id NodeID) Style { return e.node(id, "Style").style }

// SetStyle replaces the style of id. Dirty reports true until the next
// ComputeLayout unless s equals the style that was last laid out.
func (e *Engine) SetStyle(id NodeID, s Style) {
	e.node(id, "SetStyle").style = s
}

// SetChildren replaces the ordered child list of id.
func (e *Engine) SetChildren(id NodeID, children []NodeID) {
	n := e.node(id, "SetChildren")
	for _, c := range children {
		e.node(c, "SetChildren")
	}
	if slices.Equal(n.children, children) {
		return
	}
	n.children = slices.Clone(children)
	n.childrenChanged = true
}

func (e *Engine) ChildCount(id NodeID) int { return len(e.node(id, "ChildCount").children) }

// Child returns the index-th child of id.
func (e *Engine) Child(id NodeID, index int) NodeID {
	n := e.node(id, "Child")
	if index < 0 || index >= len(n.children) {
		panic(fmt.Errorf("%w: child %d of node %d (has %d)", ErrInvalidNode, index, id, len(n.children)))
	}
	return n.children[index]
}

func (e *Engine) Children(id NodeID) []NodeID {
	return slices.Clone(e.node(id, "Children").children)
}

// Layout returns the geometry from the last ComputeLayout covering id.
func (e *Engine) Layout(id NodeID) Layout { return e.node(id, "Layout").layout }

// Dirty reports whether id or any node below it changed since it was last
// laid out.
func (e *Engine) Dirty(id NodeID) bool {
	n := e.node(id, "Dirty")
	if !n.computed || n.childrenChanged || !equalStyle(n.style, n.laidOut) {
		return true
	}
	for _, c := range n.children {
		if e.Dirty(c) {
			return true
		}
	}
	return false
}

// ComputeLayout sizes and places the tree under root inside available.
// An auto-sized root fits its content and is positioned with its own
// AlignX/AlignY.
func (e *Engine) ComputeLayout(root NodeID, available unit.Size) {
	n := e.node(root, "ComputeLayout")
	size := e.measure(root, available)
	at := unit.Pt(
		n.style.AlignX.offset(size.Width, available.Width),
		n.style.AlignY.offset(size.Height, available.Height),
	)
	e.place(root, applyInset(unit.RectFrom(at, size), n.style.Inset))
}

func (e *Engine) node(id NodeID, op string) *node {
	if int(id) >= len(e.nodes) {
		panic(fmt.Errorf("%w: %s on node %d", ErrInvalidNode, op, id))
	}
	return &e.nodes[id]
}

func applyInset(r unit.Rect, inset unit.Edges) unit.Rect {
	return r.Translate(inset.Left-inset.Right, inset.Top-inset.Bottom)
}
