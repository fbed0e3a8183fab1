package ui

import (
	"github.com/hubastard/bloom/engine/layout"
	"github.com/hubastard/bloom/engine/render"
)

// Modifier decorates a View. A modifier implements any subset of
// StyleModifier, MeasureModifier, RenderModifier and EventModifier; every
// operation it does not implement passes straight through to the view.
type Modifier interface{}

type StyleModifier interface {
	ModifyStyle(s layout.Style) layout.Style
}

type MeasureModifier interface {
	Measure(v View, e *layout.Engine, existing layout.NodeID) layout.NodeID
}

type RenderModifier interface {
	Render(v View, s render.Surface, ctx RenderContext)
}

type EventModifier interface {
	Event(v View, ev Event, ctx RenderContext)
}

// Modified is a view wrapped in one modifier. It shares the wrapped view's
// layout node.
type Modified struct {
	Modifiable
	view View
	mod  Modifier
}

// Modify wraps v in m.
func Modify(v View, m Modifier) *Modified {
	out := &Modified{view: v, mod: m}
	out.Modifiable = Modifiable{self: out}
	return out
}

func (m *Modified) Unwrap() View       { return m.view }
func (m *Modified) Modifier() Modifier { return m.mod }

func (m *Modified) Style() layout.Style {
	s := m.view.Style()
	if sm, ok := m.mod.(StyleModifier); ok {
		s = sm.ModifyStyle(s)
	}
	return s
}

// Measure lets the wrapped view build or update its node, then stores the
// merged style on it.
func (m *Modified) Measure(e *layout.Engine, existing layout.NodeID) layout.NodeID {
	if mm, ok := m.mod.(MeasureModifier); ok {
		return mm.Measure(m.view, e, existing)
	}
	id := m.view.Measure(e, existing)
	if _, ok := m.mod.(StyleModifier); ok {
		e.SetStyle(id, m.Style())
	}
	return id
}

func (m *Modified) Render(s render.Surface, ctx RenderContext) {
	if rm, ok := m.mod.(RenderModifier); ok {
		rm.Render(m.view, s, ctx)
		return
	}
	m.view.Render(s, ctx)
}

func (m *Modified) Event(ev Event, ctx RenderContext) {
	if em, ok := m.mod.(EventModifier); ok {
		em.Event(m.view, ev, ctx)
		return
	}
	m.view.Event(ev, ctx)
}
