package ui

import (
	"github.com/hubastard/bloom/engine/layout"
	"github.com/hubastard/bloom/engine/render"
	"github.com/hubastard/bloom/engine/unit"
)

// ButtonView makes its child clickable. It takes the child's node and
// geometry as its own.
type ButtonView struct {
	Modifiable
	child   View
	onClick func(unit.Point, MouseButton)
}

func Button(child View, onClick func(at unit.Point, button MouseButton)) *ButtonView {
	b := &ButtonView{child: child, onClick: onClick}
	b.Modifiable = Modifiable{self: b}
	return b
}

func (b *ButtonView) Style() layout.Style { return b.child.Style() }

func (b *ButtonView) Measure(e *layout.Engine, existing layout.NodeID) layout.NodeID {
	return b.child.Measure(e, existing)
}

func (b *ButtonView) Render(s render.Surface, ctx RenderContext) { b.child.Render(s, ctx) }

func (b *ButtonView) Event(ev Event, ctx RenderContext) {
	if c, ok := ev.(Click); ok && b.onClick != nil && ctx.Layout.Rect.Contains(c.Point) {
		b.onClick(c.Point, c.Button)
	}
	b.child.Event(ev, ctx)
}
