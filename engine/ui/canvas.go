package ui

import (
	"github.com/hubastard/bloom/engine/layout"
	"github.com/hubastard/bloom/engine/render"
	"github.com/hubastard/bloom/engine/unit"
)

// CanvasView is a fixed-size leaf that draws with a callback. The callback
// draws in local coordinates: (0,0) is the top-left of the content box.
type CanvasView struct {
	Modifiable
	size unit.Size
	draw func(s render.Surface, size unit.Size)
}

func Canvas(width, height int, draw func(s render.Surface, size unit.Size)) *CanvasView {
	c := &CanvasView{size: unit.Sz(width, height), draw: draw}
	c.Modifiable = Modifiable{self: c}
	return c
}

// Rectangle is a canvas painted edge to edge with p.
func Rectangle(width, height int, p render.Paint) *CanvasView {
	return Canvas(width, height, func(s render.Surface, size unit.Size) {
		render.DrawRect(s, unit.RectFrom(unit.Point{}, size), p)
	})
}

// Spacer takes up space and draws nothing.
func Spacer(width, height int) *CanvasView { return Canvas(width, height, nil) }

func (c *CanvasView) Style() layout.Style {
	s := layout.DefaultStyle()
	s.ContentSize = c.size
	return s
}

func (c *CanvasView) Measure(e *layout.Engine, existing layout.NodeID) layout.NodeID {
	return measureLeaf(c, e, existing)
}

func (c *CanvasView) Render(s render.Surface, ctx RenderContext) {
	if c.draw == nil {
		return
	}
	content := ctx.Layout.ContentRect
	c.draw(render.Translated{Surface: s, Offset: content.Origin()}, content.Size())
}

func (c *CanvasView) Event(Event, RenderContext) {}
