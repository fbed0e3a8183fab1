package ui

import (
	"github.com/hubastard/bloom/engine/colors"
	"github.com/hubastard/bloom/engine/layout"
	"github.com/hubastard/bloom/engine/render"
	"github.com/hubastard/bloom/engine/text"
)

type TextView struct {
	Modifiable
	text     func() string
	font     render.Font
	fontSize float32
	paint    render.Paint
}

func Text(s string) *TextView {
	return TextFunc(func() string { return s })
}

// TextFunc reads its string on every Style and Render, so a signal read
// inside fn re-measures the text when it changes.
func TextFunc(fn func() string) *TextView {
	t := &TextView{text: fn, paint: render.Solid(colors.Black)}
	t.Modifiable = Modifiable{self: t}
	return t
}

func (t *TextView) Font(f render.Font) *TextView   { t.font = f; return t }
func (t *TextView) FontSize(px float32) *TextView  { t.fontSize = px; return t }
func (t *TextView) Color(c colors.Color) *TextView { t.paint.Color = c; return t }
func (t *TextView) Paint(p render.Paint) *TextView { t.paint = p; return t }
func (t *TextView) String() string                 { return t.text() }

func (t *TextView) resolvedFont() (f render.Font) {
	f = t.font
	if f == nil {
		f = text.Default()
	}
	if t.fontSize > 0 {
		f = f.WithSize(t.fontSize)
	}
	return f
}

func (t *TextView) Style() layout.Style {
	s := layout.DefaultStyle()
	s.ContentSize = t.resolvedFont().Measure(t.text())
	return s
}

func (t *TextView) Measure(e *layout.Engine, existing layout.NodeID) layout.NodeID {
	return measureLeaf(t, e, existing)
}

func (t *TextView) Render(s render.Surface, ctx RenderContext) {
	s.DrawString(t.text(), ctx.Layout.ContentRect.Origin(), t.resolvedFont(), t.paint)
}

func (t *TextView) Event(Event, RenderContext) {}
