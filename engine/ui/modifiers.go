package ui

import (
	"github.com/hubastard/bloom/engine/colors"
	"github.com/hubastard/bloom/engine/layout"
	"github.com/hubastard/bloom/engine/reactive"
	"github.com/hubastard/bloom/engine/render"
	"github.com/hubastard/bloom/engine/ui/alignment"
	"github.com/hubastard/bloom/engine/unit"
)

// Background fills the node's rectangle before drawing the view.
type Background struct {
	Paint func() render.Paint
}

func (b Background) Render(v View, s render.Surface, ctx RenderContext) {
	render.DrawRect(s, ctx.Layout.Rect, b.Paint())
	v.Render(s, ctx)
}

// Padding adds insets between the node's edge and its content.
type Padding struct{ Insets unit.Edges }

func (p Padding) ModifyStyle(s layout.Style) layout.Style {
	s.Padding = s.Padding.Add(p.Insets)
	return s
}

// Offset moves the node relative to where layout put it.
type Offset struct{ Inset unit.Edges }

func (o Offset) ModifyStyle(s layout.Style) layout.Style {
	s.Inset = s.Inset.Add(o.Inset)
	return s
}

// Align positions the node inside the space its parent leaves it.
type Align struct{ Alignment alignment.Alignment }

func (a Align) ModifyStyle(s layout.Style) layout.Style {
	s.AlignX = layout.AlignBias(a.Alignment.Horizontal.Bias())
	s.AlignY = layout.AlignBias(a.Alignment.Vertical.Bias())
	return s
}

// Frame overrides the node's size on the axes that are not Auto.
type Frame struct{ Width, Height layout.Dimension }

func (f Frame) ModifyStyle(s layout.Style) layout.Style {
	if !f.Width.IsAuto() {
		s.Width = f.Width
	}
	if !f.Height.IsAuto() {
		s.Height = f.Height
	}
	return s
}

// Weight makes the node take a share of its parent's free main-axis space.
type Weight struct{ Grow float32 }

func (w Weight) ModifyStyle(s layout.Style) layout.Style {
	s.FlexGrow = w.Grow
	return s
}

// OnClick calls Handler for clicks inside the node, then forwards the
// event.
type OnClick struct {
	Handler func(MouseButton)
}

func (o OnClick) Event(v View, ev Event, ctx RenderContext) {
	if c, ok := ev.(Click); ok && ctx.Layout.Rect.Contains(c.Point) {
		o.Handler(c.Button)
	}
	v.Event(ev, ctx)
}

// OnEvent sees every event before the view does.
type OnEvent struct {
	Handler func(Event, RenderContext)
}

func (o OnEvent) Event(v View, ev Event, ctx RenderContext) {
	o.Handler(ev, ctx)
	v.Event(ev, ctx)
}

// Hovering tracks whether the cursor is over the node.
type Hovering struct {
	Signal *reactive.Signal[bool]
}

func (h Hovering) Event(v View, ev Event, ctx RenderContext) {
	if m, ok := ev.(CursorMove); ok {
		if ctx.Layout.Rect.Contains(m.Point) {
			h.Signal.Set(true)
		} else if h.Signal.GetUntracked() {
			h.Signal.Set(false)
		}
	}
	v.Event(ev, ctx)
}

// Modifiable gives a view the chainable modifier methods. Views embed it
// and point self at themselves.
type Modifiable struct {
	self View
}

func (m Modifiable) With(mod Modifier) *Modified { return Modify(m.self, mod) }

func (m Modifiable) Background(p render.Paint) *Modified {
	return m.With(Background{Paint: func() render.Paint { return p }})
}

func (m Modifiable) BackgroundColor(c colors.Color) *Modified {
	return m.Background(render.Solid(c))
}

// BackgroundFunc reads the paint on every render; signals read inside fn
// are tracked by the render effect.
func (m Modifiable) BackgroundFunc(fn func() render.Paint) *Modified {
	return m.With(Background{Paint: fn})
}

func (m Modifiable) Padding(insets unit.Edges) *Modified { return m.With(Padding{Insets: insets}) }

func (m Modifiable) PaddingAll(n int) *Modified { return m.Padding(unit.EdgeAll(n)) }

func (m Modifiable) Offset(dx, dy int) *Modified {
	return m.With(Offset{Inset: unit.Edges{Left: dx, Top: dy}})
}

func (m Modifiable) Align(a alignment.Alignment) *Modified { return m.With(Align{Alignment: a}) }

func (m Modifiable) Size(w, h int) *Modified {
	return m.With(Frame{Width: layout.Px(w), Height: layout.Px(h)})
}

func (m Modifiable) FillMaxSize() *Modified {
	return m.With(Frame{Width: layout.Percent(100), Height: layout.Percent(100)})
}

func (m Modifiable) FillMaxWidth() *Modified {
	return m.With(Frame{Width: layout.Percent(100)})
}

func (m Modifiable) FillMaxHeight() *Modified {
	return m.With(Frame{Height: layout.Percent(100)})
}

func (m Modifiable) Weight(grow float32) *Modified { return m.With(Weight{Grow: grow}) }

func (m Modifiable) OnClick(fn func(MouseButton)) *Modified { return m.With(OnClick{Handler: fn}) }

func (m Modifiable) OnEvent(fn func(Event, RenderContext)) *Modified {
	return m.With(OnEvent{Handler: fn})
}

func (m Modifiable) Hovering(s *reactive.Signal[bool]) *Modified { return m.With(Hovering{Signal: s}) }
