package ui

import (
	"github.com/hubastard/bloom/engine/layout"
	"github.com/hubastard/bloom/engine/render"
	"github.com/hubastard/bloom/engine/ui/alignment"
	"github.com/hubastard/bloom/engine/ui/arrangement"
)

// children is the part every stack shares: an ordered child list whose
// positions are the engine's child indices.
type children []View

func (c children) render(s render.Surface, ctx RenderContext) { renderChildren(c, s, ctx) }

// XStack lays its children out left to right.
type XStack struct {
	Modifiable
	children
	arrangement arrangement.Arrangement
	align       alignment.Vertical
}

func StackX(views ...View) *XStack {
	s := &XStack{children: views, arrangement: arrangement.Start, align: alignment.Top}
	s.Modifiable = Modifiable{self: s}
	return s
}

// Arrange sets the main-axis strategy, e.g. arrangement.SpacedBy(10).
func (s *XStack) Arrange(a arrangement.Arrangement) *XStack { s.arrangement = a; return s }

// AlignChildren sets where children sit vertically inside the row.
func (s *XStack) AlignChildren(a alignment.Vertical) *XStack { s.align = a; return s }

func (s *XStack) Style() layout.Style {
	return stackStyle(layout.Row, s.arrangement, s.align.Bias())
}

func (s *XStack) Measure(e *layout.Engine, existing layout.NodeID) layout.NodeID {
	return measureChildren(s.Style(), s.children, e, existing)
}

func (s *XStack) Render(r render.Surface, ctx RenderContext) { s.render(r, ctx) }
func (s *XStack) Event(ev Event, ctx RenderContext)          { broadcast(s.children, ev, ctx) }

// YStack lays its children out top to bottom.
type YStack struct {
	Modifiable
	children
	arrangement arrangement.Arrangement
	align       alignment.Horizontal
}

func StackY(views ...View) *YStack {
	s := &YStack{children: views, arrangement: arrangement.Top, align: alignment.Start}
	s.Modifiable = Modifiable{self: s}
	return s
}

func (s *YStack) Arrange(a arrangement.Arrangement) *YStack { s.arrangement = a; return s }

// AlignChildren sets where children sit horizontally inside the column.
func (s *YStack) AlignChildren(a alignment.Horizontal) *YStack { s.align = a; return s }

func (s *YStack) Style() layout.Style {
	return stackStyle(layout.Column, s.arrangement, s.align.Bias())
}

func (s *YStack) Measure(e *layout.Engine, existing layout.NodeID) layout.NodeID {
	return measureChildren(s.Style(), s.children, e, existing)
}

func (s *YStack) Render(r render.Surface, ctx RenderContext) { s.render(r, ctx) }
func (s *YStack) Event(ev Event, ctx RenderContext)          { broadcast(s.children, ev, ctx) }

// ZStack draws its children on top of each other, later children last. It
// is as large as the union of its children, which start at its top-left
// corner unless they carry an Align modifier. Every child receives every
// event, whichever one is visible at the point.
type ZStack struct {
	Modifiable
	children
}

func StackZ(views ...View) *ZStack {
	s := &ZStack{children: views}
	s.Modifiable = Modifiable{self: s}
	return s
}

func (s *ZStack) Style() layout.Style {
	st := layout.DefaultStyle()
	st.Direction = layout.Overlay
	st.AlignItems = layout.AlignStart
	return st
}

func (s *ZStack) Measure(e *layout.Engine, existing layout.NodeID) layout.NodeID {
	return measureChildren(s.Style(), s.children, e, existing)
}

func (s *ZStack) Render(r render.Surface, ctx RenderContext) { s.render(r, ctx) }
func (s *ZStack) Event(ev Event, ctx RenderContext)          { broadcast(s.children, ev, ctx) }

func stackStyle(dir layout.Direction, a arrangement.Arrangement, crossBias float32) layout.Style {
	s := layout.DefaultStyle()
	s.Direction = dir
	s.Gap = a.Spacing()
	s.Arrangement = a
	s.JustifyContent = layout.Justify(a.Justify())
	s.AlignItems = layout.AlignBias(crossBias)
	return s
}
