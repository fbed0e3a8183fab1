// Package render defines the drawing surface the views paint onto, plus the
// opaque paint and font values passed through to it.
package render

import (
	"github.com/hubastard/bloom/engine/colors"
	"github.com/hubastard/bloom/engine/unit"
)

type PaintStyle uint8

const (
	Fill PaintStyle = iota
	Stroke
)

// Paint describes how a shape or glyph is colored.
type Paint struct {
	Color       colors.Color
	Style       PaintStyle
	StrokeWidth int
}

func Solid(c colors.Color) Paint { return Paint{Color: c} }

func Outline(c colors.Color, width int) Paint {
	return Paint{Color: c, Style: Stroke, StrokeWidth: max(1, width)}
}

// Font measures strings in pixels. Backends supply concrete fonts.
type Font interface {
	Measure(s string) unit.Size
	// Ascent is the distance from the top of a line to its baseline.
	Ascent() int
	// WithSize returns the same face at another pixel size; fixed-size
	// backends return themselves.
	WithSize(px float32) Font
}

// Surface is the pixel target a frame is drawn onto.
type Surface interface {
	Size() unit.Size
	Clear(c colors.Color)
	FillRect(r unit.Rect, p Paint)
	// DrawString draws s with the top-left of its line box at at.
	DrawString(s string, at unit.Point, f Font, p Paint)
}

// Translated offsets every draw call by a fixed amount.
type Translated struct {
	Surface
	Offset unit.Point
}

func (t Translated) FillRect(r unit.Rect, p Paint) {
	t.Surface.FillRect(r.Translate(t.Offset.X, t.Offset.Y), p)
}

func (t Translated) DrawString(s string, at unit.Point, f Font, p Paint) {
	t.Surface.DrawString(s, at.Add(t.Offset), f, p)
}

// StrokeRect splits an outline into four filled edges.
func StrokeRect(r unit.Rect, width int) []unit.Rect {
	w := min(width, r.Width/2+r.Width%2, r.Height/2+r.Height%2)
	if w <= 0 {
		return nil
	}
	return []unit.Rect{
		unit.XYWH(r.X, r.Y, r.Width, w),
		unit.XYWH(r.X, r.Bottom()-w, r.Width, w),
		unit.XYWH(r.X, r.Y+w, w, r.Height-2*w),
		unit.XYWH(r.Right()-w, r.Y+w, w, r.Height-2*w),
	}
}

// DrawRect fills r, or outlines it when p is a Stroke paint.
func DrawRect(s Surface, r unit.Rect, p Paint) {
	if p.Style != Stroke {
		s.FillRect(r, p)
		return
	}
	for _, edge := range StrokeRect(r, p.StrokeWidth) {
		s.FillRect(edge, Solid(p.Color))
	}
}
