// Package unit holds the geometry value types shared by the layout engine,
// the views and the drawing surfaces.
//
// All coordinates are integer pixels with the origin at the top-left corner
// and Y growing downward. Dp is the only density-independent quantity.
package unit

import (
	"fmt"
	"math"
)

// Dp is a density-independent length. One Dp is one pixel at density 1.
type Dp float32

func (d Dp) String() string { return fmt.Sprintf("%gdp", float32(d)) }

// Density is the number of pixels per Dp.
type Density float32

// DefaultDensity is used when the host does not report a scale factor.
const DefaultDensity Density = 1

// Pixels converts dp to fractional pixels.
func (d Density) Pixels(dp Dp) float32 { return float32(dp) * float32(d) }

// RoundToPixels converts dp to whole pixels, rounding half away from zero.
func (d Density) RoundToPixels(dp Dp) int {
	return int(math.Round(float64(d.Pixels(dp))))
}

// Dp converts a pixel length back to Dp.
func (d Density) Dp(px int) Dp {
	if d == 0 {
		return Dp(px)
	}
	return Dp(float32(px) / float32(d))
}

type Point struct{ X, Y int }

func Pt(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// PointF floors float host coordinates onto the pixel grid, so -0.5 lands
// in column -1.
func PointF(x, y float64) Point {
	return Point{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

type Size struct{ Width, Height int }

func Sz(w, h int) Size { return Size{Width: w, Height: h} }

// Max returns the componentwise maximum.
func (s Size) Max(o Size) Size {
	return Size{Width: max(s.Width, o.Width), Height: max(s.Height, o.Height)}
}

func (s Size) Empty() bool { return s.Width <= 0 || s.Height <= 0 }

// Edges is a set of insets, one per side.
type Edges struct{ Left, Top, Right, Bottom int }

func EdgeAll(n int) Edges { return Edges{n, n, n, n} }

func EdgeSymmetric(horizontal, vertical int) Edges {
	return Edges{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeLTRB builds edges in left, top, right, bottom order.
func EdgeLTRB(l, t, r, b int) Edges { return Edges{Left: l, Top: t, Right: r, Bottom: b} }

// Horizontal is Left + Right.
func (e Edges) Horizontal() int { return e.Left + e.Right }

// Vertical is Top + Bottom.
func (e Edges) Vertical() int { return e.Top + e.Bottom }

func (e Edges) Add(o Edges) Edges {
	return Edges{e.Left + o.Left, e.Top + o.Top, e.Right + o.Right, e.Bottom + o.Bottom}
}

// Rect is an axis-aligned rectangle. Min is inclusive, Max exclusive.
type Rect struct{ X, Y, Width, Height int }

func XYWH(x, y, w, h int) Rect { return Rect{X: x, Y: y, Width: w, Height: h} }

func RectFrom(p Point, s Size) Rect { return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height} }

func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }
func (r Rect) Size() Size    { return Size{Width: r.Width, Height: r.Height} }
func (r Rect) Right() int    { return r.X + r.Width }
func (r Rect) Bottom() int   { return r.Y + r.Height }
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Inset shrinks r by e, never below zero size.
func (r Rect) Inset(e Edges) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  max(0, r.Width-e.Horizontal()),
		Height: max(0, r.Height-e.Vertical()),
	}
}

func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Union returns the smallest rectangle containing both.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Intersect returns the overlap, or the zero Rect.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
