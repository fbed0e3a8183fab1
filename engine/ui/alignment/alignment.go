// Package alignment positions a box inside a larger span using a bias:
// -1 is the start edge, 0 the center and 1 the end edge. Values in between
// interpolate.
package alignment

import (
	"fmt"
	"math"

	"github.com/hubastard/bloom/engine/unit"
)

// align is the shared bias formula.
func align(bias float32, size, space int) int {
	center := float64(space-size) / 2
	return int(math.Round(center * float64(1+bias)))
}

// Horizontal is a bias along the X axis.
type Horizontal struct{ bias float32 }

// The zero Horizontal is CenterHorizontally.
var (
	Start              = Horizontal{-1}
	CenterHorizontally = Horizontal{0}
	End                = Horizontal{1}
)

// HorizontalBias builds a custom horizontal alignment.
func HorizontalBias(bias float32) Horizontal { return Horizontal{bias} }

func (h Horizontal) Bias() float32 { return h.bias }

// Align returns the offset of a box of size inside space.
func (h Horizontal) Align(size, space int) int { return align(h.bias, size, space) }

func (h Horizontal) String() string {
	switch h.bias {
	case -1:
		return "Start"
	case 0:
		return "Center"
	case 1:
		return "End"
	}
	return fmt.Sprintf("Custom(%g)", h.bias)
}

// Vertical is a bias along the Y axis.
type Vertical struct{ bias float32 }

// The zero Vertical is CenterVertically.
var (
	Top              = Vertical{-1}
	CenterVertically = Vertical{0}
	Bottom           = Vertical{1}
)

func VerticalBias(bias float32) Vertical { return Vertical{bias} }

func (v Vertical) Bias() float32 { return v.bias }

func (v Vertical) Align(size, space int) int { return align(v.bias, size, space) }

func (v Vertical) String() string {
	switch v.bias {
	case -1:
		return "Top"
	case 0:
		return "Center"
	case 1:
		return "Bottom"
	}
	return fmt.Sprintf("Custom(%g)", v.bias)
}

// Alignment combines both axes.
type Alignment struct {
	Horizontal Horizontal
	Vertical   Vertical
}

func FromBias(x, y float32) Alignment {
	return Alignment{Horizontal: HorizontalBias(x), Vertical: VerticalBias(y)}
}

var (
	TopStart     = FromBias(-1, -1)
	TopCenter    = FromBias(0, -1)
	TopEnd       = FromBias(1, -1)
	CenterStart  = FromBias(-1, 0)
	Center       = FromBias(0, 0)
	CenterEnd    = FromBias(1, 0)
	BottomStart  = FromBias(-1, 1)
	BottomCenter = FromBias(0, 1)
	BottomEnd    = FromBias(1, 1)
)

// Align returns the top-left offset of size inside space.
func (a Alignment) Align(size, space unit.Size) unit.Point {
	return unit.Pt(
		a.Horizontal.Align(size.Width, space.Width),
		a.Vertical.Align(size.Height, space.Height),
	)
}

func (a Alignment) String() string {
	return fmt.Sprintf("%v/%v", a.Vertical, a.Horizontal)
}
