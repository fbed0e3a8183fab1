package layout

import (
	"reflect"

	"github.com/hubastard/bloom/engine/unit"
)

// Direction is the axis children are laid out along.
type Direction uint8

const (
	Row Direction = iota
	Column
	// Overlay stacks children on top of each other in the content box.
	Overlay
)

func (d Direction) String() string {
	switch d {
	case Column:
		return "column"
	case Overlay:
		return "overlay"
	}
	return "row"
}

type dimUnit uint8

const (
	unitAuto dimUnit = iota
	unitPx
	unitPercent
)

// Dimension is a length that is either auto, fixed pixels or a percentage
// of the parent's content box. The zero value is Auto.
type Dimension struct {
	amount float32
	unit   dimUnit
}

func Auto() Dimension               { return Dimension{} }
func Px(n int) Dimension            { return Dimension{amount: float32(n), unit: unitPx} }
func Percent(p float32) Dimension   { return Dimension{amount: p, unit: unitPercent} }
func (d Dimension) IsAuto() bool    { return d.unit == unitAuto }
func (d Dimension) IsPercent() bool { return d.unit == unitPercent }
func (d Dimension) Amount() float32 { return d.amount }

// Resolve converts d to pixels against parent. ok is false for Auto.
func (d Dimension) Resolve(parent int) (px int, ok bool) {
	switch d.unit {
	case unitPx:
		return int(d.amount), true
	case unitPercent:
		return int(float32(parent) * d.amount / 100), true
	}
	return 0, false
}

// Align places an item on one axis. The zero value is unset, which defers
// to the parent or to the start edge.
type Align struct {
	Bias    float32
	Stretch bool
	Set     bool
}

var (
	AlignStart   = Align{Bias: -1, Set: true}
	AlignCenter  = Align{Bias: 0, Set: true}
	AlignEnd     = Align{Bias: 1, Set: true}
	AlignStretch = Align{Stretch: true, Set: true}
)

// AlignBias is a custom position between start (-1) and end (1).
func AlignBias(bias float32) Align { return Align{Bias: bias, Set: true} }

// offset is the bias formula: round(((space - size) / 2) * (1 + bias)).
func (a Align) offset(size, space int) int {
	if !a.Set || a.Stretch {
		return 0
	}
	center := float32(space-size) / 2
	v := center * (1 + a.Bias)
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

// Justify distributes free main-axis space when no Arranger is set.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Arranger computes main-axis child offsets. Implementations should be
// comparable values so unchanged styles stay clean.
type Arranger interface {
	Spacing() unit.Dp
	Arrange(density unit.Density, total int, sizes []int) []int
}

// Style is everything the engine needs to size and place one node.
// Lengths are pixels except Gap.
type Style struct {
	Direction Direction

	Width, Height       Dimension
	MinWidth, MinHeight Dimension
	MaxWidth, MaxHeight Dimension

	// ContentSize is the intrinsic size of a leaf, e.g. measured text.
	ContentSize unit.Size

	Padding unit.Edges
	// Inset moves the node from its slot after placement. Left and Top
	// push right and down; Right and Bottom push left and up.
	Inset unit.Edges

	Gap            unit.Dp
	JustifyContent Justify
	// Arrangement overrides JustifyContent when set.
	Arrangement Arranger

	// AlignItems is the default cross-axis placement of children.
	AlignItems Align
	// AlignX and AlignY place this node inside the slot its parent gives
	// it, on axes where the parent does not dictate the position.
	AlignX, AlignY Align

	FlexGrow   float32
	FlexShrink float32
}

// DefaultStyle is an auto-sized row. It equals the zero Style.
func DefaultStyle() Style { return Style{} }

func equalStyle(a, b Style) bool {
	aa, ba := a.Arrangement, b.Arrangement
	a.Arrangement, b.Arrangement = nil, nil
	if a != b {
		return false
	}
	return sameArranger(aa, ba)
}

func sameArranger(a, b Arranger) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
