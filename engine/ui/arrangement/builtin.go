package arrangement

import (
	"fmt"

	"github.com/hubastard/bloom/engine/ui/alignment"
	"github.com/hubastard/bloom/engine/unit"
)

type kind uint8

const (
	kindStart kind = iota
	kindCenter
	kindEnd
	kindSpaced
	kindSpacedAligned
	kindAligned
	kindSpaceEvenly
	kindSpaceBetween
	kindSpaceAround
)

// BuiltinHorizontal is the closed set of row arrangements.
type BuiltinHorizontal struct {
	kind  kind
	space unit.Dp
	align alignment.Horizontal
}

var (
	Start  = BuiltinHorizontal{kind: kindStart}
	Center = BuiltinHorizontal{kind: kindCenter}
	End    = BuiltinHorizontal{kind: kindEnd}
)

// SpacedBy keeps space between children and packs them from the start.
func SpacedBy(space unit.Dp) BuiltinHorizontal {
	return BuiltinHorizontal{kind: kindSpaced, space: space}
}

// SpacedAligned keeps space between children and aligns the group.
func SpacedAligned(space unit.Dp, a alignment.Horizontal) BuiltinHorizontal {
	return BuiltinHorizontal{kind: kindSpacedAligned, space: space, align: a}
}

// Aligned packs children together and aligns the group.
func Aligned(a alignment.Horizontal) BuiltinHorizontal {
	return BuiltinHorizontal{kind: kindAligned, align: a}
}

func (h BuiltinHorizontal) Spacing() unit.Dp {
	if h.kind == kindSpaced || h.kind == kindSpacedAligned {
		return h.space
	}
	return 0
}

func (h BuiltinHorizontal) Arrange(density unit.Density, total int, sizes []int) []int {
	return arrange(h.kind, h.space, h.align, density, total, sizes)
}

func (h BuiltinHorizontal) Justify() Justify {
	switch h.kind {
	case kindCenter:
		return JustifyCenter
	case kindEnd:
		return JustifyEnd
	case kindSpacedAligned, kindAligned:
		return justifyOf(h.align)
	}
	return JustifyStart
}

func (h BuiltinHorizontal) String() string {
	return describe(h.kind, h.space, h.align, "Start", "Center", "End")
}

// BuiltinVertical is the closed set of column arrangements.
type BuiltinVertical struct {
	kind  kind
	space unit.Dp
	align alignment.Vertical
}

var (
	Top              = BuiltinVertical{kind: kindStart}
	CenterVertically = BuiltinVertical{kind: kindCenter}
	Bottom           = BuiltinVertical{kind: kindEnd}
)

func SpacedByVertically(space unit.Dp) BuiltinVertical {
	return BuiltinVertical{kind: kindSpaced, space: space}
}

func SpacedAlignedVertically(space unit.Dp, a alignment.Vertical) BuiltinVertical {
	return BuiltinVertical{kind: kindSpacedAligned, space: space, align: a}
}

func AlignedVertically(a alignment.Vertical) BuiltinVertical {
	return BuiltinVertical{kind: kindAligned, align: a}
}

func (v BuiltinVertical) Spacing() unit.Dp {
	if v.kind == kindSpaced || v.kind == kindSpacedAligned {
		return v.space
	}
	return 0
}

func (v BuiltinVertical) Arrange(density unit.Density, total int, sizes []int) []int {
	return arrange(v.kind, v.space, v.align, density, total, sizes)
}

func (v BuiltinVertical) Justify() Justify {
	switch v.kind {
	case kindCenter:
		return JustifyCenter
	case kindEnd:
		return JustifyEnd
	case kindSpacedAligned, kindAligned:
		return justifyOf(v.align)
	}
	return JustifyStart
}

func (v BuiltinVertical) String() string {
	return describe(v.kind, v.space, v.align, "Top", "Center", "Bottom")
}

// Builtin holds the arrangements that work on either axis.
type Builtin struct {
	kind  kind
	space unit.Dp
}

var (
	Centered     = Builtin{kind: kindCenter}
	SpaceEvenly  = Builtin{kind: kindSpaceEvenly}
	SpaceBetween = Builtin{kind: kindSpaceBetween}
	SpaceAround  = Builtin{kind: kindSpaceAround}
)

// Spaced keeps space between children on either axis.
func Spaced(space unit.Dp) Builtin { return Builtin{kind: kindSpaced, space: space} }

func (b Builtin) Spacing() unit.Dp {
	if b.kind == kindSpaced {
		return b.space
	}
	return 0
}

func (b Builtin) Arrange(density unit.Density, total int, sizes []int) []int {
	n := len(sizes)
	if n == 0 {
		return nil
	}
	free := float64(max(0, total-sum(sizes)))
	switch b.kind {
	case kindSpaceEvenly:
		gap := free / float64(n+1)
		return placeDistributed(sizes, gap, gap)
	case kindSpaceBetween:
		if n == 1 {
			return PlaceStart(sizes)
		}
		return placeDistributed(sizes, 0, free/float64(n-1))
	case kindSpaceAround:
		gap := free / float64(n)
		return placeDistributed(sizes, gap/2, gap)
	case kindSpaced:
		return SpacedAlign(b.space, nil, density, total, sizes)
	}
	return PlaceCenter(total, sizes)
}

func (b Builtin) Justify() Justify {
	switch b.kind {
	case kindSpaceEvenly:
		return JustifySpaceEvenly
	case kindSpaceBetween:
		return JustifySpaceBetween
	case kindSpaceAround:
		return JustifySpaceAround
	case kindSpaced:
		return JustifyStart
	}
	return JustifyCenter
}

func (b Builtin) String() string {
	switch b.kind {
	case kindSpaceEvenly:
		return "SpaceEvenly"
	case kindSpaceBetween:
		return "SpaceBetween"
	case kindSpaceAround:
		return "SpaceAround"
	case kindSpaced:
		return fmt.Sprintf("Spaced(%v)", b.space)
	}
	return "Center"
}

func arrange(k kind, space unit.Dp, align Aligner, density unit.Density, total int, sizes []int) []int {
	switch k {
	case kindCenter:
		return PlaceCenter(total, sizes)
	case kindEnd:
		return PlaceEnd(total, sizes)
	case kindSpaced:
		return SpacedAlign(space, nil, density, total, sizes)
	case kindSpacedAligned:
		return SpacedAlign(space, align, density, total, sizes)
	case kindAligned:
		return SpacedAlign(0, align, density, total, sizes)
	}
	return PlaceStart(sizes)
}

func describe(k kind, space unit.Dp, align fmt.Stringer, start, center, end string) string {
	switch k {
	case kindCenter:
		return center
	case kindEnd:
		return end
	case kindSpaced:
		return fmt.Sprintf("SpacedBy(%v)", space)
	case kindSpacedAligned:
		return fmt.Sprintf("SpacedAligned(%v, %v)", space, align)
	case kindAligned:
		return fmt.Sprintf("Aligned(%v)", align)
	}
	return start
}
