// Package arrangement places children along a stack's main axis.
//
// An Arrangement maps the main-axis sizes of the children and the span
// available to them to the offset of each child. Every strategy here is a
// pure function of its inputs.
package arrangement

import (
	"math"

	"github.com/hubastard/bloom/engine/unit"
)

type Arrangement interface {
	// Spacing is the gap the layout engine reserves between children when
	// sizing the container to its content.
	Spacing() unit.Dp
	Arrange(density unit.Density, total int, sizes []int) []int
	Justify() Justify
}

// Justify is the coarse distribution an arrangement corresponds to.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Aligner positions a group inside leftover space. alignment.Horizontal and
// alignment.Vertical both satisfy it.
type Aligner interface {
	Align(size, space int) int
	Bias() float32
}

// SpacedAlign places children in order with space between them, never
// pushing a child past the far edge. When a group aligner is given and the
// children do not fill total, the whole group is shifted by
// group.Align(0, total-occupied).
func SpacedAlign(space unit.Dp, group Aligner, density unit.Density, total int, sizes []int) []int {
	if len(sizes) == 0 {
		return nil
	}
	spacePx := density.RoundToPixels(space)

	out := make([]int, len(sizes))
	occupied, lastSpace := 0, 0
	for i, size := range sizes {
		out[i] = min(occupied, total-size)
		lastSpace = max(0, min(spacePx, total-out[i]-size))
		occupied = out[i] + size + lastSpace
	}
	occupied -= lastSpace

	if group != nil && occupied < total {
		shift := group.Align(0, total-occupied)
		for i := range out {
			out[i] += shift
		}
	}
	return out
}

// PlaceStart packs children from offset zero.
func PlaceStart(sizes []int) []int {
	out := make([]int, len(sizes))
	cur := 0
	for i, size := range sizes {
		out[i] = cur
		cur += size
	}
	return out
}

// PlaceCenter packs children around the middle of total.
func PlaceCenter(total int, sizes []int) []int {
	cur := float64(total-sum(sizes)) / 2
	out := make([]int, len(sizes))
	for i, size := range sizes {
		out[i] = int(math.Round(cur))
		cur += float64(size)
	}
	return out
}

// PlaceEnd packs children against the far edge.
func PlaceEnd(total int, sizes []int) []int {
	cur := total - sum(sizes)
	out := make([]int, len(sizes))
	for i, size := range sizes {
		out[i] = cur
		cur += size
	}
	return out
}

// placeDistributed spreads the free space: lead before the first child and
// gap between children, both expressed as fractions of free.
func placeDistributed(sizes []int, lead, gap float64) []int {
	out := make([]int, len(sizes))
	cur := lead
	for i, size := range sizes {
		out[i] = int(math.Round(cur))
		cur += float64(size) + gap
	}
	return out
}

func sum(sizes []int) int {
	n := 0
	for _, s := range sizes {
		n += s
	}
	return n
}

func justifyOf(a Aligner) Justify {
	switch a.Bias() {
	case 0:
		return JustifyCenter
	case 1:
		return JustifyEnd
	}
	return JustifyStart
}
