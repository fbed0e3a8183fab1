package terminal

import (
	"strings"

	"github.com/hubastard/bloom/engine/render"
	"github.com/hubastard/bloom/engine/unit"
	"github.com/mattn/go-runewidth"
)

// CellFont measures text in terminal cells: one pixel is one cell, wide
// runes take two.
type CellFont struct{}

var _ render.Font = CellFont{}

func (CellFont) Measure(s string) unit.Size {
	lines := strings.Split(s, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, runewidth.StringWidth(l))
	}
	return unit.Sz(w, len(lines))
}

func (CellFont) Ascent() int                    { return 0 }
func (f CellFont) WithSize(float32) render.Font { return f }
