package render

import (
	"fmt"

	"github.com/hubastard/bloom/engine/colors"
	"github.com/hubastard/bloom/engine/unit"
)

type OpKind uint8

const (
	OpClear OpKind = iota
	OpFillRect
	OpDrawString
)

// Op is one recorded draw call.
type Op struct {
	Kind  OpKind
	Rect  unit.Rect
	Text  string
	At    unit.Point
	Paint Paint
	Color colors.Color
}

func (o Op) String() string {
	switch o.Kind {
	case OpClear:
		return fmt.Sprintf("clear %s", o.Color.Hex())
	case OpFillRect:
		return fmt.Sprintf("rect %v %s", o.Rect, o.Paint.Color.Hex())
	default:
		return fmt.Sprintf("text %q at (%d,%d) %s", o.Text, o.At.X, o.At.Y, o.Paint.Color.Hex())
	}
}

// Recorder is a Surface that keeps every call in order. Headless runs and
// tests draw into it.
type Recorder struct {
	W, H int
	Ops  []Op
}

func NewRecorder(w, h int) *Recorder { return &Recorder{W: w, H: h} }

func (r *Recorder) Size() unit.Size { return unit.Sz(r.W, r.H) }

func (r *Recorder) Resize(w, h int) { r.W, r.H = w, h }

func (r *Recorder) Clear(c colors.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c})
}

func (r *Recorder) FillRect(rect unit.Rect, p Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rect, Paint: p})
}

func (r *Recorder) DrawString(s string, at unit.Point, _ Font, p Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpDrawString, Text: s, At: at, Paint: p})
}

// Reset drops recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Strings returns the ops formatted one per entry.
func (r *Recorder) Strings() []string {
	out := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		out[i] = op.String()
	}
	return out
}

// FixedFont measures every rune as a W x H cell.
type FixedFont struct{ W, H int }

func (f FixedFont) Measure(s string) unit.Size {
	n := 0
	for range s {
		n++
	}
	return unit.Sz(n*f.W, f.H)
}

func (f FixedFont) Ascent() int           { return f.H }
func (f FixedFont) WithSize(float32) Font { return f }
