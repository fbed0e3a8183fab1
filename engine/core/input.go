package core

import (
	"github.com/hubastard/bloom/engine/ui"
	"github.com/hubastard/bloom/engine/unit"
)

// Input remembers the cursor and button state host events leave behind.
type Input struct {
	buttons        map[ui.MouseButton]bool
	mouseX, mouseY float64
	seen           bool
}

func NewInput() *Input { return &Input{buttons: map[ui.MouseButton]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventMouseButton:
		in.buttons[e.Button] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
		in.seen = true
	}
}

func (in *Input) IsButtonDown(b ui.MouseButton) bool { return in.buttons[b] }
func (in *Input) Mouse() (float64, float64)          { return in.mouseX, in.mouseY }

// Cursor is the last cursor position in whole pixels. HasCursor is false
// until the first move event.
func (in *Input) Cursor() unit.Point { return unit.PointF(in.mouseX, in.mouseY) }
func (in *Input) HasCursor() bool    { return in.seen }
