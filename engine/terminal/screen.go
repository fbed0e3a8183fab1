// Package terminal hosts an app in a terminal through tcell. Every cell is
// one layout pixel.
package terminal

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/hubastard/bloom/engine/colors"
	"github.com/hubastard/bloom/engine/core"
	"github.com/hubastard/bloom/engine/render"
	"github.com/hubastard/bloom/engine/text"
	"github.com/hubastard/bloom/engine/ui"
	"github.com/hubastard/bloom/engine/unit"
	"github.com/mattn/go-runewidth"
)

// Window is a core.Window and render.Surface over a tcell screen. Ctrl-C,
// Ctrl-D, Escape and 'q' request close.
type Window struct {
	screen  tcell.Screen
	onEv    func(core.Event)
	buttons tcell.ButtonMask
	cursor  unit.Point
	moved   bool
	closed  bool
}

var (
	_ core.Window    = (*Window)(nil)
	_ render.Surface = (*Window)(nil)
)

// New opens the process terminal.
func New(cfg core.Config) (*Window, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen initializes s, enables the mouse and makes CellFont the
// default font.
func NewWithScreen(s tcell.Screen) (*Window, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()
	s.Clear()
	text.SetDefault(CellFont{})

	w, h := s.Size()
	log.Printf("terminal: %dx%d cells", w, h)
	return &Window{screen: s, cursor: unit.Pt(-1, -1)}, nil
}

func (w *Window) Screen() tcell.Screen { return w.screen }

func (w *Window) emit(ev core.Event) {
	if w.onEv != nil {
		w.onEv(ev)
	}
}

// core.Window impl
func (w *Window) SetEventCallback(cb func(core.Event)) { w.onEv = cb }
func (w *Window) ShouldClose() bool                    { return w.closed }
func (w *Window) Surface() render.Surface              { return w }
func (w *Window) Density() unit.Density                { return unit.DefaultDensity }

// WaitEvents blocks for one terminal event and translates it.
func (w *Window) WaitEvents() {
	if w.closed {
		return
	}
	ev := w.screen.PollEvent()
	if ev == nil {
		w.closed = true
		return
	}
	w.translate(ev)
}

func (w *Window) translate(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cw, ch := ev.Size()
		w.screen.Sync()
		w.emit(core.EventResize{W: cw, H: ch})
	case *tcell.EventKey:
		if isQuit(ev) {
			w.emit(core.EventCloseRequested{})
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		if p := unit.Pt(x, y); !w.moved || p != w.cursor {
			w.cursor, w.moved = p, true
			w.emit(core.EventMouseMove{X: float64(x), Y: float64(y)})
		}
		now := ev.Buttons()
		for _, b := range mouseButtons {
			was, is := w.buttons&b.mask != 0, now&b.mask != 0
			if was != is {
				w.emit(core.EventMouseButton{Button: b.button, Down: is})
			}
		}
		w.buttons = now
	}
}

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button ui.MouseButton
}{
	{tcell.Button1, ui.MouseLeft},
	{tcell.Button2, ui.MouseRight},
	{tcell.Button3, ui.MouseMiddle},
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlD, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func (w *Window) Present() error {
	if w.closed {
		return core.ErrClosed
	}
	w.screen.Show()
	return nil
}

func (w *Window) Close() error {
	if w.closed && w.screen == nil {
		return core.ErrClosed
	}
	w.closed = true
	w.screen.Fini()
	w.screen = nil
	return nil
}

// render.Surface impl

func (w *Window) Size() unit.Size {
	cw, ch := w.screen.Size()
	return unit.Sz(cw, ch)
}

func (w *Window) Clear(c colors.Color) {
	w.screen.SetStyle(tcell.StyleDefault.Background(Color(c)))
	w.screen.Clear()
}

// FillRect paints cell backgrounds. Paints less than half opaque are
// skipped; cells cannot blend.
func (w *Window) FillRect(r unit.Rect, p render.Paint) {
	if p.Color[3] < 0.5 {
		return
	}
	r = r.Intersect(unit.RectFrom(unit.Point{}, w.Size()))
	bg := Color(p.Color)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			w.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(bg))
		}
	}
}

// DrawString writes s cell by cell, keeping each cell's background. The
// font is ignored; terminals have one.
func (w *Window) DrawString(s string, at unit.Point, _ render.Font, p render.Paint) {
	fg := Color(p.Color)
	x, y := at.X, at.Y
	for _, r := range s {
		if r == '\n' {
			x, y = at.X, y+1
			continue
		}
		_, _, style, _ := w.screen.GetContent(x, y)
		w.screen.SetContent(x, y, r, nil, style.Foreground(fg))
		x += runewidth.RuneWidth(r)
	}
}

// Color converts to a 24-bit terminal color; transparent maps to the
// terminal default.
func Color(c colors.Color) tcell.Color {
	if c[3] == 0 {
		return tcell.ColorDefault
	}
	r, g, b := c.Colorful().Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
