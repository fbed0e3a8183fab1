package core

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hubastard/bloom/engine/colors"
	"github.com/hubastard/bloom/engine/reactive"
	"github.com/hubastard/bloom/engine/render"
	"github.com/hubastard/bloom/engine/ui"
	"github.com/hubastard/bloom/engine/ui/alignment"
	"github.com/hubastard/bloom/engine/ui/arrangement"
	"github.com/hubastard/bloom/engine/unit"
)

var cell = render.FixedFont{W: 10, H: 20}

var configOpts = []cmp.Option{
	cmpopts.IgnoreFields(Config{}, "OnSetup", "OnExit"),
	cmpopts.EquateEmpty(),
}

// fakeWindow replays a script of event batches, one batch per WaitEvents,
// and reports ShouldClose once the script is exhausted.
type fakeWindow struct {
	rec      *render.Recorder
	density  unit.Density
	cb       func(Event)
	script   [][]Event
	presents int
	done     bool
	closed   bool
}

func newFakeWindow(w, h int, script ...[]Event) *fakeWindow {
	return &fakeWindow{rec: render.NewRecorder(w, h), density: 1, script: script}
}

func (w *fakeWindow) SetEventCallback(cb func(Event)) { w.cb = cb }
func (w *fakeWindow) ShouldClose() bool               { return w.done }
func (w *fakeWindow) Surface() render.Surface         { return w.rec }
func (w *fakeWindow) Density() unit.Density           { return w.density }
func (w *fakeWindow) Close() error                    { w.closed = true; return nil }

func (w *fakeWindow) WaitEvents() {
	if len(w.script) == 0 {
		w.done = true
		return
	}
	batch := w.script[0]
	w.script = w.script[1:]
	for _, ev := range batch {
		w.emit(ev)
	}
}

func (w *fakeWindow) emit(ev Event) {
	if r, ok := ev.(EventResize); ok {
		w.rec.Resize(r.W, r.H)
	}
	w.cb(ev)
}

func (w *fakeWindow) Present() error {
	if w.closed {
		return ErrClosed
	}
	w.presents++
	return nil
}

func newTestApp(t *testing.T, win *fakeWindow, build Builder) *App {
	t.Helper()
	a, err := NewApp(DefaultConfig(), win, build)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	win.SetEventCallback(a.HandleEvent)
	return a
}

func counter(rt *reactive.Runtime, count *reactive.Signal[int]) ui.View {
	return ui.TextFunc(func() string { return strconv.Itoa(count.Get()) }).
		Font(cell).
		OnClick(func(b ui.MouseButton) {
			switch b {
			case ui.MouseLeft:
				count.Update(func(c *int) { *c++ })
			case ui.MouseRight:
				count.Update(func(c *int) { *c-- })
			}
		})
}

func TestApp_FirstFrame(t *testing.T) {
	win := newFakeWindow(100, 100)
	a := newTestApp(t, win, func(rt *reactive.Runtime) ui.View {
		return ui.Text("hi").Font(cell).BackgroundColor(colors.Red)
	})

	want := []string{
		"clear #ffffff",
		"rect (0,0 20x20) #ff0000",
		`text "hi" at (0,0) #000000`,
	}
	if diff := cmp.Diff(want, win.rec.Strings()); diff != "" {
		t.Errorf("first frame (-want +got):\n%s", diff)
	}
	if !a.TakeFrame() || a.TakeFrame() {
		t.Error("TakeFrame should report the first frame exactly once")
	}
}

func TestApp_ClickUpdatesText(t *testing.T) {
	var count *reactive.Signal[int]
	win := newFakeWindow(100, 100)
	a := newTestApp(t, win, func(rt *reactive.Runtime) ui.View {
		count = reactive.NewSignal(rt, 9)
		return counter(rt, count)
	})
	frames := a.Frames()
	win.rec.Reset()

	win.emit(EventMouseMove{X: 5.7, Y: 5.2})
	if a.Frames() != frames {
		t.Errorf("cursor move rendered a frame")
	}

	win.emit(EventMouseButton{Button: ui.MouseLeft, Down: true})
	win.emit(EventMouseButton{Button: ui.MouseLeft, Down: false})

	want := []string{"clear #ffffff", `text "10" at (0,0) #000000`}
	if diff := cmp.Diff(want, win.rec.Strings()); diff != "" {
		t.Errorf("frame after click (-want +got):\n%s", diff)
	}
	if got := a.Tree.Context().Rect(); got != unit.XYWH(0, 0, 20, 20) {
		t.Errorf("text rect after relayout = %v", got)
	}

	// 10 and 11 have the same width, so only the render effect reruns.
	win.emit(EventMouseButton{Button: ui.MouseLeft, Down: true})
	win.emit(EventMouseMove{X: 50, Y: 50})
	win.emit(EventMouseButton{Button: ui.MouseRight, Down: true})
	if got := count.GetUntracked(); got != 11 {
		t.Errorf("count = %d, want 11", got)
	}
	if !a.Input.IsButtonDown(ui.MouseLeft) || !a.Input.IsButtonDown(ui.MouseRight) {
		t.Errorf("buttons not tracked")
	}
}

func TestApp_ClickBeforeCursorIgnored(t *testing.T) {
	var count *reactive.Signal[int]
	win := newFakeWindow(100, 100)
	a := newTestApp(t, win, func(rt *reactive.Runtime) ui.View {
		count = reactive.NewSignal(rt, 0)
		return counter(rt, count)
	})

	win.emit(EventMouseButton{Button: ui.MouseLeft, Down: true})
	if got := count.GetUntracked(); got != 0 {
		t.Errorf("click without a cursor position changed count to %d", got)
	}
	if !a.Input.IsButtonDown(ui.MouseLeft) {
		t.Error("button state not tracked")
	}

	win.emit(EventMouseMove{X: 1, Y: 1})
	win.emit(EventMouseButton{Button: ui.MouseLeft, Down: true})
	if got := count.GetUntracked(); got != 1 {
		t.Errorf("count = %d after a positioned click, want 1", got)
	}
}

func TestApp_ResizeRelayouts(t *testing.T) {
	win := newFakeWindow(100, 100)
	a := newTestApp(t, win, func(rt *reactive.Runtime) ui.View {
		return ui.Rectangle(10, 10, render.Solid(colors.Blue)).Align(alignment.Center)
	})
	if got := a.Tree.Context().Rect(); got != unit.XYWH(45, 45, 10, 10) {
		t.Fatalf("initial rect = %v", got)
	}

	win.rec.Reset()
	win.emit(EventResize{W: 200, H: 100})
	want := []string{"clear #ffffff", "rect (95,45 10x10) #0000ff"}
	if diff := cmp.Diff(want, win.rec.Strings()); diff != "" {
		t.Errorf("frame after resize (-want +got):\n%s", diff)
	}

	frames := a.Frames()
	win.emit(EventResize{W: 200, H: 100})
	if a.Frames() != frames {
		t.Error("same-size resize rendered a frame")
	}
	win.emit(EventRedrawRequested{})
	if a.Frames() != frames+1 {
		t.Error("redraw request did not render")
	}
}

func TestApp_ScaleChangesGap(t *testing.T) {
	win := newFakeWindow(200, 100)
	a := newTestApp(t, win, func(rt *reactive.Runtime) ui.View {
		return ui.StackX(
			ui.Spacer(10, 10),
			ui.Spacer(10, 10),
		).Arrange(arrangement.SpacedBy(10))
	})
	if got := a.Tree.Context().Child(1).Rect().X; got != 20 {
		t.Fatalf("second child x = %d, want 20", got)
	}

	win.emit(EventScale{Density: 2})
	if got := a.Tree.Context().Child(1).Rect().X; got != 30 {
		t.Errorf("second child x at density 2 = %d, want 30", got)
	}
}

func TestApp_HoverScenario(t *testing.T) {
	font := wordFont{"hello": 50, "world": 60}
	var hover [2]*reactive.Signal[bool]
	win := newFakeWindow(200, 100)
	newTestApp(t, win, func(rt *reactive.Runtime) ui.View {
		hover = [2]*reactive.Signal[bool]{reactive.NewSignal(rt, false), reactive.NewSignal(rt, false)}
		return ui.StackX(
			ui.Text("hello").Font(font).Hovering(hover[0]),
			ui.Text("world").Font(font).Hovering(hover[1]),
		).Arrange(arrangement.SpacedBy(10))
	})

	win.emit(EventMouseMove{X: 55, Y: 5})
	if hover[0].GetUntracked() || hover[1].GetUntracked() {
		t.Error("hover in the gap")
	}
	win.emit(EventMouseMove{X: 65, Y: 5})
	if hover[0].GetUntracked() || !hover[1].GetUntracked() {
		t.Error("x=65 should hover the second text only")
	}
}

type wordFont map[string]int

func (f wordFont) Measure(s string) unit.Size   { return unit.Sz(f[s], 20) }
func (wordFont) Ascent() int                    { return 16 }
func (f wordFont) WithSize(float32) render.Font { return f }

type swallowLayer struct {
	attached, detached bool
	seen               []Event
}

func (l *swallowLayer) OnAttach(*App) { l.attached = true }
func (l *swallowLayer) OnDetach(*App) { l.detached = true }

func (l *swallowLayer) OnRender(_ *App, s render.Surface) {
	s.FillRect(unit.XYWH(0, 0, 1, 1), render.Solid(colors.Magenta))
}

func (l *swallowLayer) OnEvent(_ *App, ev Event) bool {
	l.seen = append(l.seen, ev)
	_, click := ev.(EventMouseButton)
	return click
}

func TestApp_Layers(t *testing.T) {
	var count *reactive.Signal[int]
	win := newFakeWindow(100, 100)
	a := newTestApp(t, win, func(rt *reactive.Runtime) ui.View {
		count = reactive.NewSignal(rt, 0)
		return counter(rt, count)
	})

	l := &swallowLayer{}
	win.rec.Reset()
	a.PushLayer(l)
	if !l.attached {
		t.Error("layer not attached")
	}
	want := []string{"clear #ffffff", `text "0" at (0,0) #000000`, "rect (0,0 1x1) #ff00ff"}
	if diff := cmp.Diff(want, win.rec.Strings()); diff != "" {
		t.Errorf("frame with layer (-want +got):\n%s", diff)
	}

	win.emit(EventMouseMove{X: 1, Y: 1})
	win.emit(EventMouseButton{Button: ui.MouseLeft, Down: true})
	if got := count.GetUntracked(); got != 0 {
		t.Errorf("click reached the tree through a swallowing layer: count = %d", got)
	}
	if len(l.seen) != 2 {
		t.Errorf("layer saw %d events, want 2", len(l.seen))
	}

	a.Close()
	if !l.detached {
		t.Error("layer not detached on Close")
	}
}

func TestRun(t *testing.T) {
	var count *reactive.Signal[int]
	win := newFakeWindow(100, 100,
		[]Event{EventMouseMove{X: 1, Y: 1}},
		[]Event{EventMouseButton{Button: ui.MouseLeft, Down: true}},
		[]Event{EventMouseButton{Button: ui.MouseLeft, Down: false}},
	)

	cfg := DefaultConfig()
	var setup, exit bool
	cfg.OnSetup = func(*App) { setup = true }
	cfg.OnExit = func(a *App) { exit = a.Frames() == 2 }

	err := Run(cfg, func(rt *reactive.Runtime) ui.View {
		count = reactive.NewSignal(rt, 0)
		return counter(rt, count)
	}, func(Config) (Window, error) { return win, nil })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !setup || !exit {
		t.Errorf("hooks: setup=%v exit=%v", setup, exit)
	}
	if count.GetUntracked() != 1 {
		t.Errorf("count = %d, want 1", count.GetUntracked())
	}
	if win.presents != 2 {
		t.Errorf("presents = %d, want 2", win.presents)
	}
	if !win.closed {
		t.Error("window not closed")
	}
}

func TestRun_WindowError(t *testing.T) {
	boom := errors.New("no display")
	err := Run(DefaultConfig(), nil, func(Config) (Window, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Errorf("Run error = %v, want wrapping %v", err, boom)
	}
}

func TestLoadConfig(t *testing.T) {
	type tc struct {
		toml    string
		want    func(*Config)
		wantErr bool
	}

	tests := map[string]tc{
		"defaults": {
			toml: ``,
			want: func(*Config) {},
		},
		"window": {
			toml: "title = \"counter\"\nwidth = 320\nheight = 240\nbackground = \"#202020\"\nfonts = [\"Roboto.ttf\"]\n",
			want: func(c *Config) {
				c.Title, c.Width, c.Height = "counter", 320, 240
				c.Background = "#202020"
				c.Fonts = []string{"Roboto.ttf"}
			},
		},
		"terminal": {
			toml: "terminal = \"always\"\ndensity = 2.0\n",
			want: func(c *Config) { c.Terminal, c.Density = TerminalAlways, 2 },
		},
		"bad background": {toml: "background = \"mauve-ish\"\n", wantErr: true},
		"bad terminal":   {toml: "terminal = \"sometimes\"\n", wantErr: true},
		"bad size":       {toml: "width = -1\n", wantErr: true},
		"bad toml":       {toml: "width = \n", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bloom.toml")
			if err := os.WriteFile(path, []byte(tt.toml), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := LoadConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("LoadConfig succeeded: %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}
			want := DefaultConfig()
			tt.want(&want)
			if diff := cmp.Diff(want, got, configOpts...); diff != "" {
				t.Errorf("config (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bloom.toml")
	cfg := DefaultConfig()
	cfg.Title = "bingo"
	cfg.MinWidth, cfg.MinHeight = 200, 100
	cfg.Background = "#ff000080"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if diff := cmp.Diff(cfg, got, configOpts...); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
	bg, err := got.BackgroundColor()
	if err != nil || bg.Hex() != "#ff000080" {
		t.Errorf("BackgroundColor() = %v, %v", bg.Hex(), err)
	}
}

func TestLoadConfigOrDefault_Missing(t *testing.T) {
	got, err := LoadConfigOrDefault(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadConfigOrDefault: %v", err)
	}
	if got.Title != DefaultConfig().Title {
		t.Errorf("title = %q", got.Title)
	}
}
