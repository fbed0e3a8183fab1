package core

import (
	"log"

	"github.com/hubastard/bloom/engine/colors"
	"github.com/hubastard/bloom/engine/profiler"
	"github.com/hubastard/bloom/engine/reactive"
	"github.com/hubastard/bloom/engine/ui"
	"github.com/hubastard/bloom/engine/unit"
)

// Builder creates the root view. Signals the view reads should be created
// on rt.
type Builder func(rt *reactive.Runtime) ui.View

// App drives one view tree on one host. It owns two effects: a measurement
// effect that re-measures the tree and lays it out again when it changed,
// and a render effect that paints it. Writes to signals read by either
// effect take effect on the next Flush, which HandleEvent runs after every
// host event.
type App struct {
	Runtime *reactive.Runtime
	Tree    *ui.Tree
	Input   *Input
	Layers  LayerStack

	win        Window
	cfg        Config
	background colors.Color

	viewport *reactive.Signal[unit.Size]
	density  *reactive.Signal[unit.Density]
	redraw   *reactive.Trigger

	measureEffect *reactive.Effect
	renderEffect  *reactive.Effect

	frames  int
	pending bool
	closed  bool
}

// NewApp builds the tree and runs the first measure, layout and render.
func NewApp(cfg Config, win Window, build Builder) (*App, error) {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}

	rt := reactive.NewRuntime()
	density := cfg.DensityOr(win.Density())
	a := &App{
		Runtime:    rt,
		Input:      NewInput(),
		win:        win,
		cfg:        cfg,
		background: bg,
		viewport:   reactive.NewSignal(rt, win.Surface().Size()),
		density:    reactive.NewSignal(rt, density),
		redraw:     reactive.NewTrigger(rt),
	}
	a.Tree = ui.NewTree(build(rt), density)

	a.measureEffect = rt.CreateEffect(a.measure)
	a.renderEffect = rt.CreateRenderEffect(a.render)
	return a, nil
}

func (a *App) measure() {
	defer profiler.Start("App.measure")()

	a.Tree.Engine.SetDensity(a.density.Get())
	if a.Tree.Update(a.viewport.Get()) {
		a.redraw.Notify()
	}
}

func (a *App) render() {
	defer profiler.Start("App.render")()

	a.redraw.Track()
	s := a.win.Surface()
	s.Clear(a.background)
	a.Tree.Render(s)
	a.Layers.ForEach(func(l Layer) { l.OnRender(a, s) })
	a.frames++
	a.pending = true
	if a.cfg.Debug {
		log.Printf("bloom: frame %d rendered at %v", a.frames, s.Size())
	}
}

// HandleEvent applies one host event and runs every effect it triggered.
func (a *App) HandleEvent(ev Event) {
	a.Input.Handle(ev)

	handled := false
	a.Layers.ForEachReverse(func(l Layer) bool {
		handled = l.OnEvent(a, ev)
		return handled
	})
	if !handled {
		a.dispatch(ev)
	}

	if n := a.Runtime.Flush(); n > 0 && a.cfg.Debug {
		log.Printf("bloom: %T ran %d effects", ev, n)
	}
}

func (a *App) dispatch(ev Event) {
	switch e := ev.(type) {
	case EventResize:
		reactive.SetIfChanged(a.viewport, unit.Sz(e.W, e.H))
	case EventScale:
		reactive.SetIfChanged(a.density, e.Density)
	case EventRedrawRequested:
		a.redraw.Notify()
	case EventMouseMove:
		a.Tree.Dispatch(ui.CursorMove{Point: a.Input.Cursor()})
	case EventMouseButton:
		// A press before any move has no position to hit-test.
		if e.Down && a.Input.HasCursor() {
			a.Tree.Dispatch(ui.Click{Point: a.Input.Cursor(), Button: e.Button})
		}
	case EventCloseRequested:
		a.closed = true
	}
}

// TakeFrame reports whether a frame was rendered since the last call.
func (a *App) TakeFrame() bool {
	p := a.pending
	a.pending = false
	return p
}

func (a *App) Frames() int         { return a.frames }
func (a *App) Closed() bool        { return a.closed }
func (a *App) Config() Config      { return a.cfg }
func (a *App) Viewport() unit.Size { return a.viewport.GetUntracked() }

// Close disposes every effect and detaches the layers.
func (a *App) Close() {
	for {
		l, ok := a.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(a)
	}
	a.Runtime.Dispose()
}
