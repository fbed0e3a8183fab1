package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/bloom/engine/core"
	glbackend "github.com/hubastard/bloom/engine/gfx/gl"
	"github.com/hubastard/bloom/engine/gfx/raster"
	"github.com/hubastard/bloom/engine/render"
	"github.com/hubastard/bloom/engine/ui"
	"github.com/hubastard/bloom/engine/unit"
)

// GLFWWindow implements core.Window. Frames are drawn in software into a
// raster surface the size of the framebuffer and presented through GL.
type GLFWWindow struct {
	w         *glfw.Window
	onEv      func(core.Event)
	surface   *raster.Surface
	presenter *glbackend.Presenter
	closed    bool
}

var _ core.Window = (*GLFWWindow)(nil)

// Must be called on main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)
	glfw.WindowHint(glfw.Decorated, glfwBool(cfg.Decorations))
	glfw.WindowHint(glfw.TransparentFramebuffer, glfwBool(cfg.Transparent))
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.SetSizeLimits(limit(cfg.MinWidth), limit(cfg.MinHeight), limit(cfg.MaxWidth), limit(cfg.MaxHeight))
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	presenter, err := glbackend.NewPresenter()
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}

	fw, fh := win.GetFramebufferSize()
	presenter.Resize(fw, fh)
	gw := &GLFWWindow{w: win, surface: raster.New(fw, fh), presenter: presenter}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		if w < 1 || h < 1 {
			return
		}
		gw.surface.Resize(w, h)
		gw.presenter.Resize(w, h)
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		sx, sy := gw.cursorScale()
		gw.emit(core.EventMouseMove{X: x * sx, Y: y * sy})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		gw.emit(core.EventMouseButton{Button: translateButton(b), Down: action != glfw.Release})
	})
	win.SetRefreshCallback(func(*glfw.Window) { gw.emit(core.EventRedrawRequested{}) })
	win.SetContentScaleCallback(func(_ *glfw.Window, x, _ float32) {
		gw.emit(core.EventScale{Density: unit.Density(x)})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// cursorScale maps window coordinates to framebuffer pixels.
func (g *GLFWWindow) cursorScale() (float64, float64) {
	ww, wh := g.w.GetSize()
	fw, fh := g.w.GetFramebufferSize()
	if ww == 0 || wh == 0 {
		return 1, 1
	}
	return float64(fw) / float64(ww), float64(fh) / float64(wh)
}

// core.Window impl
func (g *GLFWWindow) WaitEvents()                          { glfw.WaitEvents() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.closed || g.w.ShouldClose() }
func (g *GLFWWindow) Surface() render.Surface              { return g.surface }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

func (g *GLFWWindow) Density() unit.Density {
	x, _ := g.w.GetContentScale()
	return unit.Density(x)
}

func (g *GLFWWindow) Present() error {
	if g.closed {
		return core.ErrClosed
	}
	g.presenter.Present(g.surface.Image())
	g.w.SwapBuffers()
	return nil
}

func (g *GLFWWindow) Close() error {
	if g.closed {
		return core.ErrClosed
	}
	g.closed = true
	g.presenter.Shutdown()
	g.w.Destroy()
	glfw.Terminate()
	return nil
}

func translateButton(b glfw.MouseButton) ui.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return ui.MouseLeft
	case glfw.MouseButtonRight:
		return ui.MouseRight
	case glfw.MouseButtonMiddle:
		return ui.MouseMiddle
	default:
		return ui.MouseOther
	}
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func limit(n int) int {
	if n <= 0 {
		return glfw.DontCare
	}
	return n
}
