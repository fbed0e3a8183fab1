package core

import (
	"github.com/hubastard/bloom/engine/render"
	"github.com/hubastard/bloom/engine/ui"
	"github.com/hubastard/bloom/engine/unit"
)

// Event is what a host delivers to the app.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

// EventResize carries the new surface size in pixels.
type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

// EventMouseButton reports a press or release. It has no position; the
// app uses the last cursor position it saw.
type EventMouseButton struct {
	Button ui.MouseButton
	Down   bool
}

func (EventMouseButton) isEvent() {}

type EventRedrawRequested struct{}

func (EventRedrawRequested) isEvent() {}

// EventScale reports a new display density, e.g. after moving the window
// to another monitor.
type EventScale struct{ Density unit.Density }

func (EventScale) isEvent() {}

// Window is a host: a surface to draw on plus a source of events.
type Window interface {
	// SetEventCallback installs the function events are delivered to.
	SetEventCallback(cb func(Event))
	// WaitEvents blocks until at least one event has been delivered.
	WaitEvents()
	ShouldClose() bool
	// Surface is the target of the next frame. Its size is the size of
	// the last EventResize.
	Surface() render.Surface
	// Present shows what was drawn on Surface.
	Present() error
	Density() unit.Density
	Close() error
}
