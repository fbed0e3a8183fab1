package core

import (
	"errors"
	"fmt"
	"log"
	"runtime"
)

// ErrClosed is returned by hosts used after Close.
var ErrClosed = errors.New("core: window closed")

// Run opens a host with newWindow and drives build's view tree until the
// host is closed.
func Run(cfg Config, build Builder, newWindow func(Config) (Window, error)) error {
	// Graphics contexts and terminals want the main OS thread.
	runtime.LockOSThread()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	defer win.Close()

	app, err := NewApp(cfg, win, build)
	if err != nil {
		return err
	}
	defer app.Close()
	win.SetEventCallback(app.HandleEvent)

	if cfg.OnSetup != nil {
		cfg.OnSetup(app)
	}
	log.Printf("bloom: %q started at %v", cfg.Title, app.Viewport())

	if err := loop(app, win); err != nil {
		return err
	}

	if cfg.OnExit != nil {
		cfg.OnExit(app)
	}
	log.Printf("bloom: exit after %d frames", app.Frames())
	return nil
}

func loop(app *App, win Window) error {
	for !app.Closed() && !win.ShouldClose() {
		if app.TakeFrame() {
			if err := win.Present(); err != nil {
				if errors.Is(err, ErrClosed) {
					return nil
				}
				return fmt.Errorf("present: %w", err)
			}
		}
		win.WaitEvents()
	}
	return nil
}
