// Package reactive is a small signal/effect runtime.
//
// Signals record the effect that reads them; writes queue the dependent
// effects on the owning Runtime, and Flush runs the queue. Nothing runs
// from inside Set, so a frame sees every write made since the last Flush.
//
// Example:
//
//	rt := reactive.NewRuntime()
//	count := reactive.NewSignal(rt, 0)
//	rt.CreateEffect(func() {
//	    fmt.Println("count is", count.Get())
//	})
//	count.Set(1)
//	rt.Flush() // prints "count is 1"
//
// A Runtime is not safe for concurrent use; it belongs to the UI thread.
package reactive

import "fmt"

// maxFlushRuns bounds one Flush so an effect that keeps re-triggering
// itself fails loudly instead of spinning.
const maxFlushRuns = 10000

type Runtime struct {
	observer *Effect
	queue    []*Effect
	effects  []*Effect
	flushing bool
	disposed bool
}

func NewRuntime() *Runtime { return &Runtime{} }

// Effect is a tracked scope. Its function re-runs on Flush after any
// signal it read during its previous run is written.
type Effect struct {
	rt       *Runtime
	fn       func()
	render   bool
	sources  []source
	queued   bool
	disposed bool
	runs     int
}

type source interface {
	unsubscribe(e *Effect)
}

// CreateEffect registers fn and runs it once immediately.
func (rt *Runtime) CreateEffect(fn func()) *Effect { return rt.create(fn, false) }

// CreateRenderEffect is like CreateEffect, but queued render effects only
// run once no plain effect is pending. Painting goes here so it always sees
// the state the plain effects settled on.
func (rt *Runtime) CreateRenderEffect(fn func()) *Effect { return rt.create(fn, true) }

func (rt *Runtime) create(fn func(), render bool) *Effect {
	if rt.disposed {
		panic("reactive: runtime disposed")
	}
	e := &Effect{rt: rt, fn: fn, render: render}
	rt.effects = append(rt.effects, e)
	e.run()
	return e
}

// Untrack runs fn without recording signal reads.
func (rt *Runtime) Untrack(fn func()) {
	prev := rt.observer
	rt.observer = nil
	defer func() { rt.observer = prev }()
	fn()
}

// Pending reports how many effects are queued.
func (rt *Runtime) Pending() int { return len(rt.queue) }

// Flush runs queued effects until none remain and returns how many ran.
// A nested call from inside an effect is a no-op.
func (rt *Runtime) Flush() int {
	if rt.flushing || rt.disposed {
		return 0
	}
	rt.flushing = true
	defer func() { rt.flushing = false }()

	ran := 0
	for {
		e := rt.next()
		if e == nil {
			return ran
		}
		if ran >= maxFlushRuns {
			panic(fmt.Sprintf("reactive: effects did not settle after %d runs", ran))
		}
		e.run()
		ran++
	}
}

func (rt *Runtime) next() *Effect {
	pick := -1
	for i, e := range rt.queue {
		if !e.render {
			pick = i
			break
		}
		if pick < 0 {
			pick = i
		}
	}
	if pick < 0 {
		return nil
	}
	e := rt.queue[pick]
	rt.queue = append(rt.queue[:pick], rt.queue[pick+1:]...)
	e.queued = false
	return e
}

// Dispose stops every effect. Signals keep their values.
func (rt *Runtime) Dispose() {
	for _, e := range rt.effects {
		e.Dispose()
	}
	rt.effects = nil
	rt.queue = nil
	rt.disposed = true
}

func (rt *Runtime) schedule(subs []*Effect) {
	for _, e := range subs {
		if e.disposed || e.queued {
			continue
		}
		e.queued = true
		rt.queue = append(rt.queue, e)
	}
}

// track subscribes the running effect, if any, to s.
func (rt *Runtime) track(s source, subs *[]*Effect) {
	e := rt.observer
	if e == nil {
		return
	}
	for _, have := range *subs {
		if have == e {
			return
		}
	}
	*subs = append(*subs, e)
	e.sources = append(e.sources, s)
}

func (e *Effect) run() {
	if e.disposed {
		return
	}
	e.clearSources()
	rt := e.rt
	prev := rt.observer
	rt.observer = e
	defer func() { rt.observer = prev }()
	e.runs++
	e.fn()
}

func (e *Effect) clearSources() {
	for _, s := range e.sources {
		s.unsubscribe(e)
	}
	e.sources = e.sources[:0]
}

// Runs reports how many times the effect has executed.
func (e *Effect) Runs() int { return e.runs }

func (e *Effect) Dispose() {
	if e.disposed {
		return
	}
	e.clearSources()
	e.disposed = true
}

func removeEffect(subs []*Effect, e *Effect) []*Effect {
	for i, have := range subs {
		if have == e {
			return append(subs[:i], subs[i+1:]...)
		}
	}
	return subs
}
