package reactive

// Signal holds a value and re-runs the effects that read it when written.
type Signal[T any] struct {
	rt    *Runtime
	value T
	subs  []*Effect
}

func NewSignal[T any](rt *Runtime, initial T) *Signal[T] {
	return &Signal[T]{rt: rt, value: initial}
}

// Get returns the value and subscribes the running effect.
func (s *Signal[T]) Get() T {
	s.rt.track(s, &s.subs)
	return s.value
}

// GetUntracked returns the value without subscribing.
func (s *Signal[T]) GetUntracked() T { return s.value }

// With passes the value to fn, subscribing like Get.
func (s *Signal[T]) With(fn func(T)) {
	s.rt.track(s, &s.subs)
	fn(s.value)
}

// Set stores v and queues every subscriber, even if v is unchanged.
func (s *Signal[T]) Set(v T) {
	s.value = v
	s.rt.schedule(s.subs)
}

// Update mutates the value in place and queues subscribers.
func (s *Signal[T]) Update(fn func(*T)) {
	fn(&s.value)
	s.rt.schedule(s.subs)
}

// UpdateIf mutates in place and queues subscribers only if fn reports a
// change.
func (s *Signal[T]) UpdateIf(fn func(*T) bool) bool {
	if !fn(&s.value) {
		return false
	}
	s.rt.schedule(s.subs)
	return true
}

func (s *Signal[T]) unsubscribe(e *Effect) { s.subs = removeEffect(s.subs, e) }

// SetIfChanged writes v only when it differs from the current value.
func SetIfChanged[T comparable](s *Signal[T], v T) bool {
	if s.value == v {
		return false
	}
	s.Set(v)
	return true
}

// Getter is anything that can be read inside a tracked scope.
type Getter[T any] interface {
	Get() T
}

// Memo caches a derived value and only notifies when it is recomputed.
type Memo[T any] struct {
	sig *Signal[T]
	eff *Effect
}

func NewMemo[T any](rt *Runtime, fn func() T) *Memo[T] {
	m := &Memo[T]{sig: &Signal[T]{rt: rt}}
	m.eff = rt.CreateEffect(func() { m.sig.Set(fn()) })
	return m
}

func (m *Memo[T]) Get() T { return m.sig.Get() }

func (m *Memo[T]) Dispose() { m.eff.Dispose() }

// Trigger is a value-less signal: Track subscribes, Notify re-runs.
type Trigger struct {
	rt   *Runtime
	subs []*Effect
}

func NewTrigger(rt *Runtime) *Trigger { return &Trigger{rt: rt} }

func (t *Trigger) Track()  { t.rt.track(t, &t.subs) }
func (t *Trigger) Notify() { t.rt.schedule(t.subs) }

func (t *Trigger) unsubscribe(e *Effect) { t.subs = removeEffect(t.subs, e) }
