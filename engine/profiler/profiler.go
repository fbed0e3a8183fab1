//go:build profile

package profiler

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Init must be called once, before the first frame, with the number of
// span events to keep. Older events are overwritten.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	ring.init(capacity)
}

// Enabled reports whether spans are being recorded.
func Enabled() bool { return ring.ready.Load() }

// Start opens a span and returns the func that closes it:
//
//	defer profiler.Start("App.render")()
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := names.intern(name)
	start := time.Now().UnixNano()
	ring.push(event{at: start, name: id, open: true})
	return func() {
		end := max(time.Now().UnixNano(), start)
		ring.push(event{at: end, name: id})
	}
}

// Summary is the closed-span total per name over the events still held.
func Summary() map[string]Stat {
	out := map[string]Stat{}
	for _, s := range spans(ring.snapshot()) {
		n := names.name(s.name)
		st := out[n]
		st.Count++
		st.Total += time.Duration(s.end - s.start)
		out[n] = st
	}
	return out
}

// Dump writes the recorded spans to path in speedscope's evented format.
func Dump(path string) error {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return fmt.Errorf("profiler: no events to dump")
	}
	doc := speedscope(evs, names.all())

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("profiler: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	return os.Rename(tmp, path)
}

// OpenProfilerGraph dumps the spans into a temporary file and opens it with
// the speedscope CLI.
func OpenProfilerGraph() (string, error) {
	path := filepath.Join(os.TempDir(), "bloom.profile.speedscope.json")
	if err := Dump(path); err != nil {
		return "", err
	}
	cmd := exec.Command("speedscope", path)
	cmd.SysProcAttr = hideWindowAttr()
	if err := cmd.Start(); err != nil {
		log.Printf("profiler: launching speedscope: %v", err)
	}
	return path, nil
}

// ---------- event ring ----------

type event struct {
	at   int64 // unix ns
	name int
	open bool
}

type eventRing struct {
	ready atomic.Bool
	size  uint64
	write atomic.Uint64
	evs   []event
}

func (r *eventRing) init(capacity int) {
	r.size = uint64(capacity)
	r.evs = make([]event, r.size)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.write.Add(1) - 1
	r.evs[i%r.size] = e
}

// snapshot returns the held events in write order.
func (r *eventRing) snapshot() []event {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	first := uint64(0)
	if n > r.size {
		first = n - r.size
	}
	out := make([]event, 0, n-first)
	for k := first; k < n; k++ {
		out = append(out, r.evs[k%r.size])
	}
	return out
}

var ring eventRing

// ---------- names ----------

type interner struct {
	mu    sync.Mutex
	list  []string
	index map[string]int
}

func (in *interner) intern(name string) int {
	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.index[name]; ok {
		return id
	}
	if in.index == nil {
		in.index = map[string]int{}
	}
	id := len(in.list)
	in.index[name] = id
	in.list = append(in.list, name)
	return id
}

func (in *interner) name(id int) string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.list[id]
}

func (in *interner) all() []string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return append([]string(nil), in.list...)
}

var names interner

// ---------- span matching ----------

type span struct {
	name       int
	start, end int64
}

// spans pairs opens with closes. A close that does not match the
// innermost open span is dropped; spans still open at the end are
// closed at the last timestamp.
func spans(evs []event) []span {
	var out []span
	var stack []span
	last := int64(0)
	for _, e := range evs {
		last = max(last, e.at)
		if e.open {
			stack = append(stack, span{name: e.name, start: e.at})
			continue
		}
		if len(stack) == 0 || stack[len(stack)-1].name != e.name {
			continue
		}
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s.end = max(e.at, s.start)
		out = append(out, s)
	}
	for i := len(stack) - 1; i >= 0; i-- {
		s := stack[i]
		s.end = last
		out = append(out, s)
	}
	return out
}
