// Package profiler records nested timing spans around frame phases and
// writes them as a speedscope profile. Without the "profile" build tag
// every span call is a no-op.
package profiler

import (
	"fmt"
	"runtime"
	"time"
)

// Stat aggregates the closed spans of one name.
type Stat struct {
	Count int
	Total time.Duration
}

func (s Stat) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

func (s Stat) String() string {
	return fmt.Sprintf("%d× %v (mean %v)", s.Count, s.Total, s.Mean())
}

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func NumGoroutine() int {
	return runtime.NumGoroutine()
}
