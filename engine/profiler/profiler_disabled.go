//go:build !profile

package profiler

// Stubbed no-op versions when the "profile" build tag is not set.

func Init(capacity int) {}

func Enabled() bool { return false }

func Start(name string) func() { return func() {} }

func Summary() map[string]Stat { return nil }

func Dump(path string) error { return nil }

func OpenProfilerGraph() (string, error) { return "", nil }
