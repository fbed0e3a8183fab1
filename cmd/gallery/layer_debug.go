package main

import (
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"

	"github.com/hubastard/bloom/engine/colors"
	"github.com/hubastard/bloom/engine/core"
	"github.com/hubastard/bloom/engine/layout"
	"github.com/hubastard/bloom/engine/profiler"
	"github.com/hubastard/bloom/engine/render"
	"github.com/hubastard/bloom/engine/ui"
	"github.com/hubastard/bloom/engine/unit"
)

// LayerDebug paints frame and memory stats over the app. A right click
// on the panel writes a speedscope profile and opens it.
type LayerDebug struct {
	tree  *ui.Tree
	frame int
	size  unit.Size
	spans string
}

func (l *LayerDebug) OnAttach(a *core.App) {
	title := func(s string) ui.View { return ui.Text(s).Color(colors.Yellow) }
	line := func(fn func() string) ui.View { return ui.TextFunc(fn).Color(colors.White) }

	panel := ui.StackY(
		title("Frame"),
		line(func() string { return fmt.Sprintf("  %d at %dx%d", l.frame, l.size.Width, l.size.Height) }),
		title("Memory"),
		line(func() string { return fmt.Sprintf("  Usage: %.3f MB", float32(profiler.MemoryUsage())/(1<<20)) }),
		line(func() string { return fmt.Sprintf("  Goroutines: %d", profiler.NumGoroutine()) }),
		title("CPU"),
		line(func() string { return fmt.Sprintf("  Count: %d", runtime.NumCPU()) }),
		line(func() string { return l.spans }),
	).
		PaddingAll(8).
		BackgroundColor(colors.Black.WithAlpha(0.6)).
		Offset(4, 4)

	l.tree = ui.NewTree(panel, a.Tree.Engine.Density())
}

func (l *LayerDebug) OnDetach(*core.App) { l.tree = nil }

func (l *LayerDebug) OnRender(a *core.App, s render.Surface) {
	defer profiler.Start("LayerDebug.OnRender")()

	l.frame = a.Frames() + 1
	l.size = s.Size()
	l.spans = formatSpans(profiler.Summary())

	l.tree.Engine.SetDensity(a.Tree.Engine.Density())
	l.tree.Update(l.size)
	l.tree.Render(s)
}

func (l *LayerDebug) OnEvent(a *core.App, ev core.Event) bool {
	b, ok := ev.(core.EventMouseButton)
	if !ok || !b.Down || b.Button != ui.MouseRight || l.tree.Node() == layout.NoNode {
		return false
	}
	if !l.tree.Context().Rect().Contains(a.Input.Cursor()) {
		return false
	}
	if !profiler.Enabled() {
		log.Println("gallery: profiler disabled, rebuild with -tags profile")
		return true
	}
	if path, err := profiler.OpenProfilerGraph(); err == nil {
		log.Println("gallery: speedscope dump:", path)
	} else {
		log.Println("gallery: profiler dump error:", err)
	}
	return true
}

func formatSpans(sum map[string]profiler.Stat) string {
	if len(sum) == 0 {
		return ""
	}
	names := make([]string, 0, len(sum))
	for n := range sum {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Spans")
	for _, n := range names {
		fmt.Fprintf(&b, "\n  %s: %s", n, sum[n])
	}
	return b.String()
}
