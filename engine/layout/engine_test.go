package layout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hubastard/bloom/engine/unit"
)

func leaf(w, h int) Style { return Style{ContentSize: unit.Sz(w, h)} }

func fixed(w, h int) Style { return Style{Width: Px(w), Height: Px(h)} }

func rects(e *Engine, ids ...NodeID) []unit.Rect {
	out := make([]unit.Rect, len(ids))
	for i, id := range ids {
		out[i] = e.Layout(id).Rect
	}
	return out
}

func TestComputeLayout_SingleNode(t *testing.T) {
	type tc struct {
		style Style
		want  unit.Rect
	}

	tests := map[string]tc{
		"fixed size":          {style: fixed(50, 30), want: unit.XYWH(0, 0, 50, 30)},
		"auto fits content":   {style: leaf(40, 12), want: unit.XYWH(0, 0, 40, 12)},
		"percent of viewport": {style: Style{Width: Percent(50), Height: Percent(25)}, want: unit.XYWH(0, 0, 100, 25)},
		"min clamps up":       {style: Style{ContentSize: unit.Sz(5, 5), MinWidth: Px(20)}, want: unit.XYWH(0, 0, 20, 5)},
		"max clamps down":     {style: Style{ContentSize: unit.Sz(500, 5), MaxWidth: Percent(10)}, want: unit.XYWH(0, 0, 20, 5)},
		"centered root":       {style: Style{ContentSize: unit.Sz(20, 10), AlignX: AlignCenter, AlignY: AlignCenter}, want: unit.XYWH(90, 45, 20, 10)},
		"bottom end root":     {style: Style{ContentSize: unit.Sz(20, 10), AlignX: AlignEnd, AlignY: AlignEnd}, want: unit.XYWH(180, 90, 20, 10)},
		"inset moves root":    {style: Style{ContentSize: unit.Sz(20, 10), Inset: unit.Edges{Left: 3, Top: 4}}, want: unit.XYWH(3, 4, 20, 10)},
		"right inset negates": {style: Style{ContentSize: unit.Sz(20, 10), Inset: unit.Edges{Right: 3, Bottom: 4}}, want: unit.XYWH(-3, -4, 20, 10)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := New(1)
			id := e.NewLeaf(tt.style)
			e.ComputeLayout(id, unit.Sz(200, 100))

			if got := e.Layout(id).Rect; got != tt.want {
				t.Errorf("Rect = %v, want %v", got, tt.want)
			}
			if e.Dirty(id) {
				t.Error("node should not be dirty after ComputeLayout")
			}
		})
	}
}

func TestComputeLayout_PaddingShrinksContent(t *testing.T) {
	type tc struct {
		pad unit.Edges
	}

	tests := map[string]tc{
		"none":       {pad: unit.Edges{}},
		"uniform":    {pad: unit.EdgeAll(20)},
		"asymmetric": {pad: unit.EdgeLTRB(1, 2, 3, 4)},
		"left only":  {pad: unit.Edges{Left: 9}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := New(1)
			s := leaf(50, 20)
			s.Padding = tt.pad
			id := e.NewLeaf(s)
			e.ComputeLayout(id, unit.Sz(500, 500))

			l := e.Layout(id)
			want := unit.Sz(l.Rect.Width-tt.pad.Horizontal(), l.Rect.Height-tt.pad.Vertical())
			if l.ContentRect.Size() != want {
				t.Errorf("ContentRect size = %v, want %v", l.ContentRect.Size(), want)
			}
			if l.ContentRect.Size() != unit.Sz(50, 20) {
				t.Errorf("content should keep its intrinsic size, got %v", l.ContentRect.Size())
			}
			if l.ContentRect.Origin() != unit.Pt(tt.pad.Left, tt.pad.Top) {
				t.Errorf("ContentRect origin = %v", l.ContentRect.Origin())
			}
		})
	}
}

type spaced struct{ gap unit.Dp }

func (s spaced) Spacing() unit.Dp { return s.gap }

func (s spaced) Arrange(d unit.Density, total int, sizes []int) []int {
	out := make([]int, len(sizes))
	cur := 0
	for i, n := range sizes {
		out[i] = cur
		cur += n + d.RoundToPixels(s.gap)
	}
	return out
}

func TestComputeLayout_Row(t *testing.T) {
	e := New(1)
	a := e.NewLeaf(leaf(50, 20))
	b := e.NewLeaf(leaf(60, 10))
	row := e.NewWithChildren(Style{Gap: 10, Arrangement: spaced{10}}, []NodeID{a, b})

	e.ComputeLayout(row, unit.Sz(200, 100))

	want := []unit.Rect{
		unit.XYWH(0, 0, 120, 20),
		unit.XYWH(0, 0, 50, 20),
		unit.XYWH(60, 0, 60, 10),
	}
	if diff := cmp.Diff(want, rects(e, row, a, b)); diff != "" {
		t.Errorf("rects mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeLayout_Justify(t *testing.T) {
	type tc struct {
		justify Justify
		want    []int
	}

	// 3 children of 10 in 100, gap 5: free = 60
	tests := map[string]tc{
		"start":         {justify: JustifyStart, want: []int{0, 15, 30}},
		"center":        {justify: JustifyCenter, want: []int{30, 45, 60}},
		"end":           {justify: JustifyEnd, want: []int{60, 75, 90}},
		"space between": {justify: JustifySpaceBetween, want: []int{0, 45, 90}},
		"space around":  {justify: JustifySpaceAround, want: []int{10, 45, 80}},
		"space evenly":  {justify: JustifySpaceEvenly, want: []int{15, 45, 75}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := New(1)
			ids := []NodeID{e.NewLeaf(fixed(10, 10)), e.NewLeaf(fixed(10, 10)), e.NewLeaf(fixed(10, 10))}
			row := e.NewWithChildren(Style{Width: Px(100), Gap: 5, JustifyContent: tt.justify}, ids)
			e.ComputeLayout(row, unit.Sz(100, 100))

			got := make([]int, len(ids))
			for i, id := range ids {
				got[i] = e.Layout(id).Rect.X
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("x offsets (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeLayout_CrossAxis(t *testing.T) {
	type tc struct {
		items Align
		self  Align
		want  unit.Rect
	}

	tests := map[string]tc{
		"unset is start":   {want: unit.XYWH(0, 0, 10, 10)},
		"items center":     {items: AlignCenter, want: unit.XYWH(0, 20, 10, 10)},
		"items end":        {items: AlignEnd, want: unit.XYWH(0, 40, 10, 10)},
		"items stretch":    {items: AlignStretch, want: unit.XYWH(0, 0, 10, 50)},
		"self overrides":   {items: AlignEnd, self: AlignStart, want: unit.XYWH(0, 0, 10, 10)},
		"self custom bias": {self: AlignBias(-0.5), want: unit.XYWH(0, 10, 10, 10)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := New(1)
			s := Style{ContentSize: unit.Sz(10, 10), AlignY: tt.self}
			child := e.NewLeaf(s)
			row := e.NewWithChildren(Style{Height: Px(50), AlignItems: tt.items}, []NodeID{child})
			e.ComputeLayout(row, unit.Sz(100, 100))

			if got := e.Layout(child).Rect; got != tt.want {
				t.Errorf("Rect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeLayout_ColumnWithPaddingAndInset(t *testing.T) {
	e := New(1)
	a := e.NewLeaf(leaf(30, 10))
	b := e.NewLeaf(Style{ContentSize: unit.Sz(20, 10), Inset: unit.Edges{Left: 5}})
	col := e.NewWithChildren(Style{Direction: Column, Gap: 2, Padding: unit.EdgeAll(4)}, []NodeID{a, b})

	e.ComputeLayout(col, unit.Sz(100, 100))

	want := []unit.Rect{
		unit.XYWH(0, 0, 38, 30),
		unit.XYWH(4, 4, 30, 10),
		unit.XYWH(9, 16, 20, 10),
	}
	if diff := cmp.Diff(want, rects(e, col, a, b)); diff != "" {
		t.Errorf("rects mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeLayout_FlexGrowShrink(t *testing.T) {
	e := New(1)
	a := e.NewLeaf(Style{Width: Px(10), Height: Px(10), FlexGrow: 1})
	b := e.NewLeaf(Style{Width: Px(10), Height: Px(10), FlexGrow: 2})
	row := e.NewWithChildren(Style{Width: Px(100)}, []NodeID{a, b})
	e.ComputeLayout(row, unit.Sz(100, 100))

	// 80 free: a gets 26, b gets the rest (53 + remainder 1)
	if got := []int{e.Layout(a).Rect.Width, e.Layout(b).Rect.Width}; !cmp.Equal(got, []int{36, 64}) {
		t.Errorf("grow widths = %v, want [36 64]", got)
	}

	c := e.NewLeaf(Style{Width: Px(80), Height: Px(10), FlexShrink: 1})
	d := e.NewLeaf(Style{Width: Px(80), Height: Px(10)})
	row2 := e.NewWithChildren(Style{Width: Px(100)}, []NodeID{c, d})
	e.ComputeLayout(row2, unit.Sz(100, 100))

	if got := e.Layout(c).Rect.Width; got != 20 {
		t.Errorf("shrunk width = %d, want 20", got)
	}
	if got := e.Layout(d).Rect; got != unit.XYWH(20, 0, 80, 10) {
		t.Errorf("rigid sibling = %v", got)
	}
}

func TestComputeLayout_OverlayIsBoundingUnion(t *testing.T) {
	e := New(1)
	a := e.NewLeaf(fixed(10, 20))
	b := e.NewLeaf(fixed(30, 5))
	z := e.NewWithChildren(Style{Direction: Overlay}, []NodeID{a, b})

	e.ComputeLayout(z, unit.Sz(100, 100))

	if got := e.Layout(z).Rect.Size(); got != unit.Sz(30, 20) {
		t.Errorf("overlay size = %v, want 30x20", got)
	}
	if e.Layout(a).Rect.Origin() != e.Layout(b).Rect.Origin() {
		t.Error("overlay children should share the content origin")
	}
}

func TestComputeLayout_OverlaySelfAlign(t *testing.T) {
	e := New(1)
	big := e.NewLeaf(fixed(40, 40))
	small := e.NewLeaf(Style{Width: Px(10), Height: Px(10), AlignX: AlignEnd, AlignY: AlignCenter})
	z := e.NewWithChildren(Style{Direction: Overlay}, []NodeID{big, small})

	e.ComputeLayout(z, unit.Sz(100, 100))

	if got := e.Layout(small).Rect; got != unit.XYWH(30, 15, 10, 10) {
		t.Errorf("Rect = %v", got)
	}
}

func TestComputeLayout_DensityScalesGap(t *testing.T) {
	e := New(2)
	a := e.NewLeaf(fixed(10, 10))
	b := e.NewLeaf(fixed(10, 10))
	row := e.NewWithChildren(Style{Gap: 5}, []NodeID{a, b})

	e.ComputeLayout(row, unit.Sz(100, 100))

	if got := e.Layout(b).Rect.X; got != 20 {
		t.Errorf("second child x = %d, want 20", got)
	}
	if got := e.Layout(row).Rect.Width; got != 30 {
		t.Errorf("row width = %d, want 30", got)
	}
}

func TestDirty(t *testing.T) {
	e := New(1)
	a := e.NewLeaf(leaf(10, 10))
	b := e.NewLeaf(leaf(10, 10))
	row := e.NewWithChildren(Style{Arrangement: spaced{4}}, []NodeID{a, b})

	if !e.Dirty(row) {
		t.Fatal("new tree should be dirty")
	}
	e.ComputeLayout(row, unit.Sz(100, 100))
	if e.Dirty(row) {
		t.Fatal("tree should be clean after ComputeLayout")
	}

	e.SetStyle(a, leaf(10, 10))
	e.SetStyle(row, Style{Arrangement: spaced{4}})
	if e.Dirty(row) {
		t.Error("re-setting identical styles should stay clean")
	}

	e.SetStyle(b, leaf(11, 10))
	if !e.Dirty(row) || e.Dirty(a) {
		t.Error("a changed leaf should dirty itself and its ancestors only")
	}

	e.SetStyle(b, leaf(10, 10))
	if e.Dirty(row) {
		t.Error("reverting to the laid-out style should be clean")
	}

	e.SetChildren(row, []NodeID{b, a})
	if !e.Dirty(row) {
		t.Error("reordering children should dirty the parent")
	}
	e.ComputeLayout(row, unit.Sz(100, 100))

	e.SetStyle(row, Style{Arrangement: spaced{8}})
	if !e.Dirty(row) {
		t.Error("changed arrangement should dirty the node")
	}
}

func TestInvalidHandlesPanic(t *testing.T) {
	e := New(1)
	id := e.NewLeaf(Style{})

	tests := map[string]func(){
		"child out of range": func() { e.Child(id, 0) },
		"negative child":     func() { e.Child(id, -1) },
		"unknown layout":     func() { e.Layout(NodeID(99)) },
		"unknown set style":  func() { e.SetStyle(NodeID(99), Style{}) },
		"unknown child ref":  func() { e.NewWithChildren(Style{}, []NodeID{42}) },
	}

	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrInvalidNode) {
					t.Errorf("recovered %v, want ErrInvalidNode", r)
				}
			}()
			fn()
		})
	}
}

func TestCreated(t *testing.T) {
	e := New(1)
	a := e.NewLeaf(Style{})
	e.NewWithChildren(Style{}, []NodeID{a})
	if e.Created() != 2 {
		t.Errorf("Created = %d, want 2", e.Created())
	}
}
