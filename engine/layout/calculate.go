package layout

import "github.com/hubastard/bloom/engine/unit"

// measure returns the outer size id wants when its parent's content box is
// avail. Percentages resolve against avail.
func (e *Engine) measure(id NodeID, avail unit.Size) unit.Size {
	s := e.nodes[id].style
	pad := s.Padding

	w, wok := s.Width.Resolve(avail.Width)
	h, hok := s.Height.Resolve(avail.Height)
	if !wok || !hok {
		inner := avail
		if wok {
			inner.Width = w
		}
		if hok {
			inner.Height = h
		}
		inner.Width = max(0, inner.Width-pad.Horizontal())
		inner.Height = max(0, inner.Height-pad.Vertical())

		content := e.contentSize(id, inner)
		if !wok {
			w = content.Width + pad.Horizontal()
		}
		if !hok {
			h = content.Height + pad.Vertical()
		}
	}

	w = clampDim(w, s.MinWidth, s.MaxWidth, avail.Width)
	h = clampDim(h, s.MinHeight, s.MaxHeight, avail.Height)
	return unit.Sz(max(w, pad.Horizontal()), max(h, pad.Vertical()))
}

// contentSize is the size of the children (or the intrinsic content of a
// leaf) without padding.
func (e *Engine) contentSize(id NodeID, inner unit.Size) unit.Size {
	n := &e.nodes[id]
	if len(n.children) == 0 {
		return n.style.ContentSize
	}

	gap := e.density.RoundToPixels(n.style.Gap)
	var out unit.Size
	for i, c := range n.children {
		cs := e.measure(c, inner)
		switch n.style.Direction {
		case Row:
			out.Width += cs.Width
			if i > 0 {
				out.Width += gap
			}
			out.Height = max(out.Height, cs.Height)
		case Column:
			out.Height += cs.Height
			if i > 0 {
				out.Height += gap
			}
			out.Width = max(out.Width, cs.Width)
		default:
			out = out.Max(cs)
		}
	}
	return out
}

func clampDim(v int, lo, hi Dimension, parent int) int {
	if m, ok := lo.Resolve(parent); ok && v < m {
		v = m
	}
	if m, ok := hi.Resolve(parent); ok && v > m {
		v = m
	}
	return v
}

// place records rect as the border box of id and lays out its children.
func (e *Engine) place(id NodeID, rect unit.Rect) {
	n := &e.nodes[id]
	n.layout = Layout{Rect: rect, ContentRect: rect.Inset(n.style.Padding)}
	n.laidOut = n.style
	n.computed = true
	n.childrenChanged = false

	if len(n.children) == 0 {
		return
	}
	if n.style.Direction == Overlay {
		e.placeOverlay(id)
		return
	}
	e.placeFlex(id)
}

func (e *Engine) placeOverlay(id NodeID) {
	n := &e.nodes[id]
	content := n.layout.ContentRect
	for _, c := range n.children {
		cs := e.nodes[c].style
		size := e.measure(c, content.Size())

		ax := pick(cs.AlignX, n.style.AlignItems)
		ay := pick(cs.AlignY, n.style.AlignItems)
		if ax.Stretch && cs.Width.IsAuto() {
			size.Width = clampDim(content.Width, cs.MinWidth, cs.MaxWidth, content.Width)
		}
		if ay.Stretch && cs.Height.IsAuto() {
			size.Height = clampDim(content.Height, cs.MinHeight, cs.MaxHeight, content.Height)
		}

		at := unit.Pt(
			content.X+ax.offset(size.Width, content.Width),
			content.Y+ay.offset(size.Height, content.Height),
		)
		e.place(c, applyInset(unit.RectFrom(at, size), cs.Inset))
	}
}

// flexItem is per-child scratch for one placeFlex call.
type flexItem struct {
	id    NodeID
	main  int
	cross int
}

func (e *Engine) placeFlex(id NodeID) {
	n := &e.nodes[id]
	style := n.style
	content := n.layout.ContentRect
	isRow := style.Direction == Row

	mainTotal, crossTotal := content.Width, content.Height
	if !isRow {
		mainTotal, crossTotal = crossTotal, mainTotal
	}
	gap := e.density.RoundToPixels(style.Gap)

	// Phase 1: hypothetical sizes
	items := make([]flexItem, len(n.children))
	used := gap * (len(items) - 1)
	var totalGrow, totalShrink float32
	for i, c := range n.children {
		size := e.measure(c, content.Size())
		items[i] = flexItem{id: c, main: size.Width, cross: size.Height}
		if !isRow {
			items[i].main, items[i].cross = size.Height, size.Width
		}
		used += items[i].main
		totalGrow += e.nodes[c].style.FlexGrow
		totalShrink += e.nodes[c].style.FlexShrink
	}

	// Phase 2: distribute free space
	free := mainTotal - used
	switch {
	case free > 0 && totalGrow > 0:
		distribute(e, items, free, totalGrow, func(s Style) float32 { return s.FlexGrow })
	case free < 0 && totalShrink > 0:
		distribute(e, items, free, totalShrink, func(s Style) float32 { return s.FlexShrink })
	}

	// Phase 3: min/max on the main axis
	sizes := make([]int, len(items))
	for i := range items {
		cs := e.nodes[items[i].id].style
		if isRow {
			items[i].main = clampDim(items[i].main, cs.MinWidth, cs.MaxWidth, mainTotal)
		} else {
			items[i].main = clampDim(items[i].main, cs.MinHeight, cs.MaxHeight, mainTotal)
		}
		items[i].main = max(0, items[i].main)
		sizes[i] = items[i].main
	}

	// Phase 4: main-axis offsets
	var offsets []int
	if style.Arrangement != nil {
		offsets = style.Arrangement.Arrange(e.density, mainTotal, sizes)
	} else {
		offsets = justify(style.JustifyContent, mainTotal, sizes, gap)
	}

	// Phase 5: cross axis and recursion
	for i, it := range items {
		cs := e.nodes[it.id].style
		self, crossDim := cs.AlignY, cs.Height
		lo, hi := cs.MinHeight, cs.MaxHeight
		if !isRow {
			self, crossDim = cs.AlignX, cs.Width
			lo, hi = cs.MinWidth, cs.MaxWidth
		}
		a := pick(self, style.AlignItems)

		cross := it.cross
		if a.Stretch && crossDim.IsAuto() {
			cross = clampDim(crossTotal, lo, hi, crossTotal)
		}
		crossPos := a.offset(cross, crossTotal)

		var rect unit.Rect
		if isRow {
			rect = unit.XYWH(content.X+offsets[i], content.Y+crossPos, it.main, cross)
		} else {
			rect = unit.XYWH(content.X+crossPos, content.Y+offsets[i], cross, it.main)
		}
		e.place(it.id, applyInset(rect, cs.Inset))
	}
}

// distribute spreads free (positive to grow, negative to shrink) by weight.
// The last weighted item absorbs the rounding remainder.
func distribute(e *Engine, items []flexItem, free int, total float32, weight func(Style) float32) {
	last := -1
	given := 0
	for i := range items {
		w := weight(e.nodes[items[i].id].style)
		if w <= 0 {
			continue
		}
		share := int(float32(free) * w / total)
		items[i].main += share
		given += share
		last = i
	}
	if last >= 0 {
		items[last].main += free - given
	}
}

func pick(self, inherited Align) Align {
	if self.Set {
		return self
	}
	return inherited
}

func justify(j Justify, total int, sizes []int, gap int) []int {
	n := len(sizes)
	out := make([]int, n)
	if n == 0 {
		return out
	}
	used := gap * (n - 1)
	for _, s := range sizes {
		used += s
	}
	free := max(0, total-used)

	lead, between := 0, gap
	switch j {
	case JustifyCenter:
		lead = free / 2
	case JustifyEnd:
		lead = free
	case JustifySpaceBetween:
		if n > 1 {
			between += free / (n - 1)
		}
	case JustifySpaceAround:
		between += free / n
		lead = free / (2 * n)
	case JustifySpaceEvenly:
		between += free / (n + 1)
		lead = free / (n + 1)
	}

	cur := lead
	for i, s := range sizes {
		out[i] = cur
		cur += s + between
	}
	return out
}
