package core

import "github.com/hubastard/bloom/engine/render"

// Layer is a host-level hook that sits above the view tree: it sees host
// events before the tree and paints after it. Debug overlays use it.
type Layer interface {
	OnAttach(a *App)
	OnDetach(a *App)
	OnRender(a *App, s render.Surface)
	OnEvent(a *App, ev Event) bool // return true if handled; the tree and lower layers do not see it
}

type LayerStack struct{ list []Layer }

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }
func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list = ls.list[:i]
	return l, true
}

func (ls *LayerStack) ForEach(f func(Layer)) {
	for _, l := range ls.list {
		f(l)
	}
}

func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if stop := f(ls.list[i]); stop {
			break
		}
	}
}

// PushLayer attaches l on top of the stack and repaints.
func (a *App) PushLayer(l Layer) {
	a.Layers.Push(l)
	l.OnAttach(a)
	a.redraw.Notify()
	a.Runtime.Flush()
}
