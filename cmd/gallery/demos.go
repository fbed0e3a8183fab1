package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/hubastard/bloom/engine/colors"
	"github.com/hubastard/bloom/engine/core"
	"github.com/hubastard/bloom/engine/reactive"
	"github.com/hubastard/bloom/engine/render"
	"github.com/hubastard/bloom/engine/ui"
	"github.com/hubastard/bloom/engine/ui/alignment"
	"github.com/hubastard/bloom/engine/ui/arrangement"
)

var demos = map[string]core.Builder{
	"hello":   hello,
	"counter": counter,
	"stack":   stack,
	"bingo":   bingo,
}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for n := range demos {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func hello(*reactive.Runtime) ui.View {
	return ui.Text("Hello world!").FontSize(50)
}

// counter goes up on left click and down on right click.
func counter(rt *reactive.Runtime) ui.View {
	count := reactive.NewSignal(rt, 0)

	return ui.TextFunc(func() string { return fmt.Sprintf("Counter: %d", count.Get()) }).
		FontSize(50).
		BackgroundColor(colors.LightGray).
		OnClick(func(b ui.MouseButton) {
			count.Update(func(x *int) {
				switch b {
				case ui.MouseLeft:
					*x++
				case ui.MouseRight:
					*x--
				}
			})
		})
}

func stack(*reactive.Runtime) ui.View {
	return ui.StackX(ui.Text("hello"), ui.Text("world")).
		Arrange(arrangement.SpacedAligned(10, alignment.End)).
		FillMaxWidth()
}

// card toggles between its color and gray on click.
func card(rt *reactive.Runtime, bg colors.Color, name string) ui.View {
	active := reactive.NewSignal(rt, false)

	rt.CreateEffect(func() {
		log.Printf("%s: active=%v", name, active.Get())
	})

	paint := reactive.NewMemo(rt, func() render.Paint {
		if active.Get() {
			return render.Solid(colors.Gray)
		}
		return render.Solid(bg)
	})

	return ui.Text(name).
		FontSize(50).
		OnClick(func(ui.MouseButton) { active.Update(func(x *bool) { *x = !*x }) }).
		BackgroundFunc(paint.Get)
}

func bingo(rt *reactive.Runtime) ui.View {
	return ui.StackY(
		ui.StackX(card(rt, colors.Red, "j"), card(rt, colors.Green, "z")).Align(alignment.TopStart),
		ui.StackX(card(rt, colors.Blue, "x"), card(rt, colors.Magenta, "n")).Align(alignment.TopEnd),
	).FillMaxWidth()
}
