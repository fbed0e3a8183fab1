package alignment

import (
	"testing"

	"github.com/hubastard/bloom/engine/unit"
)

func TestAlign_BiasBoundaries(t *testing.T) {
	type tc struct {
		size, space int
	}

	tests := map[string]tc{
		"even gap":    {size: 10, space: 30},
		"odd gap":     {size: 10, space: 25},
		"exact fit":   {size: 40, space: 40},
		"zero size":   {size: 0, space: 7},
		"single unit": {size: 1, space: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Start.Align(tt.size, tt.space); got != 0 {
				t.Errorf("Start = %d, want 0", got)
			}
			if got, want := End.Align(tt.size, tt.space), tt.space-tt.size; got != want {
				t.Errorf("End = %d, want %d", got, want)
			}
			want := int(float64(tt.space-tt.size)/2 + 0.5)
			if got := CenterHorizontally.Align(tt.size, tt.space); got != want {
				t.Errorf("Center = %d, want %d", got, want)
			}
			if Top.Align(tt.size, tt.space) != Start.Align(tt.size, tt.space) ||
				Bottom.Align(tt.size, tt.space) != End.Align(tt.size, tt.space) {
				t.Error("vertical alignment disagrees with horizontal")
			}
		})
	}
}

func TestAlign_CustomBias(t *testing.T) {
	type tc struct {
		bias float32
		want int
	}

	// size 0, space 100: offset = 50 * (1 + bias)
	tests := map[string]tc{
		"quarter":       {bias: -0.5, want: 25},
		"three quarter": {bias: 0.5, want: 75},
		"beyond end":    {bias: 2, want: 150},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := HorizontalBias(tt.bias).Align(0, 100); got != tt.want {
				t.Errorf("Align = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAlignment_Named(t *testing.T) {
	size, space := unit.Sz(10, 10), unit.Sz(30, 50)

	type tc struct {
		a    Alignment
		want unit.Point
	}

	tests := map[string]tc{
		"top start":     {a: TopStart, want: unit.Pt(0, 0)},
		"center":        {a: Center, want: unit.Pt(10, 20)},
		"bottom end":    {a: BottomEnd, want: unit.Pt(20, 40)},
		"top end":       {a: TopEnd, want: unit.Pt(20, 0)},
		"bottom center": {a: BottomCenter, want: unit.Pt(10, 40)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Align(size, space); got != tt.want {
				t.Errorf("%v.Align = %v, want %v", tt.a, got, tt.want)
			}
		})
	}
}

func TestFromBias_NamesKnownValues(t *testing.T) {
	if FromBias(-1, 1).Horizontal != Start || FromBias(-1, 1).Vertical != Bottom {
		t.Error("FromBias(-1, 1) should be bottom start")
	}
	if got := HorizontalBias(0.25).String(); got != "Custom(0.25)" {
		t.Errorf("String = %q", got)
	}
}
