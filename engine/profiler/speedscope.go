//go:build profile

package profiler

// https://www.speedscope.app/file-format-schema.json, evented profiles only.
type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since the first event
	Frame int    `json:"frame"`
}

// speedscope converts events to a balanced evented profile. Unmatched
// closes are dropped and dangling opens closed at the end.
func speedscope(evs []event, frameNames []string) ssFile {
	base := evs[0].at
	us := func(ns int64) int64 { return max(0, (ns-base)/1000) }

	var out []ssEvent
	var stack []int
	last := int64(0)
	for _, e := range evs {
		at := max(us(e.at), last)
		switch {
		case e.open:
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.name})
			stack = append(stack, e.name)
		case len(stack) > 0 && stack[len(stack)-1] == e.name:
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.name})
		default:
			continue
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}

	frames := make([]ssFrame, len(frameNames))
	for i, n := range frameNames {
		frames[i] = ssFrame{Name: n}
	}
	return ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "bloom frames",
			Unit:     "microseconds",
			EndValue: last,
			Events:   out,
		}},
		Exporter: "bloom-profiler",
		Name:     "bloom capture",
	}
}
