package colors

import "testing"

func TestParse(t *testing.T) {
	type tc struct {
		in      string
		want    string
		wantErr bool
	}

	tests := map[string]tc{
		"named":          {in: "Red", want: "#ff0000"},
		"short hex":      {in: "#fff", want: "#ffffff"},
		"long hex":       {in: "#aaaaaa", want: "#aaaaaa"},
		"hex with alpha": {in: "#11223380", want: "#11223380"},
		"padded":         {in: "  white ", want: "#ffffff"},
		"unknown name":   {in: "chartreuse-ish", wantErr: true},
		"bad hex":        {in: "#zzzzzz", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got.Hex() != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.in, got.Hex(), tt.want)
			}
		})
	}
}

func TestARGB(t *testing.T) {
	if got := ARGB(0xffaaaaaa).Hex(); got != "#aaaaaa" {
		t.Errorf("ARGB(0xffaaaaaa) = %s", got)
	}
	if got := ARGB(0x00000000); got != Transparent {
		t.Errorf("ARGB(0) = %v, want transparent", got)
	}
}
