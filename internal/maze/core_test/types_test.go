package core_test

import (
	"encoding/json"
	"testing"

	"github.com/vovakirdan/mirror-maze/internal/maze/core"
)

func TestParseDirection(t *testing.T) {
	testCases := []struct {
		input  string
		want   core.Direction
		wantOK bool
	}{
		{"RIGHT", core.Right, true},
		{"left", core.Left, true},
		{" Up ", core.Up, true},
		{"D", core.Down, true},
		{"north", core.Direction{}, false},
		{"", core.Direction{}, false},
	}

	for _, tc := range testCases {
		got, ok := core.ParseDirection(tc.input)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v, %v", tc.input, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestDirectionRotate90(t *testing.T) {
	testCases := []struct {
		in, want core.Direction
	}{
		{core.Right, core.Down},
		{core.Down, core.Left},
		{core.Left, core.Up},
		{core.Up, core.Right},
	}

	for _, tc := range testCases {
		if got := tc.in.Rotate90(); got != tc.want {
			t.Errorf("%v.Rotate90() = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseBeamColor(t *testing.T) {
	for _, c := range core.AllBeamColors() {
		got, ok := core.ParseBeamColor(c.String())
		if !ok || got != c {
			t.Errorf("ParseBeamColor(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if got, ok := core.ParseBeamColor("WHITE"); !ok || got != core.White {
		t.Errorf("expected upper-case names to parse, got %v %v", got, ok)
	}
	if _, ok := core.ParseBeamColor("purple"); ok {
		t.Error("expected purple to be rejected")
	}
}

func TestBeamColorUnmarshalText(t *testing.T) {
	var got struct {
		Color core.BeamColor `json:"color"`
	}
	if err := json.Unmarshal([]byte(`{"color":"magenta"}`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Color != core.Magenta {
		t.Errorf("expected magenta, got %v", got.Color)
	}
	if err := json.Unmarshal([]byte(`{"color":"ultraviolet"}`), &got); err == nil {
		t.Error("expected error for unknown colour")
	}
}

func TestParsePiece(t *testing.T) {
	for _, k := range core.PieceKinds() {
		got, ok := core.ParsePiece(k.String())
		if !ok || got != k {
			t.Errorf("ParsePiece(%q) = %v, %v", k.String(), got, ok)
		}
	}
	for _, bad := range []string{"wall", "empty", "mirror", ""} {
		if _, ok := core.ParsePiece(bad); ok {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestFilterColor(t *testing.T) {
	testCases := []struct {
		kind   core.CellKind
		want   core.BeamColor
		wantOK bool
	}{
		{core.FilterRed, core.Red, true},
		{core.FilterGreen, core.Green, true},
		{core.FilterBlue, core.Blue, true},
		{core.Prism, core.White, false},
	}

	for _, tc := range testCases {
		got, ok := tc.kind.FilterColor()
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("%s.FilterColor() = %v, %v", tc.kind, got, ok)
		}
	}
}

func TestCoordKeyRoundTrip(t *testing.T) {
	c := core.C(7, 3)

	if c.Key() != "7,3" {
		t.Errorf("expected key 7,3, got %s", c.Key())
	}
	got, err := core.ParseKey(c.Key())
	if err != nil || got != c {
		t.Errorf("ParseKey(%q) = %v, %v", c.Key(), got, err)
	}
	for _, bad := range []string{"7", "a,1", "1,b"} {
		if _, err := core.ParseKey(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestGridBounds(t *testing.T) {
	g := core.NewGrid(3)

	g.Set(core.C(5, 5), core.Wall)
	for _, c := range g.Cells {
		if c != core.Empty {
			t.Fatal("out-of-bounds set should be ignored")
		}
	}
	if g.Get(core.C(-1, 0)) != core.Empty {
		t.Error("out-of-bounds get should return Empty")
	}

	g.Set(core.C(2, 1), core.Wall)
	rows := g.Rows()
	if len(rows) != 3 || rows[1][2] != "wall" {
		t.Errorf("unexpected rows %v", rows)
	}
}
