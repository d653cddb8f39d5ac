package tilemap

import (
	"testing"

	"routegrid/route"
)

func TestTileMapDefaultsOpen(t *testing.T) {
	m := New()
	if got := m.Flags(5, 5, 0); got != 0 {
		t.Fatalf("Flags on empty map = %#x, want 0", got)
	}
}

func TestTileMapSetAndOr(t *testing.T) {
	m := New()
	m.Set(1, 1, 0, route.WallNorth)
	m.Or(1, 1, 0, route.Loc)
	want := route.WallNorth | route.Loc
	if got := m.Flags(1, 1, 0); got != want {
		t.Fatalf("Flags(1,1,0) = %#x, want %#x", got, want)
	}
	// A different level must not see the same tile's flags.
	if got := m.Flags(1, 1, 1); got != 0 {
		t.Fatalf("Flags(1,1,1) = %#x, want 0", got)
	}
}

func TestTileMapBlockRect(t *testing.T) {
	m := New()
	m.BlockRect(0, 0, 2, 1, 0)
	for z := 0; z <= 1; z++ {
		for x := 0; x <= 2; x++ {
			if got := m.Flags(x, z, 0); got&route.Loc == 0 {
				t.Fatalf("Flags(%d,%d,0) = %#x, want Loc set", x, z, got)
			}
		}
	}
	if got := m.Flags(3, 0, 0); got != 0 {
		t.Fatalf("Flags(3,0,0) = %#x, want 0 outside the rect", got)
	}
}

func TestFromASCII(t *testing.T) {
	rows := []string{
		"###",
		"#.#",
		"###",
	}
	m := FromASCII(rows, DefaultLegend, 0, 0, 0)
	if got := m.Flags(1, 1, 0); got != 0 {
		t.Fatalf("center tile Flags = %#x, want 0 (open)", got)
	}
	if got := m.Flags(0, 0, 0); got&route.Loc == 0 {
		t.Fatalf("corner tile Flags = %#x, want Loc set", got)
	}
	if got := m.Flags(1, 2, 0); got&route.Loc == 0 {
		t.Fatalf("top row tile Flags = %#x, want Loc set", got)
	}
}
