package route

import "testing"

func TestPrependWaypointEvictsTail(t *testing.T) {
	// spec.md §9: when the buffer is full, the tail (the oldest-appended
	// element, i.e. the one nearest the destination) is evicted before the
	// new, more source-ward waypoint is prepended. Reproduced exactly, not
	// "fixed" into evicting the head instead.
	var waypoints []Coord
	waypoints = prependWaypoint(waypoints, Coord{X: 1}, 3) // [1]
	waypoints = prependWaypoint(waypoints, Coord{X: 2}, 3) // [2 1]
	waypoints = prependWaypoint(waypoints, Coord{X: 3}, 3) // [3 2 1]
	waypoints = prependWaypoint(waypoints, Coord{X: 4}, 3) // full: evict tail (1), then prepend -> [4 3 2]

	want := []Coord{{X: 4}, {X: 3}, {X: 2}}
	if !coordsEqual(waypoints, want) {
		t.Fatalf("waypoints = %v, want %v", waypoints, want)
	}
}

func TestStepBackComponents(t *testing.T) {
	cases := []struct {
		name   string
		dir    uint8
		cx, cz int
		wantX  int
		wantZ  int
	}{
		{"east", stepEast, 0, 0, 1, 0},
		{"west", stepWest, 0, 0, -1, 0},
		{"north", stepNorth, 0, 0, 0, 1},
		{"south", stepSouth, 0, 0, 0, -1},
		{"northeast diagonal", stepNorth | stepEast, 0, 0, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotX, gotZ := stepBack(tc.cx, tc.cz, tc.dir)
			if gotX != tc.wantX || gotZ != tc.wantZ {
				t.Fatalf("stepBack(%d,%d,%#x) = (%d,%d), want (%d,%d)", tc.cx, tc.cz, tc.dir, gotX, gotZ, tc.wantX, tc.wantZ)
			}
		})
	}
}

func TestReverseBitsMatchesDirectionOfTravel(t *testing.T) {
	// moving west-to-east enqueues the east cell with direction-flag WEST.
	if got := reverseBits(East); got != stepWest {
		t.Fatalf("reverseBits(East) = %#x, want stepWest", got)
	}
	if got := reverseBits(West); got != stepEast {
		t.Fatalf("reverseBits(West) = %#x, want stepEast", got)
	}
	if got := reverseBits(NorthEast); got != stepSouth|stepWest {
		t.Fatalf("reverseBits(NorthEast) = %#x, want South|West", got)
	}
}
