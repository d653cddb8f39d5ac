package route

import "testing"

// gridMap is a minimal CollisionFlagMap backed by a sparse set of flags per
// (x, z, level), used to build the literal scenario grids from spec.md §8.
type gridMap map[[3]int]TileFlags

func (g gridMap) Flags(x, z, level int) TileFlags { return g[[3]int{x, z, level}] }

// block marks (x, z, level) fully impassable: every composite mask in
// flags.go ORs in Loc, so setting it alone blocks entry from any direction
// under the Normal strategy.
func (g gridMap) block(x, z, level int) { g[[3]int{x, z, level}] = Loc }

// pointReach is reached once the actor's footprint occupies the target
// tile exactly; sufficient for the size-1 point-destination scenarios in
// spec.md §8.
var pointReach = ReachStrategyFunc(func(flags TileFlags, level, srcX, srcZ, srcSize int, target Target) bool {
	return srcX == target.X && srcZ == target.Z
})

func newTestFinder() *RouteFinder {
	return NewRouteFinder(WithSearchMapSize(32))
}

func TestFindRoute_StraightLine(t *testing.T) {
	finder := newTestFinder()
	flags := gridMap{}

	req := NewFindRouteRequest(0, Point{X: 10, Z: 10}, Point{X: 10, Z: 14}, 1)
	route, err := finder.FindRoute(req, flags, pointReach)
	if err != nil {
		t.Fatalf("FindRoute: %v", err)
	}
	if !route.Success || route.Alternative {
		t.Fatalf("got success=%v alternative=%v, want success=true alternative=false", route.Success, route.Alternative)
	}
	want := []Coord{{X: 10, Z: 14, Level: 0}}
	if !coordsEqual(route.Waypoints, want) {
		t.Fatalf("waypoints = %v, want %v", route.Waypoints, want)
	}
}

func TestFindRoute_LBendAroundWall(t *testing.T) {
	finder := newTestFinder()
	flags := gridMap{}
	// A short wall directly between source and destination forces a bend:
	// S . .
	// # # .
	// . . D
	flags.block(0, 1, 0)
	flags.block(1, 1, 0)

	req := NewFindRouteRequest(0, Point{X: 0, Z: 2}, Point{X: 2, Z: 0}, 1)
	route, err := finder.FindRoute(req, flags, pointReach)
	if err != nil {
		t.Fatalf("FindRoute: %v", err)
	}
	if !route.Success || route.Alternative {
		t.Fatalf("got success=%v alternative=%v, want success=true alternative=false", route.Success, route.Alternative)
	}
	if len(route.Waypoints) < 2 {
		t.Fatalf("waypoints = %v, want at least a bend and the destination", route.Waypoints)
	}
	last := route.Waypoints[len(route.Waypoints)-1]
	if last.X != 2 || last.Z != 0 {
		t.Fatalf("last waypoint = %v, want (2,0)", last)
	}
}

func TestFindRoute_FullyWalledDestination_MoveNear(t *testing.T) {
	finder := newTestFinder()
	flags := gridMap{}
	// S . . .
	// . # # #
	// . # D #
	// . # # #
	for _, p := range [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}} {
		flags.block(p[0], p[1], 0)
	}

	req := NewFindRouteRequest(0, Point{X: 0, Z: 0}, Point{X: 2, Z: 2}, 1)
	route, err := finder.FindRoute(req, flags, pointReach)
	if err != nil {
		t.Fatalf("FindRoute: %v", err)
	}
	if !route.Success || !route.Alternative {
		t.Fatalf("got success=%v alternative=%v, want success=true alternative=true", route.Success, route.Alternative)
	}
	if len(route.Waypoints) == 0 {
		t.Fatal("expected a non-empty approach route")
	}
}

func TestFindRoute_FullyWalledDestination_NoMoveNear(t *testing.T) {
	finder := newTestFinder()
	flags := gridMap{}
	for _, p := range [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}} {
		flags.block(p[0], p[1], 0)
	}

	req := NewFindRouteRequest(0, Point{X: 0, Z: 0}, Point{X: 2, Z: 2}, 1)
	req.MoveNear = false
	route, err := finder.FindRoute(req, flags, pointReach)
	if err != nil {
		t.Fatalf("FindRoute: %v", err)
	}
	if route.Success || route.Alternative || len(route.Waypoints) != 0 {
		t.Fatalf("got %+v, want FAILED", route)
	}
}

func TestFindRoute_Size2NarrowGapRejected(t *testing.T) {
	finder := newTestFinder()
	flags := gridMap{}
	// A two-row-thick wall (z=1,2) spans the whole search window except a
	// single-tile gap at x=0. A 1x1 actor fits through the gap; a 2x2
	// actor never can, since its footprint always straddles the gap
	// column and one of its neighbours.
	for x := -16; x <= 15; x++ {
		if x == 0 {
			continue
		}
		flags.block(x, 1, 0)
		flags.block(x, 2, 0)
	}

	req := NewFindRouteRequest(0, Point{X: 0, Z: 0}, Point{X: 0, Z: 3}, 1)
	route, err := finder.FindRoute(req, flags, pointReach)
	if err != nil {
		t.Fatalf("FindRoute: %v", err)
	}
	if !route.Success {
		t.Fatalf("expected a 1x1 actor to fit through the gap, got %+v", route)
	}

	req2 := NewFindRouteRequest(0, Point{X: 0, Z: 0}, Point{X: 0, Z: 3}, 2)
	req2.MoveNear = false
	route2, err := finder.FindRoute(req2, flags, pointReach)
	if err != nil {
		t.Fatalf("FindRoute: %v", err)
	}
	if route2.Success {
		t.Fatalf("expected the 2x2 actor to be rejected by the narrow gap, got %+v", route2)
	}
}

func TestFindRoute_DiagonalThroughCornerRejected(t *testing.T) {
	finder := newTestFinder()
	flags := gridMap{}
	// S .
	// . D
	flags[[3]int{0, 0, 0}] = WallNorthEast

	req := NewFindRouteRequest(0, Point{X: 0, Z: 0}, Point{X: 1, Z: 1}, 1)
	route, err := finder.FindRoute(req, flags, pointReach)
	if err != nil {
		t.Fatalf("FindRoute: %v", err)
	}
	if !route.Success {
		t.Fatal("expected an orthogonal detour to still succeed")
	}
	// A blocked diagonal forces a two-segment orthogonal detour instead of
	// the direct one-hop diagonal.
	if len(route.Waypoints) < 2 {
		t.Fatalf("expected a multi-waypoint detour, got %v", route.Waypoints)
	}
}

func coordsEqual(got, want []Coord) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestFindRoute_VisitedIncludesSource(t *testing.T) {
	finder := newTestFinder()
	flags := gridMap{}

	req := NewFindRouteRequest(0, Point{X: 10, Z: 10}, Point{X: 10, Z: 12}, 1)
	if _, err := finder.FindRoute(req, flags, pointReach); err != nil {
		t.Fatalf("FindRoute: %v", err)
	}
	visited := finder.Visited()
	found := false
	for _, c := range visited {
		if c.X == 10 && c.Z == 10 && c.Distance == 0 {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected the source tile at distance 0 in Visited(), got %v", visited)
	}
}
