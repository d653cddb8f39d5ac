package route

// dirDelta gives the local (dx, dz) offset applied when stepping in a
// compass direction. +x is East, +z is North.
var dirDelta = [numDirections]struct{ dx, dz int }{
	North:     {0, 1},
	NorthEast: {1, 1},
	East:      {1, 0},
	SouthEast: {1, -1},
	South:     {0, -1},
	SouthWest: {-1, -1},
	West:      {-1, 0},
	NorthWest: {-1, 1},
}

// diagonalOf combines two adjacent cardinal directions into the ordinal
// direction between them, used to pick the correct corner mask for the ends
// of a leading edge sweep.
func diagonalOf(a, b Direction) Direction {
	switch {
	case (a == North && b == East) || (a == East && b == North):
		return NorthEast
	case (a == East && b == South) || (a == South && b == East):
		return SouthEast
	case (a == South && b == West) || (a == West && b == South):
		return SouthWest
	case (a == West && b == North) || (a == North && b == West):
		return NorthWest
	default:
		panic("route: diagonalOf called with non-adjacent cardinals")
	}
}

// expander evaluates whether an actor may step onto a neighbouring cell,
// sharing one implementation across the six size/flag-family combinations
// spec.md §9 calls out instead of six near-duplicate loops.
type expander struct {
	size         int
	routeBlocker bool
	strategy     CollisionStrategy
	level        int
	flags        CollisionFlagMap
	baseX, baseZ int
}

func (e expander) tile(cx, cz int) TileFlags {
	return e.flags.Flags(e.baseX+cx, e.baseZ+cz, e.level)
}

// edgeClear tests the leading edge an actor of e.size sweeps when stepping
// in cardinal direction d from footprint anchor (cx, cz): a single tile for
// a 1x1 actor (spec.md §4.3.1), the two corner tiles for a 2x2 actor
// (§4.3.3), or corners plus an interior triple-wall sweep for N>=3 (§4.3.4).
// It also serves as the orthogonal-intermediate test for diagonal steps
// (§4.3.2), since a 1x1 diagonal's intermediate check is the same single-
// tile cardinal test.
func (e expander) edgeClear(d Direction) bool {
	if e.size == 1 {
		dx, dz := dirDelta[d].dx, dirDelta[d].dz
		return e.strategy.CanMove(e.tile(0+dx, 0+dz), blockMask(d, e.routeBlocker))
	}
	return e.edgeClearAt(d, 0, 0)
}

func (e expander) edgeClearAt(d Direction, cx, cz int) bool {
	dx, dz := dirDelta[d].dx, dirDelta[d].dz

	var (
		vertical        = dz == 0 // travelling East/West: sweep spans Z
		lowPerp, hiPerp Direction
		column, row     int
		span            = e.size
	)
	if vertical {
		lowPerp, hiPerp = South, North
		if dx > 0 {
			column = cx + e.size
		} else {
			column = cx - 1
		}
	} else {
		lowPerp, hiPerp = West, East
		if dz > 0 {
			row = cz + e.size
		} else {
			row = cz - 1
		}
	}

	for i := 0; i < span; i++ {
		var tx, tz int
		if vertical {
			tx, tz = column, cz+i
		} else {
			tx, tz = cx+i, row
		}
		var mask TileFlags
		switch {
		case i == 0:
			mask = blockMask(diagonalOf(d, lowPerp), e.routeBlocker)
		case i == span-1:
			mask = blockMask(diagonalOf(d, hiPerp), e.routeBlocker)
		default:
			mask = interiorSweepBlock(d, lowPerp, hiPerp, e.routeBlocker)
		}
		if !e.strategy.CanMove(e.tile(tx, tz), mask) {
			return false
		}
	}
	return true
}

// canStepCardinal implements spec.md §4.3.1/§4.3.3/§4.3.4.
func (e expander) canStepCardinal(d Direction) bool {
	return e.edgeClear(d)
}

// canStepDiagonal implements spec.md §4.3.2/§4.3.3/§4.3.4: the source tile's
// own exit-wall flag must be clear, the leading corner tile must accept the
// opposite-quadrant entry, and both orthogonal edges the footprint sweeps
// must be clear.
func (e expander) canStepDiagonal(d Direction) bool {
	if !e.strategy.CanMove(e.tile(0, 0), blockMask(d, e.routeBlocker)) {
		return false
	}

	dx, dz := dirDelta[d].dx, dirDelta[d].dz
	cornerX, cornerZ := 0, 0
	if dx > 0 {
		cornerX = e.size
	} else {
		cornerX = -1
	}
	if dz > 0 {
		cornerZ = e.size
	} else {
		cornerZ = -1
	}
	if !e.strategy.CanMove(e.tile(cornerX, cornerZ), blockMask(d.opposite(), e.routeBlocker)) {
		return false
	}

	c1, c2 := d.adjacentCardinals()
	if !e.edgeClear(c1) || !e.edgeClear(c2) {
		return false
	}
	return true
}

// canStep dispatches to the cardinal or diagonal rule for d.
func (e expander) canStep(d Direction) bool {
	if d.isDiagonal() {
		return e.canStepDiagonal(d)
	}
	return e.canStepCardinal(d)
}
