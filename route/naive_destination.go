package route

// NaiveDestination picks the contact tile an actor at (srcX, srcZ) should
// walk to in order to stand adjacent to target, without running a BFS
// (spec.md §4.6). It classifies the approach side by the sign of the
// diagonal and anti-diagonal dot products of the vector from the
// footprint's centre to the source — the same quadrant test used to decide
// which wall of a rectangle a ray from outside first crosses — then clamps
// the contact coordinate to the footprint's span along that side and steps
// one tile out past its edge.
func NaiveDestination(srcX, srcZ int, target Target) Point {
	minX, maxX := target.X, target.X+target.Width-1
	minZ, maxZ := target.Z, target.Z+target.Length-1

	dx := srcX*2 - (minX + maxX)
	dz := srcZ*2 - (minZ + maxZ)
	diag := dx + dz
	anti := dx - dz

	switch {
	case diag >= 0 && anti >= 0:
		return Point{X: maxX + 1, Z: clampInt(srcZ, minZ, maxZ)}
	case diag >= 0 && anti < 0:
		return Point{X: clampInt(srcX, minX, maxX), Z: maxZ + 1}
	case diag < 0 && anti >= 0:
		return Point{X: clampInt(srcX, minX, maxX), Z: minZ - 1}
	default:
		return Point{X: minX - 1, Z: clampInt(srcZ, minZ, maxZ)}
	}
}
