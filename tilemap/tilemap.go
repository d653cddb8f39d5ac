// Package tilemap provides an in-memory route.CollisionFlagMap, the
// concrete grid a demo or benchmark plugs into the finder instead of a
// live game world's collision data.
package tilemap

import (
	"routegrid/route"
)

// TileMap is a sparse, per-level grid of collision flag words. The zero
// value is an empty map where every tile is fully open.
type TileMap struct {
	levels map[int]map[[2]int]route.TileFlags
}

// New constructs an empty TileMap.
func New() *TileMap {
	return &TileMap{levels: make(map[int]map[[2]int]route.TileFlags)}
}

// Flags implements route.CollisionFlagMap. Unset tiles read as zero
// (fully open), matching the "absent obstacle" convention generateObstacles
// uses for any coordinate it didn't scatter a rectangle onto.
func (m *TileMap) Flags(x, z, level int) route.TileFlags {
	if m == nil {
		return 0
	}
	grid, ok := m.levels[level]
	if !ok {
		return 0
	}
	return grid[[2]int{x, z}]
}

// Set overwrites the collision flags at (x, z, level).
func (m *TileMap) Set(x, z, level int, flags route.TileFlags) {
	grid, ok := m.levels[level]
	if !ok {
		grid = make(map[[2]int]route.TileFlags)
		m.levels[level] = grid
	}
	grid[[2]int{x, z}] = flags
}

// Or merges additional bits into the existing flags at (x, z, level).
func (m *TileMap) Or(x, z, level int, flags route.TileFlags) {
	m.Set(x, z, level, m.Flags(x, z, level)|flags)
}

// BlockRect sets route.Loc (an impassable-from-any-direction tile) across
// the rectangle [x0, x1] x [z0, z1], inclusive, the packed-grid analogue of
// obstaclesOverlap's AABB scatter in the teacher's obstacle generator.
func (m *TileMap) BlockRect(x0, z0, x1, z1, level int) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if z1 < z0 {
		z0, z1 = z1, z0
	}
	for z := z0; z <= z1; z++ {
		for x := x0; x <= x1; x++ {
			m.Or(x, z, level, route.Loc)
		}
	}
}
