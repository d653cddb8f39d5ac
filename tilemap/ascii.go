package tilemap

import "routegrid/route"

// AsciiLegend maps a single rune in an ASCII map row to the tile flags that
// rune represents. '.' (open) need not be listed; any rune absent from the
// legend is treated as open.
type AsciiLegend map[rune]route.TileFlags

// DefaultLegend is a small starter legend: '#' is a fully-blocking loc,
// '.' is open ground.
var DefaultLegend = AsciiLegend{
	'#': route.Loc,
}

// FromASCII builds a TileMap on a single level from a slice of equal-length
// rows. Row 0 is the northernmost row (largest Z); within a row, runes read
// west-to-east (increasing X), mirroring how generateLavaPools lays out its
// fixed hazard templates by hand rather than proceduraly.
func FromASCII(rows []string, legend AsciiLegend, originX, originZ, level int) *TileMap {
	m := New()
	for rowIdx, row := range rows {
		z := originZ + (len(rows) - 1 - rowIdx)
		for colIdx, r := range row {
			x := originX + colIdx
			flags, ok := legend[r]
			if !ok {
				continue
			}
			m.Or(x, z, level, flags)
		}
	}
	return m
}
