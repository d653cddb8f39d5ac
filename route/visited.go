package route

// VisitedCell describes one BFS-explored tile from the most recent
// FindRoute call, for tooling that wants to draw the search frontier (the
// finder itself never looks at this; spec.md §7 keeps findRoute pure).
type VisitedCell struct {
	X, Z     int
	Distance int32
}

// Visited returns every tile the most recent FindRoute call explored, in
// no particular order. The result is invalidated by the next FindRoute
// call on the same finder.
func (f *RouteFinder) Visited() []VisitedCell {
	cells := make([]VisitedCell, 0, f.writeIdx)
	for cz := 0; cz < f.size; cz++ {
		for cx := 0; cx < f.size; cx++ {
			dist := f.distances[f.index(cx, cz)]
			if dist == sentinelDistance {
				continue
			}
			cells = append(cells, VisitedCell{X: f.baseX + cx, Z: f.baseZ + cz, Distance: dist})
		}
	}
	return cells
}
