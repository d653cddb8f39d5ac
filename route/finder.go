package route

import "fmt"

const (
	// sentinelDirection marks the BFS source cell: no predecessor exists so
	// no direction-back-to-predecessor bits apply (spec.md §4.1).
	sentinelDirection uint8 = 99
	// sentinelDistance marks a cell the BFS has not yet visited.
	sentinelDistance = 99_999_999

	approachRange  = 10
	approachSeek   = 100
	approachLowest = 1000
)

// Direction-back-to-predecessor bits recorded per visited cell. A diagonal
// step records the OR of its two cardinal components. Reconstruction walks
// these bits in reverse: EAST adds to x, WEST subtracts, NORTH adds to z,
// SOUTH subtracts (spec.md §4.5).
const (
	stepNorth uint8 = 1 << iota
	stepEast
	stepSouth
	stepWest
)

// expansionOrder is the fixed neighbour visitation order spec.md §4.3 calls
// authoritative. Reproduced exactly, not re-derived per call.
var expansionOrder = [8]Direction{West, East, South, North, NorthEast, NorthWest, SouthEast, SouthWest}

// reverseBits returns the direction-back-to-predecessor bits for a step
// taken in direction d (spec.md §4.5: "moving west-to-east enqueues the
// east cell with direction-flag WEST").
func reverseBits(d Direction) uint8 {
	var bits uint8
	dx, dz := dirDelta[d].dx, dirDelta[d].dz
	switch {
	case dx > 0:
		bits |= stepWest
	case dx < 0:
		bits |= stepEast
	}
	switch {
	case dz > 0:
		bits |= stepSouth
	case dz < 0:
		bits |= stepNorth
	}
	return bits
}

// RouteFinder runs breadth-first searches over a collision flag map within a
// fixed-size window re-centred on the source tile of every call. One
// instance is not safe for concurrent use; construct one per worker
// (spec.md §7).
type RouteFinder struct {
	cfg  FinderConfig
	size int // SearchMapSize, cached

	directions []uint8
	distances  []int32

	ringX, ringZ []int32
	ringMask     int
	readIdx      int
	writeIdx     int

	baseX, baseZ int
}

// NewRouteFinder builds a RouteFinder from DefaultFinderConfig() with opts
// applied. It panics if the resulting RingBufferSize is not a power of two
// (spec.md §9).
func NewRouteFinder(opts ...Option) *RouteFinder {
	cfg := DefaultFinderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !isPowerOfTwo(cfg.RingBufferSize) {
		panic(fmt.Sprintf("route: RingBufferSize %d is not a power of two", cfg.RingBufferSize))
	}
	if cfg.SearchMapSize <= 0 {
		panic(fmt.Sprintf("route: SearchMapSize %d must be positive", cfg.SearchMapSize))
	}

	n := cfg.SearchMapSize * cfg.SearchMapSize
	return &RouteFinder{
		cfg:        cfg,
		size:       cfg.SearchMapSize,
		directions: make([]uint8, n),
		distances:  make([]int32, n),
		ringX:      make([]int32, cfg.RingBufferSize),
		ringZ:      make([]int32, cfg.RingBufferSize),
		ringMask:   cfg.RingBufferSize - 1,
	}
}

func (f *RouteFinder) index(cx, cz int) int { return cz*f.size + cx }

func (f *RouteFinder) inWindow(cx, cz int) bool {
	return cx >= 0 && cx < f.size && cz >= 0 && cz < f.size
}

func (f *RouteFinder) reset() {
	for i := range f.directions {
		f.directions[i] = 0
		f.distances[i] = sentinelDistance
	}
	f.readIdx = 0
	f.writeIdx = 0
}

func (f *RouteFinder) enqueue(cx, cz int) {
	idx := f.writeIdx & f.ringMask
	f.ringX[idx] = int32(cx)
	f.ringZ[idx] = int32(cz)
	f.writeIdx++
}

func (f *RouteFinder) dequeue() (int, int) {
	idx := f.readIdx & f.ringMask
	cx, cz := int(f.ringX[idx]), int(f.ringZ[idx])
	f.readIdx++
	return cx, cz
}

func (f *RouteFinder) queueEmpty() bool { return f.readIdx == f.writeIdx }

// FindRouteRequest bundles FindRoute's inputs (spec.md §4.2). Use
// NewFindRouteRequest to get the documented defaults.
type FindRouteRequest struct {
	Level int
	Src   Point
	Dest  Point

	SrcSize    int
	DestWidth  int
	DestLength int
	LocAngle   int
	LocShape   int

	MoveNear         bool
	BlockAccessFlags uint8
	MaxWaypoints     int
	Collision        CollisionStrategy
}

// Point is an (x, z) tile coordinate on one dungeon level.
type Point struct {
	X, Z int
}

// NewFindRouteRequest fills in spec.md §4.2's defaults: a 1x1 destination
// point (Shape -1), MoveNear true, a 25-waypoint cap, and Normal collision.
func NewFindRouteRequest(level int, src, dest Point, srcSize int) FindRouteRequest {
	return FindRouteRequest{
		Level:        level,
		Src:          src,
		Dest:         dest,
		SrcSize:      srcSize,
		DestWidth:    1,
		DestLength:   1,
		LocAngle:     0,
		LocShape:     -1,
		MoveNear:     true,
		MaxWaypoints: 25,
		Collision:    Normal,
	}
}

func (f *RouteFinder) validate(req FindRouteRequest) error {
	if req.Level < 0 || req.Level > MaxLevel {
		return invalidArgument("Level", req.Level)
	}
	if req.Src.X < 0 || req.Src.X > MaxCoordinate {
		return invalidArgument("Src.X", req.Src.X)
	}
	if req.Src.Z < 0 || req.Src.Z > MaxCoordinate {
		return invalidArgument("Src.Z", req.Src.Z)
	}
	if req.Dest.X < 0 || req.Dest.X > MaxCoordinate {
		return invalidArgument("Dest.X", req.Dest.X)
	}
	if req.Dest.Z < 0 || req.Dest.Z > MaxCoordinate {
		return invalidArgument("Dest.Z", req.Dest.Z)
	}
	if req.SrcSize < 1 {
		return invalidArgument("SrcSize", req.SrcSize)
	}
	return nil
}

// FindRoute runs a single BFS call from req.Src toward req.Dest within this
// finder's search window, using reach to decide when the destination has
// been reached and flags as the collision source (spec.md §4).
func (f *RouteFinder) FindRoute(req FindRouteRequest, flags CollisionFlagMap, reach ReachStrategy) (Route, error) {
	if err := f.validate(req); err != nil {
		return Failed, err
	}

	f.reset()
	half := f.size / 2
	f.baseX = req.Src.X - half
	f.baseZ = req.Src.Z - half

	srcLX, srcLZ := req.Src.X-f.baseX, req.Src.Z-f.baseZ

	destW, destL := RotatedSize(req.LocAngle, req.DestWidth, req.DestLength)
	target := Target{
		X: req.Dest.X, Z: req.Dest.Z,
		Width: destW, Length: destL,
		Angle: req.LocAngle, Shape: req.LocShape,
		BlockAccessFlags: req.BlockAccessFlags,
	}

	f.directions[f.index(srcLX, srcLZ)] = sentinelDirection
	f.distances[f.index(srcLX, srcLZ)] = 0
	f.enqueue(srcLX, srcLZ)

	terminalX, terminalZ, found := -1, -1, false

	for !f.queueEmpty() {
		cx, cz := f.dequeue()
		ax, az := f.baseX+cx, f.baseZ+cz
		curIdx := f.index(cx, cz)

		tileFlags := flags.Flags(ax, az, req.Level)
		if reach.Reached(tileFlags, req.Level, ax, az, req.SrcSize, target) {
			terminalX, terminalZ, found = cx, cz, true
			break
		}

		exp := expander{
			size:         req.SrcSize,
			routeBlocker: f.cfg.UseRouteBlockerFlags,
			strategy:     req.Collision,
			level:        req.Level,
			flags:        flags,
			baseX:        ax,
			baseZ:        az,
		}

		for _, d := range expansionOrder {
			nx, nz := cx+dirDelta[d].dx, cz+dirDelta[d].dz
			if !f.inWindow(nx, nz) {
				continue
			}
			nIdx := f.index(nx, nz)
			if f.distances[nIdx] != sentinelDistance {
				continue
			}
			if !exp.canStep(d) {
				continue
			}
			f.directions[nIdx] = reverseBits(d)
			f.distances[nIdx] = f.distances[curIdx] + 1
			f.enqueue(nx, nz)
		}
	}

	alternative := false
	if !found && req.MoveNear {
		terminalX, terminalZ, found = f.findClosestApproach(req, target)
		alternative = found
	}
	if !found {
		return Failed, nil
	}

	waypoints := f.reconstruct(terminalX, terminalZ, req.Level, req.MaxWaypoints)
	if len(waypoints) == 0 {
		// The terminal cell is the BFS source itself (already at/adjacent to
		// the destination), so there is no predecessor chain to walk; emit
		// the terminal tile as the sole waypoint rather than reporting
		// success with nothing to walk to.
		waypoints = []Coord{{X: f.baseX + terminalX, Z: f.baseZ + terminalZ, Level: req.Level}}
	}
	return Route{
		Waypoints:   waypoints,
		Success:     true,
		Alternative: alternative,
	}, nil
}
