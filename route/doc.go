// Package route implements a tile-grid BFS route finder for a 2.5D game
// world. Given a source actor of arbitrary square footprint and a
// destination point or rectangular loc, it computes a short path of
// waypoints that respects per-tile collision bitflags and the actor's
// footprint, terminating when a caller-supplied reachability predicate is
// satisfied.
//
// The finder is strictly single-threaded per RouteFinder instance; callers
// that need concurrency should keep a pool of instances (see FinderConfig).
package route
