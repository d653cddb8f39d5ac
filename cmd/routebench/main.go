// Command routebench runs the scenarios from spec.md §8 against small
// hand-built tile maps and reports BFS timing, the same composition-root shape
// cmd/server/main.go + internal/app.Run use for the game server: build a
// logging router, wire a console sink, fail loudly on setup errors.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"routegrid/logging"
	loggingrouting "routegrid/logging/routing"
	loggingsinks "routegrid/logging/sinks"
	"routegrid/route"
	"routegrid/tilemap"
)

type scenario struct {
	name       string
	level      int
	src        route.Point
	srcSize    int
	dest       route.Point
	build      func(*tilemap.TileMap)
	moveNear   bool
	collision  route.CollisionStrategy
}

func scenarios() []scenario {
	return []scenario{
		{
			name:    "straight_line",
			level:   0,
			src:     route.Point{X: 10, Z: 10},
			srcSize: 1,
			dest:    route.Point{X: 10, Z: 14},
			build:   func(*tilemap.TileMap) {},
			moveNear: true,
			collision: route.Normal,
		},
		{
			name:    "l_bend_around_wall",
			level:   0,
			src:     route.Point{X: 0, Z: 2},
			srcSize: 1,
			dest:    route.Point{X: 2, Z: 0},
			build: func(m *tilemap.TileMap) {
				m.Or(0, 1, 0, route.Loc)
				m.Or(1, 1, 0, route.Loc)
			},
			moveNear:  true,
			collision: route.Normal,
		},
		{
			name:    "fully_walled_destination_move_near",
			level:   0,
			src:     route.Point{X: 0, Z: 0},
			srcSize: 1,
			dest:    route.Point{X: 2, Z: 2},
			build: func(m *tilemap.TileMap) {
				for _, p := range [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}} {
					m.Or(p[0], p[1], 0, route.Loc)
				}
			},
			moveNear:  true,
			collision: route.Normal,
		},
		{
			name:    "fully_walled_destination_no_move_near",
			level:   0,
			src:     route.Point{X: 0, Z: 0},
			srcSize: 1,
			dest:    route.Point{X: 2, Z: 2},
			build: func(m *tilemap.TileMap) {
				for _, p := range [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}} {
					m.Or(p[0], p[1], 0, route.Loc)
				}
			},
			moveNear:  false,
			collision: route.Normal,
		},
		{
			name:    "size2_narrow_gap_rejected",
			level:   0,
			src:     route.Point{X: 0, Z: 0},
			srcSize: 2,
			dest:    route.Point{X: 0, Z: 3},
			build: func(m *tilemap.TileMap) {
				for x := -16; x <= 15; x++ {
					if x == 0 {
						continue
					}
					m.Or(x, 1, 0, route.Loc)
					m.Or(x, 2, 0, route.Loc)
				}
			},
			moveNear:  true,
			collision: route.Normal,
		},
		{
			name:    "diagonal_through_corner_rejected",
			level:   0,
			src:     route.Point{X: 0, Z: 0},
			srcSize: 1,
			dest:    route.Point{X: 1, Z: 1},
			build: func(m *tilemap.TileMap) {
				m.Or(0, 0, 0, route.WallNorthEast)
			},
			moveNear:  true,
			collision: route.Normal,
		},
	}
}

func run(ctx context.Context, pub logging.Publisher) error {
	finder := route.NewRouteFinder()

	for _, sc := range scenarios() {
		tiles := tilemap.New()
		sc.build(tiles)

		req := route.NewFindRouteRequest(sc.level, sc.src, sc.dest, sc.srcSize)
		req.MoveNear = sc.moveNear
		req.Collision = sc.collision

		reach := route.ReachStrategyFunc(func(flags route.TileFlags, level, srcX, srcZ, srcSize int, tgt route.Target) bool {
			return srcX == tgt.X && srcZ == tgt.Z
		})

		actor := logging.EntityRef{ID: sc.name, Kind: "scenario"}
		start := time.Now()
		result, err := finder.FindRoute(req, tiles, reach)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", sc.name, err)
		}

		visited := len(finder.Visited())
		switch {
		case result.Success && !result.Alternative:
			loggingrouting.RouteComputed(ctx, pub, 0, actor, loggingrouting.RouteComputedPayload{
				Level: sc.level, SrcX: sc.src.X, SrcZ: sc.src.Z,
				DestX: sc.dest.X, DestZ: sc.dest.Z,
				WaypointsLen: len(result.Waypoints), VisitedTiles: visited,
			}, nil)
		case result.Success && result.Alternative:
			last := result.Waypoints[len(result.Waypoints)-1]
			loggingrouting.RouteAlternative(ctx, pub, 0, actor, loggingrouting.RouteAlternativePayload{
				Level: sc.level, SrcX: sc.src.X, SrcZ: sc.src.Z,
				DestX: sc.dest.X, DestZ: sc.dest.Z,
				ApproachX: last.X, ApproachZ: last.Z,
			}, nil)
		default:
			loggingrouting.RouteFailed(ctx, pub, 0, actor, loggingrouting.RouteFailedPayload{
				Level: sc.level, SrcX: sc.src.X, SrcZ: sc.src.Z,
				DestX: sc.dest.X, DestZ: sc.dest.Z, MoveNear: sc.moveNear,
			}, nil)
		}

		fmt.Printf("%-36s success=%-5v alternative=%-5v visited=%-5d waypoints=%-3d elapsed=%s\n",
			sc.name, result.Success, result.Alternative, visited, len(result.Waypoints), elapsed)
	}
	return nil
}

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg := logging.DefaultConfig()
	sinks := map[string]logging.Sink{
		"console": loggingsinks.NewConsoleSink(os.Stdout, logging.ConsoleConfig{}),
	}
	router, err := logging.NewRouter(cfg, logging.SystemClock{}, logger, sinks)
	if err != nil {
		log.Fatalf("failed to construct logging router: %v", err)
	}
	defer func() {
		if cerr := router.Close(context.Background()); cerr != nil {
			logger.Printf("failed to close logging router: %v", cerr)
		}
	}()

	if err := run(context.Background(), router); err != nil {
		log.Fatalf("%v", err)
	}

	snapshot := router.MetricsSnapshot()
	fmt.Printf("events_total=%d events_dropped_total=%d\n", snapshot["events_total"], snapshot["events_dropped_total"])
}
