// Package debugserver exposes a small HTTP+WebSocket endpoint that runs a
// single findRoute call against an in-memory tile map and streams the BFS
// frontier and the final waypoints back as JSON frames, for building a
// visual route-finder debugger. It plays the role hub.go's subscriber loop
// plays for the teacher's game client, stripped down to one request per
// connection instead of a ticked simulation broadcast.
package debugserver

import (
	nethttp "net/http"
	"time"

	"github.com/gorilla/websocket"

	"routegrid/route"
	"routegrid/tilemap"
)

// writeWait bounds how long a single frame write may block, mirroring the
// teacher's subscriber write deadline in hub.go.
const writeWait = 5 * time.Second

// Server serves /ws/route against a shared tile map and finder.
type Server struct {
	finder   *route.RouteFinder
	tiles    *tilemap.TileMap
	reach    route.ReachStrategy
	upgrader websocket.Upgrader
}

// New constructs a Server. reach decides when findRoute considers the
// destination reached; callers typically pass a route.ReachStrategyFunc
// built around the same Target the request describes.
func New(finder *route.RouteFinder, tiles *tilemap.TileMap, reach route.ReachStrategy) *Server {
	return &Server{
		finder: finder,
		tiles:  tiles,
		reach:  reach,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *nethttp.Request) bool { return true },
		},
	}
}

// routeRequestFrame is the inbound message shape a client sends once after
// connecting, requesting a single route computation.
type routeRequestFrame struct {
	Level      int `json:"level"`
	SrcX       int `json:"srcX"`
	SrcZ       int `json:"srcZ"`
	SrcSize    int `json:"srcSize"`
	DestX      int `json:"destX"`
	DestZ      int `json:"destZ"`
	DestWidth  int `json:"destWidth"`
	DestLength int `json:"destLength"`
}

// frontierFrame reports every tile the BFS explored.
type frontierFrame struct {
	Type  string              `json:"type"`
	Cells []route.VisitedCell `json:"cells"`
}

// resultFrame reports the final outcome.
type resultFrame struct {
	Type        string        `json:"type"`
	Success     bool          `json:"success"`
	Alternative bool          `json:"alternative"`
	Waypoints   []route.Coord `json:"waypoints"`
}

// ServeHTTP upgrades the connection, reads one routeRequestFrame, runs
// findRoute, and streams a frontierFrame followed by a resultFrame.
func (s *Server) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var reqFrame routeRequestFrame
	if err := conn.ReadJSON(&reqFrame); err != nil {
		return
	}

	req := route.NewFindRouteRequest(
		reqFrame.Level,
		route.Point{X: reqFrame.SrcX, Z: reqFrame.SrcZ},
		route.Point{X: reqFrame.DestX, Z: reqFrame.DestZ},
		reqFrame.SrcSize,
	)
	if reqFrame.DestWidth > 0 {
		req.DestWidth = reqFrame.DestWidth
	}
	if reqFrame.DestLength > 0 {
		req.DestLength = reqFrame.DestLength
	}

	result, err := s.finder.FindRoute(req, s.tiles, s.reach)
	if err != nil {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		conn.WriteJSON(resultFrame{Type: "error"})
		return
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(frontierFrame{Type: "frontier", Cells: s.finder.Visited()}); err != nil {
		return
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	conn.WriteJSON(resultFrame{
		Type:        "result",
		Success:     result.Success,
		Alternative: result.Alternative,
		Waypoints:   result.Waypoints,
	})
}
