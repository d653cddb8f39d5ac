// Package routing defines the typed events the route finder's callers
// publish through logging.Router, mirroring logging/combat's pattern:
// a const EventType per occurrence, a payload struct, and a thin
// publish helper. The finder itself never imports this package.
package routing

import (
	"context"

	"routegrid/logging"
)

const (
	// EventRouteComputed is emitted when findRoute succeeds against the
	// requested destination.
	EventRouteComputed logging.EventType = "routing.route_computed"
	// EventRouteAlternative is emitted when findRoute succeeds via the
	// closest-approach fallback instead of reaching the destination.
	EventRouteAlternative logging.EventType = "routing.route_alternative"
	// EventRouteFailed is emitted when findRoute exhausts the search
	// window without a route or a usable approach.
	EventRouteFailed logging.EventType = "routing.route_failed"
)

// RouteComputedPayload captures the shape of a successful route.
type RouteComputedPayload struct {
	Level        int `json:"level"`
	SrcX         int `json:"srcX"`
	SrcZ         int `json:"srcZ"`
	DestX        int `json:"destX"`
	DestZ        int `json:"destZ"`
	WaypointsLen int `json:"waypointsLen"`
	VisitedTiles int `json:"visitedTiles"`
}

// RouteAlternativePayload captures the approach tile actually reached.
type RouteAlternativePayload struct {
	Level     int `json:"level"`
	SrcX      int `json:"srcX"`
	SrcZ      int `json:"srcZ"`
	DestX     int `json:"destX"`
	DestZ     int `json:"destZ"`
	ApproachX int `json:"approachX"`
	ApproachZ int `json:"approachZ"`
}

// RouteFailedPayload captures the request that produced no route.
type RouteFailedPayload struct {
	Level    int  `json:"level"`
	SrcX     int  `json:"srcX"`
	SrcZ     int  `json:"srcZ"`
	DestX    int  `json:"destX"`
	DestZ    int  `json:"destZ"`
	MoveNear bool `json:"moveNear"`
}

// RouteComputed publishes a successful route event.
func RouteComputed(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload RouteComputedPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventRouteComputed,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: "routing",
		Payload:  payload,
		Extra:    extra,
	})
}

// RouteAlternative publishes a closest-approach fallback event.
func RouteAlternative(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload RouteAlternativePayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventRouteAlternative,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityWarn,
		Category: "routing",
		Payload:  payload,
		Extra:    extra,
	})
}

// RouteFailed publishes a failed route event.
func RouteFailed(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload RouteFailedPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventRouteFailed,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityWarn,
		Category: "routing",
		Payload:  payload,
		Extra:    extra,
	})
}
