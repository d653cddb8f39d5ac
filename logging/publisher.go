package logging

import (
	"context"
	"time"
)

// EventType provides a namespaced identifier for a route-finder event, e.g.
// "routing.route_computed".
type EventType string

// Severity expresses the importance of an event.
type Severity int

const (
	// SeverityDebug is verbose information for diagnostics.
	SeverityDebug Severity = iota
	// SeverityInfo is routine operational telemetry.
	SeverityInfo
	// SeverityWarn indicates a recoverable anomaly.
	SeverityWarn
	// SeverityError indicates a failure that likely needs attention.
	SeverityError
)

// Category groups events by subsystem for filtering.
type Category string

// Event describes a single occurrence published by the route finder, such as
// a completed or failed FindRoute call.
type Event struct {
	Type     EventType
	Tick     uint64
	Time     time.Time
	Actor    EntityRef
	Severity Severity
	Category Category
	Payload  any
	Extra    map[string]any
}

// EntityKind differentiates the actors a route event can be attributed to.
type EntityKind string

// EntityRef identifies the actor an event concerns, e.g. a benchmark
// scenario name or an in-game entity requesting a route.
type EntityRef struct {
	ID   string
	Kind EntityKind
}

// Publisher emits events without blocking the caller that produced them.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// NopPublisher is a Publisher that drops all events.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, Event) {}
