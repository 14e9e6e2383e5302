package ports

import (
	"context"
	"time"
)

// VehicleStatusEvent is a request to move a vehicle to a new status.
// Events for the same vehicle must be processed in order; the queue
// dispatcher shards by VehicleID to guarantee that.
type VehicleStatusEvent struct {
	VehicleID string
	Status    string
	Timestamp time.Time
	// Source names the subsystem that produced the event, e.g. "sale",
	// "repair", "repair_completed".
	Source string
}

// StatusEventService processes vehicle status events.
type StatusEventService interface {
	Process(ctx context.Context, event VehicleStatusEvent) error
}

// StatusEventPublisher is the write side used by sale and repair
// services to emit status events without blocking the request path.
type StatusEventPublisher interface {
	Publish(event VehicleStatusEvent)
}
