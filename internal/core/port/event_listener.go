package port

import "context"

// EventListenerPort is an incoming adapter that consumes events from a broker
// until its context is cancelled.
type EventListenerPort interface {
	Start(ctx context.Context) error
	Close() error
}
