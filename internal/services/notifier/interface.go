package notifier

//go:generate mockgen -package=mocks -destination=mocks/mock_dispatcher.go github.com/wpc/servicesync/internal/services/notifier Dispatcher

import "context"

// Dispatcher pushes workflow events to subscribers. Callers treat delivery
// as fire-and-forget; a failed publish is logged, never propagated.
type Dispatcher interface {
	// Publish sends an event to all connected subscribers
	Publish(ctx context.Context, event *Event) error
}
