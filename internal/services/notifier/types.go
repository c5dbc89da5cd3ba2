package notifier

import (
	"time"

	"github.com/wpc/servicesync/internal/models"
)

// EventType identifies which workflow transition produced an event
type EventType string

const (
	// EventKitchenExit is published when a session leaves the kitchen
	EventKitchenExit EventType = "kitchen_exit"

	// EventNurseAlert is published when a nurse is alerted
	EventNurseAlert EventType = "nurse_alert"

	// EventNurseResponse is published when a nurse responds
	EventNurseResponse EventType = "nurse_response"

	// EventSessionCompleted is published when a session completes
	EventSessionCompleted EventType = "session_completed"
)

// Event is the payload pushed to subscribers after a workflow transition
type Event struct {
	Type      EventType            `json:"type"`
	SessionID string               `json:"sessionId"`
	Status    models.SessionStatus `json:"status"`
	WardName  string               `json:"wardName,omitempty"`
	NurseName string               `json:"nurseName,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
}

// Config holds configuration for the websocket hub
type Config struct {
	// SendBufferSize is the per-client outbound queue length. Clients that
	// fall this far behind are disconnected.
	SendBufferSize int
}
