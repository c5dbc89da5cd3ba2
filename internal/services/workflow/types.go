package workflow

import (
	"time"

	"github.com/wpc/servicesync/internal/common/clock"
	"github.com/wpc/servicesync/internal/common/uuid"
	"github.com/wpc/servicesync/internal/models"
	directoryRepo "github.com/wpc/servicesync/internal/repositories/directory"
	sessionRepo "github.com/wpc/servicesync/internal/repositories/session"
	"github.com/wpc/servicesync/internal/services/notifier"
)

// Config holds configuration for the workflow service
type Config struct {
	// Repository dependencies
	SessionRepo   sessionRepo.Repository
	DirectoryRepo directoryRepo.Repository

	// Service dependencies
	Notifier      notifier.Dispatcher
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateSessionInput contains parameters for starting a delivery session
type CreateSessionInput struct {
	// EmployeeID is the employee running the delivery
	EmployeeID string

	// WardID is the target ward
	WardID string

	// MealType is the kind of meal being delivered
	MealType models.MealType

	// MealCount is the number of meals requested, 1 to 100
	MealCount int

	// Comments holds optional free-text notes
	Comments string
}

// ScanCheckpointInput contains parameters for a QR checkpoint scan
type ScanCheckpointInput struct {
	// SessionID is the external session identifier
	SessionID string

	// QRContent is the raw content of the scanned QR code
	QRContent string

	// Checkpoint is the checkpoint the scan claims to be at
	Checkpoint models.CheckpointType
}

// AlertNurseInput contains parameters for alerting the nurse
type AlertNurseInput struct {
	// SessionID is the external session identifier
	SessionID string
}

// RecordNurseResponseInput contains parameters for recording a nurse response
type RecordNurseResponseInput struct {
	// SessionID is the external session identifier
	SessionID string

	// NurseName is the responding nurse's name
	NurseName string
}

// UpdateSessionInput contains a partial session update. Only non-nil
// fields are applied.
type UpdateSessionInput struct {
	// SessionID is the external session identifier
	SessionID string

	MealsServed         *int
	Comments            *string
	NurseName           *string
	DietSheetDocumented *bool
	DietSheetNotes      *string
	DietSheetPhotoPath  *string
}

// CompleteSessionInput contains parameters for completing a session
type CompleteSessionInput struct {
	// SessionID is the external session identifier
	SessionID string
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	// SessionID is the external session identifier
	SessionID string
}

// ListActiveSessionsByEmployeeInput contains parameters for listing an
// employee's open sessions
type ListActiveSessionsByEmployeeInput struct {
	// EmployeeID is the employee to list sessions for
	EmployeeID string
}

// SweepStaleSessionsInput contains parameters for the stale-session sweep
type SweepStaleSessionsInput struct {
	// Cutoff is the creation time before which an ACTIVE session is stale
	Cutoff time.Time
}

// SweepStaleSessionsOutput contains the result of a stale-session sweep
type SweepStaleSessionsOutput struct {
	// CancelledCount is the number of sessions the sweep cancelled
	CancelledCount int
}
