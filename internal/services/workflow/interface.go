package workflow

import (
	"context"

	"github.com/wpc/servicesync/internal/models"
)

// Service defines the interface for session workflow operations
type Service interface {
	// CreateSession starts a new delivery session for an employee and ward
	CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error)

	// ScanCheckpoint validates a QR scan and stamps the matching checkpoint
	ScanCheckpoint(ctx context.Context, input *ScanCheckpointInput) (*models.Session, error)

	// AlertNurse records that the nurse was alerted
	AlertNurse(ctx context.Context, input *AlertNurseInput) (*models.Session, error)

	// RecordNurseResponse records the responding nurse
	RecordNurseResponse(ctx context.Context, input *RecordNurseResponseInput) (*models.Session, error)

	// UpdateSession applies a partial update to a session
	UpdateSession(ctx context.Context, input *UpdateSessionInput) (*models.Session, error)

	// CompleteSession finishes a session's meal service
	CompleteSession(ctx context.Context, input *CompleteSessionInput) (*models.Session, error)

	// GetSession retrieves a session by its external identifier
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// ListActiveSessionsByEmployee retrieves an employee's open sessions
	ListActiveSessionsByEmployee(ctx context.Context, input *ListActiveSessionsByEmployeeInput) ([]*models.Session, error)

	// SweepStaleSessions cancels ACTIVE sessions created before the cutoff
	SweepStaleSessions(ctx context.Context, input *SweepStaleSessionsInput) (*SweepStaleSessionsOutput, error)
}
