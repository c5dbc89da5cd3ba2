package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/wpc/servicesync/internal/repositories/session Repository

import (
	"context"

	"github.com/wpc/servicesync/internal/models"
)

// Repository defines the interface for session data persistence
type Repository interface {
	// SaveSession persists a session and refreshes its indexes
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by internal ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetSessionByExternalID retrieves a session by its external session identifier
	GetSessionByExternalID(ctx context.Context, input *GetSessionByExternalIDInput) (*models.Session, error)

	// DeleteSession removes a session and its index entries
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// ListActiveSessions retrieves all sessions that have not reached a terminal state
	ListActiveSessions(ctx context.Context) ([]*models.Session, error)

	// ListActiveSessionsByEmployee retrieves an employee's non-terminal sessions
	ListActiveSessionsByEmployee(ctx context.Context, input *ListActiveSessionsByEmployeeInput) ([]*models.Session, error)

	// ListActiveSessionsByWard retrieves a ward's non-terminal sessions
	ListActiveSessionsByWard(ctx context.Context, input *ListActiveSessionsByWardInput) ([]*models.Session, error)

	// ListSessionsInProgress retrieves non-terminal sessions that have left the kitchen
	ListSessionsInProgress(ctx context.Context) ([]*models.Session, error)

	// ListSessionsAwaitingNurse retrieves non-terminal sessions with an
	// unanswered nurse alert
	ListSessionsAwaitingNurse(ctx context.Context) ([]*models.Session, error)

	// ListSessionsSince retrieves all sessions created at or after the given time
	ListSessionsSince(ctx context.Context, input *ListSessionsSinceInput) ([]*models.Session, error)

	// ListSessionsByHospitalSince retrieves a hospital's sessions created at
	// or after the given time
	ListSessionsByHospitalSince(ctx context.Context, input *ListSessionsByHospitalSinceInput) ([]*models.Session, error)

	// ListCompletedSessionsBetween retrieves completed sessions created within a range
	ListCompletedSessionsBetween(ctx context.Context, input *ListCompletedSessionsBetweenInput) ([]*models.Session, error)

	// CountCompletedSessionsSince counts completed sessions created at or
	// after the given time
	CountCompletedSessionsSince(ctx context.Context, input *CountCompletedSessionsSinceInput) (int64, error)

	// ListStaleActiveSessions retrieves ACTIVE sessions created before the cutoff
	ListStaleActiveSessions(ctx context.Context, input *ListStaleActiveSessionsInput) ([]*models.Session, error)
}
