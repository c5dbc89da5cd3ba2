package session

import (
	"time"

	"github.com/wpc/servicesync/internal/models"
)

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	ID string
}

type GetSessionByExternalIDInput struct {
	SessionID string
}

type DeleteSessionInput struct {
	ID string
}

type ListActiveSessionsByEmployeeInput struct {
	EmployeeID string
}

type ListActiveSessionsByWardInput struct {
	WardID string
}

type ListSessionsSinceInput struct {
	Since time.Time
}

type ListSessionsByHospitalSinceInput struct {
	HospitalID string
	Since      time.Time
}

type ListCompletedSessionsBetweenInput struct {
	Start time.Time
	End   time.Time
}

type CountCompletedSessionsSinceInput struct {
	Since time.Time
}

type ListStaleActiveSessionsInput struct {
	Cutoff time.Time
}
