package models

import (
	"time"
)

// SessionStatus represents the current state of a delivery session
type SessionStatus string

const (
	// SessionStatusActive indicates a session that has been created but not left the kitchen
	SessionStatusActive SessionStatus = "ACTIVE"

	// SessionStatusInTransit indicates meals are on their way to the ward
	SessionStatusInTransit SessionStatus = "IN_TRANSIT"

	// SessionStatusCompleted indicates the meal service finished
	SessionStatusCompleted SessionStatus = "COMPLETED"

	// SessionStatusCancelled indicates the session was abandoned or auto-cancelled
	SessionStatusCancelled SessionStatus = "CANCELLED"
)

// DisplayName returns the human-readable name of the status
func (s SessionStatus) DisplayName() string {
	switch s {
	case SessionStatusActive:
		return "Active"
	case SessionStatusInTransit:
		return "In Transit"
	case SessionStatusCompleted:
		return "Completed"
	case SessionStatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// IsTerminal reports whether the status is a terminal state
func (s SessionStatus) IsTerminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusCancelled
}

const (
	// MinMealCount is the smallest meal count a session may carry
	MinMealCount = 1

	// MaxMealCount is the largest meal count a session may carry
	MaxMealCount = 100
)

// Session represents one meal-delivery run from the kitchen to a ward
type Session struct {
	// ID is the internal unique identifier for the session
	ID string

	// SessionID is the externally visible, human-traceable identifier
	SessionID string

	// EmployeeID references the employee running the delivery
	EmployeeID string

	// EmployeeName is the employee's display name, captured at creation
	EmployeeName string

	// EmployeeBadge is the employee's badge number, captured at creation
	EmployeeBadge string

	// WardID references the target ward
	WardID string

	// WardName is the ward's display name, captured at creation
	WardName string

	// HospitalID references the hospital the ward belongs to
	HospitalID string

	// HospitalName is the hospital's display name, captured at creation
	HospitalName string

	// MealType is the kind of meal being delivered
	MealType MealType

	// MealCount is the number of meals requested for this run
	MealCount int

	// MealsServed is the number of meals served so far
	MealsServed int

	// Status is the current workflow state
	Status SessionStatus

	// Checkpoint timestamps, nil until the checkpoint is reached

	KitchenExitTime     *time.Time
	WardArrivalTime     *time.Time
	NurseAlertTime      *time.Time
	NurseResponseTime   *time.Time
	ServiceStartTime    *time.Time
	ServiceCompleteTime *time.Time

	// Comments holds free-text notes on the session
	Comments string

	// NurseName is the responding nurse, recorded at nurse-response time
	NurseName string

	// DietSheetPhotoPath is an optional reference to an uploaded diet sheet photo
	DietSheetPhotoPath string

	// DietSheetNotes holds optional diet sheet documentation notes
	DietSheetNotes string

	// DietSheetDocumented indicates the diet sheet has been documented
	DietSheetDocumented bool

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last modified
	UpdatedAt time.Time
}

// TravelTime returns the kitchen-to-ward duration, or zero if either end is unset
func (s *Session) TravelTime() time.Duration {
	return between(s.KitchenExitTime, s.WardArrivalTime)
}

// NurseWait returns the alert-to-response duration, or zero if either end is unset
func (s *Session) NurseWait() time.Duration {
	return between(s.NurseAlertTime, s.NurseResponseTime)
}

// ServingTime returns the service duration, or zero if either end is unset
func (s *Session) ServingTime() time.Duration {
	return between(s.ServiceStartTime, s.ServiceCompleteTime)
}

// ElapsedTime returns the total duration since leaving the kitchen. For a
// session still underway it measures up to now; zero if the kitchen exit
// was never recorded.
func (s *Session) ElapsedTime(now time.Time) time.Duration {
	if s.KitchenExitTime == nil {
		return 0
	}
	if s.ServiceCompleteTime != nil {
		return between(s.KitchenExitTime, s.ServiceCompleteTime)
	}
	return between(s.KitchenExitTime, &now)
}

// IsCompleted reports whether the session reached COMPLETED
func (s *Session) IsCompleted() bool {
	return s.Status == SessionStatusCompleted
}

// IsClosed reports whether the session is in a terminal state
func (s *Session) IsClosed() bool {
	return s.Status.IsTerminal()
}

// between returns the duration from a to b. Out-of-order timestamps are a
// data-quality issue, not a workflow error; the interval clamps to zero so
// derived metrics never go negative.
func between(a, b *time.Time) time.Duration {
	if a == nil || b == nil {
		return 0
	}
	d := b.Sub(*a)
	if d < 0 {
		return 0
	}
	return d
}
