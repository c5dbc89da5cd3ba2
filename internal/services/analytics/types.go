package analytics

import (
	"time"

	"github.com/wpc/servicesync/internal/common/clock"
	"github.com/wpc/servicesync/internal/metrics"
	"github.com/wpc/servicesync/internal/models"
	sessionRepo "github.com/wpc/servicesync/internal/repositories/session"
)

// Report period labels
const (
	PeriodDaily    = "Daily"
	PeriodWeekly   = "Weekly"
	PeriodMonthly  = "Monthly"
	PeriodHospital = "Hospital-specific"
)

// Config holds configuration for the analytics service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Metrics thresholds; nil selects the defaults
	Metrics *metrics.Config

	// Clock provides the current time
	Clock clock.Clock
}

// GetDailyReportInput contains parameters for a daily report
type GetDailyReportInput struct {
	// Date is any time within the day to report on
	Date time.Time
}

// GetWeeklyReportInput contains parameters for a weekly report
type GetWeeklyReportInput struct {
	// WeekStart is any time within the first day of the week to report on
	WeekStart time.Time
}

// GetMonthlyReportInput contains parameters for a monthly report
type GetMonthlyReportInput struct {
	// MonthStart is any time within the month to report on
	MonthStart time.Time
}

// GetHospitalReportInput contains parameters for a hospital report
type GetHospitalReportInput struct {
	// HospitalID selects the hospital
	HospitalID string

	// From is the start of the reporting window
	From time.Time
}

// DashboardStats is the point-in-time dashboard snapshot
type DashboardStats struct {
	// ActiveSessions is the number of sessions not yet in a terminal state
	ActiveSessions int

	// CompletedSessionsToday is the number of sessions completed since
	// start of day
	CompletedSessionsToday int

	// TotalMealsServedToday is the sum of meals served across today's sessions
	TotalMealsServedToday int

	// AverageCompletionRate is the mean completion rate of today's
	// completed sessions
	AverageCompletionRate float64

	// AverageServingTimeMinutes is the mean serving time of today's
	// completed sessions with a recorded serving interval
	AverageServingTimeMinutes float64

	// SessionsInProgress summarizes deliveries currently underway
	SessionsInProgress []*SessionInProgress

	// SessionsAwaitingNurse summarizes deliveries waiting on a nurse
	SessionsAwaitingNurse []*SessionAwaitingNurse

	// MealTypeBreakdown counts today's sessions per meal type
	MealTypeBreakdown map[string]int

	// WardActivityBreakdown counts today's sessions per ward name
	WardActivityBreakdown map[string]int
}

// SessionInProgress summarizes one delivery currently underway
type SessionInProgress struct {
	ID             string
	SessionID      string
	EmployeeName   string
	WardName       string
	MealType       models.MealType
	MealCount      int
	MealsServed    int
	CompletionRate float64
	CurrentStep    string
	StartTime      *time.Time
	ElapsedMinutes int64
}

// SessionAwaitingNurse summarizes one delivery waiting on a nurse response
type SessionAwaitingNurse struct {
	ID             string
	SessionID      string
	EmployeeName   string
	WardName       string
	MealType       models.MealType
	MealCount      int
	NurseAlertTime *time.Time
	WaitingMinutes int64
}

// PerformanceReport is a time-windowed report over a session population
type PerformanceReport struct {
	// ReportDate is the start boundary of the reporting window
	ReportDate time.Time

	// ReportPeriod labels the window kind
	ReportPeriod string

	// TotalSessions is the number of sessions in range
	TotalSessions int

	// CompletedSessions is the number of those that reached COMPLETED
	CompletedSessions int

	// AverageCompletionRate is the mean completion rate over all sessions
	AverageCompletionRate float64

	// Interval averages in minutes, each over sessions where the interval
	// was recorded

	AverageTravelTimeMinutes        int64
	AverageNurseResponseTimeMinutes int64
	AverageServingTimeMinutes       int64

	// AverageServingRate is the mean serving pace over sessions with one
	AverageServingRate float64

	// EfficiencyRating is the population-level quality label
	EfficiencyRating string

	// TopPerformingSessions are the best sessions by serving rate
	TopPerformingSessions []*SessionSummary

	// ProblematicSessions are the worst sessions by completion rate
	ProblematicSessions []*SessionSummary
}

// SessionSummary is one row in a report's top or problem list
type SessionSummary struct {
	SessionID            string
	EmployeeName         string
	WardName             string
	MealType             models.MealType
	MealCount            int
	CompletionRate       float64
	TotalDurationMinutes int64
	EfficiencyRating     string
	CreatedAt            time.Time
}
