// Package metrics derives performance figures from a session's checkpoint
// timestamps. All derivations are pure; nothing here is ever persisted.
package metrics

import (
	"fmt"
	"time"

	"github.com/wpc/servicesync/internal/models"
)

// Efficiency ratings, from a session's completion and serving rates
const (
	RatingExcellent    = "Excellent"
	RatingGood         = "Good"
	RatingAcceptable   = "Acceptable"
	RatingBelowAverage = "Below Average"

	// RatingNoData is used at population level when no sessions are in range
	RatingNoData = "No Data"
)

// Workflow step labels reported as a session's current step
const (
	StepKitchenExit       = "Kitchen Exit"
	StepWardArrival       = "Ward Arrival"
	StepDietSheet         = "Diet Sheet Documentation"
	StepNurseAlert        = "Nurse Alert"
	StepAwaitingNurse     = "Awaiting Nurse Response"
	StepNurseStation      = "Nurse Station"
	StepServiceInProgress = "Service in Progress"
	StepServiceComplete   = "Service Complete"
	StepServiceCancelled  = "Service Cancelled"
	StepInTransit         = "In Transit"
)

// Config holds the business thresholds used for warnings and pacing.
// Values are injected so deployments can tune alert limits without a rebuild.
type Config struct {
	// TravelTimeWarning is the longest acceptable kitchen-to-ward trip
	TravelTimeWarning time.Duration

	// NurseResponseWarning is the longest acceptable nurse response wait
	NurseResponseWarning time.Duration

	// CompletionRateWarning is the completion percentage below which a
	// session is flagged
	CompletionRateWarning float64

	// ServingRateTarget is the meals-per-minute pace considered on schedule
	ServingRateTarget float64
}

// DefaultConfig returns the standard thresholds
func DefaultConfig() *Config {
	return &Config{
		TravelTimeWarning:     15 * time.Minute,
		NurseResponseWarning:  5 * time.Minute,
		CompletionRateWarning: 75.0,
		ServingRateTarget:     0.6,
	}
}

// Metrics is the full set of derived figures for one session
type Metrics struct {
	// TravelTime is the kitchen-to-ward duration
	TravelTime time.Duration

	// NurseResponseTime is the alert-to-response duration
	NurseResponseTime time.Duration

	// ServingTime is the service-start-to-complete duration
	ServingTime time.Duration

	// ElapsedTime is the total duration since leaving the kitchen
	ElapsedTime time.Duration

	// CompletionRate is meals served over meals requested, as a percentage
	CompletionRate float64

	// ServingRate is the serving pace in meals per minute
	ServingRate float64

	// OnSchedule indicates the serving rate meets the configured target
	OnSchedule bool

	// EfficiencyRating is the coarse quality label for the session
	EfficiencyRating string

	// CurrentStep is the next checkpoint, or a status label for sessions
	// past the checkpoint sequence
	CurrentStep string

	// HasWarnings indicates at least one threshold was exceeded
	HasWarnings bool

	// Summary is a one-line human-readable description of the session
	Summary string
}

// Engine computes session metrics against a set of thresholds
type Engine struct {
	config *Config
}

// NewEngine creates a metrics engine. A nil config selects the defaults.
func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Engine{config: cfg}
}

// Compute derives the full metrics set for a session at the given time.
// It never modifies the session.
func (e *Engine) Compute(session *models.Session, now time.Time) *Metrics {
	travel := session.TravelTime()
	nurseWait := session.NurseWait()
	serving := session.ServingTime()
	elapsed := session.ElapsedTime(now)

	completionRate := CompletionRate(session)
	servingRate := ServingRate(session)

	return &Metrics{
		TravelTime:        travel,
		NurseResponseTime: nurseWait,
		ServingTime:       serving,
		ElapsedTime:       elapsed,
		CompletionRate:    completionRate,
		ServingRate:       servingRate,
		OnSchedule:        servingRate >= e.config.ServingRateTarget,
		EfficiencyRating:  EfficiencyRating(completionRate, servingRate),
		CurrentStep:       CurrentStep(session),
		HasWarnings: travel > e.config.TravelTimeWarning ||
			nurseWait > e.config.NurseResponseWarning ||
			completionRate < e.config.CompletionRateWarning,
		Summary: Summary(session, elapsed, completionRate),
	}
}

// CompletionRate returns meals served over meals requested as a percentage,
// or zero when the meal count is unset
func CompletionRate(session *models.Session) float64 {
	if session.MealCount == 0 {
		return 0
	}
	return float64(session.MealsServed) / float64(session.MealCount) * 100.0
}

// ServingRate returns the serving pace in meals per minute, or zero when
// no serving interval or no meals are recorded
func ServingRate(session *models.Session) float64 {
	serving := session.ServingTime()
	if serving == 0 || session.MealsServed == 0 {
		return 0
	}
	return float64(session.MealsServed) / serving.Minutes()
}

// EfficiencyRating buckets the completion rate into quartiles, each gated
// by a serving-rate cutoff
func EfficiencyRating(completionRate, servingRate float64) string {
	switch {
	case completionRate >= 75.0:
		if servingRate >= 0.8 {
			return RatingExcellent
		}
		return RatingGood
	case completionRate >= 50.0:
		if servingRate >= 0.6 {
			return RatingGood
		}
		return RatingAcceptable
	case completionRate >= 25.0:
		if servingRate >= 0.4 {
			return RatingAcceptable
		}
		return RatingBelowAverage
	default:
		return RatingBelowAverage
	}
}

// CurrentStep returns the first unmet checkpoint for an active session,
// or a status label once the session is past the checkpoint sequence
func CurrentStep(session *models.Session) string {
	switch session.Status {
	case models.SessionStatusActive:
		switch {
		case session.KitchenExitTime == nil:
			return StepKitchenExit
		case session.WardArrivalTime == nil:
			return StepWardArrival
		case !session.DietSheetDocumented:
			return StepDietSheet
		case session.NurseAlertTime == nil:
			return StepNurseAlert
		case session.NurseResponseTime == nil:
			return StepAwaitingNurse
		case session.ServiceStartTime == nil:
			return StepNurseStation
		default:
			return StepServiceInProgress
		}
	case models.SessionStatusCompleted:
		return StepServiceComplete
	case models.SessionStatusCancelled:
		return StepServiceCancelled
	case models.SessionStatusInTransit:
		return StepInTransit
	default:
		return string(session.Status)
	}
}

// Summary renders the one-line session description shown on dashboards
func Summary(session *models.Session, elapsed time.Duration, completionRate float64) string {
	docStatus := "✗"
	if session.DietSheetDocumented {
		docStatus = "✓"
	}

	return fmt.Sprintf("Ward %s • %d/%d %s meals • %.1f%% complete • Duration: %s • Doc: %s",
		session.WardName,
		session.MealsServed,
		session.MealCount,
		session.MealType.DisplayName(),
		completionRate,
		FormatDuration(elapsed),
		docStatus,
	)
}

// FormatDuration renders a duration as 1h 2m 3s, dropping leading zero units
func FormatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
