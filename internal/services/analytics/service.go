package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/wpc/servicesync/internal/metrics"
	"github.com/wpc/servicesync/internal/models"
	sessionRepo "github.com/wpc/servicesync/internal/repositories/session"
)

// Define errors
var (
	ErrNilConfig      = errors.New("config cannot be nil")
	ErrNilSessionRepo = errors.New("session repository cannot be nil")
	ErrNilClock       = errors.New("clock cannot be nil")
)

// service implements the Service interface
type service struct {
	config        *Config
	thresholds    *metrics.Config
	metricsEngine *metrics.Engine
}

// New creates a new analytics service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	thresholds := cfg.Metrics
	if thresholds == nil {
		thresholds = metrics.DefaultConfig()
	}

	return &service{
		config:        cfg,
		thresholds:    thresholds,
		metricsEngine: metrics.NewEngine(thresholds),
	}, nil
}

// GetDashboardStats builds the point-in-time dashboard snapshot
func (s *service) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	now := s.config.Clock.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	active, err := s.config.SessionRepo.ListActiveSessions(ctx)
	if err != nil {
		return nil, err
	}

	inProgress, err := s.config.SessionRepo.ListSessionsInProgress(ctx)
	if err != nil {
		return nil, err
	}

	awaitingNurse, err := s.config.SessionRepo.ListSessionsAwaitingNurse(ctx)
	if err != nil {
		return nil, err
	}

	createdToday, err := s.config.SessionRepo.ListSessionsSince(ctx, &sessionRepo.ListSessionsSinceInput{
		Since: startOfDay,
	})
	if err != nil {
		return nil, err
	}

	return s.BuildDashboardStats(active, inProgress, awaitingNurse, createdToday, now), nil
}

// GetDailyReport builds the performance report for one day
func (s *service) GetDailyReport(ctx context.Context, input *GetDailyReportInput) (*PerformanceReport, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	start := startOfDay(input.Date)
	return s.reportForRange(ctx, start, start.AddDate(0, 0, 1), PeriodDaily)
}

// GetWeeklyReport builds the performance report for one week
func (s *service) GetWeeklyReport(ctx context.Context, input *GetWeeklyReportInput) (*PerformanceReport, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	start := startOfDay(input.WeekStart)
	return s.reportForRange(ctx, start, start.AddDate(0, 0, 7), PeriodWeekly)
}

// GetMonthlyReport builds the performance report for one month
func (s *service) GetMonthlyReport(ctx context.Context, input *GetMonthlyReportInput) (*PerformanceReport, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	t := input.MonthStart
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return s.reportForRange(ctx, start, start.AddDate(0, 1, 0), PeriodMonthly)
}

// GetHospitalReport builds the performance report for one hospital. The
// population is every session the hospital ran in the window, completed
// or not.
func (s *service) GetHospitalReport(ctx context.Context, input *GetHospitalReportInput) (*PerformanceReport, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	sessions, err := s.config.SessionRepo.ListSessionsByHospitalSince(ctx, &sessionRepo.ListSessionsByHospitalSinceInput{
		HospitalID: input.HospitalID,
		Since:      input.From,
	})
	if err != nil {
		return nil, err
	}

	return s.BuildPerformanceReport(sessions, PeriodHospital, input.From, s.config.Clock.Now()), nil
}

// reportForRange builds a report over completed sessions created in the range
func (s *service) reportForRange(ctx context.Context, start, end time.Time, period string) (*PerformanceReport, error) {
	sessions, err := s.config.SessionRepo.ListCompletedSessionsBetween(ctx, &sessionRepo.ListCompletedSessionsBetweenInput{
		Start: start,
		End:   end,
	})
	if err != nil {
		return nil, err
	}

	return s.BuildPerformanceReport(sessions, period, start, s.config.Clock.Now()), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func elapsedMinutes(from *time.Time, now time.Time) int64 {
	if from == nil {
		return 0
	}
	d := now.Sub(*from)
	if d < 0 {
		return 0
	}
	return int64(d.Minutes())
}

func (s *service) summarize(sess *models.Session, now time.Time) *SessionSummary {
	completionRate := metrics.CompletionRate(sess)

	return &SessionSummary{
		SessionID:            sess.SessionID,
		EmployeeName:         sess.EmployeeName,
		WardName:             sess.WardName,
		MealType:             sess.MealType,
		MealCount:            sess.MealCount,
		CompletionRate:       completionRate,
		TotalDurationMinutes: int64(sess.ElapsedTime(now).Minutes()),
		EfficiencyRating:     metrics.EfficiencyRating(completionRate, metrics.ServingRate(sess)),
		CreatedAt:            sess.CreatedAt,
	}
}
