package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/wpc/servicesync/internal/common/clock/mocks"
	"github.com/wpc/servicesync/internal/metrics"
	"github.com/wpc/servicesync/internal/models"
	sessionRepo "github.com/wpc/servicesync/internal/repositories/session"
	sessionMocks "github.com/wpc/servicesync/internal/repositories/session/mocks"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockClock       *mocks.MockClock
	service         *service
	ctx             context.Context

	testTime time.Time
}

func (s *AnalyticsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)

	var err error
	s.service, err = New(&Config{
		SessionRepo: s.mockSessionRepo,
		Clock:       s.mockClock,
	})
	s.Require().NoError(err)
}

func (s *AnalyticsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// completedSession builds a COMPLETED session with the given meal tally and
// checkpoint intervals, all measured from the suite's test time
func (s *AnalyticsServiceTestSuite) completedSession(id string, mealCount, mealsServed int, travel, nurseWait, serving time.Duration) *models.Session {
	exit := s.testTime.Add(-2 * time.Hour)
	arrival := exit.Add(travel)
	alert := arrival.Add(2 * time.Minute)
	response := alert.Add(nurseWait)
	start := response.Add(time.Minute)
	complete := start.Add(serving)

	return &models.Session{
		ID:                  id,
		SessionID:           fmt.Sprintf("SS-1234-A1-%s", id),
		EmployeeName:        "Test Porter",
		WardName:            "A1",
		MealType:            models.MealTypeLunch,
		MealCount:           mealCount,
		MealsServed:         mealsServed,
		Status:              models.SessionStatusCompleted,
		KitchenExitTime:     &exit,
		WardArrivalTime:     &arrival,
		NurseAlertTime:      &alert,
		NurseResponseTime:   &response,
		ServiceStartTime:    &start,
		ServiceCompleteTime: &complete,
		CreatedAt:           exit,
	}
}

func (s *AnalyticsServiceTestSuite) TestNew_Validation() {
	svc, err := New(nil)
	s.Nil(svc)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilSessionRepo)

	_, err = New(&Config{SessionRepo: s.mockSessionRepo})
	s.ErrorIs(err, ErrNilClock)
}

func (s *AnalyticsServiceTestSuite) TestBuildPerformanceReport_Empty() {
	report := s.service.BuildPerformanceReport(nil, PeriodDaily, s.testTime, s.testTime)

	s.Equal(PeriodDaily, report.ReportPeriod)
	s.Equal(0, report.TotalSessions)
	s.Equal(0, report.CompletedSessions)
	s.Equal(metrics.RatingNoData, report.EfficiencyRating)
	s.Empty(report.TopPerformingSessions)
	s.NotNil(report.TopPerformingSessions)
	s.Empty(report.ProblematicSessions)
	s.NotNil(report.ProblematicSessions)
}

func (s *AnalyticsServiceTestSuite) TestBuildPerformanceReport_Averages() {
	sessions := []*models.Session{
		// 100% complete, 10m travel, 4m wait, 20 meals in 20m
		s.completedSession("one", 20, 20, 10*time.Minute, 4*time.Minute, 20*time.Minute),
		// 100% complete, 14m travel, 2m wait, 30 meals in 30m
		s.completedSession("two", 30, 30, 14*time.Minute, 2*time.Minute, 30*time.Minute),
	}

	report := s.service.BuildPerformanceReport(sessions, PeriodDaily, s.testTime, s.testTime)

	s.Equal(2, report.TotalSessions)
	s.Equal(2, report.CompletedSessions)
	s.InDelta(100.0, report.AverageCompletionRate, 1e-9)
	s.Equal(int64(12), report.AverageTravelTimeMinutes)
	s.Equal(int64(3), report.AverageNurseResponseTimeMinutes)
	s.Equal(int64(25), report.AverageServingTimeMinutes)
	s.InDelta(1.0, report.AverageServingRate, 1e-9)
}

func (s *AnalyticsServiceTestSuite) TestBuildPerformanceReport_IntervalAveragesSkipUnset() {
	withIntervals := s.completedSession("one", 20, 20, 10*time.Minute, 4*time.Minute, 20*time.Minute)
	bare := &models.Session{
		ID:          "two",
		SessionID:   "SS-1234-A1-two",
		MealCount:   20,
		MealsServed: 20,
		Status:      models.SessionStatusCompleted,
		CreatedAt:   s.testTime.Add(-time.Hour),
	}

	report := s.service.BuildPerformanceReport([]*models.Session{withIntervals, bare}, PeriodDaily, s.testTime, s.testTime)

	// Averages only cover sessions where the interval was recorded
	s.Equal(int64(10), report.AverageTravelTimeMinutes)
	s.Equal(int64(4), report.AverageNurseResponseTimeMinutes)
	s.Equal(int64(20), report.AverageServingTimeMinutes)
}

func (s *AnalyticsServiceTestSuite) TestBuildPerformanceReport_EfficiencyTiers() {
	tests := []struct {
		name        string
		mealsServed int
		serving     time.Duration
		want        string
	}{
		// 100% at 1 meal/min
		{"excellent", 20, 20 * time.Minute, metrics.RatingExcellent},
		// 90% at 0.72 meals/min
		{"good", 18, 25 * time.Minute, metrics.RatingGood},
		// 80% at 0.4 meals/min
		{"acceptable", 16, 40 * time.Minute, metrics.RatingAcceptable},
		// 50% at 0.1 meals/min
		{"below average", 10, 100 * time.Minute, metrics.RatingBelowAverage},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			sess := s.completedSession("sess", 20, tt.mealsServed, 10*time.Minute, 2*time.Minute, tt.serving)
			report := s.service.BuildPerformanceReport([]*models.Session{sess}, PeriodDaily, s.testTime, s.testTime)
			s.Equal(tt.want, report.EfficiencyRating)
		})
	}
}

func (s *AnalyticsServiceTestSuite) TestBuildPerformanceReport_TopPerformers() {
	sessions := make([]*models.Session, 0, 8)
	// Seven qualifying sessions at distinct paces, fastest is "top-6"
	for i := 0; i < 7; i++ {
		serving := time.Duration(20-i) * time.Minute
		sessions = append(sessions, s.completedSession(fmt.Sprintf("top-%d", i), 20, 20, 5*time.Minute, time.Minute, serving))
	}
	// One session below the completion cutoff
	sessions = append(sessions, s.completedSession("slow", 20, 18, 5*time.Minute, time.Minute, 20*time.Minute))

	report := s.service.BuildPerformanceReport(sessions, PeriodWeekly, s.testTime, s.testTime)

	s.Require().Len(report.TopPerformingSessions, 5)
	s.Equal("SS-1234-A1-top-6", report.TopPerformingSessions[0].SessionID)
	s.Equal("SS-1234-A1-top-5", report.TopPerformingSessions[1].SessionID)
	for _, summary := range report.TopPerformingSessions {
		s.NotEqual("SS-1234-A1-slow", summary.SessionID)
	}
}

func (s *AnalyticsServiceTestSuite) TestBuildPerformanceReport_Problematic() {
	healthy := s.completedSession("healthy", 20, 20, 10*time.Minute, 2*time.Minute, 20*time.Minute)
	// Under-delivered badly
	low := s.completedSession("low", 20, 5, 10*time.Minute, 2*time.Minute, 20*time.Minute)
	// Full delivery but travel blew the threshold
	slowTravel := s.completedSession("slow-travel", 20, 20, 16*time.Minute, 2*time.Minute, 20*time.Minute)
	// Full delivery but the nurse took too long
	slowNurse := s.completedSession("slow-nurse", 20, 20, 10*time.Minute, 6*time.Minute, 20*time.Minute)

	report := s.service.BuildPerformanceReport(
		[]*models.Session{healthy, slowTravel, low, slowNurse},
		PeriodDaily, s.testTime, s.testTime,
	)

	s.Require().Len(report.ProblematicSessions, 3)
	// Worst completion rate first
	s.Equal("SS-1234-A1-low", report.ProblematicSessions[0].SessionID)
	for _, summary := range report.ProblematicSessions {
		s.NotEqual("SS-1234-A1-healthy", summary.SessionID)
	}
}

func (s *AnalyticsServiceTestSuite) TestBuildDashboardStats() {
	exit := s.testTime.Add(-30 * time.Minute)
	alert := s.testTime.Add(-10 * time.Minute)

	inTransit := &models.Session{
		ID:              "in-transit",
		SessionID:       "SS-1234-A1-in-transit",
		WardName:        "A1",
		MealType:        models.MealTypeLunch,
		MealCount:       20,
		MealsServed:     0,
		Status:          models.SessionStatusInTransit,
		KitchenExitTime: &exit,
		CreatedAt:       exit,
	}

	awaiting := &models.Session{
		ID:             "awaiting",
		SessionID:      "SS-5678-B2-awaiting",
		WardName:       "B2",
		MealType:       models.MealTypeLunch,
		MealCount:      15,
		Status:         models.SessionStatusInTransit,
		NurseAlertTime: &alert,
		CreatedAt:      exit,
	}

	completed := s.completedSession("done", 20, 20, 10*time.Minute, 2*time.Minute, 20*time.Minute)

	stats := s.service.BuildDashboardStats(
		[]*models.Session{inTransit, awaiting},
		[]*models.Session{inTransit},
		[]*models.Session{awaiting},
		[]*models.Session{inTransit, awaiting, completed},
		s.testTime,
	)

	s.Equal(2, stats.ActiveSessions)
	s.Equal(1, stats.CompletedSessionsToday)
	s.Equal(20, stats.TotalMealsServedToday)
	s.InDelta(100.0, stats.AverageCompletionRate, 1e-9)
	s.InDelta(20.0, stats.AverageServingTimeMinutes, 1e-9)

	s.Require().Len(stats.SessionsInProgress, 1)
	s.Equal("SS-1234-A1-in-transit", stats.SessionsInProgress[0].SessionID)
	s.Equal(int64(30), stats.SessionsInProgress[0].ElapsedMinutes)
	s.Equal(metrics.StepInTransit, stats.SessionsInProgress[0].CurrentStep)

	s.Require().Len(stats.SessionsAwaitingNurse, 1)
	s.Equal(int64(10), stats.SessionsAwaitingNurse[0].WaitingMinutes)

	s.Equal(3, stats.MealTypeBreakdown[string(models.MealTypeLunch)])
	s.Equal(2, stats.WardActivityBreakdown["A1"])
	s.Equal(1, stats.WardActivityBreakdown["B2"])
}

func (s *AnalyticsServiceTestSuite) TestGetDashboardStats() {
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockSessionRepo.EXPECT().ListActiveSessions(s.ctx).Return([]*models.Session{}, nil)
	s.mockSessionRepo.EXPECT().ListSessionsInProgress(s.ctx).Return([]*models.Session{}, nil)
	s.mockSessionRepo.EXPECT().ListSessionsAwaitingNurse(s.ctx).Return([]*models.Session{}, nil)
	s.mockSessionRepo.EXPECT().
		ListSessionsSince(s.ctx, &sessionRepo.ListSessionsSinceInput{
			Since: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		}).
		Return([]*models.Session{}, nil)

	stats, err := s.service.GetDashboardStats(s.ctx)

	s.NoError(err)
	s.Require().NotNil(stats)
	s.Equal(0, stats.ActiveSessions)
}

func (s *AnalyticsServiceTestSuite) TestGetDailyReport() {
	dayStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	completed := s.completedSession("done", 20, 20, 10*time.Minute, 2*time.Minute, 20*time.Minute)

	s.mockSessionRepo.EXPECT().
		ListCompletedSessionsBetween(s.ctx, &sessionRepo.ListCompletedSessionsBetweenInput{
			Start: dayStart,
			End:   dayStart.AddDate(0, 0, 1),
		}).
		Return([]*models.Session{completed}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	report, err := s.service.GetDailyReport(s.ctx, &GetDailyReportInput{
		Date: s.testTime,
	})

	s.NoError(err)
	s.Equal(PeriodDaily, report.ReportPeriod)
	s.Equal(dayStart, report.ReportDate)
	s.Equal(1, report.TotalSessions)
}

func (s *AnalyticsServiceTestSuite) TestGetMonthlyReport_SnapsToMonthStart() {
	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	s.mockSessionRepo.EXPECT().
		ListCompletedSessionsBetween(s.ctx, &sessionRepo.ListCompletedSessionsBetweenInput{
			Start: monthStart,
			End:   monthStart.AddDate(0, 1, 0),
		}).
		Return([]*models.Session{}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	report, err := s.service.GetMonthlyReport(s.ctx, &GetMonthlyReportInput{
		MonthStart: time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC),
	})

	s.NoError(err)
	s.Equal(PeriodMonthly, report.ReportPeriod)
	s.Equal(monthStart, report.ReportDate)
}

func (s *AnalyticsServiceTestSuite) TestGetHospitalReport() {
	from := s.testTime.AddDate(0, 0, -7)
	active := &models.Session{
		ID:         "open",
		SessionID:  "SS-1234-A1-open",
		MealCount:  20,
		Status:     models.SessionStatusActive,
		HospitalID: "hospital-1",
		CreatedAt:  s.testTime.Add(-time.Hour),
	}

	s.mockSessionRepo.EXPECT().
		ListSessionsByHospitalSince(s.ctx, &sessionRepo.ListSessionsByHospitalSinceInput{
			HospitalID: "hospital-1",
			Since:      from,
		}).
		Return([]*models.Session{active}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	report, err := s.service.GetHospitalReport(s.ctx, &GetHospitalReportInput{
		HospitalID: "hospital-1",
		From:       from,
	})

	s.NoError(err)
	s.Equal(PeriodHospital, report.ReportPeriod)
	// Open sessions count toward the population but not the completed tally
	s.Equal(1, report.TotalSessions)
	s.Equal(0, report.CompletedSessions)
}

func (s *AnalyticsServiceTestSuite) TestNilInputs() {
	_, err := s.service.GetDailyReport(s.ctx, nil)
	s.Error(err)

	_, err = s.service.GetWeeklyReport(s.ctx, nil)
	s.Error(err)

	_, err = s.service.GetMonthlyReport(s.ctx, nil)
	s.Error(err)

	_, err = s.service.GetHospitalReport(s.ctx, nil)
	s.Error(err)
}

func TestAnalyticsServiceSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
