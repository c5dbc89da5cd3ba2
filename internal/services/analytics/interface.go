package analytics

import (
	"context"
	"time"

	"github.com/wpc/servicesync/internal/models"
)

// Service defines the interface for aggregate session analytics
type Service interface {
	// GetDashboardStats builds the point-in-time dashboard snapshot
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)

	// GetDailyReport builds the performance report for one day
	GetDailyReport(ctx context.Context, input *GetDailyReportInput) (*PerformanceReport, error)

	// GetWeeklyReport builds the performance report for one week
	GetWeeklyReport(ctx context.Context, input *GetWeeklyReportInput) (*PerformanceReport, error)

	// GetMonthlyReport builds the performance report for one month
	GetMonthlyReport(ctx context.Context, input *GetMonthlyReportInput) (*PerformanceReport, error)

	// GetHospitalReport builds the performance report for one hospital
	GetHospitalReport(ctx context.Context, input *GetHospitalReportInput) (*PerformanceReport, error)

	// BuildDashboardStats folds pre-selected session populations into a
	// dashboard snapshot. Pure; no store access.
	BuildDashboardStats(active, inProgress, awaitingNurse, createdToday []*models.Session, now time.Time) *DashboardStats

	// BuildPerformanceReport folds a session population into a performance
	// report. Pure; no store access.
	BuildPerformanceReport(sessions []*models.Session, period string, reportDate, now time.Time) *PerformanceReport
}
