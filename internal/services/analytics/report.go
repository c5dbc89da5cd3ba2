package analytics

import (
	"sort"
	"time"

	"github.com/wpc/servicesync/internal/metrics"
	"github.com/wpc/servicesync/internal/models"
)

const rankedListLimit = 5

// Population-level cutoffs for the overall efficiency rating
const (
	populationExcellentCompletion  = 95.0
	populationGoodCompletion       = 85.0
	populationAcceptableCompletion = 75.0
)

// Per-session cutoffs for the top-performer list
const (
	topPerformerCompletion  = 95.0
	topPerformerServingRate = 0.8
)

// BuildDashboardStats folds pre-selected session populations into a
// dashboard snapshot
func (s *service) BuildDashboardStats(active, inProgress, awaitingNurse, createdToday []*models.Session, now time.Time) *DashboardStats {
	inProgressRows := make([]*SessionInProgress, 0, len(inProgress))
	for _, sess := range inProgress {
		inProgressRows = append(inProgressRows, &SessionInProgress{
			ID:             sess.ID,
			SessionID:      sess.SessionID,
			EmployeeName:   sess.EmployeeName,
			WardName:       sess.WardName,
			MealType:       sess.MealType,
			MealCount:      sess.MealCount,
			MealsServed:    sess.MealsServed,
			CompletionRate: metrics.CompletionRate(sess),
			CurrentStep:    metrics.CurrentStep(sess),
			StartTime:      sess.KitchenExitTime,
			ElapsedMinutes: elapsedMinutes(sess.KitchenExitTime, now),
		})
	}

	awaitingRows := make([]*SessionAwaitingNurse, 0, len(awaitingNurse))
	for _, sess := range awaitingNurse {
		awaitingRows = append(awaitingRows, &SessionAwaitingNurse{
			ID:             sess.ID,
			SessionID:      sess.SessionID,
			EmployeeName:   sess.EmployeeName,
			WardName:       sess.WardName,
			MealType:       sess.MealType,
			MealCount:      sess.MealCount,
			NurseAlertTime: sess.NurseAlertTime,
			WaitingMinutes: elapsedMinutes(sess.NurseAlertTime, now),
		})
	}

	mealTypeBreakdown := make(map[string]int)
	wardBreakdown := make(map[string]int)
	totalMealsServed := 0
	for _, sess := range createdToday {
		mealTypeBreakdown[string(sess.MealType)]++
		wardBreakdown[sess.WardName]++
		totalMealsServed += sess.MealsServed
	}

	completedToday := make([]*models.Session, 0, len(createdToday))
	for _, sess := range createdToday {
		if sess.IsCompleted() {
			completedToday = append(completedToday, sess)
		}
	}

	completionSum := 0.0
	servingMinutesSum := 0.0
	servingSamples := 0
	for _, sess := range completedToday {
		completionSum += metrics.CompletionRate(sess)
		if serving := sess.ServingTime(); serving > 0 {
			servingMinutesSum += serving.Minutes()
			servingSamples++
		}
	}

	avgCompletion := 0.0
	if len(completedToday) > 0 {
		avgCompletion = completionSum / float64(len(completedToday))
	}

	avgServingMinutes := 0.0
	if servingSamples > 0 {
		avgServingMinutes = servingMinutesSum / float64(servingSamples)
	}

	return &DashboardStats{
		ActiveSessions:            len(active),
		CompletedSessionsToday:    len(completedToday),
		TotalMealsServedToday:     totalMealsServed,
		AverageCompletionRate:     avgCompletion,
		AverageServingTimeMinutes: avgServingMinutes,
		SessionsInProgress:        inProgressRows,
		SessionsAwaitingNurse:     awaitingRows,
		MealTypeBreakdown:         mealTypeBreakdown,
		WardActivityBreakdown:     wardBreakdown,
	}
}

// BuildPerformanceReport folds a session population into a performance
// report. Empty input yields a zero-valued report rated "No Data".
func (s *service) BuildPerformanceReport(sessions []*models.Session, period string, reportDate, now time.Time) *PerformanceReport {
	if len(sessions) == 0 {
		return &PerformanceReport{
			ReportDate:            reportDate,
			ReportPeriod:          period,
			EfficiencyRating:      metrics.RatingNoData,
			TopPerformingSessions: []*SessionSummary{},
			ProblematicSessions:   []*SessionSummary{},
		}
	}

	completed := 0
	completionSum := 0.0
	var travelSum, nurseSum, servingSum time.Duration
	travelSamples, nurseSamples, servingSamples := 0, 0, 0
	servingRateSum := 0.0
	servingRateSamples := 0

	for _, sess := range sessions {
		if sess.IsCompleted() {
			completed++
		}

		completionSum += metrics.CompletionRate(sess)

		if travel := sess.TravelTime(); travel > 0 {
			travelSum += travel
			travelSamples++
		}
		if wait := sess.NurseWait(); wait > 0 {
			nurseSum += wait
			nurseSamples++
		}
		if serving := sess.ServingTime(); serving > 0 {
			servingSum += serving
			servingSamples++
		}
		if rate := metrics.ServingRate(sess); rate > 0 {
			servingRateSum += rate
			servingRateSamples++
		}
	}

	avgCompletion := completionSum / float64(len(sessions))

	avgServingRate := 0.0
	if servingRateSamples > 0 {
		avgServingRate = servingRateSum / float64(servingRateSamples)
	}

	return &PerformanceReport{
		ReportDate:                      reportDate,
		ReportPeriod:                    period,
		TotalSessions:                   len(sessions),
		CompletedSessions:               completed,
		AverageCompletionRate:           avgCompletion,
		AverageTravelTimeMinutes:        averageMinutes(travelSum, travelSamples),
		AverageNurseResponseTimeMinutes: averageMinutes(nurseSum, nurseSamples),
		AverageServingTimeMinutes:       averageMinutes(servingSum, servingSamples),
		AverageServingRate:              avgServingRate,
		EfficiencyRating:                overallEfficiency(avgCompletion, avgServingRate),
		TopPerformingSessions:           s.topPerformers(sessions, now),
		ProblematicSessions:             s.problematic(sessions, now),
	}
}

// topPerformers ranks sessions with near-full completion at a fast pace,
// best serving rate first
func (s *service) topPerformers(sessions []*models.Session, now time.Time) []*SessionSummary {
	candidates := make([]*models.Session, 0, len(sessions))
	for _, sess := range sessions {
		if metrics.CompletionRate(sess) >= topPerformerCompletion &&
			metrics.ServingRate(sess) >= topPerformerServingRate {
			candidates = append(candidates, sess)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return metrics.ServingRate(candidates[i]) > metrics.ServingRate(candidates[j])
	})

	return s.summarizeLimited(candidates, now)
}

// problematic ranks sessions that under-delivered or blew a time threshold,
// worst completion rate first
func (s *service) problematic(sessions []*models.Session, now time.Time) []*SessionSummary {
	candidates := make([]*models.Session, 0, len(sessions))
	for _, sess := range sessions {
		if metrics.CompletionRate(sess) < s.thresholds.CompletionRateWarning ||
			sess.TravelTime() > s.thresholds.TravelTimeWarning ||
			sess.NurseWait() > s.thresholds.NurseResponseWarning {
			candidates = append(candidates, sess)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return metrics.CompletionRate(candidates[i]) < metrics.CompletionRate(candidates[j])
	})

	return s.summarizeLimited(candidates, now)
}

func (s *service) summarizeLimited(sessions []*models.Session, now time.Time) []*SessionSummary {
	if len(sessions) > rankedListLimit {
		sessions = sessions[:rankedListLimit]
	}

	summaries := make([]*SessionSummary, 0, len(sessions))
	for _, sess := range sessions {
		summaries = append(summaries, s.summarize(sess, now))
	}

	return summaries
}

// overallEfficiency rates a whole population; each tier requires both the
// completion and the serving-rate cutoff
func overallEfficiency(completionRate, servingRate float64) string {
	switch {
	case completionRate >= populationExcellentCompletion && servingRate >= 0.8:
		return metrics.RatingExcellent
	case completionRate >= populationGoodCompletion && servingRate >= 0.6:
		return metrics.RatingGood
	case completionRate >= populationAcceptableCompletion && servingRate >= 0.4:
		return metrics.RatingAcceptable
	default:
		return metrics.RatingBelowAverage
	}
}

func averageMinutes(sum time.Duration, samples int) int64 {
	if samples == 0 {
		return 0
	}
	return int64((sum / time.Duration(samples)).Minutes())
}
