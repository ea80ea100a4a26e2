package services

import (
	"gritd/internal/calendar"
	"gritd/internal/models"
	"gritd/internal/statistic"
)

// The queries below always compute from the current logs. The weekly and
// monthly caches are a convenience for past periods; when they disagree with
// these numbers, these numbers win.

func (s *GritService) Today() string {
	return s.today()
}

func (s *GritService) currentWeekLogs() []models.GritLog {
	weekStart, _ := calendar.WeekStart(s.today())
	return statistic.LogsInWeek(s.logs, weekStart)
}

func (s *GritService) WeeklyTotalScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return statistic.TotalScore(s.currentWeekLogs())
}

func (s *GritService) CumulativeTotalScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return statistic.TotalScore(s.logs)
}

func (s *GritService) WeeklyRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.currentWeekLogs())
}

func (s *GritService) WeeklyAverageDifficulty() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return statistic.AverageDifficulty(s.currentWeekLogs())
}

// ScoreTrend returns exactly days daily buckets ending today.
func (s *GritService) ScoreTrend(days int) []models.TrendPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return statistic.Trend(s.logs, s.today(), days)
}

func (s *GritService) WeeklyStats(weekStart string) models.WeeklyStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return statistic.Weekly(s.logs, weekStart)
}

func (s *GritService) MonthlyStats(month string) models.MonthlyStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return statistic.Monthly(s.logs, month)
}

func (s *GritService) Summary() models.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	weekStart, _ := calendar.WeekStart(today)
	week := statistic.LogsInWeek(s.logs, weekStart)
	summary := models.Summary{
		Today:                   today,
		WeekStartDate:           weekStart,
		WeeklyTotalScore:        statistic.TotalScore(week),
		WeeklyRecordCount:       len(week),
		WeeklyAverageDifficulty: statistic.AverageDifficulty(week),
		CumulativeTotalScore:    statistic.TotalScore(s.logs),
	}
	if next, ok := s.nextReward(); ok {
		summary.NextReward = &next
	}
	return summary
}

func (s *GritService) CachedWeeklyStats() map[string]models.WeeklyStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]models.WeeklyStats, len(s.weekly))
	for k, v := range s.weekly {
		out[k] = v
	}
	return out
}

func (s *GritService) CachedMonthlyStats() map[string]models.MonthlyStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]models.MonthlyStats, len(s.monthly))
	for k, v := range s.monthly {
		out[k] = v
	}
	return out
}

// RefreshCurrentPeriod brings the cache buckets of the current week and month
// in line with the live numbers. Empty periods are not added to the cache.
// It reports whether anything changed.
func (s *GritService) RefreshCurrentPeriod() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	weekStart, _ := calendar.WeekStart(today)
	month, _ := calendar.MonthKey(today)

	changed := false
	week := statistic.Weekly(s.logs, weekStart)
	if cached, ok := s.weekly[weekStart]; (ok && cached != week) || (!ok && week.TotalLogs > 0) {
		s.weekly[weekStart] = week
		changed = true
	}
	m := statistic.Monthly(s.logs, month)
	if cached, ok := s.monthly[month]; (ok && cached != m) || (!ok && m.TotalLogs > 0) {
		s.monthly[month] = m
		changed = true
	}
	if changed {
		s.commit()
	}
	return changed
}
