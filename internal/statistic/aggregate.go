package statistic

import (
	"sort"
	"strings"

	"gritd/internal/calendar"
	"gritd/internal/models"
)

// LogsInRange keeps logs dated within [from, to], newest date first.
// YYYY-MM-DD strings order the same way as the days they name.
func LogsInRange(logs []models.GritLog, from, to string) []models.GritLog {
	out := make([]models.GritLog, 0)
	for _, l := range logs {
		if l.Date >= from && l.Date <= to {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// LogsInWeek keeps logs dated within the seven days starting at weekStart.
// An unparsable weekStart matches nothing.
func LogsInWeek(logs []models.GritLog, weekStart string) []models.GritLog {
	weekEnd, err := calendar.AddDays(weekStart, 6)
	if err != nil {
		return []models.GritLog{}
	}
	out := make([]models.GritLog, 0)
	for _, l := range logs {
		if l.Date >= weekStart && l.Date <= weekEnd {
			out = append(out, l)
		}
	}
	return out
}

// LogsInMonth keeps logs whose date falls in the YYYY-MM month.
func LogsInMonth(logs []models.GritLog, month string) []models.GritLog {
	out := make([]models.GritLog, 0)
	prefix := month + "-"
	for _, l := range logs {
		if strings.HasPrefix(l.Date, prefix) {
			out = append(out, l)
		}
	}
	return out
}

func minutes(logs []models.GritLog) int {
	total := 0
	for _, l := range logs {
		total += l.EnduredTime
	}
	return total
}

// Weekly aggregates the logs of the week starting at weekStart.
func Weekly(logs []models.GritLog, weekStart string) models.WeeklyStats {
	week := LogsInWeek(logs, weekStart)
	return models.WeeklyStats{
		WeekStartDate:       weekStart,
		TotalEnduranceScore: TotalScore(week),
		TotalLogs:           len(week),
		AverageDifficulty:   AverageDifficulty(week),
		TotalMinutes:        minutes(week),
	}
}

// Monthly aggregates the logs of a YYYY-MM month.
func Monthly(logs []models.GritLog, month string) models.MonthlyStats {
	m := LogsInMonth(logs, month)
	return models.MonthlyStats{
		Month:               month,
		TotalEnduranceScore: TotalScore(m),
		TotalLogs:           len(m),
		AverageDifficulty:   AverageDifficulty(m),
		TotalMinutes:        minutes(m),
	}
}
