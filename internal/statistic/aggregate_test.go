package statistic

import (
	"testing"

	"gritd/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsInWeek_InclusiveBounds(t *testing.T) {
	logs := []models.GritLog{
		logAt("2024-06-09", 1, 1), // Sunday before
		logAt("2024-06-10", 1, 1), // Monday
		logAt("2024-06-16", 1, 1), // Sunday
		logAt("2024-06-17", 1, 1), // next Monday
	}
	week := LogsInWeek(logs, "2024-06-10")
	require.Len(t, week, 2)
	assert.Equal(t, "2024-06-10", week[0].Date)
	assert.Equal(t, "2024-06-16", week[1].Date)
}

func TestLogsInWeek_InvalidStart(t *testing.T) {
	logs := []models.GritLog{logAt("2024-06-10", 1, 1)}
	assert.Empty(t, LogsInWeek(logs, "garbage"))
}

func TestLogsInMonth(t *testing.T) {
	logs := []models.GritLog{
		logAt("2024-05-31", 1, 1),
		logAt("2024-06-01", 1, 1),
		logAt("2024-06-30", 1, 1),
		logAt("2024-07-01", 1, 1),
	}
	assert.Len(t, LogsInMonth(logs, "2024-06"), 2)
	assert.Empty(t, LogsInMonth(logs, "2023-06"))
}

func TestLogsInRange_NewestFirst(t *testing.T) {
	logs := []models.GritLog{
		logAt("2024-06-01", 1, 1),
		logAt("2024-06-05", 1, 1),
		logAt("2024-06-03", 1, 1),
		logAt("2024-06-09", 1, 1),
	}
	got := LogsInRange(logs, "2024-06-01", "2024-06-05")
	require.Len(t, got, 3)
	assert.Equal(t, "2024-06-05", got[0].Date)
	assert.Equal(t, "2024-06-03", got[1].Date)
	assert.Equal(t, "2024-06-01", got[2].Date)
}

func TestWeekly_Empty(t *testing.T) {
	stats := Weekly(nil, "2024-06-10")
	assert.Equal(t, models.WeeklyStats{WeekStartDate: "2024-06-10"}, stats)
}

func TestWeekly_Aggregates(t *testing.T) {
	logs := []models.GritLog{
		logAt("2024-06-11", 5, 30),
		logAt("2024-06-11", 8, 45),
		logAt("2024-06-20", 10, 100),
	}
	stats := Weekly(logs, "2024-06-10")
	assert.Equal(t, 510, stats.TotalEnduranceScore)
	assert.Equal(t, 2, stats.TotalLogs)
	assert.Equal(t, 6.5, stats.AverageDifficulty)
	assert.Equal(t, 75, stats.TotalMinutes)
}

func TestMonthly_Aggregates(t *testing.T) {
	logs := []models.GritLog{
		logAt("2024-06-01", 3, 10),
		logAt("2024-06-30", 4, 20),
		logAt("2024-07-01", 9, 99),
	}
	stats := Monthly(logs, "2024-06")
	assert.Equal(t, "2024-06", stats.Month)
	assert.Equal(t, 110, stats.TotalEnduranceScore)
	assert.Equal(t, 2, stats.TotalLogs)
	assert.Equal(t, 3.5, stats.AverageDifficulty)
	assert.Equal(t, 30, stats.TotalMinutes)

	assert.Equal(t, models.MonthlyStats{Month: "2024-08"}, Monthly(logs, "2024-08"))
}
