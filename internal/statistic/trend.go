package statistic

import (
	"gritd/internal/calendar"
	"gritd/internal/models"
)

// Trend buckets logs per day for the given number of days ending on today,
// oldest first. Days without logs are still present with zero values.
func Trend(logs []models.GritLog, today string, days int) []models.TrendPoint {
	if days <= 0 {
		return []models.TrendPoint{}
	}
	end, err := calendar.ParseDate(today)
	if err != nil {
		return []models.TrendPoint{}
	}

	points := make([]models.TrendPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		d := calendar.FormatDate(end.AddDate(0, 0, i-days+1))
		points[i] = models.TrendPoint{Date: d}
		index[d] = i
	}
	for _, l := range logs {
		if i, ok := index[l.Date]; ok {
			points[i].Score += l.EnduranceScore
			points[i].Count++
		}
	}
	return points
}
