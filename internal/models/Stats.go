package models

type WeeklyStats struct {
	WeekStartDate       string  `json:"weekStartDate"`
	TotalEnduranceScore int     `json:"totalEnduranceScore"`
	TotalLogs           int     `json:"totalLogs"`
	AverageDifficulty   float64 `json:"averageDifficulty"`
	TotalMinutes        int     `json:"totalMinutes"`
}

type MonthlyStats struct {
	Month               string  `json:"month"`
	TotalEnduranceScore int     `json:"totalEnduranceScore"`
	TotalLogs           int     `json:"totalLogs"`
	AverageDifficulty   float64 `json:"averageDifficulty"`
	TotalMinutes        int     `json:"totalMinutes"`
}

// TrendPoint is one daily bucket of a score trend.
type TrendPoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
	Count int    `json:"count"`
}

// Summary is the dashboard view of the live current-period figures.
type Summary struct {
	Today                   string          `json:"today"`
	WeekStartDate           string          `json:"weekStartDate"`
	WeeklyTotalScore        int             `json:"weeklyTotalScore"`
	WeeklyRecordCount       int             `json:"weeklyRecordCount"`
	WeeklyAverageDifficulty float64         `json:"weeklyAverageDifficulty"`
	CumulativeTotalScore    int             `json:"cumulativeTotalScore"`
	NextReward              *RewardProgress `json:"nextReward,omitempty"`
}
