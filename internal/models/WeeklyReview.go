package models

import "time"

// MaxBestOfWeek is how many logs a review may highlight.
const MaxBestOfWeek = 3

type Reflections struct {
	Emotions      string `json:"emotions"`
	Results       string `json:"results"`
	MessageToSelf string `json:"messageToSelf"`
}

type WeeklyReview struct {
	ID            string      `json:"id"`
	WeekStartDate string      `json:"weekStartDate"`
	WeekEndDate   string      `json:"weekEndDate"`
	BestOfWeek    []string    `json:"bestOfWeek"`
	Reflections   Reflections `json:"reflections"`
	CreatedAt     time.Time   `json:"createdAt"`
}

type NewReview struct {
	WeekStartDate string
	WeekEndDate   string
	BestOfWeek    []string
	Reflections   Reflections
}

func (r WeeklyReview) Clone() WeeklyReview {
	best := make([]string, len(r.BestOfWeek))
	copy(best, r.BestOfWeek)
	r.BestOfWeek = best
	return r
}

// ReviewDetails is a review resolved against the current logs. Best-of-week
// ids whose log no longer exists are dropped from BestLogs.
type ReviewDetails struct {
	Review   WeeklyReview `json:"review"`
	WeekLogs []GritLog    `json:"weekLogs"`
	BestLogs []GritLog    `json:"bestLogs"`
	Stats    WeeklyStats  `json:"stats"`
}
