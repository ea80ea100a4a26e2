package models

import "time"

// ExportVersion is written into every export document.
const ExportVersion = "2.0"

// Snapshot is the persisted state of the store. The current view is transient
// and never part of it.
type Snapshot struct {
	GritLogs       []GritLog               `json:"gritLogs"`
	WeeklyReviews  []WeeklyReview          `json:"weeklyReviews"`
	RewardSettings []RewardSetting         `json:"rewardSettings"`
	WeeklyStats    map[string]WeeklyStats  `json:"weeklyStats"`
	MonthlyStats   map[string]MonthlyStats `json:"monthlyStats"`
}

// ExportDocument is a Snapshot stamped with its export time and format
// version.
type ExportDocument struct {
	Snapshot
	ExportedAt time.Time `json:"exportedAt"`
	Version    string    `json:"version"`
}

func NewSnapshot() *Snapshot {
	s := &Snapshot{}
	s.Normalize()
	return s
}

// Normalize replaces missing collections with empty ones.
func (s *Snapshot) Normalize() {
	if s.GritLogs == nil {
		s.GritLogs = []GritLog{}
	}
	if s.WeeklyReviews == nil {
		s.WeeklyReviews = []WeeklyReview{}
	}
	for i := range s.WeeklyReviews {
		if s.WeeklyReviews[i].BestOfWeek == nil {
			s.WeeklyReviews[i].BestOfWeek = []string{}
		}
	}
	if s.RewardSettings == nil {
		s.RewardSettings = []RewardSetting{}
	}
	if s.WeeklyStats == nil {
		s.WeeklyStats = make(map[string]WeeklyStats)
	}
	if s.MonthlyStats == nil {
		s.MonthlyStats = make(map[string]MonthlyStats)
	}
}

// Clone deep-copies the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		GritLogs:       make([]GritLog, len(s.GritLogs)),
		WeeklyReviews:  make([]WeeklyReview, len(s.WeeklyReviews)),
		RewardSettings: make([]RewardSetting, len(s.RewardSettings)),
		WeeklyStats:    make(map[string]WeeklyStats, len(s.WeeklyStats)),
		MonthlyStats:   make(map[string]MonthlyStats, len(s.MonthlyStats)),
	}
	for i, l := range s.GritLogs {
		out.GritLogs[i] = l.Clone()
	}
	for i, r := range s.WeeklyReviews {
		out.WeeklyReviews[i] = r.Clone()
	}
	for i, r := range s.RewardSettings {
		out.RewardSettings[i] = r.Clone()
	}
	for k, v := range s.WeeklyStats {
		out.WeeklyStats[k] = v
	}
	for k, v := range s.MonthlyStats {
		out.MonthlyStats[k] = v
	}
	return out
}
