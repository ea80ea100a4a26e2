package services

import (
	"gritd/internal/models"
	"gritd/internal/providers"
	"gritd/internal/statistic"
	"sort"
)

func (s *GritService) findLog(id string) int {
	for i := range s.logs {
		if s.logs[i].ID == id {
			return i
		}
	}
	return -1
}

// AddLog records a new log, refreshes the cache buckets of its week and
// month and completes any reward the new cumulative score reaches.
func (s *GritService) AddLog(in models.NewLog) models.GritLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := models.GritLog{
		ID:              s.newID(),
		Date:            in.Date,
		TaskName:        in.TaskName,
		DifficultyScore: in.DifficultyScore,
		EnduredTime:     in.EnduredTime,
		EnduranceScore:  statistic.EnduranceScore(in.DifficultyScore, in.EnduredTime),
		Details:         in.Details,
		CreatedAt:       s.now(),
	}
	if in.WasSuccessful != nil {
		v := *in.WasSuccessful
		log.WasSuccessful = &v
	}
	s.logs = append(s.logs, log)

	s.refreshBuckets(log.Date)
	s.checkRewards()
	s.logger.Debugf(providers.TypeStore, "Added log %s (%s, score %d)", log.ID, log.Date, log.EnduranceScore)
	s.commit()
	return log.Clone()
}

// UpdateLog merges patch onto the log with the given id. The endurance score
// is recomputed from the merged values whenever the patch names difficulty or
// minutes. Unknown ids are ignored.
func (s *GritService) UpdateLog(id string, patch models.LogPatch) (models.GritLog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLog(id)
	if i < 0 {
		return models.GritLog{}, false
	}
	old := s.logs[i]
	updated := patch.Apply(old)
	if patch.TouchesScore() {
		updated.EnduranceScore = statistic.EnduranceScore(updated.DifficultyScore, updated.EnduredTime)
	}
	s.logs[i] = updated

	s.refreshBuckets(updated.Date)
	if old.Date != updated.Date {
		s.refreshBuckets(old.Date)
	}
	s.commit()
	return updated.Clone(), true
}

// DeleteLog removes a log. Unknown ids are ignored.
func (s *GritService) DeleteLog(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLog(id)
	if i < 0 {
		return false
	}
	date := s.logs[i].Date
	s.logs = append(s.logs[:i], s.logs[i+1:]...)

	s.refreshBuckets(date)
	s.commit()
	return true
}

func cloneLogs(logs []models.GritLog) []models.GritLog {
	out := make([]models.GritLog, len(logs))
	for i, l := range logs {
		out[i] = l.Clone()
	}
	return out
}

// Logs returns every log in insertion order.
func (s *GritService) Logs() []models.GritLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLogs(s.logs)
}

func (s *GritService) Log(id string) (models.GritLog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLog(id)
	if i < 0 {
		return models.GritLog{}, false
	}
	return s.logs[i].Clone(), true
}

// LogsForDateRange returns logs dated within [from, to], newest first.
func (s *GritService) LogsForDateRange(from, to string) []models.GritLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLogs(statistic.LogsInRange(s.logs, from, to))
}

// RecentLogs returns up to limit logs, most recently created first.
func (s *GritService) RecentLogs(limit int) []models.GritLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := cloneLogs(s.logs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit >= 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}
