package services

import (
	"gritd/internal/calendar"
	"gritd/internal/models"
	"gritd/internal/statistic"
	"sort"
)

// SaveWeeklyReview stores a review for its week, replacing any review saved
// earlier for the same week start.
func (s *GritService) SaveWeeklyReview(in models.NewReview) models.WeeklyReview {
	s.mu.Lock()
	defer s.mu.Unlock()

	weekEnd := in.WeekEndDate
	if weekEnd == "" {
		weekEnd, _ = calendar.WeekEnd(in.WeekStartDate)
	}
	best := make([]string, len(in.BestOfWeek))
	copy(best, in.BestOfWeek)

	review := models.WeeklyReview{
		ID:            s.newID(),
		WeekStartDate: in.WeekStartDate,
		WeekEndDate:   weekEnd,
		BestOfWeek:    best,
		Reflections:   in.Reflections,
		CreatedAt:     s.now(),
	}

	replaced := false
	for i := range s.reviews {
		if s.reviews[i].WeekStartDate == review.WeekStartDate {
			s.reviews[i] = review
			replaced = true
			break
		}
	}
	if !replaced {
		s.reviews = append(s.reviews, review)
	}

	s.commit()
	return review.Clone()
}

func (s *GritService) GetWeeklyReview(weekStart string) (models.WeeklyReview, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reviews {
		if r.WeekStartDate == weekStart {
			return r.Clone(), true
		}
	}
	return models.WeeklyReview{}, false
}

// Reviews returns every review, latest week first.
func (s *GritService) Reviews() []models.WeeklyReview {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.WeeklyReview, len(s.reviews))
	for i, r := range s.reviews {
		out[i] = r.Clone()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WeekStartDate > out[j].WeekStartDate
	})
	return out
}

// ReviewDetails resolves a review against the logs of its week. Best-of-week
// ids pointing at logs that were deleted or moved out of the week are skipped.
func (s *GritService) ReviewDetails(id string) (models.ReviewDetails, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reviews {
		if r.ID != id {
			continue
		}
		weekLogs := cloneLogs(statistic.LogsInWeek(s.logs, r.WeekStartDate))
		sort.SliceStable(weekLogs, func(i, j int) bool {
			return weekLogs[i].Date > weekLogs[j].Date
		})

		best := make([]models.GritLog, 0, len(r.BestOfWeek))
		for _, logID := range r.BestOfWeek {
			for _, l := range weekLogs {
				if l.ID == logID {
					best = append(best, l)
					break
				}
			}
		}
		return models.ReviewDetails{
			Review:   r.Clone(),
			WeekLogs: weekLogs,
			BestLogs: best,
			Stats:    statistic.Weekly(s.logs, r.WeekStartDate),
		}, true
	}
	return models.ReviewDetails{}, false
}
