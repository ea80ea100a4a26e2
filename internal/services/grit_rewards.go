package services

import (
	"gritd/internal/models"
	"gritd/internal/providers"
	"gritd/internal/statistic"
	"sort"
)

func (s *GritService) findReward(id string) int {
	for i := range s.rewards {
		if s.rewards[i].ID == id {
			return i
		}
	}
	return -1
}

// AddReward creates an open reward. Uniqueness of the target score is left to
// the caller, see RewardTargetExists.
func (s *GritService) AddReward(in models.NewReward) models.RewardSetting {
	s.mu.Lock()
	defer s.mu.Unlock()

	reward := models.RewardSetting{
		ID:            s.newID(),
		TargetScore:   in.TargetScore,
		RewardContent: in.RewardContent,
		CreatedAt:     s.now(),
	}
	s.rewards = append(s.rewards, reward)
	s.commit()
	return reward.Clone()
}

// UpdateReward merges patch onto the reward. Unknown ids are ignored.
func (s *GritService) UpdateReward(id string, patch models.RewardPatch) (models.RewardSetting, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findReward(id)
	if i < 0 {
		return models.RewardSetting{}, false
	}
	s.rewards[i] = patch.Apply(s.rewards[i])
	s.commit()
	return s.rewards[i].Clone(), true
}

// SetRewardCompleted is the manual toggle: it keeps CompletedAt paired with
// IsCompleted. Reopening a reward is the only way back from completed.
func (s *GritService) SetRewardCompleted(id string, completed bool) (models.RewardSetting, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findReward(id)
	if i < 0 {
		return models.RewardSetting{}, false
	}
	if completed {
		if !s.rewards[i].IsCompleted {
			s.rewards[i].Complete(s.now())
		}
	} else {
		s.rewards[i].Reopen()
	}
	s.commit()
	return s.rewards[i].Clone(), true
}

func (s *GritService) DeleteReward(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findReward(id)
	if i < 0 {
		return false
	}
	s.rewards = append(s.rewards[:i], s.rewards[i+1:]...)
	s.commit()
	return true
}

// Rewards lists open rewards before completed ones, each by target score.
func (s *GritService) Rewards() []models.RewardSetting {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.RewardSetting, len(s.rewards))
	for i, r := range s.rewards {
		out[i] = r.Clone()
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsCompleted != out[j].IsCompleted {
			return !out[i].IsCompleted
		}
		return out[i].TargetScore < out[j].TargetScore
	})
	return out
}

// NextReward is the open reward with the lowest target, with progress
// towards it.
func (s *GritService) NextReward() (models.RewardProgress, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextReward()
}

func (s *GritService) nextReward() (models.RewardProgress, bool) {
	next := -1
	for i, r := range s.rewards {
		if r.IsCompleted {
			continue
		}
		if next < 0 || r.TargetScore < s.rewards[next].TargetScore {
			next = i
		}
	}
	if next < 0 {
		return models.RewardProgress{}, false
	}
	return statistic.Progress(s.rewards[next].Clone(), statistic.TotalScore(s.logs)), true
}

func (s *GritService) RewardTargetExists(target int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rewards {
		if r.TargetScore == target {
			return true
		}
	}
	return false
}

// CheckRewards completes every open reward whose target the cumulative score
// has reached and returns the rewards it completed. Completed rewards are
// never reopened here.
func (s *GritService) CheckRewards() []models.RewardSetting {
	s.mu.Lock()
	defer s.mu.Unlock()

	completed := s.checkRewards()
	if len(completed) > 0 {
		s.commit()
	}
	return completed
}

func (s *GritService) checkRewards() []models.RewardSetting {
	cumulative := statistic.TotalScore(s.logs)
	completed := make([]models.RewardSetting, 0)
	for i := range s.rewards {
		r := &s.rewards[i]
		if !r.IsCompleted && cumulative >= r.TargetScore {
			r.Complete(s.now())
			completed = append(completed, r.Clone())
			s.logger.Infof(providers.TypeStore, "Reward %q reached at %d/%d", r.RewardContent, cumulative, r.TargetScore)
		}
	}
	if len(completed) > 0 {
		s.metrics.AddRewardsCompleted(len(completed))
	}
	return completed
}
