package models

import "time"

type RewardSetting struct {
	ID            string     `json:"id"`
	TargetScore   int        `json:"targetScore"`
	RewardContent string     `json:"rewardContent"`
	IsCompleted   bool       `json:"isCompleted"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type NewReward struct {
	TargetScore   int
	RewardContent string
}

// RewardPatch is a plain field merge. Keeping CompletedAt paired with
// IsCompleted is up to the caller.
type RewardPatch struct {
	TargetScore      *int
	RewardContent    *string
	IsCompleted      *bool
	CompletedAt      *time.Time
	ClearCompletedAt bool
}

func (p RewardPatch) Apply(r RewardSetting) RewardSetting {
	if p.TargetScore != nil {
		r.TargetScore = *p.TargetScore
	}
	if p.RewardContent != nil {
		r.RewardContent = *p.RewardContent
	}
	if p.IsCompleted != nil {
		r.IsCompleted = *p.IsCompleted
	}
	if p.ClearCompletedAt {
		r.CompletedAt = nil
	} else if p.CompletedAt != nil {
		at := *p.CompletedAt
		r.CompletedAt = &at
	}
	return r
}

// Complete marks the reward reached at the given time.
func (r *RewardSetting) Complete(at time.Time) {
	r.IsCompleted = true
	r.CompletedAt = &at
}

// Reopen is the manual undo of Complete.
func (r *RewardSetting) Reopen() {
	r.IsCompleted = false
	r.CompletedAt = nil
}

func (r RewardSetting) Clone() RewardSetting {
	if r.CompletedAt != nil {
		at := *r.CompletedAt
		r.CompletedAt = &at
	}
	return r
}

type RewardProgress struct {
	Reward          RewardSetting `json:"reward"`
	CumulativeScore int           `json:"cumulativeScore"`
	Percent         float64       `json:"percent"`
	Remaining       int           `json:"remaining"`
}
