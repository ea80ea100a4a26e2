package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPatch_Apply(t *testing.T) {
	ok := false
	base := GritLog{ID: "a", Date: "2024-01-10", TaskName: "run", DifficultyScore: 5, EnduredTime: 30, EnduranceScore: 150, WasSuccessful: &ok}

	name := "walk"
	patched := LogPatch{TaskName: &name}.Apply(base)
	assert.Equal(t, "walk", patched.TaskName)
	assert.Equal(t, 150, patched.EnduranceScore)
	assert.Equal(t, "run", base.TaskName)

	yes := true
	patched = LogPatch{WasSuccessful: &yes}.Apply(base)
	yes = false
	assert.True(t, *patched.WasSuccessful)
	assert.False(t, *base.WasSuccessful)
}

func TestLogPatch_TouchesScore(t *testing.T) {
	n := 1
	s := "x"
	assert.False(t, LogPatch{}.TouchesScore())
	assert.False(t, LogPatch{TaskName: &s, Date: &s}.TouchesScore())
	assert.True(t, LogPatch{DifficultyScore: &n}.TouchesScore())
	assert.True(t, LogPatch{EnduredTime: &n}.TouchesScore())
}

func TestRewardPatch_Apply(t *testing.T) {
	at := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	base := RewardSetting{ID: "w", TargetScore: 500, RewardContent: "cake"}

	done := true
	patched := RewardPatch{IsCompleted: &done, CompletedAt: &at}.Apply(base)
	assert.True(t, patched.IsCompleted)
	require.NotNil(t, patched.CompletedAt)
	assert.Equal(t, at, *patched.CompletedAt)
	assert.Nil(t, base.CompletedAt)

	cleared := RewardPatch{ClearCompletedAt: true, CompletedAt: &at}.Apply(patched)
	assert.Nil(t, cleared.CompletedAt)
	assert.True(t, cleared.IsCompleted)
}

func TestRewardSetting_CompleteReopen(t *testing.T) {
	at := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	r := RewardSetting{TargetScore: 500}
	r.Complete(at)
	assert.True(t, r.IsCompleted)
	assert.Equal(t, at, *r.CompletedAt)

	c := r.Clone()
	r.Reopen()
	assert.False(t, r.IsCompleted)
	assert.Nil(t, r.CompletedAt)
	assert.True(t, c.IsCompleted)
	assert.NotNil(t, c.CompletedAt)
}

func TestSnapshot_NormalizeAndClone(t *testing.T) {
	s := &Snapshot{WeeklyReviews: []WeeklyReview{{ID: "r"}}}
	s.Normalize()
	assert.NotNil(t, s.GritLogs)
	assert.NotNil(t, s.RewardSettings)
	assert.NotNil(t, s.WeeklyStats)
	assert.NotNil(t, s.MonthlyStats)
	assert.Equal(t, []string{}, s.WeeklyReviews[0].BestOfWeek)

	s.WeeklyReviews[0].BestOfWeek = []string{"a"}
	s.WeeklyStats["2024-01-08"] = WeeklyStats{TotalLogs: 1}
	c := s.Clone()
	c.WeeklyReviews[0].BestOfWeek[0] = "b"
	c.WeeklyStats["2024-01-08"] = WeeklyStats{TotalLogs: 2}

	assert.Equal(t, "a", s.WeeklyReviews[0].BestOfWeek[0])
	assert.Equal(t, 1, s.WeeklyStats["2024-01-08"].TotalLogs)
}

func TestNewSnapshot_Empty(t *testing.T) {
	s := NewSnapshot()
	assert.Empty(t, s.GritLogs)
	assert.NotNil(t, s.GritLogs)
	assert.Empty(t, s.WeeklyStats)
}
