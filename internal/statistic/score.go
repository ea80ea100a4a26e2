// Package statistic derives scores and aggregates from grit logs. Every
// function here is pure: inputs are never modified and no validation is done.
package statistic

import (
	"math"

	"gritd/internal/models"
)

// EnduranceScore is difficulty times minutes endured.
func EnduranceScore(difficulty, minutes int) int {
	return difficulty * minutes
}

// TotalScore sums the endurance score of logs.
func TotalScore(logs []models.GritLog) int {
	total := 0
	for _, l := range logs {
		total += l.EnduranceScore
	}
	return total
}

// AverageDifficulty is the mean difficulty of logs rounded to one decimal,
// or 0 for no logs.
func AverageDifficulty(logs []models.GritLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	sum := 0
	for _, l := range logs {
		sum += l.DifficultyScore
	}
	return RoundTenth(float64(sum) / float64(len(logs)))
}

// RoundTenth rounds half-up to one decimal place.
func RoundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// Progress reports how far the cumulative score has come towards reward.
func Progress(reward models.RewardSetting, cumulative int) models.RewardProgress {
	p := models.RewardProgress{
		Reward:          reward,
		CumulativeScore: cumulative,
		Remaining:       max(reward.TargetScore-cumulative, 0),
	}
	if reward.TargetScore > 0 {
		p.Percent = RoundTenth(math.Min(float64(cumulative)/float64(reward.TargetScore)*100, 100))
	} else {
		p.Percent = 100
	}
	return p
}
