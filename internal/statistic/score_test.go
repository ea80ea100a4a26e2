package statistic

import (
	"testing"

	"gritd/internal/models"

	"github.com/stretchr/testify/assert"
)

func logAt(date string, difficulty, minutes int) models.GritLog {
	return models.GritLog{
		Date:            date,
		TaskName:        "task",
		DifficultyScore: difficulty,
		EnduredTime:     minutes,
		EnduranceScore:  EnduranceScore(difficulty, minutes),
	}
}

func TestEnduranceScore_IsProduct(t *testing.T) {
	for d := 1; d <= 10; d++ {
		for _, m := range []int{1, 7, 30, 45, 240} {
			assert.Equal(t, d*m, EnduranceScore(d, m))
		}
	}
}

func TestEnduranceScore_NoValidation(t *testing.T) {
	assert.Equal(t, 0, EnduranceScore(0, 30))
	assert.Equal(t, -30, EnduranceScore(-1, 30))
	assert.Equal(t, 330, EnduranceScore(11, 30))
}

func TestTotalScore(t *testing.T) {
	logs := []models.GritLog{logAt("2024-06-10", 5, 30), logAt("2024-06-10", 8, 45)}
	assert.Equal(t, 510, TotalScore(logs))
	assert.Equal(t, 0, TotalScore(nil))
}

func TestAverageDifficulty_RoundsHalfUp(t *testing.T) {
	assert.Equal(t, 0.0, AverageDifficulty(nil))

	logs := []models.GritLog{logAt("d", 1, 1), logAt("d", 2, 1), logAt("d", 2, 1)}
	assert.Equal(t, 1.7, AverageDifficulty(logs))

	logs = []models.GritLog{logAt("d", 5, 1), logAt("d", 8, 1)}
	assert.Equal(t, 6.5, AverageDifficulty(logs))
}

func TestRoundTenth(t *testing.T) {
	assert.Equal(t, 7.3, RoundTenth(7.25))
	assert.Equal(t, 7.2, RoundTenth(7.24))
	assert.Equal(t, 3.0, RoundTenth(3))
}

func TestProgress(t *testing.T) {
	r := models.RewardSetting{TargetScore: 1000}

	p := Progress(r, 510)
	assert.Equal(t, 51.0, p.Percent)
	assert.Equal(t, 490, p.Remaining)
	assert.Equal(t, 510, p.CumulativeScore)

	p = Progress(r, 2500)
	assert.Equal(t, 100.0, p.Percent)
	assert.Equal(t, 0, p.Remaining)

	p = Progress(models.RewardSetting{TargetScore: 3}, 1)
	assert.Equal(t, 33.3, p.Percent)
}
