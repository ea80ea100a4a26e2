package controllers

import (
	"github.com/gookit/validate"
	"gritd/internal/calendar"
	"gritd/internal/models"
	"strings"
)

func init() {
	validate.AddValidator("isoDate", func(val any) bool {
		s, ok := val.(string)
		return ok && calendar.IsDate(s)
	})
}

type validatable interface {
	validate() validate.Errors
}

func check(payload any) validate.Errors {
	v := validate.Struct(payload)
	if v.Validate() {
		return nil
	}
	return v.Errors
}

type logPayload struct {
	Date            string `json:"date" validate:"required|isoDate"`
	TaskName        string `json:"taskName" validate:"required|maxLen:200"`
	DifficultyScore int    `json:"difficultyScore" validate:"required|int|min:1|max:10"`
	EnduredTime     int    `json:"enduredTime" validate:"required|int|min:1"`
	Details         string `json:"details" validate:"maxLen:2000"`
	WasSuccessful   *bool  `json:"wasSuccessful"`
}

func (p *logPayload) validate() validate.Errors {
	p.TaskName = strings.TrimSpace(p.TaskName)
	p.Details = strings.TrimSpace(p.Details)
	return check(p)
}

func (p *logPayload) toModel() models.NewLog {
	return models.NewLog{
		Date:            p.Date,
		TaskName:        p.TaskName,
		DifficultyScore: p.DifficultyScore,
		EnduredTime:     p.EnduredTime,
		Details:         p.Details,
		WasSuccessful:   p.WasSuccessful,
	}
}

// logPatchPayload is validated by merging it onto the stored log and checking
// the result against the create rules.
type logPatchPayload struct {
	Date            *string `json:"date"`
	TaskName        *string `json:"taskName"`
	DifficultyScore *int    `json:"difficultyScore"`
	EnduredTime     *int    `json:"enduredTime"`
	Details         *string `json:"details"`
	WasSuccessful   *bool   `json:"wasSuccessful"`
}

func (p *logPatchPayload) toModel() models.LogPatch {
	return models.LogPatch{
		Date:            p.Date,
		TaskName:        p.TaskName,
		DifficultyScore: p.DifficultyScore,
		EnduredTime:     p.EnduredTime,
		Details:         p.Details,
		WasSuccessful:   p.WasSuccessful,
	}
}

func (p *logPatchPayload) merged(current models.GritLog) *logPayload {
	l := p.toModel().Apply(current)
	return &logPayload{
		Date:            l.Date,
		TaskName:        l.TaskName,
		DifficultyScore: l.DifficultyScore,
		EnduredTime:     l.EnduredTime,
		Details:         l.Details,
		WasSuccessful:   l.WasSuccessful,
	}
}

type reflectionsPayload struct {
	Emotions      string `json:"emotions" validate:"required"`
	Results       string `json:"results" validate:"required"`
	MessageToSelf string `json:"messageToSelf" validate:"required"`
}

type reviewPayload struct {
	WeekStartDate string             `json:"weekStartDate" validate:"required|isoDate"`
	BestOfWeek    []string           `json:"bestOfWeek" validate:"maxLen:3"`
	Reflections   reflectionsPayload `json:"reflections"`
}

func (p *reviewPayload) validate() validate.Errors {
	p.Reflections.Emotions = strings.TrimSpace(p.Reflections.Emotions)
	p.Reflections.Results = strings.TrimSpace(p.Reflections.Results)
	p.Reflections.MessageToSelf = strings.TrimSpace(p.Reflections.MessageToSelf)
	if errs := check(p); errs != nil {
		return errs
	}
	if start, _ := calendar.WeekStart(p.WeekStartDate); start != p.WeekStartDate {
		return validate.Errors{"weekStartDate": {"monday": "weekStartDate must be a Monday"}}
	}
	seen := make(map[string]bool, len(p.BestOfWeek))
	for _, id := range p.BestOfWeek {
		if id == "" || seen[id] {
			return validate.Errors{"bestOfWeek": {"unique": "bestOfWeek must hold distinct log ids"}}
		}
		seen[id] = true
	}
	return check(&p.Reflections)
}

func (p *reviewPayload) toModel() models.NewReview {
	return models.NewReview{
		WeekStartDate: p.WeekStartDate,
		BestOfWeek:    p.BestOfWeek,
		Reflections: models.Reflections{
			Emotions:      p.Reflections.Emotions,
			Results:       p.Reflections.Results,
			MessageToSelf: p.Reflections.MessageToSelf,
		},
	}
}

type rewardPayload struct {
	TargetScore   int    `json:"targetScore" validate:"required|int|min:1"`
	RewardContent string `json:"rewardContent" validate:"required|maxLen:500"`
}

func (p *rewardPayload) validate() validate.Errors {
	p.RewardContent = strings.TrimSpace(p.RewardContent)
	return check(p)
}

type rewardPatchPayload struct {
	TargetScore   *int    `json:"targetScore"`
	RewardContent *string `json:"rewardContent"`
}

func (p *rewardPatchPayload) merged(current models.RewardSetting) *rewardPayload {
	merged := &rewardPayload{TargetScore: current.TargetScore, RewardContent: current.RewardContent}
	if p.TargetScore != nil {
		merged.TargetScore = *p.TargetScore
	}
	if p.RewardContent != nil {
		merged.RewardContent = *p.RewardContent
	}
	return merged
}

type viewPayload struct {
	View string `json:"view" validate:"required|in:dashboard,record,review,review-history,rewards"`
}

func (p *viewPayload) validate() validate.Errors {
	return check(p)
}

func targetTakenError() validate.Errors {
	return validate.Errors{"targetScore": {"unique": "a reward with this targetScore already exists"}}
}
